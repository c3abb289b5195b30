package rest

import (
	"net/http"

	"navdb-service/internal/domain/entity"
)

// ListAirports returns the latest cycle's airports.
func (h *Handler) ListAirports(w http.ResponseWriter, r *http.Request) {
	cycleID, err := h.latestCycleID(r)
	if err != nil {
		h.respondError(w, err)
		return
	}
	airports := []entity.Airport{}
	if cycleID != "" {
		if airports, err = h.navRepo.ListAirports(r.Context(), cycleID); err != nil {
			h.respondError(w, err)
			return
		}
	}
	h.respondJSON(w, http.StatusOK, airports)
}

// GetAirport returns one airport by row ID.
func (h *Handler) GetAirport(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondDetail(w, http.StatusNotFound, "Not found.")
		return
	}
	airport, err := h.navRepo.GetAirportByID(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, airport)
}

// AirportProcedures returns an airport's procedures, 404 when it has none.
func (h *Handler) AirportProcedures(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondDetail(w, http.StatusNotFound, "Not found.")
		return
	}
	if _, err := h.navRepo.GetAirportByID(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	procedures, err := h.navRepo.ProceduresForAirport(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	if len(procedures) == 0 {
		h.respondDetail(w, http.StatusNotFound, "No procedures found for this airport.")
		return
	}
	h.respondJSON(w, http.StatusOK, procedures)
}

// ListNavaids returns the latest cycle's navaids.
func (h *Handler) ListNavaids(w http.ResponseWriter, r *http.Request) {
	cycleID, err := h.latestCycleID(r)
	if err != nil {
		h.respondError(w, err)
		return
	}
	navaids := []entity.Navaid{}
	if cycleID != "" {
		if navaids, err = h.navRepo.ListNavaids(r.Context(), cycleID); err != nil {
			h.respondError(w, err)
			return
		}
	}
	h.respondJSON(w, http.StatusOK, navaids)
}

// GetNavaid returns one navaid by row ID.
func (h *Handler) GetNavaid(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondDetail(w, http.StatusNotFound, "Not found.")
		return
	}
	navaid, err := h.navRepo.GetNavaidByID(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, navaid)
}

// ListWaypoints returns the latest cycle's waypoints.
func (h *Handler) ListWaypoints(w http.ResponseWriter, r *http.Request) {
	cycleID, err := h.latestCycleID(r)
	if err != nil {
		h.respondError(w, err)
		return
	}
	waypoints := []entity.Waypoint{}
	if cycleID != "" {
		if waypoints, err = h.navRepo.ListWaypoints(r.Context(), cycleID); err != nil {
			h.respondError(w, err)
			return
		}
	}
	h.respondJSON(w, http.StatusOK, waypoints)
}

// GetWaypoint returns one waypoint by row ID.
func (h *Handler) GetWaypoint(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondDetail(w, http.StatusNotFound, "Not found.")
		return
	}
	waypoint, err := h.navRepo.GetWaypointByID(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, waypoint)
}

// ListAirways returns the latest cycle's airways.
func (h *Handler) ListAirways(w http.ResponseWriter, r *http.Request) {
	cycleID, err := h.latestCycleID(r)
	if err != nil {
		h.respondError(w, err)
		return
	}
	airways := []entity.Airway{}
	if cycleID != "" {
		if airways, err = h.navRepo.ListAirways(r.Context(), cycleID); err != nil {
			h.respondError(w, err)
			return
		}
	}
	h.respondJSON(w, http.StatusOK, airways)
}

// GetAirway returns one airway by row ID.
func (h *Handler) GetAirway(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondDetail(w, http.StatusNotFound, "Not found.")
		return
	}
	airway, err := h.navRepo.GetAirwayByID(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, airway)
}

// AirwaySegments returns an airway's ordered segments, 404 when it has none.
func (h *Handler) AirwaySegments(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondDetail(w, http.StatusNotFound, "Not found.")
		return
	}
	if _, err := h.navRepo.GetAirwayByID(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	segments, err := h.navRepo.SegmentsForAirway(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	if len(segments) == 0 {
		h.respondDetail(w, http.StatusNotFound, "No segments found for this airway.")
		return
	}
	h.respondJSON(w, http.StatusOK, segments)
}

// ListProcedures returns the latest cycle's procedures.
func (h *Handler) ListProcedures(w http.ResponseWriter, r *http.Request) {
	cycleID, err := h.latestCycleID(r)
	if err != nil {
		h.respondError(w, err)
		return
	}
	procedures := []entity.Procedure{}
	if cycleID != "" {
		if procedures, err = h.navRepo.ListProcedures(r.Context(), cycleID); err != nil {
			h.respondError(w, err)
			return
		}
	}
	h.respondJSON(w, http.StatusOK, procedures)
}

// GetProcedure returns one procedure by row ID.
func (h *Handler) GetProcedure(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondDetail(w, http.StatusNotFound, "Not found.")
		return
	}
	procedure, err := h.navRepo.GetProcedureByID(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, procedure)
}

// ProcedureLegs returns a procedure's transitions with their ordered legs,
// 404 when the procedure has no transitions.
func (h *Handler) ProcedureLegs(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.respondDetail(w, http.StatusNotFound, "Not found.")
		return
	}
	transitions, err := h.navRepo.TransitionsForProcedure(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	if len(transitions) == 0 {
		h.respondDetail(w, http.StatusNotFound, "No transitions found for this procedure.")
		return
	}
	h.respondJSON(w, http.StatusOK, transitions)
}
