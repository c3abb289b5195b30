// Package rest exposes the upload boundary and the read-only navigation
// queries. All navigation queries are implicitly scoped to the data cycle
// with the most recent effective date, resolved fresh on every request.
package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"navdb-service/internal/domain/repository"
	"navdb-service/pkg/logger"
)

// Handler carries the dependencies for all REST endpoints
type Handler struct {
	fileRepo  repository.ArincFileRepository
	navRepo   repository.NavigationRepository
	queue     repository.FileQueue
	uploadDir string
	log       logger.Logger
}

// NewHandler creates a new REST handler
func NewHandler(
	fileRepo repository.ArincFileRepository,
	navRepo repository.NavigationRepository,
	queue repository.FileQueue,
	uploadDir string,
	log logger.Logger,
) *Handler {
	return &Handler{
		fileRepo:  fileRepo,
		navRepo:   navRepo,
		queue:     queue,
		uploadDir: uploadDir,
		log:       log,
	}
}

// Routes mounts all endpoints under /api/v1.
func (h *Handler) Routes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/files", h.UploadFile)
		r.Get("/files", h.ListFiles)
		r.Get("/files/{id}", h.GetFile)

		r.Get("/cycles", h.ListCycles)

		r.Get("/airports", h.ListAirports)
		r.Get("/airports/{id}", h.GetAirport)
		r.Get("/airports/{id}/procedures", h.AirportProcedures)
		r.Get("/navaids", h.ListNavaids)
		r.Get("/navaids/{id}", h.GetNavaid)
		r.Get("/waypoints", h.ListWaypoints)
		r.Get("/waypoints/{id}", h.GetWaypoint)
		r.Get("/airways", h.ListAirways)
		r.Get("/airways/{id}", h.GetAirway)
		r.Get("/airways/{id}/segments", h.AirwaySegments)
		r.Get("/procedures", h.ListProcedures)
		r.Get("/procedures/{id}", h.GetProcedure)
		r.Get("/procedures/{id}/legs", h.ProcedureLegs)
	})
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.Error("Failed to encode response", "error", err)
	}
}

func (h *Handler) respondDetail(w http.ResponseWriter, status int, detail string) {
	h.respondJSON(w, status, map[string]string{"detail": detail})
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		h.respondDetail(w, http.StatusNotFound, "Not found.")
		return
	}
	h.log.Error("Request failed", "error", err)
	h.respondDetail(w, http.StatusInternalServerError, "Internal server error.")
}

func pathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// latestCycleID resolves the current cycle, empty when nothing is loaded.
func (h *Handler) latestCycleID(r *http.Request) (string, error) {
	cycle, err := h.navRepo.LatestDataCycle(r.Context())
	if err != nil {
		return "", err
	}
	if cycle == nil {
		return "", nil
	}
	return cycle.CycleID, nil
}
