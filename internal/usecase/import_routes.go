package usecase

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"navdb-service/internal/domain/entity"
	"navdb-service/internal/domain/repository"
	"navdb-service/pkg/xmlutil"
)

// Procedure containers are processed in this fixed order.
var procedureContainers = []entity.ProcedureType{
	entity.ProcedureApproach,
	entity.ProcedureSID,
	entity.ProcedureSTAR,
}

func (p *ImportPipeline) importAirways(ctx context.Context, tx repository.NavigationRepository, cycle *entity.DataCycle, section *xmlutil.Element) error {
	if section == nil {
		p.log.Warn("No airways section found")
		return nil
	}

	p.log.Info("Importing airways")
	for _, el := range section.FindAll("AIRWAY") {
		airwayID := p.fields.Text(el, "ROUTE_IDENTIFIER")
		if airwayID == nil {
			continue
		}

		if err := p.importAirwayElement(ctx, tx, cycle, *airwayID, el); err != nil {
			p.log.Error("Failed to import airway", "airwayID", *airwayID, "error", err)
			return p.wrapElementError(err, "airway '%s'", *airwayID)
		}
	}
	p.log.Info("Finished importing airways")
	return nil
}

// importAirwayElement upserts the airway row and one segment. Several AIRWAY
// elements sharing a route identifier each contribute their own segment to
// the same airway.
func (p *ImportPipeline) importAirwayElement(ctx context.Context, tx repository.NavigationRepository, cycle *entity.DataCycle, airwayID string, el *xmlutil.Element) error {
	reader := p.reader(el)
	airway := &entity.Airway{
		CycleID:   cycle.CycleID,
		AirwayID:  airwayID,
		RouteType: entity.RouteType(reader.enum("ROUTE_TYPE")),
	}

	airway, created, err := tx.UpsertAirway(ctx, airway)
	if err != nil {
		return err
	}
	if created {
		p.countRow("airway")
	}

	sequenceNumber := reader.integer("SEQUENCE_NUMBER")
	if reader.err != nil {
		return reader.err
	}
	if sequenceNumber == nil {
		return nil
	}

	segment := &entity.AirwaySegment{
		AirwayRowID:           airway.ID,
		SequenceNumber:        *sequenceNumber,
		FixIdentifier:         reader.text("FIX_IDENTIFIER"),
		FixType:               entity.FixType(reader.enum("FIX_TYPE")),
		NextFixIdentifier:     reader.text("NEXT_FIX_IDENTIFIER"),
		NextFixType:           entity.FixType(reader.enum("NEXT_FIX_TYPE")),
		RouteDistance:         reader.integer("ROUTE_DISTANCE"),
		MinimumAltitude:       reader.integer("MINIMUM_ALTITUDE"),
		MaximumAltitude:       reader.integer("MAXIMUM_ALTITUDE"),
		MagneticCourse:        reader.integer("MAGNETIC_COURSE"),
		ReverseMagneticCourse: reader.integer("REVERSE_MAGNETIC_COURSE"),
	}
	if reader.err != nil {
		return reader.err
	}

	_, created, err = tx.UpsertAirwaySegment(ctx, segment)
	if err != nil {
		return err
	}
	if created {
		p.countRow("airway_segment")
	}
	return nil
}

func (p *ImportPipeline) importProcedures(ctx context.Context, tx repository.NavigationRepository, cycle *entity.DataCycle, section *xmlutil.Element) error {
	if section == nil {
		p.log.Warn("No procedures section found")
		return nil
	}

	for _, procType := range procedureContainers {
		if err := p.importProcedureType(ctx, tx, cycle, section, procType); err != nil {
			return err
		}
	}
	return nil
}

func (p *ImportPipeline) importProcedureType(ctx context.Context, tx repository.NavigationRepository, cycle *entity.DataCycle, section *xmlutil.Element, procType entity.ProcedureType) error {
	p.log.Info("Importing procedures", "type", procType)
	for _, el := range section.FindAll(string(procType)) {
		airportID := p.fields.Text(el, "AIRPORT_IDENTIFIER")
		procedureID := p.fields.Text(el, "PROCEDURE_IDENTIFIER")
		if airportID == nil || procedureID == nil {
			continue
		}

		airport, err := tx.GetAirport(ctx, cycle.CycleID, *airportID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// The one recoverable reference failure: the element is
			// skipped, the rest of the file continues.
			p.log.Error("Airport not found for procedure, skipping element",
				"type", procType, "airportID", *airportID, "procedureID", *procedureID)
			p.countError(entity.KindUnresolvedReference)
			continue
		}
		if err != nil {
			return p.wrapElementError(err, "%s for airport '%s'", procType, *airportID)
		}

		if err := p.importProcedureElement(ctx, tx, cycle, airport, *procedureID, procType, el); err != nil {
			p.log.Error("Failed to import procedure",
				"type", procType, "airportID", *airportID, "procedureID", *procedureID, "error", err)
			return p.wrapElementError(err, "%s '%s' for airport '%s'", procType, *procedureID, *airportID)
		}
	}
	p.log.Info("Finished importing procedures", "type", procType)
	return nil
}

// importProcedureElement upserts the procedure, its transition and at most
// one leg drawn from the same element.
func (p *ImportPipeline) importProcedureElement(ctx context.Context, tx repository.NavigationRepository, cycle *entity.DataCycle, airport *entity.Airport, procedureID string, procType entity.ProcedureType, el *xmlutil.Element) error {
	procedure := &entity.Procedure{
		CycleID:       cycle.CycleID,
		AirportRowID:  airport.ID,
		ProcedureID:   procedureID,
		ProcedureType: procType,
	}
	procedure, created, err := tx.UpsertProcedure(ctx, procedure)
	if err != nil {
		return err
	}
	if created {
		p.countRow("procedure")
	}

	reader := p.reader(el)
	transition := &entity.ProcedureTransition{
		ProcedureRowID: procedure.ID,
		TransitionID:   reader.enum("TRANSITION_IDENTIFIER"),
	}
	transition, created, err = tx.UpsertProcedureTransition(ctx, transition)
	if err != nil {
		return err
	}
	if created {
		p.countRow("procedure_transition")
	}

	sequenceNumber := reader.integer("SEQUENCE_NUMBER")
	waypointIdentifier := reader.text("WAYPOINT_IDENTIFIER")
	if reader.err != nil {
		return reader.err
	}
	if sequenceNumber == nil || waypointIdentifier == nil {
		return nil
	}

	leg := &entity.ProcedureLeg{
		TransitionRowID:    transition.ID,
		SequenceNumber:     *sequenceNumber,
		WaypointIdentifier: *waypointIdentifier,
		WaypointType:       reader.text("WAYPOINT_TYPE"),
		Latitude:           reader.decimal(".//POSITION/LATITUDE"),
		Longitude:          reader.decimal(".//POSITION/LONGITUDE"),
		AltitudeConstraint: reader.text("ALTITUDE_CONSTRAINT"),
		SpeedConstraint:    reader.text("SPEED_CONSTRAINT"),
		Course:             reader.integer("COURSE"),
		Distance:           reader.decimal("DISTANCE"),
		LegType:            reader.text("LEG_TYPE"),
	}
	if reader.err != nil {
		return reader.err
	}

	_, created, err = tx.UpsertProcedureLeg(ctx, leg)
	if err != nil {
		return err
	}
	if created {
		p.countRow("procedure_leg")
	}
	return nil
}
