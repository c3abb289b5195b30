package repository

import (
	"context"

	"navdb-service/internal/domain/entity"

	"gorm.io/gorm"
)

// Read-only queries for the REST boundary. All list queries are scoped to
// one cycle; the handlers pass the latest cycle's ID.

// ListAirports returns all airports for a cycle.
func (r *GormNavigationRepository) ListAirports(ctx context.Context, cycleID string) ([]entity.Airport, error) {
	var airports []entity.Airport
	err := r.db.WithContext(ctx).Where("cycle_id = ?", cycleID).Order("airport_id").Find(&airports).Error
	return airports, err
}

// GetAirportByID finds an airport row by primary key.
func (r *GormNavigationRepository) GetAirportByID(ctx context.Context, id uint) (*entity.Airport, error) {
	var airport entity.Airport
	if err := r.db.WithContext(ctx).First(&airport, id).Error; err != nil {
		return nil, err
	}
	return &airport, nil
}

// ListNavaids returns all navaids for a cycle.
func (r *GormNavigationRepository) ListNavaids(ctx context.Context, cycleID string) ([]entity.Navaid, error) {
	var navaids []entity.Navaid
	err := r.db.WithContext(ctx).Where("cycle_id = ?", cycleID).Order("navaid_id").Find(&navaids).Error
	return navaids, err
}

// GetNavaidByID finds a navaid row by primary key.
func (r *GormNavigationRepository) GetNavaidByID(ctx context.Context, id uint) (*entity.Navaid, error) {
	var navaid entity.Navaid
	if err := r.db.WithContext(ctx).First(&navaid, id).Error; err != nil {
		return nil, err
	}
	return &navaid, nil
}

// ListWaypoints returns all waypoints for a cycle.
func (r *GormNavigationRepository) ListWaypoints(ctx context.Context, cycleID string) ([]entity.Waypoint, error) {
	var waypoints []entity.Waypoint
	err := r.db.WithContext(ctx).Where("cycle_id = ?", cycleID).Order("waypoint_id").Find(&waypoints).Error
	return waypoints, err
}

// GetWaypointByID finds a waypoint row by primary key.
func (r *GormNavigationRepository) GetWaypointByID(ctx context.Context, id uint) (*entity.Waypoint, error) {
	var waypoint entity.Waypoint
	if err := r.db.WithContext(ctx).First(&waypoint, id).Error; err != nil {
		return nil, err
	}
	return &waypoint, nil
}

// ListAirways returns all airways for a cycle.
func (r *GormNavigationRepository) ListAirways(ctx context.Context, cycleID string) ([]entity.Airway, error) {
	var airways []entity.Airway
	err := r.db.WithContext(ctx).Where("cycle_id = ?", cycleID).Order("airway_id").Find(&airways).Error
	return airways, err
}

// GetAirwayByID finds an airway row by primary key.
func (r *GormNavigationRepository) GetAirwayByID(ctx context.Context, id uint) (*entity.Airway, error) {
	var airway entity.Airway
	if err := r.db.WithContext(ctx).First(&airway, id).Error; err != nil {
		return nil, err
	}
	return &airway, nil
}

// ListProcedures returns all procedures for a cycle.
func (r *GormNavigationRepository) ListProcedures(ctx context.Context, cycleID string) ([]entity.Procedure, error) {
	var procedures []entity.Procedure
	err := r.db.WithContext(ctx).Where("cycle_id = ?", cycleID).Order("procedure_id").Find(&procedures).Error
	return procedures, err
}

// GetProcedureByID finds a procedure row by primary key.
func (r *GormNavigationRepository) GetProcedureByID(ctx context.Context, id uint) (*entity.Procedure, error) {
	var procedure entity.Procedure
	if err := r.db.WithContext(ctx).First(&procedure, id).Error; err != nil {
		return nil, err
	}
	return &procedure, nil
}

// ProceduresForAirport returns the procedures belonging to one airport row.
func (r *GormNavigationRepository) ProceduresForAirport(ctx context.Context, airportRowID uint) ([]entity.Procedure, error) {
	var procedures []entity.Procedure
	err := r.db.WithContext(ctx).Where("airport_row_id = ?", airportRowID).Order("procedure_id").Find(&procedures).Error
	return procedures, err
}

// TransitionsForProcedure returns a procedure's transitions with their legs
// ordered by sequence number.
func (r *GormNavigationRepository) TransitionsForProcedure(ctx context.Context, procedureRowID uint) ([]entity.ProcedureTransition, error) {
	var transitions []entity.ProcedureTransition
	err := r.db.WithContext(ctx).
		Preload("Legs", func(db *gorm.DB) *gorm.DB { return db.Order("sequence_number") }).
		Where("procedure_row_id = ?", procedureRowID).
		Find(&transitions).Error
	return transitions, err
}

// SegmentsForAirway returns an airway's segments ordered by sequence number.
func (r *GormNavigationRepository) SegmentsForAirway(ctx context.Context, airwayRowID uint) ([]entity.AirwaySegment, error) {
	var segments []entity.AirwaySegment
	err := r.db.WithContext(ctx).
		Where("airway_row_id = ?", airwayRowID).
		Order("sequence_number").
		Find(&segments).Error
	return segments, err
}
