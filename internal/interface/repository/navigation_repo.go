package repository

import (
	"context"
	"errors"

	"navdb-service/internal/domain/entity"
	"navdb-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormNavigationRepository implements the NavigationRepository interface
type GormNavigationRepository struct {
	db *gorm.DB
}

// NewGormNavigationRepository creates a new GORM navigation repository
func NewGormNavigationRepository(db *gorm.DB) repository.NavigationRepository {
	return &GormNavigationRepository{
		db: db,
	}
}

// InTransaction runs fn against a repository bound to one transaction.
// An error from fn rolls back every write made inside it.
func (r *GormNavigationRepository) InTransaction(ctx context.Context, fn func(tx repository.NavigationRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormNavigationRepository{db: tx})
	})
}

// GetOrCreateDataCycle returns the cycle row for the code, creating it if
// absent. An existing row keeps its dates and source untouched. When two
// workers race to create the same code, the loser observes the winner's row.
func (r *GormNavigationRepository) GetOrCreateDataCycle(ctx context.Context, cycle *entity.DataCycle) (*entity.DataCycle, bool, error) {
	var existing entity.DataCycle
	err := r.db.WithContext(ctx).Where("cycle_id = ?", cycle.CycleID).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}
	if createErr := r.db.WithContext(ctx).Create(cycle).Error; createErr != nil {
		// A concurrent creator may have committed between the lookup and
		// the insert; re-read before treating this as a failure.
		err = r.db.WithContext(ctx).Where("cycle_id = ?", cycle.CycleID).First(&existing).Error
		if err == nil {
			return &existing, false, nil
		}
		return nil, false, createErr
	}
	return cycle, true, nil
}

// LatestDataCycle returns the cycle with the most recent effective date,
// or nil when no cycle has been loaded yet.
func (r *GormNavigationRepository) LatestDataCycle(ctx context.Context) (*entity.DataCycle, error) {
	var cycle entity.DataCycle
	err := r.db.WithContext(ctx).Order("effective_date DESC").First(&cycle).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cycle, nil
}

// ListDataCycles returns all cycles, most recent effective date first.
func (r *GormNavigationRepository) ListDataCycles(ctx context.Context) ([]entity.DataCycle, error) {
	var cycles []entity.DataCycle
	err := r.db.WithContext(ctx).Order("effective_date DESC").Find(&cycles).Error
	return cycles, err
}

// UpsertAirport creates the airport unless its (cycle, airport_id) identity
// already exists, in which case the existing row is returned unchanged.
func (r *GormNavigationRepository) UpsertAirport(ctx context.Context, airport *entity.Airport) (*entity.Airport, bool, error) {
	var existing entity.Airport
	err := r.db.WithContext(ctx).
		Where("cycle_id = ? AND airport_id = ?", airport.CycleID, airport.AirportID).
		First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}
	if err := r.db.WithContext(ctx).Create(airport).Error; err != nil {
		return nil, false, err
	}
	return airport, true, nil
}

// GetAirport finds an airport by its natural identity within a cycle.
func (r *GormNavigationRepository) GetAirport(ctx context.Context, cycleID, airportID string) (*entity.Airport, error) {
	var airport entity.Airport
	err := r.db.WithContext(ctx).
		Where("cycle_id = ? AND airport_id = ?", cycleID, airportID).
		First(&airport).Error
	if err != nil {
		return nil, err
	}
	return &airport, nil
}

// UpsertNavaid creates the navaid unless its (cycle, navaid_id) identity
// already exists.
func (r *GormNavigationRepository) UpsertNavaid(ctx context.Context, navaid *entity.Navaid) (*entity.Navaid, bool, error) {
	var existing entity.Navaid
	err := r.db.WithContext(ctx).
		Where("cycle_id = ? AND navaid_id = ?", navaid.CycleID, navaid.NavaidID).
		First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}
	if err := r.db.WithContext(ctx).Create(navaid).Error; err != nil {
		return nil, false, err
	}
	return navaid, true, nil
}

// UpsertWaypoint creates the waypoint unless its (cycle, waypoint_id)
// identity already exists.
func (r *GormNavigationRepository) UpsertWaypoint(ctx context.Context, waypoint *entity.Waypoint) (*entity.Waypoint, bool, error) {
	var existing entity.Waypoint
	err := r.db.WithContext(ctx).
		Where("cycle_id = ? AND waypoint_id = ?", waypoint.CycleID, waypoint.WaypointID).
		First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}
	if err := r.db.WithContext(ctx).Create(waypoint).Error; err != nil {
		return nil, false, err
	}
	return waypoint, true, nil
}

// UpsertAirway creates the airway unless its (cycle, airway_id) identity
// already exists.
func (r *GormNavigationRepository) UpsertAirway(ctx context.Context, airway *entity.Airway) (*entity.Airway, bool, error) {
	var existing entity.Airway
	err := r.db.WithContext(ctx).
		Where("cycle_id = ? AND airway_id = ?", airway.CycleID, airway.AirwayID).
		First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}
	if err := r.db.WithContext(ctx).Create(airway).Error; err != nil {
		return nil, false, err
	}
	return airway, true, nil
}

// UpsertAirwaySegment creates the segment unless its
// (airway, sequence_number) identity already exists.
func (r *GormNavigationRepository) UpsertAirwaySegment(ctx context.Context, segment *entity.AirwaySegment) (*entity.AirwaySegment, bool, error) {
	var existing entity.AirwaySegment
	err := r.db.WithContext(ctx).
		Where("airway_row_id = ? AND sequence_number = ?", segment.AirwayRowID, segment.SequenceNumber).
		First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}
	if err := r.db.WithContext(ctx).Create(segment).Error; err != nil {
		return nil, false, err
	}
	return segment, true, nil
}

// UpsertProcedure creates the procedure unless its
// (cycle, airport, procedure_id) identity already exists.
func (r *GormNavigationRepository) UpsertProcedure(ctx context.Context, procedure *entity.Procedure) (*entity.Procedure, bool, error) {
	var existing entity.Procedure
	err := r.db.WithContext(ctx).
		Where("cycle_id = ? AND airport_row_id = ? AND procedure_id = ?",
			procedure.CycleID, procedure.AirportRowID, procedure.ProcedureID).
		First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}
	if err := r.db.WithContext(ctx).Create(procedure).Error; err != nil {
		return nil, false, err
	}
	return procedure, true, nil
}

// UpsertProcedureTransition creates the transition unless its
// (procedure, transition_id) identity already exists.
func (r *GormNavigationRepository) UpsertProcedureTransition(ctx context.Context, transition *entity.ProcedureTransition) (*entity.ProcedureTransition, bool, error) {
	var existing entity.ProcedureTransition
	err := r.db.WithContext(ctx).
		Where("procedure_row_id = ? AND transition_id = ?", transition.ProcedureRowID, transition.TransitionID).
		First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}
	if err := r.db.WithContext(ctx).Create(transition).Error; err != nil {
		return nil, false, err
	}
	return transition, true, nil
}

// UpsertProcedureLeg creates the leg unless its
// (transition, sequence_number) identity already exists.
func (r *GormNavigationRepository) UpsertProcedureLeg(ctx context.Context, leg *entity.ProcedureLeg) (*entity.ProcedureLeg, bool, error) {
	var existing entity.ProcedureLeg
	err := r.db.WithContext(ctx).
		Where("transition_row_id = ? AND sequence_number = ?", leg.TransitionRowID, leg.SequenceNumber).
		First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}
	if err := r.db.WithContext(ctx).Create(leg).Error; err != nil {
		return nil, false, err
	}
	return leg, true, nil
}
