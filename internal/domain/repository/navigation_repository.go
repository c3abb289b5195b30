package repository

import (
	"context"

	"navdb-service/internal/domain/entity"
)

// NavigationRepository defines the operations the import pipeline and query
// boundary issue against the navigation store. Upserts are get-or-create:
// when the identity row already exists it is returned unchanged and the new
// attribute values are discarded.
type NavigationRepository interface {
	// InTransaction runs fn against a transactional view of the repository.
	// Any error from fn rolls the whole transaction back.
	InTransaction(ctx context.Context, fn func(tx NavigationRepository) error) error

	GetOrCreateDataCycle(ctx context.Context, cycle *entity.DataCycle) (*entity.DataCycle, bool, error)
	LatestDataCycle(ctx context.Context) (*entity.DataCycle, error)
	ListDataCycles(ctx context.Context) ([]entity.DataCycle, error)

	UpsertAirport(ctx context.Context, airport *entity.Airport) (*entity.Airport, bool, error)
	GetAirport(ctx context.Context, cycleID, airportID string) (*entity.Airport, error)
	UpsertNavaid(ctx context.Context, navaid *entity.Navaid) (*entity.Navaid, bool, error)
	UpsertWaypoint(ctx context.Context, waypoint *entity.Waypoint) (*entity.Waypoint, bool, error)
	UpsertAirway(ctx context.Context, airway *entity.Airway) (*entity.Airway, bool, error)
	UpsertAirwaySegment(ctx context.Context, segment *entity.AirwaySegment) (*entity.AirwaySegment, bool, error)
	UpsertProcedure(ctx context.Context, procedure *entity.Procedure) (*entity.Procedure, bool, error)
	UpsertProcedureTransition(ctx context.Context, transition *entity.ProcedureTransition) (*entity.ProcedureTransition, bool, error)
	UpsertProcedureLeg(ctx context.Context, leg *entity.ProcedureLeg) (*entity.ProcedureLeg, bool, error)

	ListAirports(ctx context.Context, cycleID string) ([]entity.Airport, error)
	GetAirportByID(ctx context.Context, id uint) (*entity.Airport, error)
	ListNavaids(ctx context.Context, cycleID string) ([]entity.Navaid, error)
	GetNavaidByID(ctx context.Context, id uint) (*entity.Navaid, error)
	ListWaypoints(ctx context.Context, cycleID string) ([]entity.Waypoint, error)
	GetWaypointByID(ctx context.Context, id uint) (*entity.Waypoint, error)
	ListAirways(ctx context.Context, cycleID string) ([]entity.Airway, error)
	GetAirwayByID(ctx context.Context, id uint) (*entity.Airway, error)
	ListProcedures(ctx context.Context, cycleID string) ([]entity.Procedure, error)
	GetProcedureByID(ctx context.Context, id uint) (*entity.Procedure, error)
	ProceduresForAirport(ctx context.Context, airportRowID uint) ([]entity.Procedure, error)
	TransitionsForProcedure(ctx context.Context, procedureRowID uint) ([]entity.ProcedureTransition, error)
	SegmentsForAirway(ctx context.Context, airwayRowID uint) ([]entity.AirwaySegment, error)
}
