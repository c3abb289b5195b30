package persistence

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"navdb-service/internal/domain/entity"
)

// NewPostgresDB opens a GORM connection to PostgreSQL.
func NewPostgresDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the schema for all navigation entities. The
// DataCycle table must migrate first so the cycle foreign keys resolve.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.DataCycle{},
		&entity.Airport{},
		&entity.Navaid{},
		&entity.Waypoint{},
		&entity.Airway{},
		&entity.AirwaySegment{},
		&entity.Procedure{},
		&entity.ProcedureTransition{},
		&entity.ProcedureLeg{},
		&entity.ArincFile{},
	)
}
