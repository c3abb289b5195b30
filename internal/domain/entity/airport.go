package entity

import (
	"github.com/shopspring/decimal"
)

// Airport is one airport row, unique per (cycle, airport_id).
type Airport struct {
	ID                 uint                `gorm:"primaryKey" json:"id"`
	CycleID            string              `gorm:"column:cycle_id;size:10;not null;uniqueIndex:idx_airport_identity" json:"cycle_id"`
	Cycle              DataCycle           `gorm:"foreignKey:CycleID;constraint:OnDelete:CASCADE" json:"-"`
	AirportID          string              `gorm:"column:airport_id;size:10;not null;uniqueIndex:idx_airport_identity" json:"airport_id"`
	ICAOCode           *string             `gorm:"column:icao_code;size:4" json:"icao_code"`
	Name               *string             `gorm:"size:100" json:"name"`
	City               *string             `gorm:"size:100" json:"city"`
	State              *string             `gorm:"size:2" json:"state"`
	Country            *string             `gorm:"size:2" json:"country"`
	Latitude           decimal.NullDecimal `gorm:"type:numeric(11,8)" json:"latitude"`
	Longitude          decimal.NullDecimal `gorm:"type:numeric(11,8)" json:"longitude"`
	Elevation          *int                `json:"elevation"`
	MagneticVariation  *string             `gorm:"column:magnetic_variation;size:5" json:"magnetic_variation"`
	TransitionAltitude *int                `gorm:"column:transition_altitude" json:"transition_altitude"`
	TransitionLevel    *int                `gorm:"column:transition_level" json:"transition_level"`
	LongestRunway      *int                `gorm:"column:longest_runway" json:"longest_runway"`
}

// TableName overrides the default table name
func (Airport) TableName() string {
	return "airports"
}
