package entity

import (
	"github.com/shopspring/decimal"
)

// NavaidType enumerates the supported navaid kinds.
type NavaidType string

const (
	NavaidVOR    NavaidType = "VOR"
	NavaidDME    NavaidType = "DME"
	NavaidVORDME NavaidType = "VOR/DME"
	NavaidVORTAC NavaidType = "VORTAC"
	NavaidTACAN  NavaidType = "TACAN"
	NavaidNDB    NavaidType = "NDB"
	NavaidNDBDME NavaidType = "NDB/DME"
	NavaidLOC    NavaidType = "LOC"
	NavaidGP     NavaidType = "GP"
	NavaidTCN    NavaidType = "TCN"
)

// Navaid is one radio navigation aid row, unique per (cycle, navaid_id).
// The optional DME sub-position covers co-located DME equipment offset from
// the main antenna.
type Navaid struct {
	ID                uint                `gorm:"primaryKey" json:"id"`
	CycleID           string              `gorm:"column:cycle_id;size:10;not null;uniqueIndex:idx_navaid_identity" json:"cycle_id"`
	Cycle             DataCycle           `gorm:"foreignKey:CycleID;constraint:OnDelete:CASCADE" json:"-"`
	NavaidID          string              `gorm:"column:navaid_id;size:10;not null;uniqueIndex:idx_navaid_identity" json:"navaid_id"`
	Name              *string             `gorm:"size:100" json:"name"`
	NavaidType        NavaidType          `gorm:"column:navaid_type;size:10" json:"navaid_type"`
	Frequency         decimal.NullDecimal `gorm:"type:numeric(7,2)" json:"frequency"`
	Latitude          decimal.NullDecimal `gorm:"type:numeric(11,8)" json:"latitude"`
	Longitude         decimal.NullDecimal `gorm:"type:numeric(11,8)" json:"longitude"`
	Elevation         *int                `json:"elevation"`
	MagneticVariation *string             `gorm:"column:magnetic_variation;size:5" json:"magnetic_variation"`
	DMELatitude       decimal.NullDecimal `gorm:"column:dme_latitude;type:numeric(11,8)" json:"dme_latitude"`
	DMELongitude      decimal.NullDecimal `gorm:"column:dme_longitude;type:numeric(11,8)" json:"dme_longitude"`
	DMEElevation      *int                `gorm:"column:dme_elevation" json:"dme_elevation"`
	ServiceVolume     *string             `gorm:"column:service_volume;size:10" json:"service_volume"`
}

// TableName overrides the default table name
func (Navaid) TableName() string {
	return "navaids"
}
