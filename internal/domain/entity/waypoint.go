package entity

import (
	"github.com/shopspring/decimal"
)

// WaypointType enumerates the supported waypoint kinds.
type WaypointType string

const (
	WaypointEnroute  WaypointType = "ENROUTE"
	WaypointTerminal WaypointType = "TERMINAL"
	WaypointIAF      WaypointType = "IAF"
	WaypointIF       WaypointType = "IF"
	WaypointFAF      WaypointType = "FAF"
	WaypointMAP      WaypointType = "MAP"
)

// Waypoint is one named fix row, unique per (cycle, waypoint_id).
type Waypoint struct {
	ID                     uint                `gorm:"primaryKey" json:"id"`
	CycleID                string              `gorm:"column:cycle_id;size:10;not null;uniqueIndex:idx_waypoint_identity" json:"cycle_id"`
	Cycle                  DataCycle           `gorm:"foreignKey:CycleID;constraint:OnDelete:CASCADE" json:"-"`
	WaypointID             string              `gorm:"column:waypoint_id;size:10;not null;uniqueIndex:idx_waypoint_identity" json:"waypoint_id"`
	Name                   *string             `gorm:"size:100" json:"name"`
	WaypointType           WaypointType        `gorm:"column:waypoint_type;size:10" json:"waypoint_type"`
	Latitude               decimal.NullDecimal `gorm:"type:numeric(11,8)" json:"latitude"`
	Longitude              decimal.NullDecimal `gorm:"type:numeric(11,8)" json:"longitude"`
	AirspaceClassification *string             `gorm:"column:airspace_classification;size:1" json:"airspace_classification"`
}

// TableName overrides the default table name
func (Waypoint) TableName() string {
	return "waypoints"
}
