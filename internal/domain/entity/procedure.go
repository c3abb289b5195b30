package entity

import (
	"github.com/shopspring/decimal"
)

// ProcedureType enumerates the terminal procedure kinds.
type ProcedureType string

const (
	ProcedureSID      ProcedureType = "SID"
	ProcedureSTAR     ProcedureType = "STAR"
	ProcedureApproach ProcedureType = "APPROACH"
)

// Procedure is one terminal procedure row, unique per
// (cycle, airport, procedure_id). The airport reference must resolve within
// the same cycle before any transition or leg is written.
type Procedure struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	CycleID       string        `gorm:"column:cycle_id;size:10;not null;uniqueIndex:idx_procedure_identity" json:"cycle_id"`
	Cycle         DataCycle     `gorm:"foreignKey:CycleID;constraint:OnDelete:CASCADE" json:"-"`
	AirportRowID  uint          `gorm:"column:airport_row_id;not null;uniqueIndex:idx_procedure_identity" json:"airport_row_id"`
	Airport       Airport       `gorm:"foreignKey:AirportRowID;constraint:OnDelete:CASCADE" json:"-"`
	ProcedureID   string        `gorm:"column:procedure_id;size:10;not null;uniqueIndex:idx_procedure_identity" json:"procedure_id"`
	ProcedureType ProcedureType `gorm:"column:procedure_type;size:10" json:"procedure_type"`
}

// TableName overrides the default table name
func (Procedure) TableName() string {
	return "procedures"
}

// ProcedureTransition is one named sub-path of a procedure, unique per
// (procedure, transition_id).
type ProcedureTransition struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	ProcedureRowID uint           `gorm:"column:procedure_row_id;not null;uniqueIndex:idx_transition_identity" json:"procedure_row_id"`
	Procedure      Procedure      `gorm:"foreignKey:ProcedureRowID;constraint:OnDelete:CASCADE" json:"-"`
	TransitionID   string         `gorm:"column:transition_id;size:10;uniqueIndex:idx_transition_identity" json:"transition_id"`
	Legs           []ProcedureLeg `gorm:"foreignKey:TransitionRowID" json:"legs,omitempty"`
}

// TableName overrides the default table name
func (ProcedureTransition) TableName() string {
	return "procedure_transitions"
}

// ProcedureLeg is one flight-path segment within a transition, unique per
// (transition, sequence_number).
type ProcedureLeg struct {
	ID                 uint                `gorm:"primaryKey" json:"id"`
	TransitionRowID    uint                `gorm:"column:transition_row_id;not null;uniqueIndex:idx_leg_identity" json:"transition_row_id"`
	SequenceNumber     int                 `gorm:"column:sequence_number;not null;uniqueIndex:idx_leg_identity" json:"sequence_number"`
	WaypointIdentifier string              `gorm:"column:waypoint_identifier;size:10" json:"waypoint_identifier"`
	WaypointType       *string             `gorm:"column:waypoint_type;size:10" json:"waypoint_type"`
	Latitude           decimal.NullDecimal `gorm:"type:numeric(11,8)" json:"latitude"`
	Longitude          decimal.NullDecimal `gorm:"type:numeric(11,8)" json:"longitude"`
	AltitudeConstraint *string             `gorm:"column:altitude_constraint;size:50" json:"altitude_constraint"`
	SpeedConstraint    *string             `gorm:"column:speed_constraint;size:50" json:"speed_constraint"`
	Course             *int                `json:"course"`
	Distance           decimal.NullDecimal `gorm:"type:numeric(7,2)" json:"distance"`
	LegType            *string             `gorm:"column:leg_type;size:10" json:"leg_type"`
}

// TableName overrides the default table name
func (ProcedureLeg) TableName() string {
	return "procedure_legs"
}
