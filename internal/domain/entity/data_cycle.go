package entity

import (
	"time"
)

// CycleValidityDays is the length of one AIRAC data cycle.
const CycleValidityDays = 28

// DataCycle represents one 28-day navigation data validity period.
// Rows are immutable once created; a second file declaring the same cycle
// code reuses the existing row.
type DataCycle struct {
	CycleID       string    `gorm:"column:cycle_id;primaryKey;size:10" json:"cycle_id"`
	EffectiveDate time.Time `gorm:"column:effective_date;not null" json:"effective_date"`
	ExpiryDate    time.Time `gorm:"column:expiry_date;not null" json:"expiry_date"`
	Source        string    `gorm:"column:source;size:100" json:"source"`
}

// TableName overrides the default table name
func (DataCycle) TableName() string {
	return "data_cycles"
}
