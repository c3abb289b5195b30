package entity

import (
	"fmt"
	"time"
)

// FileStatus represents the processing lifecycle state of an uploaded file.
type FileStatus string

// FileStatus values enumerate the upload processing states.
const (
	StatusPending    FileStatus = "PENDING"
	StatusProcessing FileStatus = "PROCESSING"
	StatusCompleted  FileStatus = "COMPLETED"
	StatusFailed     FileStatus = "FAILED"
)

// Transition table: from -> allowed tos. Terminal states allow nothing.
var validFileTransitions = map[FileStatus][]FileStatus{
	StatusPending:    {StatusProcessing},
	StatusProcessing: {StatusCompleted, StatusFailed},
	StatusCompleted:  {},
	StatusFailed:     {},
}

// CanTransition checks if moving between two file statuses is valid.
func CanTransition(from, to FileStatus) bool {
	for _, s := range validFileTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal returns true if the status is a final state.
func IsTerminal(status FileStatus) bool {
	return status == StatusCompleted || status == StatusFailed
}

// ArincFile is an uploaded ARINC 424 XML file record. It is the only mutable
// entity in the import pipeline.
type ArincFile struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	FileName         string     `gorm:"column:file_name;size:255" json:"file_name"`
	FilePath         string     `gorm:"column:file_path;size:512" json:"-"`
	UploadedAt       time.Time  `gorm:"column:uploaded_at;autoCreateTime" json:"uploaded_at"`
	Status           FileStatus `gorm:"column:status;size:20;default:PENDING" json:"status"`
	ProcessingErrors *string    `gorm:"column:processing_errors;type:text" json:"processing_errors"`
	CycleID          *string    `gorm:"column:cycle_id;size:10" json:"cycle_id"`
	Cycle            *DataCycle `gorm:"foreignKey:CycleID;constraint:OnDelete:SET NULL" json:"-"`
}

// TableName overrides the default table name
func (ArincFile) TableName() string {
	return "arinc_files"
}

// TransitionTo moves the file to a new status, or errors if the transition
// is not allowed from the current state.
func (f *ArincFile) TransitionTo(to FileStatus) error {
	if !CanTransition(f.Status, to) {
		return fmt.Errorf("invalid file status transition from %s to %s", f.Status, to)
	}
	f.Status = to
	return nil
}
