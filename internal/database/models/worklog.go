package models

import (
	"time"

	"github.com/google/uuid"
)

// WorkLogEntry is one unit of logged work. MemberName is denormalized so that
// listings never need a roster join; MemberID stays the authoritative weak
// reference. Timestamp is an absolute date+time, unlike the attendance
// record's date-only field.
type WorkLogEntry struct {
	BaseModel
	MemberID        uuid.UUID    `json:"member_id" gorm:"type:uuid;not null;index"`
	MemberName      string       `json:"member_name" gorm:"not null;size:100"`
	TaskName        string       `json:"task_name" gorm:"not null;size:200" validate:"required,max=200"`
	Category        TaskCategory `json:"category" gorm:"type:varchar(30);not null" validate:"required"`
	Status          TaskStatus   `json:"status" gorm:"type:varchar(20);not null;default:'Not Started'"`
	DurationMinutes int          `json:"duration_minutes" gorm:"not null" validate:"required,gt=0"`
	Description     string       `json:"description" gorm:"size:500"`
	Timestamp       time.Time    `json:"timestamp" gorm:"not null;index"`
	BurnoutRisk     *BurnoutRisk `json:"burnout_risk,omitempty" gorm:"type:varchar(10)"`
	RefCode         string       `json:"ref_code" gorm:"size:20"`
}

// TableName returns the table name for WorkLogEntry
func (WorkLogEntry) TableName() string {
	return "work_log_entries"
}
