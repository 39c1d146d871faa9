package models

import "github.com/google/uuid"

// AttendanceRecord is one check-in/out session for one member on one calendar
// day. Date is a timezone-naive local-date string, and check-in/out are
// "HH:MM AM|PM" time-of-day strings rather than timestamps; the metrics engine
// owns parsing them. Consumers assume at most one record per (member, date);
// the service layer enforces that on check-in, the schema does not.
type AttendanceRecord struct {
	BaseModel
	MemberID      uuid.UUID    `json:"member_id" gorm:"type:uuid;not null;index:idx_attendance_member_date"`
	MemberName    string       `json:"member_name" gorm:"not null;size:100"`
	Date          string       `json:"date" gorm:"not null;size:10;index:idx_attendance_member_date"`
	CheckIn       *string      `json:"check_in" gorm:"size:10"`
	CheckOut      *string      `json:"check_out" gorm:"size:10"`
	Location      WorkLocation `json:"location" gorm:"type:varchar(20);not null;default:'Office'"`
	Vibe          string       `json:"vibe" gorm:"size:20"`
	StatusMessage string       `json:"status_message" gorm:"size:200"`
	RefCode       string       `json:"ref_code" gorm:"size:20"` // readable id, monotonic within a generation pass
}

// TableName returns the table name for AttendanceRecord
func (AttendanceRecord) TableName() string {
	return "attendance_records"
}

// IsOpen reports whether the session is still missing a check-out
func (r *AttendanceRecord) IsOpen() bool {
	return r.CheckOut == nil
}
