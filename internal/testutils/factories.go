package testutils

import (
	"time"

	"teamops-backend/internal/database/models"

	"github.com/google/uuid"
)

// MemberFactory provides methods to create test TeamMember data
type MemberFactory struct{}

// NewMemberFactory creates a new MemberFactory
func NewMemberFactory() *MemberFactory {
	return &MemberFactory{}
}

// Create creates a test TeamMember with default values
func (f *MemberFactory) Create() *models.TeamMember {
	id := uuid.New()
	// Code must be unique per member, derive from the UUID
	code := "TM-" + id.String()[:6]

	return &models.TeamMember{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:     "Romeo",
		Role:     "AI Specialist",
		Code:     code,
		Gender:   models.GenderMale,
		IsActive: true,
	}
}

// WithName sets a custom name for the member
func (f *MemberFactory) WithName(name string) *models.TeamMember {
	member := f.Create()
	member.Name = name
	return member
}

// WithRole sets a custom role for the member
func (f *MemberFactory) WithRole(role string) *models.TeamMember {
	member := f.Create()
	member.Role = role
	return member
}

// WithCode sets a fixed roster code for the member
func (f *MemberFactory) WithCode(code string) *models.TeamMember {
	member := f.Create()
	member.Code = code
	return member
}

// AttendanceFactory provides methods to create test AttendanceRecord data
type AttendanceFactory struct{}

// NewAttendanceFactory creates a new AttendanceFactory
func NewAttendanceFactory() *AttendanceFactory {
	return &AttendanceFactory{}
}

// Create creates a closed test AttendanceRecord with default values
func (f *AttendanceFactory) Create(memberID uuid.UUID) *models.AttendanceRecord {
	checkIn := "08:30 AM"
	checkOut := "05:00 PM"
	return &models.AttendanceRecord{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		MemberID:      memberID,
		MemberName:    "Romeo",
		Date:          "2026-01-12",
		CheckIn:       &checkIn,
		CheckOut:      &checkOut,
		Location:      models.WorkLocationOffice,
		Vibe:          "🚀",
		StatusMessage: "Duty logged.",
	}
}

// WithDate sets the calendar date of the record
func (f *AttendanceFactory) WithDate(memberID uuid.UUID, date string) *models.AttendanceRecord {
	record := f.Create(memberID)
	record.Date = date
	return record
}

// Open creates a record that has a check-in but no check-out yet
func (f *AttendanceFactory) Open(memberID uuid.UUID, date string) *models.AttendanceRecord {
	record := f.Create(memberID)
	record.Date = date
	record.CheckOut = nil
	return record
}

// OnLeave creates a leave-day record with no session times
func (f *AttendanceFactory) OnLeave(memberID uuid.UUID, date string) *models.AttendanceRecord {
	record := f.Create(memberID)
	record.Date = date
	record.CheckIn = nil
	record.CheckOut = nil
	record.Location = models.WorkLocationOnLeave
	return record
}

// WorkLogFactory provides methods to create test WorkLogEntry data
type WorkLogFactory struct{}

// NewWorkLogFactory creates a new WorkLogFactory
func NewWorkLogFactory() *WorkLogFactory {
	return &WorkLogFactory{}
}

// Create creates a test WorkLogEntry with default values
func (f *WorkLogFactory) Create(memberID uuid.UUID) *models.WorkLogEntry {
	return &models.WorkLogEntry{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		MemberID:        memberID,
		MemberName:      "Romeo",
		TaskName:        "Model Training - Project Tea",
		Category:        models.TaskCategoryDevelopment,
		Status:          models.TaskStatusDone,
		DurationMinutes: 90,
		Description:     "Completed work on: Model Training",
		Timestamp:       time.Date(2026, 1, 12, 10, 30, 0, 0, time.UTC),
	}
}

// WithCategory sets the task category
func (f *WorkLogFactory) WithCategory(memberID uuid.UUID, category models.TaskCategory) *models.WorkLogEntry {
	entry := f.Create(memberID)
	entry.Category = category
	return entry
}

// WithTimestamp sets the entry timestamp
func (f *WorkLogFactory) WithTimestamp(memberID uuid.UUID, ts time.Time) *models.WorkLogEntry {
	entry := f.Create(memberID)
	entry.Timestamp = ts
	return entry
}

// AnnouncementFactory provides methods to create test Announcement data
type AnnouncementFactory struct{}

// NewAnnouncementFactory creates a new AnnouncementFactory
func NewAnnouncementFactory() *AnnouncementFactory {
	return &AnnouncementFactory{}
}

// Create creates a test Announcement with default values
func (f *AnnouncementFactory) Create(authorID uuid.UUID) *models.Announcement {
	return &models.Announcement{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:      "Sprint Review",
		Content:    "Sprint review moved to Friday 10:00.",
		AuthorID:   authorID,
		AuthorName: "Romeo",
		Category:   models.AnnouncementCategoryEvent,
		Timestamp:  time.Now(),
		IsPinned:   false,
		ReadCount:  0,
	}
}

// FactorySet bundles all factories for convenience
type FactorySet struct {
	Member       *MemberFactory
	Attendance   *AttendanceFactory
	WorkLog      *WorkLogFactory
	Announcement *AnnouncementFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Member:       NewMemberFactory(),
		Attendance:   NewAttendanceFactory(),
		WorkLog:      NewWorkLogFactory(),
		Announcement: NewAnnouncementFactory(),
	}
}
