package repository

import (
	"teamops-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// MemberRepositoryInterface defines the interface for team member repository operations
type MemberRepositoryInterface interface {
	Create(member *models.TeamMember) error
	CreateBatch(members []models.TeamMember) error
	GetByID(id uuid.UUID) (*models.TeamMember, error)
	GetByCode(code string) (*models.TeamMember, error)
	GetByName(name string) (*models.TeamMember, error)
	GetAll() ([]models.TeamMember, error)
	GetActive() ([]models.TeamMember, error)
	Count() (int64, error)
	Update(member *models.TeamMember) error
	Delete(id uuid.UUID) error
}

// AttendanceRepositoryInterface defines the interface for attendance repository operations
type AttendanceRepositoryInterface interface {
	Create(record *models.AttendanceRecord) error
	CreateBatch(records []models.AttendanceRecord) error
	GetByID(id uuid.UUID) (*models.AttendanceRecord, error)
	GetByMemberAndDate(memberID uuid.UUID, date string) (*models.AttendanceRecord, error)
	GetByMember(memberID uuid.UUID) ([]models.AttendanceRecord, error)
	GetByDate(date string) ([]models.AttendanceRecord, error)
	GetAll() ([]models.AttendanceRecord, error)
	Count() (int64, error)
	Update(record *models.AttendanceRecord) error
	Delete(id uuid.UUID) error
	ReplaceAll(records []models.AttendanceRecord) error
}

// WorkLogRepositoryInterface defines the interface for work log repository operations
type WorkLogRepositoryInterface interface {
	Create(entry *models.WorkLogEntry) error
	CreateBatch(entries []models.WorkLogEntry) error
	GetByID(id uuid.UUID) (*models.WorkLogEntry, error)
	GetByMember(memberID uuid.UUID) ([]models.WorkLogEntry, error)
	GetAll(limit, offset int) ([]models.WorkLogEntry, int64, error)
	Count() (int64, error)
	Update(entry *models.WorkLogEntry) error
	Delete(id uuid.UUID) error
	ReplaceAll(entries []models.WorkLogEntry) error
}

// AnnouncementRepositoryInterface defines the interface for announcement repository operations
type AnnouncementRepositoryInterface interface {
	Create(announcement *models.Announcement) error
	GetByID(id uuid.UUID) (*models.Announcement, error)
	GetAll() ([]models.Announcement, error)
	Update(announcement *models.Announcement) error
	IncrementReadCount(id uuid.UUID) error
	Delete(id uuid.UUID) error
}
