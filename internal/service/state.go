package service

import (
	"fmt"
	"time"

	"teamops-backend/internal/database/models"
	apperrors "teamops-backend/internal/errors"
	"teamops-backend/internal/repository"
)

// StateSnapshot is the whole-application state at one moment: roster,
// attendance history, work logs and announcements.
type StateSnapshot struct {
	ExportedAt    time.Time                 `json:"exported_at"`
	Members       []models.TeamMember       `json:"members"`
	Attendance    []models.AttendanceRecord `json:"attendance"`
	WorkLogs      []models.WorkLogEntry     `json:"work_logs"`
	Announcements []models.Announcement     `json:"announcements"`
}

// StateService exports and imports whole-collection snapshots. Import replaces
// collections whole rather than merging.
type StateService struct {
	memberRepo       repository.MemberRepositoryInterface
	attendanceRepo   repository.AttendanceRepositoryInterface
	workLogRepo      repository.WorkLogRepositoryInterface
	announcementRepo repository.AnnouncementRepositoryInterface
	now              func() time.Time
}

// NewStateService creates a new state service
func NewStateService(memberRepo repository.MemberRepositoryInterface, attendanceRepo repository.AttendanceRepositoryInterface, workLogRepo repository.WorkLogRepositoryInterface, announcementRepo repository.AnnouncementRepositoryInterface) *StateService {
	return &StateService{
		memberRepo:       memberRepo,
		attendanceRepo:   attendanceRepo,
		workLogRepo:      workLogRepo,
		announcementRepo: announcementRepo,
		now:              time.Now,
	}
}

// Export captures the current application state
func (s *StateService) Export() (*StateSnapshot, error) {
	members, err := s.memberRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to export members: %w", err)
	}
	attendance, err := s.attendanceRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to export attendance: %w", err)
	}
	workLogs, _, err := s.workLogRepo.GetAll(0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to export work logs: %w", err)
	}
	announcements, err := s.announcementRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to export announcements: %w", err)
	}

	return &StateSnapshot{
		ExportedAt:    s.now(),
		Members:       members,
		Attendance:    attendance,
		WorkLogs:      workLogs,
		Announcements: announcements,
	}, nil
}

// Import replaces the attendance and work log collections with the snapshot's.
// Snapshot rows must reference members that exist on this installation; the
// roster itself is not imported.
func (s *StateService) Import(snapshot *StateSnapshot) error {
	if snapshot == nil {
		return apperrors.NewValidationError("snapshot", "must not be empty")
	}

	members, err := s.memberRepo.GetAll()
	if err != nil {
		return fmt.Errorf("failed to load roster: %w", err)
	}
	known := make(map[string]bool, len(members))
	for i := range members {
		known[members[i].ID.String()] = true
	}
	for i := range snapshot.Attendance {
		if !known[snapshot.Attendance[i].MemberID.String()] {
			return apperrors.NewValidationError("attendance", fmt.Sprintf("record %d references unknown member", i))
		}
	}
	for i := range snapshot.WorkLogs {
		if !known[snapshot.WorkLogs[i].MemberID.String()] {
			return apperrors.NewValidationError("work_logs", fmt.Sprintf("entry %d references unknown member", i))
		}
	}

	if err := s.attendanceRepo.ReplaceAll(snapshot.Attendance); err != nil {
		return fmt.Errorf("failed to import attendance: %w", err)
	}
	if err := s.workLogRepo.ReplaceAll(snapshot.WorkLogs); err != nil {
		return fmt.Errorf("failed to import work logs: %w", err)
	}
	return nil
}
