package service

import (
	"errors"
	"fmt"
	"time"

	"teamops-backend/internal/database/models"
	apperrors "teamops-backend/internal/errors"
	"teamops-backend/internal/metrics"
	"teamops-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DashboardService computes derived metrics over attendance and work logs.
// Everything is recomputed from current rows and the wall clock per request.
type DashboardService struct {
	memberRepo     repository.MemberRepositoryInterface
	attendanceRepo repository.AttendanceRepositoryInterface
	workLogRepo    repository.WorkLogRepositoryInterface
	missionStart   time.Time
	now            func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(memberRepo repository.MemberRepositoryInterface, attendanceRepo repository.AttendanceRepositoryInterface, workLogRepo repository.WorkLogRepositoryInterface, missionStart time.Time) *DashboardService {
	return &DashboardService{
		memberRepo:     memberRepo,
		attendanceRepo: attendanceRepo,
		workLogRepo:    workLogRepo,
		missionStart:   missionStart,
		now:            time.Now,
	}
}

// WithClock overrides the wall clock, used by tests
func (s *DashboardService) WithClock(now func() time.Time) *DashboardService {
	s.now = now
	return s
}

// PersonalSummaryResponse represents one member's derived dashboard numbers
type PersonalSummaryResponse struct {
	MemberID             uuid.UUID                `json:"member_id"`
	MemberName           string                   `json:"member_name"`
	StreakDays           int                      `json:"streak_days"`
	CumulativeHours      float64                  `json:"cumulative_hours"`
	AbsenceHours         int                      `json:"absence_hours"`
	TodayHours           float64                  `json:"today_hours"`
	DoneCount            int                      `json:"done_count"`
	DistinctCategories   int                      `json:"distinct_categories"`
	CategoryDistribution []metrics.CategoryEffort `json:"category_distribution"`
}

// TeamBoardEntry represents one member's row on the team activity board
type TeamBoardEntry struct {
	MemberID     uuid.UUID            `json:"member_id"`
	MemberName   string               `json:"member_name"`
	Role         string               `json:"role"`
	CheckIn      *string              `json:"check_in"`
	CheckOut     *string              `json:"check_out"`
	Location     *models.WorkLocation `json:"location,omitempty"`
	Vibe         string               `json:"vibe,omitempty"`
	SessionHours float64              `json:"session_hours"`
	Present      bool                 `json:"present"`
}

// TeamBoardResponse represents the team activity snapshot for one date
type TeamBoardResponse struct {
	Date    string           `json:"date"`
	Entries []TeamBoardEntry `json:"entries"`
}

// PersonalSummary computes a member's streak, cumulative effort, absence debt
// and work log breakdown.
func (s *DashboardService) PersonalSummary(memberID uuid.UUID) (*PersonalSummaryResponse, error) {
	member, err := s.memberRepo.GetByID(memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	records, err := s.attendanceRepo.GetByMember(memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	logs, err := s.workLogRepo.GetByMember(memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to list work logs: %w", err)
	}

	now := s.now()
	today := metrics.LocalDateString(now)
	var todayHours float64
	for i := range records {
		if records[i].Date == today {
			todayHours = metrics.SessionHours(records[i].CheckIn, records[i].CheckOut, true, now)
			break
		}
	}

	return &PersonalSummaryResponse{
		MemberID:             member.ID,
		MemberName:           member.Name,
		StreakDays:           metrics.StreakDays(records, memberID, s.missionStart, now),
		CumulativeHours:      metrics.CumulativeEffortHours(records, memberID, now),
		AbsenceHours:         metrics.AbsenceHours(records, memberID),
		TodayHours:           todayHours,
		DoneCount:            metrics.DoneCount(logs),
		DistinctCategories:   metrics.DistinctCategories(logs),
		CategoryDistribution: metrics.CategoryDistribution(logs),
	}, nil
}

// TeamBoard joins the roster against one date's attendance. Members without a
// record for the date still appear, marked absent.
func (s *DashboardService) TeamBoard(date string) (*TeamBoardResponse, error) {
	now := s.now()
	if date == "" {
		date = metrics.LocalDateString(now)
	}
	if _, err := time.Parse(metrics.DateLayout, date); err != nil {
		return nil, apperrors.NewValidationError("date", "must be YYYY-MM-DD")
	}

	members, err := s.memberRepo.GetActive()
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	records, err := s.attendanceRepo.GetByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	byMember := make(map[uuid.UUID]*models.AttendanceRecord, len(records))
	for i := range records {
		byMember[records[i].MemberID] = &records[i]
	}

	isToday := date == metrics.LocalDateString(now)
	entries := make([]TeamBoardEntry, 0, len(members))
	for i := range members {
		member := &members[i]
		entry := TeamBoardEntry{
			MemberID:   member.ID,
			MemberName: member.Name,
			Role:       member.Role,
		}
		if record, ok := byMember[member.ID]; ok {
			location := record.Location
			entry.CheckIn = record.CheckIn
			entry.CheckOut = record.CheckOut
			entry.Location = &location
			entry.Vibe = record.Vibe
			entry.SessionHours = metrics.SessionHours(record.CheckIn, record.CheckOut, isToday, now)
			entry.Present = record.CheckIn != nil
		}
		entries = append(entries, entry)
	}

	return &TeamBoardResponse{Date: date, Entries: entries}, nil
}
