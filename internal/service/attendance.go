package service

import (
	"errors"
	"fmt"
	"time"

	"teamops-backend/internal/database/models"
	apperrors "teamops-backend/internal/errors"
	"teamops-backend/internal/metrics"
	"teamops-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClockLayout renders times the way attendance rows store them ("08:05 AM").
const ClockLayout = "03:04 PM"

// AttendanceService handles business logic for attendance sessions
type AttendanceService struct {
	repo       repository.AttendanceRepositoryInterface
	memberRepo repository.MemberRepositoryInterface
	validator  *validator.Validate
	now        func() time.Time
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(repo repository.AttendanceRepositoryInterface, memberRepo repository.MemberRepositoryInterface, validator *validator.Validate) *AttendanceService {
	return &AttendanceService{
		repo:       repo,
		memberRepo: memberRepo,
		validator:  validator,
		now:        time.Now,
	}
}

// WithClock overrides the wall clock, used by tests
func (s *AttendanceService) WithClock(now func() time.Time) *AttendanceService {
	s.now = now
	return s
}

// CheckInRequest represents the request to open today's session
type CheckInRequest struct {
	Location      models.WorkLocation `json:"location" validate:"required"`
	Vibe          string              `json:"vibe" validate:"max=16"`
	StatusMessage string              `json:"status_message" validate:"max=200"`
}

// AttendanceResponse represents the response for attendance operations
type AttendanceResponse struct {
	ID            uuid.UUID           `json:"id"`
	MemberID      uuid.UUID           `json:"member_id"`
	MemberName    string              `json:"member_name"`
	Date          string              `json:"date"`
	CheckIn       *string             `json:"check_in"`
	CheckOut      *string             `json:"check_out"`
	Location      models.WorkLocation `json:"location"`
	Vibe          string              `json:"vibe,omitempty"`
	StatusMessage string              `json:"status_message,omitempty"`
	SessionHours  float64             `json:"session_hours"`
}

// CheckIn opens today's session for a member. A member gets at most one
// record per calendar date.
func (s *AttendanceService) CheckIn(memberID uuid.UUID, req *CheckInRequest) (*AttendanceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Location.IsValid() {
		return nil, apperrors.ErrInvalidLocation
	}

	member, err := s.memberRepo.GetByID(memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	now := s.now()
	today := metrics.LocalDateString(now)

	existing, err := s.repo.GetByMemberAndDate(memberID, today)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing record: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrAlreadyCheckedIn
	}

	record := &models.AttendanceRecord{
		MemberID:      member.ID,
		MemberName:    member.Name,
		Date:          today,
		Location:      req.Location,
		Vibe:          req.Vibe,
		StatusMessage: req.StatusMessage,
	}
	if req.Location != models.WorkLocationOnLeave {
		checkIn := now.Format(ClockLayout)
		record.CheckIn = &checkIn
	}

	if err := s.repo.Create(record); err != nil {
		return nil, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return s.toResponse(record, now), nil
}

// CheckOut closes today's open session for a member
func (s *AttendanceService) CheckOut(memberID uuid.UUID) (*AttendanceResponse, error) {
	now := s.now()
	today := metrics.LocalDateString(now)

	record, err := s.repo.GetByMemberAndDate(memberID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}
	if record.CheckOut != nil {
		return nil, apperrors.ErrSessionAlreadyClosed
	}

	checkOut := now.Format(ClockLayout)
	record.CheckOut = &checkOut
	if err := s.repo.Update(record); err != nil {
		return nil, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return s.toResponse(record, now), nil
}

// GetToday retrieves a member's record for today, if any
func (s *AttendanceService) GetToday(memberID uuid.UUID) (*AttendanceResponse, error) {
	now := s.now()
	record, err := s.repo.GetByMemberAndDate(memberID, metrics.LocalDateString(now))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}
	return s.toResponse(record, now), nil
}

// History retrieves a member's full attendance history, newest first
func (s *AttendanceService) History(memberID uuid.UUID) ([]AttendanceResponse, error) {
	records, err := s.repo.GetByMember(memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return s.toResponses(records), nil
}

// Board retrieves every member's record for one calendar date
func (s *AttendanceService) Board(date string) ([]AttendanceResponse, error) {
	if _, err := time.Parse(metrics.DateLayout, date); err != nil {
		return nil, apperrors.NewValidationError("date", "must be YYYY-MM-DD")
	}
	records, err := s.repo.GetByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return s.toResponses(records), nil
}

// List retrieves all attendance records
func (s *AttendanceService) List() ([]AttendanceResponse, error) {
	records, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return s.toResponses(records), nil
}

func (s *AttendanceService) toResponses(records []models.AttendanceRecord) []AttendanceResponse {
	now := s.now()
	responses := make([]AttendanceResponse, 0, len(records))
	for i := range records {
		responses = append(responses, *s.toResponse(&records[i], now))
	}
	return responses
}

func (s *AttendanceService) toResponse(record *models.AttendanceRecord, now time.Time) *AttendanceResponse {
	isToday := record.Date == metrics.LocalDateString(now)
	return &AttendanceResponse{
		ID:            record.ID,
		MemberID:      record.MemberID,
		MemberName:    record.MemberName,
		Date:          record.Date,
		CheckIn:       record.CheckIn,
		CheckOut:      record.CheckOut,
		Location:      record.Location,
		Vibe:          record.Vibe,
		StatusMessage: record.StatusMessage,
		SessionHours:  metrics.SessionHours(record.CheckIn, record.CheckOut, isToday, now),
	}
}
