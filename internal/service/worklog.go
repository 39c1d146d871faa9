package service

import (
	"errors"
	"fmt"
	"time"

	"teamops-backend/internal/database/models"
	apperrors "teamops-backend/internal/errors"
	"teamops-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkLogService handles business logic for work log entries
type WorkLogService struct {
	repo       repository.WorkLogRepositoryInterface
	memberRepo repository.MemberRepositoryInterface
	validator  *validator.Validate
	now        func() time.Time
}

// NewWorkLogService creates a new work log service
func NewWorkLogService(repo repository.WorkLogRepositoryInterface, memberRepo repository.MemberRepositoryInterface, validator *validator.Validate) *WorkLogService {
	return &WorkLogService{
		repo:       repo,
		memberRepo: memberRepo,
		validator:  validator,
		now:        time.Now,
	}
}

// WithClock overrides the wall clock, used by tests
func (s *WorkLogService) WithClock(now func() time.Time) *WorkLogService {
	s.now = now
	return s
}

// CreateWorkLogRequest represents the request to log a task
type CreateWorkLogRequest struct {
	TaskName        string              `json:"task_name" validate:"required,min=1,max=200"`
	Category        models.TaskCategory `json:"category" validate:"required"`
	Status          models.TaskStatus   `json:"status" validate:"required"`
	DurationMinutes int                 `json:"duration_minutes" validate:"required,gt=0"`
	Description     string              `json:"description" validate:"max=500"`
}

// UpdateWorkLogRequest represents the request to edit a logged task
type UpdateWorkLogRequest struct {
	TaskName        string               `json:"task_name" validate:"omitempty,min=1,max=200"`
	Category        *models.TaskCategory `json:"category,omitempty"`
	Status          *models.TaskStatus   `json:"status,omitempty"`
	DurationMinutes *int                 `json:"duration_minutes,omitempty" validate:"omitempty,gt=0"`
	Description     *string              `json:"description,omitempty"`
}

// WorkLogResponse represents the response for work log operations
type WorkLogResponse struct {
	ID              uuid.UUID           `json:"id"`
	MemberID        uuid.UUID           `json:"member_id"`
	MemberName      string              `json:"member_name"`
	TaskName        string              `json:"task_name"`
	Category        models.TaskCategory `json:"category"`
	Status          models.TaskStatus   `json:"status"`
	DurationMinutes int                 `json:"duration_minutes"`
	Description     string              `json:"description,omitempty"`
	Timestamp       time.Time           `json:"timestamp"`
	BurnoutRisk     *models.BurnoutRisk `json:"burnout_risk,omitempty"`
}

// WorkLogListResponse represents a paginated work log listing
type WorkLogListResponse struct {
	Entries []WorkLogResponse `json:"entries"`
	Total   int64             `json:"total"`
}

// Create logs a task for a member
func (s *WorkLogService) Create(memberID uuid.UUID, req *CreateWorkLogRequest) (*WorkLogResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Category.IsValid() {
		return nil, apperrors.ErrInvalidCategory
	}
	if !req.Status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	member, err := s.memberRepo.GetByID(memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	entry := &models.WorkLogEntry{
		MemberID:        member.ID,
		MemberName:      member.Name,
		TaskName:        req.TaskName,
		Category:        req.Category,
		Status:          req.Status,
		DurationMinutes: req.DurationMinutes,
		Description:     req.Description,
		Timestamp:       s.now(),
	}
	if err := s.repo.Create(entry); err != nil {
		return nil, fmt.Errorf("failed to create work log entry: %w", err)
	}

	return toWorkLogResponse(entry), nil
}

// CreateFromParsed persists entries produced by the natural-language parser.
// Parsed tasks land as completed work.
func (s *WorkLogService) CreateFromParsed(memberID uuid.UUID, parsed []ParsedTask) ([]WorkLogResponse, error) {
	member, err := s.memberRepo.GetByID(memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	now := s.now()
	entries := make([]models.WorkLogEntry, 0, len(parsed))
	for _, task := range parsed {
		category := task.Category
		if !category.IsValid() {
			category = models.TaskCategoryDevelopment
		}
		duration := task.DurationMinutes
		if duration <= 0 {
			duration = 60
		}
		entries = append(entries, models.WorkLogEntry{
			MemberID:        member.ID,
			MemberName:      member.Name,
			TaskName:        task.TaskName,
			Category:        category,
			Status:          models.TaskStatusDone,
			DurationMinutes: duration,
			Description:     task.Description,
			Timestamp:       now,
		})
	}
	if err := s.repo.CreateBatch(entries); err != nil {
		return nil, fmt.Errorf("failed to create work log entries: %w", err)
	}

	responses := make([]WorkLogResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, *toWorkLogResponse(&entries[i]))
	}
	return responses, nil
}

// Update edits a logged task
func (s *WorkLogService) Update(id uuid.UUID, req *UpdateWorkLogRequest) (*WorkLogResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	entry, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkLogNotFound
		}
		return nil, fmt.Errorf("failed to get work log entry: %w", err)
	}

	if req.TaskName != "" {
		entry.TaskName = req.TaskName
	}
	if req.Category != nil {
		if !req.Category.IsValid() {
			return nil, apperrors.ErrInvalidCategory
		}
		entry.Category = *req.Category
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		entry.Status = *req.Status
	}
	if req.DurationMinutes != nil {
		entry.DurationMinutes = *req.DurationMinutes
	}
	if req.Description != nil {
		entry.Description = *req.Description
	}

	if err := s.repo.Update(entry); err != nil {
		return nil, fmt.Errorf("failed to update work log entry: %w", err)
	}
	return toWorkLogResponse(entry), nil
}

// ToggleStatus flips an entry between Done and In Progress
func (s *WorkLogService) ToggleStatus(id uuid.UUID) (*WorkLogResponse, error) {
	entry, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkLogNotFound
		}
		return nil, fmt.Errorf("failed to get work log entry: %w", err)
	}

	if entry.Status == models.TaskStatusDone {
		entry.Status = models.TaskStatusInProgress
	} else {
		entry.Status = models.TaskStatusDone
	}

	if err := s.repo.Update(entry); err != nil {
		return nil, fmt.Errorf("failed to update work log entry: %w", err)
	}
	return toWorkLogResponse(entry), nil
}

// Delete removes a logged task
func (s *WorkLogService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrWorkLogNotFound
		}
		return fmt.Errorf("failed to get work log entry: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete work log entry: %w", err)
	}
	return nil
}

// ListByMember retrieves a member's entries, newest first
func (s *WorkLogService) ListByMember(memberID uuid.UUID) ([]WorkLogResponse, error) {
	entries, err := s.repo.GetByMember(memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to list work log entries: %w", err)
	}
	responses := make([]WorkLogResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, *toWorkLogResponse(&entries[i]))
	}
	return responses, nil
}

// List retrieves all entries newest first with optional pagination
func (s *WorkLogService) List(limit, offset int) (*WorkLogListResponse, error) {
	entries, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list work log entries: %w", err)
	}
	responses := make([]WorkLogResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, *toWorkLogResponse(&entries[i]))
	}
	return &WorkLogListResponse{Entries: responses, Total: total}, nil
}

func toWorkLogResponse(entry *models.WorkLogEntry) *WorkLogResponse {
	return &WorkLogResponse{
		ID:              entry.ID,
		MemberID:        entry.MemberID,
		MemberName:      entry.MemberName,
		TaskName:        entry.TaskName,
		Category:        entry.Category,
		Status:          entry.Status,
		DurationMinutes: entry.DurationMinutes,
		Description:     entry.Description,
		Timestamp:       entry.Timestamp,
		BurnoutRisk:     entry.BurnoutRisk,
	}
}
