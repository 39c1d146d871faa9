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

// AnnouncementService handles business logic for team announcements
type AnnouncementService struct {
	repo       repository.AnnouncementRepositoryInterface
	memberRepo repository.MemberRepositoryInterface
	validator  *validator.Validate
	now        func() time.Time
}

// NewAnnouncementService creates a new announcement service
func NewAnnouncementService(repo repository.AnnouncementRepositoryInterface, memberRepo repository.MemberRepositoryInterface, validator *validator.Validate) *AnnouncementService {
	return &AnnouncementService{
		repo:       repo,
		memberRepo: memberRepo,
		validator:  validator,
		now:        time.Now,
	}
}

// CreateAnnouncementRequest represents the request to post an announcement
type CreateAnnouncementRequest struct {
	Title    string                      `json:"title" validate:"required,min=1,max=200"`
	Content  string                      `json:"content" validate:"required,min=1"`
	Category models.AnnouncementCategory `json:"category" validate:"required"`
	IsPinned bool                        `json:"is_pinned"`
}

// UpdateAnnouncementRequest represents the request to edit an announcement
type UpdateAnnouncementRequest struct {
	Title    string                       `json:"title" validate:"omitempty,min=1,max=200"`
	Content  string                       `json:"content" validate:"omitempty,min=1"`
	Category *models.AnnouncementCategory `json:"category,omitempty"`
}

// AnnouncementResponse represents the response for announcement operations
type AnnouncementResponse struct {
	ID         uuid.UUID                   `json:"id"`
	Title      string                      `json:"title"`
	Content    string                      `json:"content"`
	AuthorID   uuid.UUID                   `json:"author_id"`
	AuthorName string                      `json:"author_name"`
	Category   models.AnnouncementCategory `json:"category"`
	Timestamp  time.Time                   `json:"timestamp"`
	IsPinned   bool                        `json:"is_pinned"`
	ReadCount  int                         `json:"read_count"`
}

// Create posts an announcement authored by the given member
func (s *AnnouncementService) Create(authorID uuid.UUID, req *CreateAnnouncementRequest) (*AnnouncementResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Category.IsValid() {
		return nil, apperrors.NewValidationError("category", "unknown announcement category")
	}

	author, err := s.memberRepo.GetByID(authorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get author: %w", err)
	}

	announcement := &models.Announcement{
		Title:      req.Title,
		Content:    req.Content,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Category:   req.Category,
		Timestamp:  s.now(),
		IsPinned:   req.IsPinned,
	}
	if err := s.repo.Create(announcement); err != nil {
		return nil, fmt.Errorf("failed to create announcement: %w", err)
	}
	return toAnnouncementResponse(announcement), nil
}

// GetByID retrieves an announcement by ID
func (s *AnnouncementService) GetByID(id uuid.UUID) (*AnnouncementResponse, error) {
	announcement, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAnnouncementNotFound
		}
		return nil, fmt.Errorf("failed to get announcement: %w", err)
	}
	return toAnnouncementResponse(announcement), nil
}

// List retrieves announcements, pinned first then newest first
func (s *AnnouncementService) List() ([]AnnouncementResponse, error) {
	announcements, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	responses := make([]AnnouncementResponse, 0, len(announcements))
	for i := range announcements {
		responses = append(responses, *toAnnouncementResponse(&announcements[i]))
	}
	return responses, nil
}

// Update edits an announcement
func (s *AnnouncementService) Update(id uuid.UUID, req *UpdateAnnouncementRequest) (*AnnouncementResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	announcement, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAnnouncementNotFound
		}
		return nil, fmt.Errorf("failed to get announcement: %w", err)
	}

	if req.Title != "" {
		announcement.Title = req.Title
	}
	if req.Content != "" {
		announcement.Content = req.Content
	}
	if req.Category != nil {
		if !req.Category.IsValid() {
			return nil, apperrors.NewValidationError("category", "unknown announcement category")
		}
		announcement.Category = *req.Category
	}

	if err := s.repo.Update(announcement); err != nil {
		return nil, fmt.Errorf("failed to update announcement: %w", err)
	}
	return toAnnouncementResponse(announcement), nil
}

// TogglePin flips the pinned flag
func (s *AnnouncementService) TogglePin(id uuid.UUID) (*AnnouncementResponse, error) {
	announcement, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAnnouncementNotFound
		}
		return nil, fmt.Errorf("failed to get announcement: %w", err)
	}

	announcement.IsPinned = !announcement.IsPinned
	if err := s.repo.Update(announcement); err != nil {
		return nil, fmt.Errorf("failed to update announcement: %w", err)
	}
	return toAnnouncementResponse(announcement), nil
}

// MarkRead bumps the read counter
func (s *AnnouncementService) MarkRead(id uuid.UUID) error {
	if err := s.repo.IncrementReadCount(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAnnouncementNotFound
		}
		return fmt.Errorf("failed to mark announcement read: %w", err)
	}
	return nil
}

// Delete removes an announcement
func (s *AnnouncementService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAnnouncementNotFound
		}
		return fmt.Errorf("failed to get announcement: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete announcement: %w", err)
	}
	return nil
}

func toAnnouncementResponse(a *models.Announcement) *AnnouncementResponse {
	return &AnnouncementResponse{
		ID:         a.ID,
		Title:      a.Title,
		Content:    a.Content,
		AuthorID:   a.AuthorID,
		AuthorName: a.AuthorName,
		Category:   a.Category,
		Timestamp:  a.Timestamp,
		IsPinned:   a.IsPinned,
		ReadCount:  a.ReadCount,
	}
}
