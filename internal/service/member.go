package service

import (
	"errors"
	"fmt"

	"teamops-backend/internal/database/models"
	apperrors "teamops-backend/internal/errors"
	"teamops-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberService handles business logic for the team roster
type MemberService struct {
	repo      repository.MemberRepositoryInterface
	validator *validator.Validate
}

// NewMemberService creates a new member service
func NewMemberService(repo repository.MemberRepositoryInterface, validator *validator.Validate) *MemberService {
	return &MemberService{
		repo:      repo,
		validator: validator,
	}
}

// CreateMemberRequest represents the request to add a roster member
type CreateMemberRequest struct {
	Name   string        `json:"name" validate:"required,min=1,max=100"`
	Role   string        `json:"role" validate:"required,max=100"`
	Code   string        `json:"code" validate:"required,min=2,max=20"`
	Gender models.Gender `json:"gender" validate:"omitempty,oneof=male female"`
}

// MemberResponse represents the response for member operations
type MemberResponse struct {
	ID       uuid.UUID     `json:"id"`
	Name     string        `json:"name"`
	Role     string        `json:"role"`
	Code     string        `json:"code"`
	Gender   models.Gender `json:"gender"`
	IsActive bool          `json:"is_active"`
}

// Create adds a member to the roster
func (s *MemberService) Create(req *CreateMemberRequest) (*MemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByCode(req.Code)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing member: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrMemberCodeExists
	}

	gender := req.Gender
	if gender == "" {
		gender = models.GenderMale
	}

	member := &models.TeamMember{
		Name:     req.Name,
		Role:     req.Role,
		Code:     req.Code,
		Gender:   gender,
		IsActive: true,
	}
	if err := s.repo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	return toMemberResponse(member), nil
}

// GetByID retrieves a member by ID
func (s *MemberService) GetByID(id uuid.UUID) (*MemberResponse, error) {
	member, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return toMemberResponse(member), nil
}

// GetByCode retrieves a member by roster code
func (s *MemberService) GetByCode(code string) (*MemberResponse, error) {
	member, err := s.repo.GetByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return toMemberResponse(member), nil
}

// List retrieves the full roster
func (s *MemberService) List() ([]MemberResponse, error) {
	members, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	responses := make([]MemberResponse, 0, len(members))
	for i := range members {
		responses = append(responses, *toMemberResponse(&members[i]))
	}
	return responses, nil
}

// ListActive retrieves only active roster members
func (s *MemberService) ListActive() ([]MemberResponse, error) {
	members, err := s.repo.GetActive()
	if err != nil {
		return nil, fmt.Errorf("failed to list active members: %w", err)
	}
	responses := make([]MemberResponse, 0, len(members))
	for i := range members {
		responses = append(responses, *toMemberResponse(&members[i]))
	}
	return responses, nil
}

func toMemberResponse(member *models.TeamMember) *MemberResponse {
	return &MemberResponse{
		ID:       member.ID,
		Name:     member.Name,
		Role:     member.Role,
		Code:     member.Code,
		Gender:   member.Gender,
		IsActive: member.IsActive,
	}
}
