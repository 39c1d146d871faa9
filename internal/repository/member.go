package repository

import (
	"teamops-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberRepository handles database operations for team members
type MemberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// Create creates a new team member
func (r *MemberRepository) Create(member *models.TeamMember) error {
	return r.db.Create(member).Error
}

// CreateBatch inserts a full roster in one statement
func (r *MemberRepository) CreateBatch(members []models.TeamMember) error {
	if len(members) == 0 {
		return nil
	}
	return r.db.Create(&members).Error
}

// GetByID retrieves a team member by ID
func (r *MemberRepository) GetByID(id uuid.UUID) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByCode retrieves a team member by roster code
func (r *MemberRepository) GetByCode(code string) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.First(&member, "code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByName retrieves a team member by display name (case-insensitive)
func (r *MemberRepository) GetByName(name string) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.First(&member, "LOWER(name) = LOWER(?)", name).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetAll retrieves every team member ordered by name
func (r *MemberRepository) GetAll() ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := r.db.Order("name ASC").Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// GetActive retrieves team members that are currently active
func (r *MemberRepository) GetActive() ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := r.db.Where("is_active = ?", true).Order("name ASC").Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// Count returns the number of team members
func (r *MemberRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.TeamMember{}).Count(&total).Error
	return total, err
}

// Update updates a team member
func (r *MemberRepository) Update(member *models.TeamMember) error {
	return r.db.Save(member).Error
}

// Delete deletes a team member
func (r *MemberRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.TeamMember{}, "id = ?", id).Error
}
