package repository

import (
	"teamops-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnnouncementRepository handles database operations for announcements
type AnnouncementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository creates a new announcement repository
func NewAnnouncementRepository(db *gorm.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

// Create creates a new announcement
func (r *AnnouncementRepository) Create(announcement *models.Announcement) error {
	return r.db.Create(announcement).Error
}

// GetByID retrieves an announcement by ID
func (r *AnnouncementRepository) GetByID(id uuid.UUID) (*models.Announcement, error) {
	var announcement models.Announcement
	err := r.db.First(&announcement, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &announcement, nil
}

// GetAll retrieves announcements, pinned first, then newest first
func (r *AnnouncementRepository) GetAll() ([]models.Announcement, error) {
	var announcements []models.Announcement
	err := r.db.Order("is_pinned DESC, timestamp DESC").Find(&announcements).Error
	if err != nil {
		return nil, err
	}
	return announcements, nil
}

// Update updates an announcement
func (r *AnnouncementRepository) Update(announcement *models.Announcement) error {
	return r.db.Save(announcement).Error
}

// IncrementReadCount bumps the read counter atomically
func (r *AnnouncementRepository) IncrementReadCount(id uuid.UUID) error {
	result := r.db.Model(&models.Announcement{}).
		Where("id = ?", id).
		UpdateColumn("read_count", gorm.Expr("read_count + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete deletes an announcement
func (r *AnnouncementRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Announcement{}, "id = ?", id).Error
}
