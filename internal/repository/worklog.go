package repository

import (
	"teamops-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkLogRepository handles database operations for work log entries
type WorkLogRepository struct {
	db *gorm.DB
}

// NewWorkLogRepository creates a new work log repository
func NewWorkLogRepository(db *gorm.DB) *WorkLogRepository {
	return &WorkLogRepository{db: db}
}

// Create creates a new work log entry
func (r *WorkLogRepository) Create(entry *models.WorkLogEntry) error {
	return r.db.Create(entry).Error
}

// CreateBatch inserts generated work logs in chunks
func (r *WorkLogRepository) CreateBatch(entries []models.WorkLogEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.CreateInBatches(&entries, 200).Error
}

// GetByID retrieves a work log entry by ID
func (r *WorkLogRepository) GetByID(id uuid.UUID) (*models.WorkLogEntry, error) {
	var entry models.WorkLogEntry
	err := r.db.First(&entry, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetByMember retrieves all work log entries for a member, newest first
func (r *WorkLogRepository) GetByMember(memberID uuid.UUID) ([]models.WorkLogEntry, error) {
	var entries []models.WorkLogEntry
	err := r.db.Where("member_id = ?", memberID).Order("timestamp DESC").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// GetAll retrieves work log entries newest first with pagination
func (r *WorkLogRepository) GetAll(limit, offset int) ([]models.WorkLogEntry, int64, error) {
	var entries []models.WorkLogEntry
	var total int64

	if err := r.db.Model(&models.WorkLogEntry{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.db.Order("timestamp DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	err := query.Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

// Count returns the number of work log entries
func (r *WorkLogRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.WorkLogEntry{}).Count(&total).Error
	return total, err
}

// Update updates a work log entry
func (r *WorkLogRepository) Update(entry *models.WorkLogEntry) error {
	return r.db.Save(entry).Error
}

// Delete deletes a work log entry
func (r *WorkLogRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.WorkLogEntry{}, "id = ?", id).Error
}

// ReplaceAll swaps the entire work log table for an imported snapshot
func (r *WorkLogRepository) ReplaceAll(entries []models.WorkLogEntry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("1 = 1").Delete(&models.WorkLogEntry{}).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		return tx.CreateInBatches(&entries, 200).Error
	})
}
