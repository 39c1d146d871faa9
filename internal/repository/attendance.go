package repository

import (
	"teamops-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendanceRepository handles database operations for attendance records
type AttendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// Create creates a new attendance record
func (r *AttendanceRepository) Create(record *models.AttendanceRecord) error {
	return r.db.Create(record).Error
}

// CreateBatch inserts generated history in chunks
func (r *AttendanceRepository) CreateBatch(records []models.AttendanceRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.CreateInBatches(&records, 200).Error
}

// GetByID retrieves an attendance record by ID
func (r *AttendanceRepository) GetByID(id uuid.UUID) (*models.AttendanceRecord, error) {
	var record models.AttendanceRecord
	err := r.db.First(&record, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetByMemberAndDate retrieves a member's attendance record for a calendar date
func (r *AttendanceRepository) GetByMemberAndDate(memberID uuid.UUID, date string) (*models.AttendanceRecord, error) {
	var record models.AttendanceRecord
	err := r.db.First(&record, "member_id = ? AND date = ?", memberID, date).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetByMember retrieves all attendance records for a member, newest date first
func (r *AttendanceRepository) GetByMember(memberID uuid.UUID) ([]models.AttendanceRecord, error) {
	var records []models.AttendanceRecord
	err := r.db.Where("member_id = ?", memberID).Order("date DESC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// GetByDate retrieves every member's attendance record for a calendar date
func (r *AttendanceRepository) GetByDate(date string) ([]models.AttendanceRecord, error) {
	var records []models.AttendanceRecord
	err := r.db.Where("date = ?", date).Order("member_name ASC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// GetAll retrieves all attendance records, newest date first
func (r *AttendanceRepository) GetAll() ([]models.AttendanceRecord, error) {
	var records []models.AttendanceRecord
	err := r.db.Order("date DESC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Count returns the number of attendance records
func (r *AttendanceRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.AttendanceRecord{}).Count(&total).Error
	return total, err
}

// Update updates an attendance record
func (r *AttendanceRepository) Update(record *models.AttendanceRecord) error {
	return r.db.Save(record).Error
}

// Delete deletes an attendance record
func (r *AttendanceRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.AttendanceRecord{}, "id = ?", id).Error
}

// ReplaceAll swaps the entire attendance table for an imported snapshot
func (r *AttendanceRepository) ReplaceAll(records []models.AttendanceRecord) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("1 = 1").Delete(&models.AttendanceRecord{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		return tx.CreateInBatches(&records, 200).Error
	})
}
