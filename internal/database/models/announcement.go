package models

import (
	"time"

	"github.com/google/uuid"
)

// Announcement is a team broadcast. AuthorName is denormalized from the
// roster at creation time.
type Announcement struct {
	BaseModel
	Title      string               `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Content    string               `json:"content" gorm:"not null;size:2000" validate:"required,max=2000"`
	AuthorID   uuid.UUID            `json:"author_id" gorm:"type:uuid;not null;index"`
	AuthorName string               `json:"author_name" gorm:"not null;size:100"`
	Category   AnnouncementCategory `json:"category" gorm:"type:varchar(20);not null;default:'internal'"`
	Timestamp  time.Time            `json:"timestamp" gorm:"not null;index"`
	IsPinned   bool                 `json:"is_pinned" gorm:"default:false"`
	ReadCount  int                  `json:"read_count" gorm:"default:0"`
}

// TableName returns the table name for Announcement
func (Announcement) TableName() string {
	return "announcements"
}
