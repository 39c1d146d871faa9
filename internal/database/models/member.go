package models

// TeamMember represents one roster identity. The roster is loaded at first
// boot and members can be added through the API, but never edited or deleted;
// attendance records and work logs reference members by ID only, never by
// owning association.
type TeamMember struct {
	BaseModel
	Name     string `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Role     string `json:"role" gorm:"not null;size:100" validate:"required,max=100"`
	Code     string `json:"code" gorm:"not null;size:40;uniqueIndex:idx_team_members_code_active,where:deleted_at IS NULL" validate:"required,max=40"`
	Gender   Gender `json:"gender" gorm:"type:varchar(10);not null;default:'male'"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}
