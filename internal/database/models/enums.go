package models

// TaskCategory classifies a work log entry
type TaskCategory string

const (
	TaskCategoryDevelopment   TaskCategory = "Development"
	TaskCategoryTesting       TaskCategory = "Testing"
	TaskCategoryDocumentation TaskCategory = "Documentation"
	TaskCategoryDesign        TaskCategory = "Design"
	TaskCategoryMeetings      TaskCategory = "Meetings"
	TaskCategoryResearch      TaskCategory = "Research"
	TaskCategoryAdmin         TaskCategory = "Administrative"
)

// AllTaskCategories lists every valid category, in display order
var AllTaskCategories = []TaskCategory{
	TaskCategoryDevelopment,
	TaskCategoryTesting,
	TaskCategoryDocumentation,
	TaskCategoryDesign,
	TaskCategoryMeetings,
	TaskCategoryResearch,
	TaskCategoryAdmin,
}

// IsValid checks if the TaskCategory is valid
func (c TaskCategory) IsValid() bool {
	switch c {
	case TaskCategoryDevelopment, TaskCategoryTesting, TaskCategoryDocumentation,
		TaskCategoryDesign, TaskCategoryMeetings, TaskCategoryResearch, TaskCategoryAdmin:
		return true
	}
	return false
}

// TaskStatus represents the lifecycle state of a work log entry
type TaskStatus string

const (
	TaskStatusDone       TaskStatus = "Done"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusNotStarted TaskStatus = "Not Started"
	TaskStatusOverdue    TaskStatus = "Overdue"
)

// IsValid checks if the TaskStatus is valid
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusDone, TaskStatusInProgress, TaskStatusNotStarted, TaskStatusOverdue:
		return true
	}
	return false
}

// WorkLocation tags where a check-in happened
type WorkLocation string

const (
	WorkLocationOffice  WorkLocation = "Office"
	WorkLocationRemote  WorkLocation = "Remote"
	WorkLocationOnLeave WorkLocation = "On Leave"
)

// IsValid checks if the WorkLocation is valid
func (l WorkLocation) IsValid() bool {
	switch l {
	case WorkLocationOffice, WorkLocationRemote, WorkLocationOnLeave:
		return true
	}
	return false
}

// BurnoutRisk is an advisory tag on a work log entry
type BurnoutRisk string

const (
	BurnoutRiskLow    BurnoutRisk = "Low"
	BurnoutRiskMedium BurnoutRisk = "Medium"
	BurnoutRiskHigh   BurnoutRisk = "High"
)

// IsValid checks if the BurnoutRisk is valid
func (r BurnoutRisk) IsValid() bool {
	switch r {
	case BurnoutRiskLow, BurnoutRiskMedium, BurnoutRiskHigh:
		return true
	}
	return false
}

// AnnouncementCategory classifies a team announcement
type AnnouncementCategory string

const (
	AnnouncementCategoryFeature  AnnouncementCategory = "feature"
	AnnouncementCategoryEvent    AnnouncementCategory = "event"
	AnnouncementCategoryUrgent   AnnouncementCategory = "urgent"
	AnnouncementCategoryInternal AnnouncementCategory = "internal"
)

// IsValid checks if the AnnouncementCategory is valid
func (c AnnouncementCategory) IsValid() bool {
	switch c {
	case AnnouncementCategoryFeature, AnnouncementCategoryEvent,
		AnnouncementCategoryUrgent, AnnouncementCategoryInternal:
		return true
	}
	return false
}

// Gender is used only for deterministic avatar-seed generation
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// IsValid checks if the Gender is valid
func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}
