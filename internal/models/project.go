package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ProjectStatus string

const (
	ProjectStatusOpen       ProjectStatus = "open"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusCancelled  ProjectStatus = "cancelled"
)

// Terminal reports whether no further edits or transitions are allowed.
func (s ProjectStatus) Terminal() bool {
	return s == ProjectStatusCompleted || s == ProjectStatusCancelled
}

// ValidTransition lists the allowed forward moves of the project lifecycle.
// Cancellation is only possible while the project is still open.
func ValidTransition(from, to ProjectStatus) bool {
	switch from {
	case ProjectStatusOpen:
		return to == ProjectStatusInProgress || to == ProjectStatusCancelled
	case ProjectStatusInProgress:
		return to == ProjectStatusCompleted
	default:
		return false
	}
}

type ProjectCategory string

const (
	CategoryRepair  ProjectCategory = "repair"
	CategoryInstall ProjectCategory = "install"
	CategoryGarden  ProjectCategory = "garden"
	CategoryBuild   ProjectCategory = "build"
	CategoryRestore ProjectCategory = "restore"
)

func ValidCategory(c string) bool {
	switch ProjectCategory(c) {
	case CategoryRepair, CategoryInstall, CategoryGarden, CategoryBuild, CategoryRestore:
		return true
	}
	return false
}

func ValidDifficulty(d string) bool {
	return d == "easy" || d == "medium" || d == "hard"
}

type Project struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CommunityID uuid.UUID `gorm:"type:uuid;not null;index" json:"community_id"`

	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	Category    string `gorm:"type:varchar(30);not null;index" json:"category"`
	Difficulty  string `gorm:"type:varchar(10);not null;index" json:"difficulty"`
	Location    string `gorm:"type:varchar(120);not null" json:"location"`

	RequiredSkills datatypes.JSON `json:"required_skills"`
	Images         datatypes.JSON `json:"images"`

	BudgetMin *float64 `json:"budget_min,omitempty"`
	BudgetMax *float64 `json:"budget_max,omitempty"`

	TimelineStart *time.Time `json:"timeline_start,omitempty"`
	TimelineEnd   *time.Time `json:"timeline_end,omitempty"`

	Status ProjectStatus `gorm:"type:varchar(20);default:'open';index" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Community *User `gorm:"foreignKey:CommunityID" json:"community,omitempty"`
}

func (p *Project) RequiredSkillList() []string {
	return decodeTags(p.RequiredSkills)
}
