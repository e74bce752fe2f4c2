package models

import (
	"time"

	"github.com/google/uuid"
)

type BidStatus string

const (
	BidStatusPending  BidStatus = "pending"
	BidStatusAccepted BidStatus = "accepted"
	BidStatusRejected BidStatus = "rejected"
)

// One bid per engineer per project, enforced by the composite unique index.
type Bid struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_bids_project_engineer" json:"project_id"`
	EngineerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_bids_project_engineer" json:"engineer_id"`

	ProposedBudget   float64 `json:"proposed_budget"`
	ProposedTimeline string  `gorm:"type:varchar(120)" json:"proposed_timeline"`
	Message          string  `gorm:"type:text" json:"message"`

	Status BidStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Project  *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Engineer *User    `gorm:"foreignKey:EngineerID" json:"engineer,omitempty"`
}
