package models

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one entry in a project's append-only chat log.
type ChatMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`
	SenderID  uuid.UUID `gorm:"type:uuid;not null;index" json:"sender_id"`

	Body string `gorm:"type:text;not null" json:"body"`

	CreatedAt time.Time `json:"created_at"`

	Sender *User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
}
