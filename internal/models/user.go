package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Role string

const (
	RoleCommunity Role = "community"
	RoleEngineer  Role = "engineer"
)

func ValidRole(r string) bool {
	return Role(r) == RoleCommunity || Role(r) == RoleEngineer
}

type User struct {
	ID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name  string    `gorm:"not null" json:"name"`
	Email string    `gorm:"uniqueIndex;not null" json:"email"`

	Password string `gorm:"not null" json:"-"`
	Role     Role   `gorm:"type:varchar(20);not null;index" json:"role"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	Phone    string `gorm:"type:varchar(30)" json:"phone"`
	Location string `gorm:"type:varchar(120)" json:"location"`
	Bio      string `gorm:"type:text" json:"bio"`

	// free-text skill/tool tags, e.g. ["drill","saw"]
	Skills datatypes.JSON `json:"skills"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) SkillList() []string {
	return decodeTags(u.Skills)
}

func decodeTags(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil {
		return nil
	}
	return tags
}

func EncodeTags(tags []string) datatypes.JSON {
	if tags == nil {
		tags = []string{}
	}
	raw, _ := json.Marshal(tags)
	return datatypes.JSON(raw)
}
