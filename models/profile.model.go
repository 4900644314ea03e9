package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles recognized by the platform
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// Profile holds the public identity of a platform user. Accounts themselves
// (credentials, sessions) live in the external auth provider; this table only
// mirrors what the platform needs to display and to print on certificates.
type Profile struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email" gorm:"not null;uniqueIndex"`
	Role      string    `json:"role" gorm:"default:'student'"` // student, admin
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// DisplayName returns the name printed on documents, falling back to the
// account email when the user never filled in a full name.
func (p *Profile) DisplayName() string {
	if p.FullName != "" {
		return p.FullName
	}
	return p.Email
}
