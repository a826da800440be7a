package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MasterIdentity is the break-glass credential. At most one row exists per
// email; the seeder re-applies the configured hash and role flags on every
// startup so the record never drifts from configuration.
type MasterIdentity struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CanAdmin     bool      `gorm:"not null;default:false" json:"can_admin"`
	CanUser      bool      `gorm:"not null;default:false" json:"can_user"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (m *MasterIdentity) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (MasterIdentity) TableName() string {
	return "master_identities"
}
