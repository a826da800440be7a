package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ContactNew     = "new"
	ContactRead    = "read"
	ContactReplied = "replied"
)

// ContactMessage is an inbound inquiry from the public contact form.
type ContactMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Phone     string    `gorm:"size:50" json:"phone,omitempty"`
	Subject   string    `gorm:"size:100;default:'general'" json:"subject"`
	LegalArea string    `gorm:"size:100" json:"legal_area,omitempty"`
	Urgency   string    `gorm:"size:10;default:'low'" json:"urgency"`
	Status    string    `gorm:"size:10;not null;default:'new';index" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func (m *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}
