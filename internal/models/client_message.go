package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientMessage is a note left for a specific lawyer by a prospective client.
type ClientMessage struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	LawyerID    uuid.UUID `gorm:"type:uuid;not null;index" json:"lawyer_id"`
	ClientName  string    `gorm:"size:255;not null" json:"client_name"`
	ClientEmail string    `gorm:"size:255;not null" json:"client_email"`
	ClientPhone string    `gorm:"size:30" json:"client_phone,omitempty"`
	Message     string    `gorm:"type:text;not null" json:"message"`
	CreatedAt   time.Time `json:"created_at"`
	Lawyer      Lawyer    `gorm:"foreignKey:LawyerID;constraint:OnDelete:CASCADE" json:"-"`
}

func (m *ClientMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (ClientMessage) TableName() string {
	return "lawyer_client_messages"
}
