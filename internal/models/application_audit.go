package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApplicationAudit records one application state transition, written in the
// same transaction as the transition itself.
type ApplicationAudit struct {
	ID            uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	ApplicationID uuid.UUID   `gorm:"type:uuid;not null;index" json:"application_id"`
	Action        string      `gorm:"size:50;not null" json:"action"`
	OldStatus     string      `gorm:"size:50" json:"old_status"`
	NewStatus     string      `gorm:"size:50" json:"new_status"`
	Reason        string      `gorm:"type:text" json:"reason,omitempty"`
	ProcessedBy   string      `gorm:"size:255" json:"processed_by"`
	CreatedAt     time.Time   `gorm:"index" json:"created_at"`
	Application   Application `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE" json:"-"`
}

func (a *ApplicationAudit) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

func (ApplicationAudit) TableName() string {
	return "application_audit_log"
}
