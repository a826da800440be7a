package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LoginAudit is one immutable record per credential attempt, success or not.
// Rows are append-only; nothing updates or deletes them in normal operation.
type LoginAudit struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Identity      string    `gorm:"size:255;not null" json:"email_or_identity"`
	RoleAttempted string    `gorm:"size:50;not null;index:idx_login_audit_role_status,priority:1" json:"role_attempted"`
	Status        string    `gorm:"size:10;not null;index:idx_login_audit_role_status,priority:2" json:"status"`
	Source        string    `gorm:"size:10;not null" json:"source"`
	IPAddress     string    `gorm:"size:45" json:"ip_address,omitempty"`
	UserAgent     string    `gorm:"size:512" json:"user_agent,omitempty"`
	CreatedAt     time.Time `gorm:"index" json:"created_at"`
}

func (l *LoginAudit) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

func (LoginAudit) TableName() string {
	return "login_audit"
}
