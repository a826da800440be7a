package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ApplicationPending  = "pending"
	ApplicationApproved = "approved"
	ApplicationRejected = "rejected"
)

// Application is an onboarding request from a prospective lawyer. Status only
// ever moves pending -> approved or pending -> rejected; approved and rejected
// are terminal.
type Application struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name               string     `gorm:"size:255;not null" json:"name"`
	Email              string     `gorm:"size:255;not null;index" json:"email"`
	Phone              string     `gorm:"size:50;not null" json:"phone"`
	LicenseNumber      string     `gorm:"size:100;not null" json:"license_number"`
	Degree             string     `gorm:"size:255;not null" json:"degree"`
	Specialization     string     `gorm:"size:255;not null" json:"specialization"`
	YearsExperience    int        `gorm:"not null" json:"years_experience"`
	Bio                string     `gorm:"type:text" json:"bio"`
	Location           string     `gorm:"size:255;not null" json:"location"`
	State              string     `gorm:"size:100" json:"state,omitempty"`
	District           string     `gorm:"size:100" json:"district,omitempty"`
	Pincode            string     `gorm:"size:10" json:"pincode,omitempty"`
	CourtWorkplace     string     `gorm:"size:255" json:"court_workplace,omitempty"`
	DocumentPath       string     `gorm:"size:500" json:"document_path,omitempty"`
	PhotoPath          string     `gorm:"size:500" json:"photo_path,omitempty"`
	ConsultationFee    float64    `gorm:"type:decimal(10,2)" json:"consultation_fee"`
	CaseFeeRange       string     `gorm:"size:50" json:"case_fee_range,omitempty"`
	VerificationStatus string     `gorm:"size:20;not null;default:'pending'" json:"verification_status"`
	Status             string     `gorm:"size:20;not null;default:'pending';index" json:"status"`
	RejectionReason    *string    `gorm:"type:text" json:"rejection_reason,omitempty"`
	ProcessedBy        string     `gorm:"size:255" json:"processed_by,omitempty"`
	ProcessedAt        *time.Time `json:"processed_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

func (Application) TableName() string {
	return "lawyer_applications"
}
