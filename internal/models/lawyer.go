package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	LawyerVerified = "verified"
	LawyerPending  = "pending"
	LawyerRejected = "rejected"
)

// DefaultLawyerPhoto is used when an application carried no photo upload.
const DefaultLawyerPhoto = "https://via.placeholder.com/300x300/3730a3/ffffff?text=Lawyer"

// Lawyer is the published professional profile. One is created per approved
// application; the rating aggregate columns (Rating, TotalRatings, RatingSum)
// are mutated only by the rating service, never written directly.
type Lawyer struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string         `gorm:"size:255;not null" json:"name"`
	Specialization  string         `gorm:"size:255;not null;index" json:"specialization"`
	YearsExperience int            `gorm:"not null" json:"years_experience"`
	Rating          float64        `gorm:"type:decimal(4,2);default:0" json:"rating"`
	TotalRatings    int            `gorm:"default:0" json:"total_ratings"`
	RatingSum       int            `gorm:"default:0" json:"-"`
	Bio             string         `gorm:"type:text;not null" json:"bio"`
	Qualification   string         `gorm:"type:text" json:"qualification,omitempty"`
	Biodata         string         `gorm:"type:text" json:"biodata,omitempty"`
	CaseWinRate     float64        `gorm:"type:decimal(5,2);default:0" json:"case_win_rate"`
	TotalCases      int            `gorm:"default:0" json:"total_cases"`
	WonCases        int            `gorm:"default:0" json:"won_cases"`
	Photo           string         `gorm:"size:500" json:"photo"`
	Phone           string         `gorm:"size:50;not null;index" json:"phone"`
	Email           string         `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Location        string         `gorm:"size:255;not null" json:"location"`
	State           string         `gorm:"size:100" json:"state,omitempty"`
	District        string         `gorm:"size:100" json:"district,omitempty"`
	Pincode         string         `gorm:"size:10" json:"pincode,omitempty"`
	CourtWorkplace  string         `gorm:"size:255" json:"court_workplace,omitempty"`
	ConsultationFee float64        `gorm:"type:decimal(10,2)" json:"consultation_fee"`
	CaseFeeRange    string         `gorm:"size:50" json:"case_fee_range,omitempty"`
	Keywords        datatypes.JSON `gorm:"type:json" json:"keywords"`
	Status          string         `gorm:"size:20;not null;default:'verified';index" json:"status"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func (l *Lawyer) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

func (Lawyer) TableName() string {
	return "lawyers"
}
