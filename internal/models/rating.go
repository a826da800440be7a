package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rating is one voter's score for a lawyer. The composite unique index keeps
// a repeat vote from the same voter as an update, never a second row.
type Rating struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	LawyerID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_lawyer_voter,priority:1" json:"lawyer_id"`
	Voter     string    `gorm:"size:45;not null;uniqueIndex:idx_ratings_lawyer_voter,priority:2" json:"-"`
	Score     int       `gorm:"not null" json:"score"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Lawyer    Lawyer    `gorm:"foreignKey:LawyerID;constraint:OnDelete:CASCADE" json:"-"`
}

func (r *Rating) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (Rating) TableName() string {
	return "lawyer_ratings"
}
