package store

import (
	"github.com/legalmatch/legalmatch-backend/internal/models"
	"gorm.io/gorm"
)

// SubmissionStore persists incoming lawyer applications. The lifecycle engine
// is wired with a database-backed primary store and an in-memory fallback
// with the same interface; which one handles a submission is an explicit
// runtime decision, not a module-level flag.
type SubmissionStore interface {
	Create(app *models.Application) error
	HasPending(email string) (bool, error)
}

// DBStore is the primary, GORM-backed submission store.
type DBStore struct {
	db *gorm.DB
}

func NewDBStore(db *gorm.DB) *DBStore {
	return &DBStore{db: db}
}

func (s *DBStore) Create(app *models.Application) error {
	return s.db.Create(app).Error
}

func (s *DBStore) HasPending(email string) (bool, error) {
	var count int64
	err := s.db.Model(&models.Application{}).
		Where("email = ? AND status = ?", email, models.ApplicationPending).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
