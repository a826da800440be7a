package store

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/legalmatch/legalmatch-backend/internal/models"
)

// MemoryStore buffers submissions while the primary store is unreachable.
// Entries live only for the process lifetime and are surfaced to admins as
// unsynced; the decision paths never read from here.
type MemoryStore struct {
	mu   sync.Mutex
	apps []models.Application
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Create(app *models.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}
	if app.CreatedAt.IsZero() {
		app.CreatedAt = time.Now()
	}
	if app.Status == "" {
		app.Status = models.ApplicationPending
	}
	s.apps = append(s.apps, *app)
	return nil
}

func (s *MemoryStore) HasPending(email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.apps {
		if strings.EqualFold(a.Email, email) && a.Status == models.ApplicationPending {
			return true, nil
		}
	}
	return false, nil
}

// All returns a copy of every buffered submission, newest last.
func (s *MemoryStore) All() []models.Application {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Application, len(s.apps))
	copy(out, s.apps)
	return out
}
