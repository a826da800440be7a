package store

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/legalmatch/legalmatch-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorePendingCheck(t *testing.T) {
	s := NewMemoryStore()

	pending, err := s.HasPending("jane@example.com")
	require.NoError(t, err)
	assert.False(t, pending)

	require.NoError(t, s.Create(&models.Application{Email: "jane@example.com"}))

	pending, err = s.HasPending("JANE@example.com")
	require.NoError(t, err)
	assert.True(t, pending)
}

func TestMemoryStoreAssignsIdentity(t *testing.T) {
	s := NewMemoryStore()
	app := &models.Application{Email: "jane@example.com"}
	require.NoError(t, s.Create(app))

	assert.NotEqual(t, uuid.Nil, app.ID)
	assert.False(t, app.CreatedAt.IsZero())
	assert.Equal(t, models.ApplicationPending, app.Status)
}

func TestMemoryStoreAllReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Create(&models.Application{Email: "a@example.com"}))

	held := s.All()
	require.Len(t, held, 1)
	held[0].Email = "mutated@example.com"

	again := s.All()
	assert.Equal(t, "a@example.com", again[0].Email)
}

func TestMemoryStoreConcurrentCreates(t *testing.T) {
	s := NewMemoryStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Create(&models.Application{Email: "worker@example.com"})
		}()
	}
	wg.Wait()
	assert.Len(t, s.All(), 50)
}
