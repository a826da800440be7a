package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/legalmatch/legalmatch-backend/internal/dto"
	"github.com/legalmatch/legalmatch-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListVerifiedOrdering(t *testing.T) {
	db := newTestDB(t)
	svc := NewLawyerService(db)

	seed := []models.Lawyer{
		{Name: "Low", Specialization: "Tax", Bio: "b", Phone: "+919812345671", Email: "low@example.com", Location: "Delhi", Rating: 3.2, YearsExperience: 12, Status: models.LawyerVerified},
		{Name: "High", Specialization: "Tax", Bio: "b", Phone: "+919812345672", Email: "high@example.com", Location: "Delhi", Rating: 4.8, YearsExperience: 3, Status: models.LawyerVerified},
		{Name: "Tie", Specialization: "Tax", Bio: "b", Phone: "+919812345673", Email: "tie@example.com", Location: "Delhi", Rating: 3.2, YearsExperience: 20, Status: models.LawyerVerified},
		{Name: "Hidden", Specialization: "Tax", Bio: "b", Phone: "+919812345674", Email: "hidden@example.com", Location: "Delhi", Rating: 5.0, Status: models.LawyerPending},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	lawyers, total := svc.ListVerified(50, 0)
	assert.Equal(t, int64(3), total)
	require.Len(t, lawyers, 3)
	assert.Equal(t, "High", lawyers[0].Name)
	assert.Equal(t, "Tie", lawyers[1].Name) // rating tie broken by experience
	assert.Equal(t, "Low", lawyers[2].Name)
}

func TestUpdateLawyerPartial(t *testing.T) {
	db := newTestDB(t)
	svc := NewLawyerService(db)
	lawyer := seedLawyer(t, db)
	require.NoError(t, db.Model(lawyer).Updates(map[string]interface{}{
		"rating": 4.5, "total_ratings": 10, "rating_sum": 45,
	}).Error)

	name := "Renamed Advocate"
	updated, err := svc.Update(lawyer.ID, &dto.UpdateLawyerRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed Advocate", updated.Name)
	assert.Equal(t, lawyer.Specialization, updated.Specialization)

	// Aggregates stay untouched by profile edits.
	assert.InDelta(t, 4.5, updated.Rating, 0.001)
	assert.Equal(t, 10, updated.TotalRatings)
}

func TestUpdateLawyerInvalidPhone(t *testing.T) {
	db := newTestDB(t)
	svc := NewLawyerService(db)
	lawyer := seedLawyer(t, db)

	bad := "12345"
	_, err := svc.Update(lawyer.ID, &dto.UpdateLawyerRequest{Phone: &bad})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "phone", verr.Field)
}

func TestUpdateLawyerNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewLawyerService(db)

	name := "Nobody"
	_, err := svc.Update(uuid.New(), &dto.UpdateLawyerRequest{Name: &name})
	require.ErrorIs(t, err, ErrLawyerNotFound)
}

func TestDeleteLawyerCascades(t *testing.T) {
	db := newTestDB(t)
	svc := NewLawyerService(db)
	lawyer := seedLawyer(t, db)

	rating := NewRatingService(db)
	_, err := rating.Vote(lawyer.ID, "voter-a", 5)
	require.NoError(t, err)

	messages := NewMessageService(db)
	_, err = messages.Create(lawyer.ID, &dto.ClientMessageRequest{
		ClientName: "Client", ClientEmail: "client@example.com", Message: "need help",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(lawyer.ID))

	var votes, msgs int64
	require.NoError(t, db.Model(&models.Rating{}).Count(&votes).Error)
	require.NoError(t, db.Model(&models.ClientMessage{}).Count(&msgs).Error)
	assert.Equal(t, int64(0), votes)
	assert.Equal(t, int64(0), msgs)

	_, err = svc.Get(lawyer.ID)
	require.ErrorIs(t, err, ErrLawyerNotFound)
}

func TestDeleteLawyerNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewLawyerService(db)
	require.ErrorIs(t, svc.Delete(uuid.New()), ErrLawyerNotFound)
}
