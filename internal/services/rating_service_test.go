package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/legalmatch/legalmatch-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedLawyer(t *testing.T, db *gorm.DB) *models.Lawyer {
	t.Helper()
	lawyer := models.Lawyer{
		Name: "Rated Lawyer", Specialization: "Family Law", Bio: "profile under test",
		Phone: "+919812345678", Email: "rated@example.com", Location: "Delhi",
		Status: models.LawyerVerified,
	}
	require.NoError(t, db.Create(&lawyer).Error)
	return &lawyer
}

func TestVoteAggregatesMean(t *testing.T) {
	db := newTestDB(t)
	svc := NewRatingService(db)
	lawyer := seedLawyer(t, db)

	_, err := svc.Vote(lawyer.ID, "voter-a", 4)
	require.NoError(t, err)
	_, err = svc.Vote(lawyer.ID, "voter-b", 5)
	require.NoError(t, err)
	result, err := svc.Vote(lawyer.ID, "voter-c", 3)
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalRatings)
	assert.InDelta(t, 4.00, result.Rating, 0.001)
}

func TestRevoteReplacesScore(t *testing.T) {
	db := newTestDB(t)
	svc := NewRatingService(db)
	lawyer := seedLawyer(t, db)

	_, err := svc.Vote(lawyer.ID, "voter-a", 3)
	require.NoError(t, err)
	result, err := svc.Vote(lawyer.ID, "voter-a", 5)
	require.NoError(t, err)

	assert.Equal(t, 1, result.TotalRatings)
	assert.InDelta(t, 5.00, result.Rating, 0.001)

	var votes int64
	require.NoError(t, db.Model(&models.Rating{}).Count(&votes).Error)
	assert.Equal(t, int64(1), votes)
}

func TestVoteRoundsToTwoDecimals(t *testing.T) {
	db := newTestDB(t)
	svc := NewRatingService(db)
	lawyer := seedLawyer(t, db)

	_, err := svc.Vote(lawyer.ID, "voter-a", 4)
	require.NoError(t, err)
	_, err = svc.Vote(lawyer.ID, "voter-b", 5)
	require.NoError(t, err)
	result, err := svc.Vote(lawyer.ID, "voter-c", 5)
	require.NoError(t, err)

	assert.InDelta(t, 4.67, result.Rating, 0.001)
}

func TestVoteOutOfRange(t *testing.T) {
	db := newTestDB(t)
	svc := NewRatingService(db)
	lawyer := seedLawyer(t, db)

	for _, score := range []int{0, 6, -3} {
		_, err := svc.Vote(lawyer.ID, "voter-a", score)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "rating", verr.Field)
	}
}

func TestVoteRequiresVoter(t *testing.T) {
	db := newTestDB(t)
	svc := NewRatingService(db)
	lawyer := seedLawyer(t, db)

	_, err := svc.Vote(lawyer.ID, "  ", 4)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "voter", verr.Field)
}

func TestVoteUnknownLawyer(t *testing.T) {
	db := newTestDB(t)
	svc := NewRatingService(db)

	_, err := svc.Vote(uuid.New(), "voter-a", 4)
	require.ErrorIs(t, err, ErrLawyerNotFound)
}

func TestRevoteSameScoreIsNoop(t *testing.T) {
	db := newTestDB(t)
	svc := NewRatingService(db)
	lawyer := seedLawyer(t, db)

	_, err := svc.Vote(lawyer.ID, "voter-a", 4)
	require.NoError(t, err)
	result, err := svc.Vote(lawyer.ID, "voter-a", 4)
	require.NoError(t, err)

	assert.Equal(t, 1, result.TotalRatings)
	assert.InDelta(t, 4.00, result.Rating, 0.001)
}
