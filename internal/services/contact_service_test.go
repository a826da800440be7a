package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/legalmatch/legalmatch-backend/internal/dto"
	"github.com/legalmatch/legalmatch-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactCreateDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db)

	msg, err := svc.Create(&dto.ContactRequest{
		Name:    "Visitor",
		Email:   "Visitor@Example.com",
		Message: "I need advice about a property dispute.",
		Urgency: "CRITICAL", // not in the whitelist
	})
	require.NoError(t, err)
	assert.Equal(t, "visitor@example.com", msg.Email)
	assert.Equal(t, "low", msg.Urgency)
	assert.Equal(t, "general", msg.Subject)
	assert.Equal(t, models.ContactNew, msg.Status)
}

func TestContactCreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db)

	_, err := svc.Create(&dto.ContactRequest{Name: "", Email: "a@b.co", Message: "hi"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)

	_, err = svc.Create(&dto.ContactRequest{Name: "V", Email: "nope", Message: "hi"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "email", verr.Field)

	_, err = svc.Create(&dto.ContactRequest{Name: "V", Email: "a@b.co", Message: "   "})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "message", verr.Field)
}

func TestContactStatusTransitions(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db)

	msg, err := svc.Create(&dto.ContactRequest{
		Name: "Visitor", Email: "visitor@example.com", Message: "question about fees",
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(msg.ID, models.ContactRead))

	err = svc.UpdateStatus(msg.ID, "archived")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	require.ErrorIs(t, svc.UpdateStatus(uuid.New(), models.ContactRead), ErrMessageNotFound)
}

func TestContactListFiltersByStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db)

	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		_, err := svc.Create(&dto.ContactRequest{Name: "V", Email: email, Message: "hello there"})
		require.NoError(t, err)
	}
	var first models.ContactMessage
	require.NoError(t, db.First(&first).Error)
	require.NoError(t, svc.UpdateStatus(first.ID, models.ContactReplied))

	replied, total, err := svc.List(models.ContactReplied, 50, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, replied, 1)

	all, total, err := svc.List("", 50, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, all, 3)
}

func TestClientMessageRequiresLawyer(t *testing.T) {
	db := newTestDB(t)
	svc := NewMessageService(db)

	_, err := svc.Create(uuid.New(), &dto.ClientMessageRequest{
		ClientName: "Client", ClientEmail: "client@example.com", Message: "need help",
	})
	require.ErrorIs(t, err, ErrLawyerNotFound)
}

func TestClientMessageListForLawyer(t *testing.T) {
	db := newTestDB(t)
	svc := NewMessageService(db)
	lawyer := seedLawyer(t, db)

	for i := 0; i < 3; i++ {
		_, err := svc.Create(lawyer.ID, &dto.ClientMessageRequest{
			ClientName: "Client", ClientEmail: "client@example.com", Message: "need help with my case",
		})
		require.NoError(t, err)
	}

	msgs, total, err := svc.ListForLawyer(lawyer.ID, 50, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, msgs, 3)
}
