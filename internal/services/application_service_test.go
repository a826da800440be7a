package services

import (
	"encoding/json"
	"testing"

	"github.com/legalmatch/legalmatch-backend/internal/dto"
	"github.com/legalmatch/legalmatch-backend/internal/models"
	"github.com/legalmatch/legalmatch-backend/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newApplicationService(t *testing.T, db *gorm.DB) (*ApplicationService, *stubNotifier) {
	t.Helper()
	notifier := &stubNotifier{}
	svc := NewApplicationService(db, testConfig(), store.NewDBStore(db), store.NewMemoryStore(), notifier)
	return svc, notifier
}

func TestSubmitAndApprove(t *testing.T) {
	db := newTestDB(t)
	svc, notifier := newApplicationService(t, db)

	result, err := svc.Submit(validSubmission())
	require.NoError(t, err)
	assert.False(t, result.Fallback)
	assert.Equal(t, models.ApplicationPending, result.Application.Status)
	assert.Equal(t, "jane@example.com", result.Application.Email)
	assert.Equal(t, "+919876543210", result.Application.Phone)
	require.Len(t, notifier.sent, 1)

	app, lawyer, err := svc.Decide(result.Application.ID, models.ApplicationApproved, "", "reviewer@legalmatch.test")
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationApproved, app.Status)
	assert.Equal(t, "reviewer@legalmatch.test", app.ProcessedBy)
	require.NotNil(t, app.ProcessedAt)

	require.NotNil(t, lawyer)
	assert.Equal(t, models.LawyerVerified, lawyer.Status)
	assert.Equal(t, "jane@example.com", lawyer.Email)
	assert.Equal(t, models.DefaultLawyerPhoto, lawyer.Photo)

	var keywords []string
	require.NoError(t, json.Unmarshal(lawyer.Keywords, &keywords))
	assert.Contains(t, keywords, "criminal law")
	assert.Contains(t, keywords, "skilled") // 7 years

	var audits []models.ApplicationAudit
	require.NoError(t, db.Find(&audits).Error)
	require.Len(t, audits, 1)
	assert.Equal(t, "status_changed_to_approved", audits[0].Action)
	assert.Equal(t, models.ApplicationPending, audits[0].OldStatus)
	assert.Equal(t, models.ApplicationApproved, audits[0].NewStatus)

	// Approval email followed the confirmation email.
	require.Len(t, notifier.sent, 2)
	assert.Contains(t, notifier.sent[1].Subject, "Approved")
}

func TestSubmitDuplicatePending(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newApplicationService(t, db)

	_, err := svc.Submit(validSubmission())
	require.NoError(t, err)

	_, err = svc.Submit(validSubmission())
	require.ErrorIs(t, err, ErrDuplicatePending)
}

func TestResubmitAfterRejection(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newApplicationService(t, db)

	first, err := svc.Submit(validSubmission())
	require.NoError(t, err)

	_, _, err = svc.Decide(first.Application.ID, models.ApplicationRejected, "incomplete documents", "")
	require.NoError(t, err)

	second, err := svc.Submit(validSubmission())
	require.NoError(t, err)
	assert.NotEqual(t, first.Application.ID, second.Application.ID)
}

func TestDecideTwice(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newApplicationService(t, db)

	result, err := svc.Submit(validSubmission())
	require.NoError(t, err)

	_, _, err = svc.Decide(result.Application.ID, models.ApplicationApproved, "", "")
	require.NoError(t, err)

	_, _, err = svc.Decide(result.Application.ID, models.ApplicationApproved, "", "")
	var perr *AlreadyProcessedError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, models.ApplicationApproved, perr.Status)

	var lawyers int64
	require.NoError(t, db.Model(&models.Lawyer{}).Count(&lawyers).Error)
	assert.Equal(t, int64(1), lawyers)
}

func TestRejectStoresReason(t *testing.T) {
	db := newTestDB(t)
	svc, notifier := newApplicationService(t, db)

	result, err := svc.Submit(validSubmission())
	require.NoError(t, err)

	app, lawyer, err := svc.Decide(result.Application.ID, models.ApplicationRejected, "licence could not be verified", "")
	require.NoError(t, err)
	assert.Nil(t, lawyer)
	assert.Equal(t, models.ApplicationRejected, app.Status)
	assert.Equal(t, "Admin", app.ProcessedBy)
	require.NotNil(t, app.RejectionReason)
	assert.Equal(t, "licence could not be verified", *app.RejectionReason)

	var lawyers int64
	require.NoError(t, db.Model(&models.Lawyer{}).Count(&lawyers).Error)
	assert.Equal(t, int64(0), lawyers)

	require.Len(t, notifier.sent, 2)
	assert.Contains(t, notifier.sent[1].Subject, "Update")
}

func TestRejectWithoutReason(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newApplicationService(t, db)

	result, err := svc.Submit(validSubmission())
	require.NoError(t, err)

	_, _, err = svc.Decide(result.Application.ID, models.ApplicationRejected, "  ", "")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "reason", verr.Field)
}

func TestApproveClearsStaleRejectionReason(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newApplicationService(t, db)

	result, err := svc.Submit(validSubmission())
	require.NoError(t, err)

	stale := "left over from an earlier workflow"
	require.NoError(t, db.Model(&models.Application{}).
		Where("id = ?", result.Application.ID).
		Update("rejection_reason", stale).Error)

	app, _, err := svc.Decide(result.Application.ID, models.ApplicationApproved, "", "")
	require.NoError(t, err)
	assert.Nil(t, app.RejectionReason)

	var stored models.Application
	require.NoError(t, db.First(&stored, "id = ?", app.ID).Error)
	assert.Nil(t, stored.RejectionReason)
}

func TestApproveDuplicateProfileKeepsPending(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newApplicationService(t, db)

	require.NoError(t, db.Create(&models.Lawyer{
		Name: "Existing", Specialization: "Civil Law", Bio: "existing profile",
		Phone: "+919876543210", Email: "other@example.com", Location: "Pune",
		Status: models.LawyerVerified,
	}).Error)

	result, err := svc.Submit(validSubmission())
	require.NoError(t, err)

	_, _, err = svc.Decide(result.Application.ID, models.ApplicationApproved, "", "")
	require.ErrorIs(t, err, ErrDuplicateProfile)

	var stored models.Application
	require.NoError(t, db.First(&stored, "id = ?", result.Application.ID).Error)
	assert.Equal(t, models.ApplicationPending, stored.Status)
}

func TestApprovalRollsBackWhenProfileCreationFails(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newApplicationService(t, db)

	result, err := svc.Submit(validSubmission())
	require.NoError(t, err)

	require.NoError(t, db.Migrator().DropTable(&models.Lawyer{}))

	_, _, err = svc.Decide(result.Application.ID, models.ApplicationApproved, "", "")
	require.Error(t, err)

	var stored models.Application
	require.NoError(t, db.First(&stored, "id = ?", result.Application.ID).Error)
	assert.Equal(t, models.ApplicationPending, stored.Status)

	var audits int64
	require.NoError(t, db.Model(&models.ApplicationAudit{}).Count(&audits).Error)
	assert.Equal(t, int64(0), audits)
}

func TestSubmitValidation(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newApplicationService(t, db)

	cases := []struct {
		name   string
		mutate func(*dtoSubmit)
		field  string
	}{
		{"missing name", func(r *dtoSubmit) { r.Name = "" }, "name"},
		{"bad email", func(r *dtoSubmit) { r.Email = "not-an-email" }, "email"},
		{"bad phone", func(r *dtoSubmit) { r.Phone = "12345" }, "phone"},
		{"negative experience", func(r *dtoSubmit) { r.YearsExperience = -1 }, "years_experience"},
		{"short bio", func(r *dtoSubmit) { r.Bio = "too short" }, "bio"},
		{"missing licence", func(r *dtoSubmit) { r.LicenseNumber = "" }, "license_number"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validSubmission()
			tc.mutate(req)
			_, err := svc.Submit(req)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestSubmitFallsBackWhenPrimaryDown(t *testing.T) {
	db := newTestDB(t)
	memory := store.NewMemoryStore()
	svc := NewApplicationService(db, testConfig(), failingStore{}, memory, &stubNotifier{})

	result, err := svc.Submit(validSubmission())
	require.NoError(t, err)
	assert.True(t, result.Fallback)

	held := svc.FallbackSubmissions()
	require.Len(t, held, 1)
	assert.Equal(t, "jane@example.com", held[0].Email)

	// The fallback still enforces the one-pending rule.
	_, err = svc.Submit(validSubmission())
	require.ErrorIs(t, err, ErrDuplicatePending)
}

func TestDecisionEmailsGatedByConfig(t *testing.T) {
	db := newTestDB(t)
	notifier := &stubNotifier{}
	cfg := testConfig()
	cfg.SendApprovalEmail = false
	svc := NewApplicationService(db, cfg, store.NewDBStore(db), store.NewMemoryStore(), notifier)

	result, err := svc.Submit(validSubmission())
	require.NoError(t, err)

	_, _, err = svc.Decide(result.Application.ID, models.ApplicationApproved, "", "")
	require.NoError(t, err)

	// Only the submission confirmation went out.
	require.Len(t, notifier.sent, 1)
}

// dtoSubmit keeps the validation table readable.
type dtoSubmit = dto.SubmitApplicationRequest
