package services

import (
	"errors"
	"testing"

	"github.com/legalmatch/legalmatch-backend/internal/config"
	"github.com/legalmatch/legalmatch-backend/internal/dto"
	"github.com/legalmatch/legalmatch-backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database per test. The pool is pinned to
// one connection so every session sees the same in-memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Lawyer{},
		&models.Application{},
		&models.MasterIdentity{},
		&models.Rating{},
		&models.LoginAudit{},
		&models.ApplicationAudit{},
		&models.ContactMessage{},
		&models.ClientMessage{},
		&models.SystemLog{},
	))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret",
		MasterEmail:        "master@legalmatch.test",
		MasterPassword:     "master-password",
		SendApprovalEmail:  true,
		SendRejectionEmail: true,
	}
}

// stubNotifier records deliveries instead of talking to an SMTP server.
type stubNotifier struct {
	sent []sentMail
}

type sentMail struct {
	To      string
	Subject string
}

func (n *stubNotifier) Send(to, subject, _ string) bool {
	n.sent = append(n.sent, sentMail{To: to, Subject: subject})
	return true
}

// failingStore simulates an unreachable primary submission store.
type failingStore struct{}

func (failingStore) Create(*models.Application) error {
	return errors.New("store unavailable")
}

func (failingStore) HasPending(string) (bool, error) {
	return false, errors.New("store unavailable")
}

func validSubmission() *dto.SubmitApplicationRequest {
	return &dto.SubmitApplicationRequest{
		Name:            "Jane Advocate",
		Email:           "jane@example.com",
		Phone:           "9876543210",
		LicenseNumber:   "MH/1234/2015",
		Degree:          "LLB",
		Specialization:  "Criminal Law",
		YearsExperience: 7,
		Bio:             "Criminal defence practitioner with extensive trial experience across sessions and high courts.",
		Location:        "Mumbai",
	}
}
