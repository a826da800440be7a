package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/legalmatch/legalmatch-backend/internal/config"
	"github.com/legalmatch/legalmatch-backend/internal/dto"
	"github.com/legalmatch/legalmatch-backend/internal/mail"
	"github.com/legalmatch/legalmatch-backend/internal/models"
	"github.com/legalmatch/legalmatch-backend/internal/store"
	"github.com/legalmatch/legalmatch-backend/internal/validation"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrDuplicatePending    = errors.New("a pending application already exists for this email")
	ErrDuplicateProfile    = errors.New("a lawyer with this email or phone number already exists")
)

// SubmitResult reports where a submission landed. Fallback is true when the
// primary store was unreachable and the in-memory store took the write.
type SubmitResult struct {
	Application *models.Application
	Fallback    bool
}

// ApplicationService owns the onboarding lifecycle: intake with a degraded
// in-memory path, and the admin decision that flips a pending application to
// a terminal status with the profile creation in the same transaction.
type ApplicationService struct {
	db       *gorm.DB
	cfg      *config.Config
	primary  store.SubmissionStore
	fallback store.SubmissionStore
	notifier mail.Notifier
}

func NewApplicationService(db *gorm.DB, cfg *config.Config, primary, fallback store.SubmissionStore, notifier mail.Notifier) *ApplicationService {
	return &ApplicationService{db: db, cfg: cfg, primary: primary, fallback: fallback, notifier: notifier}
}

// Submit validates and persists a new application. One pending application per
// email at a time; a rejected or approved history does not block a fresh one.
func (s *ApplicationService) Submit(req *dto.SubmitApplicationRequest) (*SubmitResult, error) {
	app, err := s.buildApplication(req)
	if err != nil {
		return nil, err
	}

	target := s.primary
	usedFallback := false

	pending, err := target.HasPending(app.Email)
	if err != nil {
		slog.Error("primary submission store unavailable, using fallback",
			"action", "submit_application", "error", err)
		target = s.fallback
		usedFallback = true
		pending, err = target.HasPending(app.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check pending applications: %w", err)
		}
	}
	if pending {
		return nil, ErrDuplicatePending
	}

	if err := target.Create(app); err != nil {
		if usedFallback {
			return nil, fmt.Errorf("failed to store application: %w", err)
		}
		slog.Error("primary submission store rejected write, using fallback",
			"action", "submit_application", "error", err)
		usedFallback = true
		if err := s.fallback.Create(app); err != nil {
			return nil, fmt.Errorf("failed to store application: %w", err)
		}
	}

	s.notifier.Send(app.Email, "Application Received - LegalMatch", submissionBody(app))

	return &SubmitResult{Application: app, Fallback: usedFallback}, nil
}

// Decide moves a pending application to approved or rejected. Approval creates
// the lawyer profile in the same transaction; any failure on that path leaves
// the application pending. The status flip is a conditional update so two
// concurrent decisions cannot both win.
func (s *ApplicationService) Decide(id uuid.UUID, decision, reason, actor string) (*models.Application, *models.Lawyer, error) {
	if decision != models.ApplicationApproved && decision != models.ApplicationRejected {
		return nil, nil, &ValidationError{Field: "status", Message: "must be approved or rejected"}
	}
	if decision == models.ApplicationRejected && strings.TrimSpace(reason) == "" {
		return nil, nil, &ValidationError{Field: "reason", Message: "is required when rejecting"}
	}
	actor = strings.TrimSpace(actor)
	if actor == "" {
		actor = "Admin"
	}

	var app models.Application
	var lawyer *models.Lawyer

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&app, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrApplicationNotFound
			}
			return fmt.Errorf("failed to load application: %w", err)
		}
		if app.Status != models.ApplicationPending {
			return &AlreadyProcessedError{Status: app.Status}
		}

		if decision == models.ApplicationApproved {
			var count int64
			err := tx.Model(&models.Lawyer{}).
				Where("email = ? OR phone = ?", app.Email, app.Phone).
				Count(&count).Error
			if err != nil {
				return fmt.Errorf("failed to check existing lawyers: %w", err)
			}
			if count > 0 {
				return ErrDuplicateProfile
			}
		}

		now := time.Now()
		updates := map[string]interface{}{
			"status":       decision,
			"processed_by": actor,
			"processed_at": now,
		}
		if decision == models.ApplicationRejected {
			updates["rejection_reason"] = reason
		} else {
			updates["rejection_reason"] = nil
		}

		res := tx.Model(&models.Application{}).
			Where("id = ? AND status = ?", app.ID, models.ApplicationPending).
			Updates(updates)
		if res.Error != nil {
			return fmt.Errorf("failed to update application status: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			var current models.Application
			if err := tx.First(&current, "id = ?", app.ID).Error; err != nil {
				return fmt.Errorf("failed to reload application: %w", err)
			}
			return &AlreadyProcessedError{Status: current.Status}
		}

		app.Status = decision
		app.ProcessedBy = actor
		app.ProcessedAt = &now
		if decision == models.ApplicationRejected {
			app.RejectionReason = &reason
		} else {
			app.RejectionReason = nil
		}

		if decision == models.ApplicationApproved {
			profile := deriveLawyer(&app)
			if err := tx.Create(profile).Error; err != nil {
				return fmt.Errorf("failed to create lawyer profile: %w", err)
			}
			lawyer = profile
		}

		audit := models.ApplicationAudit{
			ApplicationID: app.ID,
			Action:        "status_changed_to_" + decision,
			OldStatus:     models.ApplicationPending,
			NewStatus:     decision,
			Reason:        reason,
			ProcessedBy:   actor,
		}
		if err := tx.Create(&audit).Error; err != nil {
			return fmt.Errorf("failed to record audit entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.sendDecisionEmail(&app, decision, reason)

	return &app, lawyer, nil
}

// List returns applications for the admin dashboard, newest first, optionally
// filtered by status.
func (s *ApplicationService) List(status string, limit, offset int) ([]models.Application, int64, error) {
	query := s.db.Model(&models.Application{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count applications: %w", err)
	}

	var apps []models.Application
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&apps).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list applications: %w", err)
	}
	return apps, total, nil
}

func (s *ApplicationService) Get(id uuid.UUID) (*models.Application, error) {
	var app models.Application
	if err := s.db.First(&app, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to load application: %w", err)
	}
	return &app, nil
}

func (s *ApplicationService) Delete(id uuid.UUID) error {
	res := s.db.Delete(&models.Application{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete application: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

// FallbackSubmissions exposes applications held in memory while the primary
// store was down, so the admin listing can still show them.
func (s *ApplicationService) FallbackSubmissions() []models.Application {
	type lister interface {
		All() []models.Application
	}
	if mem, ok := s.fallback.(lister); ok {
		return mem.All()
	}
	return nil
}

func (s *ApplicationService) buildApplication(req *dto.SubmitApplicationRequest) (*models.Application, error) {
	name := validation.Sanitize(req.Name)
	email := strings.ToLower(validation.Sanitize(req.Email))
	phone := validation.Sanitize(req.Phone)
	license := validation.Sanitize(req.LicenseNumber)
	degree := validation.Sanitize(req.Degree)
	specialization := validation.Sanitize(req.Specialization)
	bio := strings.TrimSpace(req.Bio)
	location := validation.Sanitize(req.Location)

	switch {
	case name == "":
		return nil, &ValidationError{Field: "name", Message: "is required"}
	case email == "":
		return nil, &ValidationError{Field: "email", Message: "is required"}
	case phone == "":
		return nil, &ValidationError{Field: "phone", Message: "is required"}
	case license == "":
		return nil, &ValidationError{Field: "license_number", Message: "is required"}
	case degree == "":
		return nil, &ValidationError{Field: "degree", Message: "is required"}
	case specialization == "":
		return nil, &ValidationError{Field: "specialization", Message: "is required"}
	case location == "":
		return nil, &ValidationError{Field: "location", Message: "is required"}
	}

	if !validation.ValidEmail(email) {
		return nil, &ValidationError{Field: "email", Message: "must be a valid email address"}
	}
	if !validation.ValidPhone(phone) {
		return nil, &ValidationError{Field: "phone", Message: "must be a valid Indian mobile number"}
	}
	if req.YearsExperience < 0 {
		return nil, &ValidationError{Field: "years_experience", Message: "must not be negative"}
	}
	if len(bio) < 50 {
		return nil, &ValidationError{Field: "bio", Message: "must be at least 50 characters"}
	}

	return &models.Application{
		Name:               name,
		Email:              email,
		Phone:              validation.NormalizePhone(phone),
		LicenseNumber:      license,
		Degree:             degree,
		Specialization:     specialization,
		YearsExperience:    req.YearsExperience,
		Bio:                bio,
		Location:           location,
		State:              validation.Sanitize(req.State),
		District:           validation.Sanitize(req.District),
		Pincode:            validation.Sanitize(req.Pincode),
		CourtWorkplace:     validation.Sanitize(req.CourtWorkplace),
		DocumentPath:       strings.TrimSpace(req.DocumentPath),
		PhotoPath:          strings.TrimSpace(req.PhotoPath),
		ConsultationFee:    req.ConsultationFee,
		CaseFeeRange:       validation.Sanitize(req.CaseFeeRange),
		VerificationStatus: models.ApplicationPending,
		Status:             models.ApplicationPending,
	}, nil
}

// deriveLawyer builds the published profile from an approved application.
func deriveLawyer(app *models.Application) *models.Lawyer {
	tier := "qualified"
	switch {
	case app.YearsExperience >= 10:
		tier = "experienced"
	case app.YearsExperience >= 5:
		tier = "skilled"
	}

	raw, _ := json.Marshal([]string{
		strings.ToLower(app.Specialization), "lawyer", "legal", "attorney", tier,
	})
	keywords := datatypes.JSON(raw)

	bio := app.Bio
	if strings.TrimSpace(bio) == "" {
		bio = fmt.Sprintf("%s is a %s practitioner with %d years of experience, holding a %s degree.",
			app.Name, app.Specialization, app.YearsExperience, app.Degree)
	}

	photo := models.DefaultLawyerPhoto
	if app.PhotoPath != "" {
		photo = "/uploads/" + filepath.Base(app.PhotoPath)
	}

	biodata := fmt.Sprintf("Licensed advocate (%s). Specialization: %s. Experience: %d years. Location: %s.",
		app.LicenseNumber, app.Specialization, app.YearsExperience, app.Location)

	return &models.Lawyer{
		Name:            app.Name,
		Specialization:  app.Specialization,
		YearsExperience: app.YearsExperience,
		Bio:             bio,
		Qualification:   app.Degree,
		Biodata:         biodata,
		Photo:           photo,
		Phone:           app.Phone,
		Email:           app.Email,
		Location:        app.Location,
		State:           app.State,
		District:        app.District,
		Pincode:         app.Pincode,
		CourtWorkplace:  app.CourtWorkplace,
		ConsultationFee: app.ConsultationFee,
		CaseFeeRange:    app.CaseFeeRange,
		Keywords:        keywords,
		Status:          models.LawyerVerified,
	}
}

func (s *ApplicationService) sendDecisionEmail(app *models.Application, decision, reason string) {
	switch decision {
	case models.ApplicationApproved:
		if !s.cfg.SendApprovalEmail {
			return
		}
		s.notifier.Send(app.Email, "Application Approved - LegalMatch", approvalBody(app))
	case models.ApplicationRejected:
		if !s.cfg.SendRejectionEmail {
			return
		}
		s.notifier.Send(app.Email, "Application Update - LegalMatch", rejectionBody(app, reason))
	}
}

func submissionBody(app *models.Application) string {
	return fmt.Sprintf(`<html><body>
<h2>Application Received</h2>
<p>Dear %s,</p>
<p>Thank you for applying to join the LegalMatch directory. Your application
for <strong>%s</strong> is under review and you will hear back from us once a
decision has been made.</p>
<p>Regards,<br>The LegalMatch Team</p>
</body></html>`, app.Name, app.Specialization)
}

func approvalBody(app *models.Application) string {
	return fmt.Sprintf(`<html><body>
<h2>Welcome to LegalMatch</h2>
<p>Dear %s,</p>
<p>Your application has been <strong>approved</strong>. Your profile is now
listed in the directory and clients can reach out to you directly.</p>
<p>Regards,<br>The LegalMatch Team</p>
</body></html>`, app.Name)
}

func rejectionBody(app *models.Application, reason string) string {
	return fmt.Sprintf(`<html><body>
<h2>Application Update</h2>
<p>Dear %s,</p>
<p>After review, we are unable to approve your application at this time.</p>
<p><strong>Reason:</strong> %s</p>
<p>You are welcome to apply again once the issue has been addressed.</p>
<p>Regards,<br>The LegalMatch Team</p>
</body></html>`, app.Name, reason)
}
