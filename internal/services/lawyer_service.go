package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/legalmatch/legalmatch-backend/internal/dto"
	"github.com/legalmatch/legalmatch-backend/internal/models"
	"github.com/legalmatch/legalmatch-backend/internal/validation"
	"gorm.io/gorm"
)

var ErrLawyerNotFound = errors.New("lawyer not found")

// LawyerService serves the public directory and the admin profile
// maintenance operations.
type LawyerService struct {
	db *gorm.DB
}

func NewLawyerService(db *gorm.DB) *LawyerService {
	return &LawyerService{db: db}
}

// ListVerified returns the public directory ordered by rating, then by
// experience. A store failure degrades to an empty listing so the public
// page stays up.
func (s *LawyerService) ListVerified(limit, offset int) ([]models.Lawyer, int64) {
	query := s.db.Model(&models.Lawyer{}).Where("status = ?", models.LawyerVerified)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		slog.Error("failed to count lawyers", "action", "list_lawyers", "error", err)
		return []models.Lawyer{}, 0
	}

	var lawyers []models.Lawyer
	err := query.Order("rating DESC, years_experience DESC").
		Limit(limit).Offset(offset).Find(&lawyers).Error
	if err != nil {
		slog.Error("failed to list lawyers", "action", "list_lawyers", "error", err)
		return []models.Lawyer{}, 0
	}
	return lawyers, total
}

func (s *LawyerService) Get(id uuid.UUID) (*models.Lawyer, error) {
	var lawyer models.Lawyer
	if err := s.db.First(&lawyer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLawyerNotFound
		}
		return nil, fmt.Errorf("failed to load lawyer: %w", err)
	}
	return &lawyer, nil
}

// Update applies partial edits to a profile. Rating aggregates and status are
// never writable here; they belong to the rating and application services.
func (s *LawyerService) Update(id uuid.UUID, req *dto.UpdateLawyerRequest) (*models.Lawyer, error) {
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = validation.Sanitize(*req.Name)
	}
	if req.Specialization != nil {
		updates["specialization"] = validation.Sanitize(*req.Specialization)
	}
	if req.YearsExperience != nil {
		if *req.YearsExperience < 0 {
			return nil, &ValidationError{Field: "years_experience", Message: "must not be negative"}
		}
		updates["years_experience"] = *req.YearsExperience
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.Qualification != nil {
		updates["qualification"] = validation.Sanitize(*req.Qualification)
	}
	if req.Photo != nil {
		updates["photo"] = strings.TrimSpace(*req.Photo)
	}
	if req.Phone != nil {
		phone := validation.Sanitize(*req.Phone)
		if !validation.ValidPhone(phone) {
			return nil, &ValidationError{Field: "phone", Message: "must be a valid Indian mobile number"}
		}
		updates["phone"] = validation.NormalizePhone(phone)
	}
	if req.Location != nil {
		updates["location"] = validation.Sanitize(*req.Location)
	}
	if req.State != nil {
		updates["state"] = validation.Sanitize(*req.State)
	}
	if req.District != nil {
		updates["district"] = validation.Sanitize(*req.District)
	}
	if req.Pincode != nil {
		updates["pincode"] = validation.Sanitize(*req.Pincode)
	}
	if req.CourtWorkplace != nil {
		updates["court_workplace"] = validation.Sanitize(*req.CourtWorkplace)
	}
	if req.ConsultationFee != nil {
		updates["consultation_fee"] = *req.ConsultationFee
	}
	if req.CaseFeeRange != nil {
		updates["case_fee_range"] = validation.Sanitize(*req.CaseFeeRange)
	}
	if len(updates) == 0 {
		return s.Get(id)
	}

	res := s.db.Model(&models.Lawyer{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update lawyer: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrLawyerNotFound
	}
	return s.Get(id)
}

// Delete removes a profile together with its votes and client messages.
func (s *LawyerService) Delete(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("lawyer_id = ?", id).Delete(&models.Rating{}).Error; err != nil {
			return fmt.Errorf("failed to delete ratings: %w", err)
		}
		if err := tx.Where("lawyer_id = ?", id).Delete(&models.ClientMessage{}).Error; err != nil {
			return fmt.Errorf("failed to delete client messages: %w", err)
		}
		res := tx.Delete(&models.Lawyer{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete lawyer: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrLawyerNotFound
		}
		return nil
	})
}
