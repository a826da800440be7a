package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/legalmatch/legalmatch-backend/internal/dto"
	"github.com/legalmatch/legalmatch-backend/internal/models"
	"github.com/legalmatch/legalmatch-backend/internal/validation"
	"gorm.io/gorm"
)

var ErrMessageNotFound = errors.New("message not found")

// ContactService stores inquiries from the public contact form and powers
// the admin inbox.
type ContactService struct {
	db *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{db: db}
}

func (s *ContactService) Create(req *dto.ContactRequest) (*models.ContactMessage, error) {
	name := validation.Sanitize(req.Name)
	email := strings.ToLower(validation.Sanitize(req.Email))
	message := strings.TrimSpace(req.Message)

	if name == "" {
		return nil, &ValidationError{Field: "name", Message: "is required"}
	}
	if !validation.ValidEmail(email) {
		return nil, &ValidationError{Field: "email", Message: "must be a valid email address"}
	}
	if message == "" {
		return nil, &ValidationError{Field: "message", Message: "is required"}
	}

	urgency := strings.ToLower(strings.TrimSpace(req.Urgency))
	switch urgency {
	case "low", "medium", "high":
	default:
		urgency = "low"
	}

	subject := validation.Sanitize(req.Subject)
	if subject == "" {
		subject = "general"
	}

	msg := models.ContactMessage{
		Name:      name,
		Email:     email,
		Message:   validation.Sanitize(message),
		Phone:     validation.NormalizePhone(validation.Sanitize(req.Phone)),
		Subject:   subject,
		LegalArea: validation.Sanitize(req.LegalArea),
		Urgency:   urgency,
		Status:    models.ContactNew,
	}
	if err := s.db.Create(&msg).Error; err != nil {
		return nil, fmt.Errorf("failed to store contact message: %w", err)
	}
	return &msg, nil
}

func (s *ContactService) List(status string, limit, offset int) ([]models.ContactMessage, int64, error) {
	query := s.db.Model(&models.ContactMessage{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count contact messages: %w", err)
	}

	var msgs []models.ContactMessage
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&msgs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list contact messages: %w", err)
	}
	return msgs, total, nil
}

func (s *ContactService) UpdateStatus(id uuid.UUID, status string) error {
	switch status {
	case models.ContactNew, models.ContactRead, models.ContactReplied:
	default:
		return &ValidationError{Field: "status", Message: "must be new, read or replied"}
	}

	res := s.db.Model(&models.ContactMessage{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update contact message: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}

func (s *ContactService) Delete(id uuid.UUID) error {
	res := s.db.Delete(&models.ContactMessage{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete contact message: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}
