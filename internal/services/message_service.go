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

// MessageService stores notes left for individual lawyers by prospective
// clients.
type MessageService struct {
	db *gorm.DB
}

func NewMessageService(db *gorm.DB) *MessageService {
	return &MessageService{db: db}
}

func (s *MessageService) Create(lawyerID uuid.UUID, req *dto.ClientMessageRequest) (*models.ClientMessage, error) {
	name := validation.Sanitize(req.ClientName)
	email := strings.ToLower(validation.Sanitize(req.ClientEmail))
	message := strings.TrimSpace(req.Message)

	if name == "" {
		return nil, &ValidationError{Field: "client_name", Message: "is required"}
	}
	if !validation.ValidEmail(email) {
		return nil, &ValidationError{Field: "client_email", Message: "must be a valid email address"}
	}
	if message == "" {
		return nil, &ValidationError{Field: "message", Message: "is required"}
	}

	var lawyer models.Lawyer
	if err := s.db.Select("id").First(&lawyer, "id = ?", lawyerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLawyerNotFound
		}
		return nil, fmt.Errorf("failed to load lawyer: %w", err)
	}

	msg := models.ClientMessage{
		LawyerID:    lawyerID,
		ClientName:  name,
		ClientEmail: email,
		ClientPhone: validation.NormalizePhone(validation.Sanitize(req.ClientPhone)),
		Message:     validation.Sanitize(message),
	}
	if err := s.db.Create(&msg).Error; err != nil {
		return nil, fmt.Errorf("failed to store client message: %w", err)
	}
	return &msg, nil
}

func (s *MessageService) ListForLawyer(lawyerID uuid.UUID, limit, offset int) ([]models.ClientMessage, int64, error) {
	query := s.db.Model(&models.ClientMessage{}).Where("lawyer_id = ?", lawyerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count client messages: %w", err)
	}

	var msgs []models.ClientMessage
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&msgs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list client messages: %w", err)
	}
	return msgs, total, nil
}
