package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/legalmatch/legalmatch-backend/internal/models"
	"gorm.io/gorm"
)

// RatingResult is the aggregate after a vote has been applied.
type RatingResult struct {
	Rating       float64 `json:"rating"`
	TotalRatings int     `json:"total_ratings"`
}

// RatingService keeps the per-lawyer rating aggregate consistent under
// concurrent votes. The aggregate columns are maintained incrementally from
// rating_sum and total_ratings, so applying a vote never rescans the votes.
type RatingService struct {
	db *gorm.DB
}

func NewRatingService(db *gorm.DB) *RatingService {
	return &RatingService{db: db}
}

// Vote records or revises a voter's score for a lawyer. One vote per voter
// per lawyer: a repeat vote replaces the previous score and adjusts the
// aggregate by the difference instead of adding a second entry.
func (s *RatingService) Vote(lawyerID uuid.UUID, voter string, score int) (*RatingResult, error) {
	if score < 1 || score > 5 {
		return nil, &ValidationError{Field: "rating", Message: "must be between 1 and 5"}
	}
	voter = strings.TrimSpace(voter)
	if voter == "" {
		return nil, &ValidationError{Field: "voter", Message: "is required"}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var lawyer models.Lawyer
		if err := tx.Select("id").First(&lawyer, "id = ?", lawyerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrLawyerNotFound
			}
			return fmt.Errorf("failed to load lawyer: %w", err)
		}

		var existing models.Rating
		err := tx.Where("lawyer_id = ? AND voter = ?", lawyerID, voter).First(&existing).Error
		switch {
		case err == nil:
			delta := score - existing.Score
			if delta != 0 {
				res := tx.Model(&models.Rating{}).
					Where("id = ? AND score = ?", existing.ID, existing.Score).
					Update("score", score)
				if res.Error != nil {
					return fmt.Errorf("failed to update vote: %w", res.Error)
				}
				if res.RowsAffected == 0 {
					return fmt.Errorf("vote changed concurrently, retry")
				}
				err = tx.Model(&models.Lawyer{}).Where("id = ?", lawyerID).
					Updates(map[string]interface{}{
						"rating_sum": gorm.Expr("rating_sum + ?", delta),
						"rating":     gorm.Expr("ROUND((rating_sum + ?) * 1.0 / total_ratings, 2)", delta),
					}).Error
				if err != nil {
					return fmt.Errorf("failed to update rating aggregate: %w", err)
				}
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			vote := models.Rating{LawyerID: lawyerID, Voter: voter, Score: score}
			if err := tx.Create(&vote).Error; err != nil {
				return fmt.Errorf("failed to record vote: %w", err)
			}
			err = tx.Model(&models.Lawyer{}).Where("id = ?", lawyerID).
				Updates(map[string]interface{}{
					"rating_sum":    gorm.Expr("rating_sum + ?", score),
					"total_ratings": gorm.Expr("total_ratings + 1"),
					"rating":        gorm.Expr("ROUND((rating_sum + ?) * 1.0 / (total_ratings + 1), 2)", score),
				}).Error
			if err != nil {
				return fmt.Errorf("failed to update rating aggregate: %w", err)
			}
		default:
			return fmt.Errorf("failed to look up existing vote: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var lawyer models.Lawyer
	if err := s.db.Select("rating", "total_ratings").First(&lawyer, "id = ?", lawyerID).Error; err != nil {
		return nil, fmt.Errorf("failed to read rating aggregate: %w", err)
	}
	return &RatingResult{Rating: lawyer.Rating, TotalRatings: lawyer.TotalRatings}, nil
}
