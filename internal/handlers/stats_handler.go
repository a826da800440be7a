package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/legalmatch/legalmatch-backend/internal/dto"
	"github.com/legalmatch/legalmatch-backend/internal/models"
	"gorm.io/gorm"
)

// StatsHandler serves the admin dashboard counters straight from the store.
type StatsHandler struct {
	db *gorm.DB
}

func NewStatsHandler(db *gorm.DB) *StatsHandler {
	return &StatsHandler{db: db}
}

func (h *StatsHandler) Overview(c *fiber.Ctx) error {
	var stats dto.AdminStatsResponse

	count := func(model interface{}, dest *int64, conds ...interface{}) {
		query := h.db.Model(model)
		if len(conds) > 0 {
			query = query.Where(conds[0], conds[1:]...)
		}
		if err := query.Count(dest).Error; err != nil {
			slog.Error("failed to count records", "action", "admin_stats", "error", err)
		}
	}

	count(&models.Lawyer{}, &stats.Lawyers, "status = ?", models.LawyerVerified)
	count(&models.Application{}, &stats.PendingApplications, "status = ?", models.ApplicationPending)
	count(&models.ContactMessage{}, &stats.NewMessages, "status = ?", models.ContactNew)
	count(&models.User{}, &stats.Users)
	count(&models.Rating{}, &stats.Ratings)

	return c.JSON(stats)
}
