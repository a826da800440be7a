package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/legalmatch/legalmatch-backend/internal/services"
)

type AuditHandler struct {
	auditService *services.AuditService
}

func NewAuditHandler(auditService *services.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// LoginAudit pages through login attempts for the admin console. Out-of-range
// paging inputs are clamped rather than rejected.
func (h *AuditHandler) LoginAudit(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	perPage := c.QueryInt("per_page", 25)
	sort := c.Query("sort", "desc")

	result := h.auditService.ListLoginAudit(page, perPage, sort)
	return c.JSON(result)
}
