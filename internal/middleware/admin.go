package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/legalmatch/legalmatch-backend/internal/dto"
	"github.com/legalmatch/legalmatch-backend/internal/models"
	"github.com/legalmatch/legalmatch-backend/internal/session"
)

// AdminRequired gates a route to sessions carrying the admin role. It runs
// after JWTProtected, so the token on the context is already verified.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		st := session.FromContext(c)
		if !st.Authenticated {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}
		if st.Role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Admin access required",
			})
		}
		return c.Next()
	}
}
