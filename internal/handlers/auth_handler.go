package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/legalmatch/legalmatch-backend/internal/config"
	"github.com/legalmatch/legalmatch-backend/internal/dto"
	"github.com/legalmatch/legalmatch-backend/internal/services"
	"github.com/legalmatch/legalmatch-backend/internal/session"
)

type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	principal, err := h.authService.Register(&req)
	if err != nil {
		var verr *services.ValidationError
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.As(err, &verr):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: verr.Error(), Field: verr.Field,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(principalResponse(principal))
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	meta := services.LoginMeta{IP: c.IP(), UserAgent: c.Get("User-Agent")}
	principal, err := h.authService.Authenticate(req.Email, req.Password, req.Role, meta)
	if err != nil {
		if errors.Is(err, services.ErrDenied) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	subject := principal.Email
	if principal.AccountID != nil {
		subject = principal.AccountID.String()
	}
	token, err := session.Grant(c, h.cfg, session.Authenticated(subject, principal.Email, principal.Role, principal.IsMaster))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(dto.AuthResponse{Token: token, Principal: principalResponse(principal)})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	session.Clear(c)
	return c.JSON(fiber.Map{"success": true})
}

// Me reports the session's principal, for frontends restoring state on load.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	st := session.FromContext(c)
	if !st.Authenticated {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}
	return c.JSON(fiber.Map{
		"email":     st.Email,
		"role":      st.Role,
		"is_master": st.IsMaster,
	})
}

func principalResponse(p *services.Principal) dto.PrincipalResponse {
	return dto.PrincipalResponse{
		ID:       p.AccountID,
		Email:    p.Email,
		Name:     p.Name,
		Role:     p.Role,
		IsMaster: p.IsMaster,
	}
}
