package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/legalmatch/legalmatch-backend/internal/config"
)

// CookieName carries the signed session token for browser clients; API
// clients may instead send it as a bearer token.
const CookieName = "lm_session"

// State is a connection's authentication state. A connection is either
// anonymous or authenticated; granting always passes through anonymous first
// so nothing from a previous principal can bleed into the new session.
type State struct {
	Authenticated bool
	Principal     string
	Email         string
	Role          string
	IsMaster      bool
}

func Anonymous() State {
	return State{}
}

func Authenticated(principal, email, role string, isMaster bool) State {
	return State{
		Authenticated: true,
		Principal:     principal,
		Email:         email,
		Role:          role,
		IsMaster:      isMaster,
	}
}

// Grant clears any session already on the connection, then issues a signed
// token for the new state and sets the session cookie.
func Grant(c *fiber.Ctx, cfg *config.Config, st State) (string, error) {
	Clear(c)

	claims := jwt.MapClaims{
		"sub":       st.Principal,
		"email":     st.Email,
		"role":      st.Role,
		"is_master": st.IsMaster,
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(cfg.SessionLifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		return "", err
	}

	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    signed,
		Expires:  time.Now().Add(cfg.SessionLifetime),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return signed, nil
}

// Clear returns the connection to the anonymous state.
func Clear(c *fiber.Ctx) {
	c.Locals("user", nil)
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

// FromContext reads the state carried by the verified token the JWT
// middleware stored on the context.
func FromContext(c *fiber.Ctx) State {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return Anonymous()
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Anonymous()
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return Anonymous()
	}
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	isMaster, _ := claims["is_master"].(bool)
	return Authenticated(sub, email, role, isMaster)
}
