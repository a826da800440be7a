package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/legalmatch/legalmatch-backend/internal/config"
	"github.com/legalmatch/legalmatch-backend/internal/handlers"
	"github.com/legalmatch/legalmatch-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	applicationHandler *handlers.ApplicationHandler,
	lawyerHandler *handlers.LawyerHandler,
	contactHandler *handlers.ContactHandler,
	auditHandler *handlers.AuditHandler,
	statsHandler *handlers.StatsHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Get("/auth/me", middleware.JWTProtected(cfg), authHandler.Me)

	// Public directory
	api.Get("/lawyers", lawyerHandler.List)
	api.Get("/lawyers/:id", lawyerHandler.Get)
	api.Post("/lawyers/:id/rate", lawyerHandler.Rate)
	api.Post("/lawyers/:id/contact", lawyerHandler.Contact)

	// Public contact form
	api.Post("/contact", contactHandler.Create)

	// Application intake: 3 submissions/hour per IP
	applications := api.Group("/applications")
	applications.Post("/", limiter.New(limiter.Config{
		Max:               3,
		Expiration:        1 * time.Hour,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}), applicationHandler.Submit)

	// Admin panel (protected + admin required)
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired())
	admin.Get("/applications", applicationHandler.List)
	admin.Get("/applications/:id", applicationHandler.Get)
	admin.Put("/applications/:id/status", applicationHandler.Decide)
	admin.Delete("/applications/:id", applicationHandler.Delete)

	admin.Put("/lawyers/:id", lawyerHandler.Update)
	admin.Delete("/lawyers/:id", lawyerHandler.Delete)
	admin.Get("/lawyers/:id/messages", lawyerHandler.Messages)

	admin.Get("/messages", contactHandler.List)
	admin.Put("/messages/:id/status", contactHandler.UpdateStatus)
	admin.Delete("/messages/:id", contactHandler.Delete)

	admin.Get("/login-audit", auditHandler.LoginAudit)
	admin.Get("/stats", statsHandler.Overview)
}
