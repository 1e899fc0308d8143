package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/careerfit/screening/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, auth *handlers.AuthHandler, health *handlers.HealthHandler, scr *handlers.ScreeningHandler, history *handlers.HistoryHandler, requireAuth, optionalAuth fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)

	// Resume screening: anonymous uploads allowed, history attaches to a token
	sg := v1.Group("/screening")
	sg.Post("/analyze", optionalAuth, scr.Analyze)

	// Stored screening runs, owner-scoped
	hg := v1.Group("/screenings", requireAuth)
	hg.Get("/", history.List)
	hg.Get("/:id", history.Get)
}
