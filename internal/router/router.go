package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kloppmigidemo-web/MVPAssessment3/internal/config"
	"github.com/kloppmigidemo-web/MVPAssessment3/internal/handler"
	"github.com/kloppmigidemo-web/MVPAssessment3/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	SubmissionHandler *handler.SubmissionHandler
	QuestionHandler   *handler.QuestionHandler
	Database          handler.Pinger
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/metrics", observability.MetricsHandler())

	api := app.Group("/api", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})

	v1 := api.Group("/v1")
	v1.Get("/health", handler.HealthCheck(cfg, deps.Database))

	if deps.QuestionHandler != nil {
		deps.QuestionHandler.Register(v1.Group("/questions"))
	}

	if deps.SubmissionHandler != nil {
		// /api/submit is kept for the existing web client.
		deps.SubmissionHandler.Register(api.Group("/submit"))
		deps.SubmissionHandler.Register(v1.Group("/assessments"))
	}
}
