package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/kloppmigidemo-web/MVPAssessment3/internal/assessment"
	"github.com/kloppmigidemo-web/MVPAssessment3/internal/config"
	"github.com/kloppmigidemo-web/MVPAssessment3/internal/database"
	"github.com/kloppmigidemo-web/MVPAssessment3/internal/dto"
	"github.com/kloppmigidemo-web/MVPAssessment3/internal/handler"
	"github.com/kloppmigidemo-web/MVPAssessment3/internal/middleware"
	"github.com/kloppmigidemo-web/MVPAssessment3/internal/repository"
	"github.com/kloppmigidemo-web/MVPAssessment3/internal/router"
	"github.com/kloppmigidemo-web/MVPAssessment3/internal/service"
	"github.com/kloppmigidemo-web/MVPAssessment3/pkg/mailer"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	if cfg.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Fatal().Err(err).Msg("failed to migrate database")
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to obtain sql handle")
	}
	defer sqlDB.Close()

	var delivery service.Mailer
	if cfg.EmailEnabled() {
		delivery, err = mailer.NewSendGrid(mailer.Config{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.SendGridFromEmail,
			FromName:  cfg.SendGridFromName,
			Timeout:   cfg.SendGridTimeout,
		}, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to create sendgrid mailer")
		}
	} else {
		logger.Warn().Msg("sendgrid api key not set; result emails are logged only")
		delivery = service.NewLogMailer(logger)
	}

	validate := dto.NewValidator()

	assessmentRepo := repository.NewAssessmentRepository(db)
	submissionService := service.NewSubmissionService(assessmentRepo, delivery, service.NewResultEmail(cfg.ContactPhone), validate, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger, AllowOrigins: cfg.CORSAllowOrigins})
	router.Register(app, cfg, router.Dependencies{
		SubmissionHandler: handler.NewSubmissionHandler(submissionService, logger),
		QuestionHandler:   handler.NewQuestionHandler(assessment.Questions()),
		Database:          sqlDB,
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	waitForShutdown(app, logger)
}

func waitForShutdown(app *fiber.App, logger zerolog.Logger) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}

	logger.Info().Msg("server stopped")
}
