package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/kloppmigidemo-web/MVPAssessment3/internal/middleware"
	"github.com/kloppmigidemo-web/MVPAssessment3/internal/service"
	"github.com/kloppmigidemo-web/MVPAssessment3/internal/utils"
)

func methodNotAllowed(c *fiber.Ctx) error {
	c.Set(fiber.HeaderAllow, fiber.MethodPost)
	return utils.SendError(c, fiber.StatusMethodNotAllowed, "Method Not Allowed")
}

func requestLogger(base zerolog.Logger, c *fiber.Ctx) *zerolog.Logger {
	logger := base
	if c != nil {
		if correlation := middleware.GetCorrelationID(c); correlation != "" {
			logger = base.With().Str("correlation_id", correlation).Logger()
		}
	}
	return &logger
}

// validationMessage turns a validation failure into a client-facing message.
func validationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			fields = append(fields, jsonFieldName(fieldErr.Field()))
		}
		return fmt.Sprintf("invalid fields: %s", strings.Join(fields, ", "))
	}

	message := err.Error()
	prefix := service.ErrValidation.Error() + ": "
	return strings.TrimPrefix(message, prefix)
}

func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}
