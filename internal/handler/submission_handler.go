package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/kloppmigidemo-web/MVPAssessment3/internal/dto"
	"github.com/kloppmigidemo-web/MVPAssessment3/internal/service"
	"github.com/kloppmigidemo-web/MVPAssessment3/internal/utils"
)

const (
	msgSubmitted          = "Assessment submitted successfully"
	msgMissingFields      = "Missing required fields"
	msgInvalidPayload     = "invalid payload"
	msgPersistenceFailed  = "Database insertion failed"
	msgNotificationFailed = "Assessment stored but the confirmation email could not be sent"
	msgInternalError      = "Internal Server Error"
)

// SubmissionHandler accepts completed assessments.
type SubmissionHandler struct {
	service service.SubmissionService
	logger  zerolog.Logger
}

// NewSubmissionHandler constructs a submission handler.
func NewSubmissionHandler(service service.SubmissionService, logger zerolog.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		service: service,
		logger:  logger.With().Str("component", "submission_handler").Logger(),
	}
}

// Register wires submission routes. Only POST is accepted.
func (h *SubmissionHandler) Register(router fiber.Router) {
	router.Post("", h.submit)
	router.All("", methodNotAllowed)
}

func (h *SubmissionHandler) submit(c *fiber.Ctx) error {
	var payload dto.SubmitAssessmentRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, msgInvalidPayload)
	}

	logger := requestLogger(h.logger, c)

	response, err := h.service.Submit(c.UserContext(), payload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			return utils.SendError(c, fiber.StatusBadRequest, msgMissingFields)
		case errors.Is(err, service.ErrValidation):
			return utils.SendError(c, fiber.StatusBadRequest, validationMessage(err))
		case errors.Is(err, service.ErrPersistence):
			logger.Error().Err(err).Msg("assessment submission not stored")
			return utils.SendError(c, fiber.StatusInternalServerError, msgPersistenceFailed)
		case errors.Is(err, service.ErrNotification):
			logger.Error().Err(err).Str("reference_id", response.ReferenceID).Msg("assessment stored without notification")
			return utils.SendError(c, fiber.StatusInternalServerError, msgNotificationFailed)
		default:
			logger.Error().Err(err).Msg("failed to process assessment submission")
			return utils.SendError(c, fiber.StatusInternalServerError, msgInternalError)
		}
	}

	return utils.SendSuccess(c, msgSubmitted, response)
}
