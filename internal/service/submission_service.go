package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/datatypes"

	"github.com/kloppmigidemo-web/MVPAssessment3/internal/assessment"
	"github.com/kloppmigidemo-web/MVPAssessment3/internal/dto"
	"github.com/kloppmigidemo-web/MVPAssessment3/internal/models"
	"github.com/kloppmigidemo-web/MVPAssessment3/internal/observability"
	"github.com/kloppmigidemo-web/MVPAssessment3/internal/repository"
)

var (
	// ErrValidation indicates the payload was rejected before any side effect.
	ErrValidation = errors.New("invalid assessment submission")
	// ErrMissingFields indicates name, email or result was absent.
	ErrMissingFields = fmt.Errorf("%w: missing required fields", ErrValidation)
	// ErrPersistence indicates the record could not be stored; no email was sent.
	ErrPersistence = errors.New("assessment could not be stored")
	// ErrNotification indicates the record was stored but the email failed.
	ErrNotification = errors.New("assessment notification failed")
)

// SubmissionService stores completed assessments and emails the result.
type SubmissionService interface {
	Submit(ctx context.Context, req dto.SubmitAssessmentRequest) (dto.SubmitAssessmentResponse, error)
}

type submissionService struct {
	repo      repository.AssessmentRepository
	mailer    Mailer
	email     *ResultEmail
	validator *validator.Validate
	questions []assessment.Question
	logger    zerolog.Logger
	tracer    trace.Tracer
}

// NewSubmissionService constructs the submission workflow. A nil email
// composer uses the default contact number.
func NewSubmissionService(repo repository.AssessmentRepository, mailer Mailer, email *ResultEmail, validate *validator.Validate, logger zerolog.Logger) SubmissionService {
	if email == nil {
		email = NewResultEmail("")
	}
	if validate == nil {
		validate = dto.NewValidator()
	}
	return &submissionService{
		repo:      repo,
		mailer:    mailer,
		email:     email,
		validator: validate,
		questions: assessment.Questions(),
		logger:    logger.With().Str("component", "submission_service").Logger(),
		tracer:    otel.Tracer("github.com/kloppmigidemo-web/MVPAssessment3/internal/service/submission"),
	}
}

// Submit persists the assessment and then sends the result email. The two
// steps are not atomic: a failed email leaves the stored record in place.
func (s *submissionService) Submit(ctx context.Context, req dto.SubmitAssessmentRequest) (dto.SubmitAssessmentResponse, error) {
	ctx, span := s.tracer.Start(ctx, "assessment.submit")
	defer span.End()

	if err := s.validate(req); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation failed")
		observability.Submissions().WithLabelValues("invalid").Inc()
		return dto.SubmitAssessmentResponse{}, err
	}

	submission := models.AssessmentSubmission{
		ReferenceID:       uuid.NewString(),
		Name:              strings.TrimSpace(req.Name),
		Email:             strings.TrimSpace(req.Email),
		Phone:             strings.TrimSpace(req.Phone),
		ResultType:        req.Result,
		LeadershipScore:   req.LeadershipScore,
		TeamBuildingScore: req.TeamBuildingScore,
		CreatedAt:         time.Now().UTC(),
	}
	if req.Answers != nil {
		// map[int]bool always marshals.
		raw, _ := json.Marshal(req.Answers)
		submission.Answers = datatypes.JSON(raw)
	}

	span.SetAttributes(
		attribute.String("assessment.reference_id", submission.ReferenceID),
		attribute.String("assessment.result", submission.ResultType),
	)

	if err := s.repo.Create(ctx, &submission); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "persistence failed")
		observability.Submissions().WithLabelValues("persistence_error").Inc()
		s.logger.Error().Err(err).Str("reference_id", submission.ReferenceID).Msg("failed to store assessment")
		return dto.SubmitAssessmentResponse{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	observability.AssessmentResults().WithLabelValues(submission.ResultType).Inc()
	response := dto.SubmitAssessmentResponse{ReferenceID: submission.ReferenceID, Result: submission.ResultType}

	message := s.email.Compose(submission.Name, submission.Email, submission.ResultType)
	if err := s.mailer.Send(ctx, message); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "notification failed")
		observability.Submissions().WithLabelValues("notification_error").Inc()
		s.logger.Warn().Err(err).
			Str("reference_id", submission.ReferenceID).
			Str("email", maskEmailAddress(submission.Email)).
			Msg("assessment stored but result email failed")
		return response, fmt.Errorf("%w: %w", ErrNotification, err)
	}

	observability.Submissions().WithLabelValues("stored").Inc()
	s.logger.Info().
		Str("reference_id", submission.ReferenceID).
		Str("email", maskEmailAddress(submission.Email)).
		Str("result", submission.ResultType).
		Msg("assessment submitted")
	span.SetStatus(codes.Ok, "submitted")

	return response, nil
}

func (s *submissionService) validate(req dto.SubmitAssessmentRequest) error {
	if !req.HasRequiredFields() {
		return ErrMissingFields
	}
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	scores := req.Scores()
	if scores.Leadership > assessment.CategorySize(s.questions, assessment.CategoryLeadership) ||
		scores.TeamBuilding > assessment.CategorySize(s.questions, assessment.CategoryTeamBuilding) {
		return fmt.Errorf("%w: scores exceed the number of questions", ErrValidation)
	}

	// Without answers the submitted scores and result are stored as sent.
	if req.Answers != nil {
		result := assessment.Result(req.Result)
		outcome, err := assessment.Evaluate(s.questions, req.Answers)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrValidation, err)
		}
		if outcome.Scores != scores || outcome.Result != result {
			return fmt.Errorf("%w: answers do not match submitted scores", ErrValidation)
		}
	}

	return nil
}
