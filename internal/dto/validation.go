package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/kloppmigidemo-web/MVPAssessment3/internal/assessment"
)

// NewValidator returns a validator with the assessment-specific tags registered.
func NewValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails for empty tags or nil functions.
	_ = validate.RegisterValidation("assessment_result", func(fl validator.FieldLevel) bool {
		return assessment.Result(fl.Field().String()).Valid()
	})
	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return validate
}
