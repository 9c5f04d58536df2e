package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kloppmigidemo-web/MVPAssessment3/internal/assessment"
	"github.com/kloppmigidemo-web/MVPAssessment3/internal/dto"
	"github.com/kloppmigidemo-web/MVPAssessment3/internal/utils"
)

// QuestionHandler serves the fixed question catalogue.
type QuestionHandler struct {
	questions []dto.QuestionResponse
}

// NewQuestionHandler constructs a handler over the given questions.
func NewQuestionHandler(questions []assessment.Question) *QuestionHandler {
	return &QuestionHandler{questions: dto.NewQuestionResponseSlice(questions)}
}

// Register wires question routes.
func (h *QuestionHandler) Register(router fiber.Router) {
	router.Get("", h.list)
}

func (h *QuestionHandler) list(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "questions retrieved", h.questions)
}
