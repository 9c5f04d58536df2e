package dto

import (
	"strings"

	"github.com/kloppmigidemo-web/MVPAssessment3/internal/assessment"
)

// SubmitAssessmentRequest is the payload posted once an assessment is finished.
type SubmitAssessmentRequest struct {
	Name              string               `json:"name" validate:"required,notblank,max=255"`
	Email             string               `json:"email" validate:"required,notblank,max=320"`
	Phone             string               `json:"phone" validate:"max=64"`
	Result            string               `json:"result" validate:"required,assessment_result"`
	LeadershipScore   int                  `json:"leadershipScore" validate:"min=0"`
	TeamBuildingScore int                  `json:"teamBuildingScore" validate:"min=0"`
	Answers           assessment.AnswerSet `json:"answers,omitempty"`
}

// HasRequiredFields reports whether name, email and result are all present.
func (r SubmitAssessmentRequest) HasRequiredFields() bool {
	return strings.TrimSpace(r.Name) != "" &&
		strings.TrimSpace(r.Email) != "" &&
		strings.TrimSpace(r.Result) != ""
}

// Scores returns the submitted scores.
func (r SubmitAssessmentRequest) Scores() assessment.Scores {
	return assessment.Scores{Leadership: r.LeadershipScore, TeamBuilding: r.TeamBuildingScore}
}

// SubmitAssessmentResponse is returned after the record is stored and the email sent.
type SubmitAssessmentResponse struct {
	ReferenceID string `json:"reference_id"`
	Result      string `json:"result"`
}

// QuestionResponse describes a question returned to clients.
type QuestionResponse struct {
	ID       int    `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category"`
}

// NewQuestionResponseSlice converts the question table into DTOs.
func NewQuestionResponseSlice(questions []assessment.Question) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, QuestionResponse{ID: q.ID, Text: q.Text, Category: string(q.Category)})
	}
	return out
}
