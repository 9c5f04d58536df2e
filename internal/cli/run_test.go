package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/kloppmigidemo-web/MVPAssessment3/internal/assessment"
	"github.com/kloppmigidemo-web/MVPAssessment3/internal/dto"
)

type submitterStub struct {
	requests []dto.SubmitAssessmentRequest
	err      error
}

func (s *submitterStub) Submit(req dto.SubmitAssessmentRequest) (dto.SubmitAssessmentResponse, error) {
	s.requests = append(s.requests, req)
	if s.err != nil {
		return dto.SubmitAssessmentResponse{}, s.err
	}
	return dto.SubmitAssessmentResponse{ReferenceID: "ref-123", Result: req.Result}, nil
}

func script(lines ...string) *strings.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func init() {
	color.NoColor = true
}

func TestRunAssessmentSubmitsResult(t *testing.T) {
	stub := &submitterStub{}
	var out bytes.Buffer

	in := script("Jane Doe", "jane@example.com", "555-0100", "y", "n", "n", "n", "y", "y", "n", "n")
	require.NoError(t, runAssessment(in, &out, stub, "755-25-25"))

	require.Len(t, stub.requests, 1)
	req := stub.requests[0]
	require.Equal(t, "Jane Doe", req.Name)
	require.Equal(t, "jane@example.com", req.Email)
	require.Equal(t, "555-0100", req.Phone)
	require.Equal(t, 1, req.LeadershipScore)
	require.Equal(t, 2, req.TeamBuildingScore)
	require.Equal(t, assessment.ResultTeamBuildingTraining.String(), req.Result)
	require.Len(t, req.Answers, 8)
	require.True(t, req.Answers[5])

	output := out.String()
	require.Contains(t, output, "Question 1 of 8")
	require.Contains(t, output, "Question 8 of 8")
	require.Contains(t, output, "Team-Building Training")
	require.Contains(t, output, "An email has been sent to jane@example.com")
	require.Contains(t, output, "Please contact 755-25-25")
	require.Contains(t, output, "Reference: ref-123")
	require.NotContains(t, output, saveFailedNotice)
}

func TestRunAssessmentShowsResultWhenSubmissionFails(t *testing.T) {
	stub := &submitterStub{err: errors.New("connection refused")}
	var out bytes.Buffer

	in := script("Jane", "jane@example.com", "555", "y", "y", "y", "y", "n", "n", "n", "n")
	require.NoError(t, runAssessment(in, &out, stub, "755-25-25"))

	output := out.String()
	require.Contains(t, output, "Assessment Complete")
	require.Contains(t, output, assessment.ResultLeadershipTraining.String())
	require.Contains(t, output, saveFailedNotice)
	require.NotContains(t, output, "An email has been sent")
}

func TestRunAssessmentRepromptsInvalidInput(t *testing.T) {
	stub := &submitterStub{}
	var out bytes.Buffer

	in := script(
		"", "", "",
		"Jane", "jane@example.com", "555",
		"maybe", "n", "no", "N", "NO", "n", "n", "n", "n",
	)
	require.NoError(t, runAssessment(in, &out, stub, "755-25-25"))

	output := out.String()
	require.Contains(t, output, "name, email, phone required")
	require.Contains(t, output, "Please answer y or n.")
	require.Len(t, stub.requests, 1)
	require.Equal(t, assessment.ResultBoth.String(), stub.requests[0].Result)
}

func TestRunAssessmentDryRun(t *testing.T) {
	var out bytes.Buffer

	in := script("Jane", "jane@example.com", "555", "y", "y", "y", "y", "y", "y", "y", "y")
	require.NoError(t, runAssessment(in, &out, nil, "755-25-25"))

	output := out.String()
	require.Contains(t, output, assessment.ResultBoth.String())
	require.NotContains(t, output, "An email has been sent")
	require.NotContains(t, output, saveFailedNotice)
}

func TestRunAssessmentInputClosed(t *testing.T) {
	var out bytes.Buffer

	err := runAssessment(script("Jane", "jane@example.com", "555", "y"), &out, &submitterStub{}, "755-25-25")
	require.ErrorIs(t, err, errInputClosed)
}

func TestProgressBar(t *testing.T) {
	require.Equal(t, "[------------------------]   0%", progressBar(0))
	require.Equal(t, "[############------------]  50%", progressBar(50))
	require.Equal(t, "[########################] 100%", progressBar(100))
}
