package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kloppmigidemo-web/MVPAssessment3/internal/assessment"
	"github.com/kloppmigidemo-web/MVPAssessment3/internal/client"
	"github.com/kloppmigidemo-web/MVPAssessment3/internal/dto"
)

const (
	progressWidth    = 24
	saveFailedNotice = "There was an error saving your results. However, your assessment is complete."
)

var errInputClosed = errors.New("input closed before the assessment finished")

// Submitter delivers a finished assessment.
type Submitter interface {
	Submit(req dto.SubmitAssessmentRequest) (dto.SubmitAssessmentResponse, error)
}

func newRunCommand(v *viper.Viper) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Take the leadership assessment",
		Long: `Run asks for your name, email and phone, then eight yes/no questions.
The result is shown as soon as the last question is answered and is
submitted to the assessment API unless --dry-run is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var submitter Submitter
			if !dryRun {
				submitter = client.New(v.GetString("server.url"), v.GetDuration("server.timeout"))
			}
			return runAssessment(cmd.InOrStdin(), cmd.OutOrStdout(), submitter, v.GetString("contact.phone"))
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Score locally without submitting")

	return cmd
}

// runAssessment drives one session over in/out. A failed submission never
// hides the result; it only adds a notice.
func runAssessment(in io.Reader, out io.Writer, submitter Submitter, contactPhone string) error {
	cyan := color.New(color.FgCyan, color.Bold)
	green := color.New(color.FgGreen, color.Bold)
	yellow := color.New(color.FgYellow)
	red := color.New(color.FgRed)
	gray := color.New(color.FgHiBlack)

	p := &prompter{scanner: bufio.NewScanner(in), out: out}

	var reference string
	session := assessment.NewSession(assessment.Questions(), assessment.FinalizerFunc(
		func(details assessment.UserDetails, answers assessment.AnswerSet, outcome assessment.Outcome) error {
			if submitter == nil {
				return nil
			}
			resp, err := submitter.Submit(newSubmitRequest(details, answers, outcome))
			if err != nil {
				return err
			}
			reference = resp.ReferenceID
			return nil
		}))

	cyan.Fprintln(out, "Leadership Assessment")
	fmt.Fprintln(out, "Enter your details to begin the evaluation.")

	for session.State().Phase == assessment.PhaseCollectingDetails {
		details, err := p.details()
		if err != nil {
			return err
		}
		if err := session.SubmitUserDetails(details); err != nil {
			if errors.Is(err, assessment.ErrValidation) {
				yellow.Fprintf(out, "%v\n", err)
				continue
			}
			return err
		}
	}

	var submitErr error
	for session.State().Phase == assessment.PhaseAskingQuestion {
		q, _ := session.CurrentQuestion()

		fmt.Fprintln(out)
		gray.Fprintln(out, progressBar(session.Progress()))
		cyan.Fprintln(out, strings.ToUpper(categoryLabel(q.Category)))
		fmt.Fprintln(out, q.Text)
		gray.Fprintf(out, "Question %d of %d\n", session.Step(), session.TotalQuestions())

		answer, err := p.yesNo()
		if err != nil {
			return err
		}
		if err := session.AnswerCurrentQuestion(answer); err != nil {
			submitErr = err
		}
	}

	outcome, ok := session.Outcome()
	if !ok {
		return fmt.Errorf("assessment finished without a result: %w", submitErr)
	}
	details := session.Details()

	fmt.Fprintln(out)
	green.Fprintln(out, "Assessment Complete")
	fmt.Fprintf(out, "Thank you, %s. We have analyzed your answers.\n\n", details.Name)
	fmt.Fprintln(out, "Recommended Focus:")
	green.Fprintf(out, "  %s\n", outcome.Result)
	gray.Fprintf(out, "  Leadership %d, Team Building %d\n\n", outcome.Scores.Leadership, outcome.Scores.TeamBuilding)

	fmt.Fprintln(out, "Next Steps:")
	if submitter != nil && submitErr == nil {
		fmt.Fprintf(out, "An email has been sent to %s with these details.\n", details.Email)
	}
	fmt.Fprintf(out, "Please contact %s for more information regarding the training program.\n", contactPhone)
	if reference != "" {
		gray.Fprintf(out, "Reference: %s\n", reference)
	}

	if submitErr != nil {
		fmt.Fprintln(out)
		red.Fprintln(out, "System Notice:")
		red.Fprintln(out, saveFailedNotice)
	}

	return nil
}

func newSubmitRequest(details assessment.UserDetails, answers assessment.AnswerSet, outcome assessment.Outcome) dto.SubmitAssessmentRequest {
	return dto.SubmitAssessmentRequest{
		Name:              details.Name,
		Email:             details.Email,
		Phone:             details.Phone,
		Result:            outcome.Result.String(),
		LeadershipScore:   outcome.Scores.Leadership,
		TeamBuildingScore: outcome.Scores.TeamBuilding,
		Answers:           answers,
	}
}

func progressBar(percent float64) string {
	filled := int(percent / 100 * progressWidth)
	if filled > progressWidth {
		filled = progressWidth
	}
	return fmt.Sprintf("[%s%s] %3.0f%%", strings.Repeat("#", filled), strings.Repeat("-", progressWidth-filled), percent)
}

type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func (p *prompter) ask(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

func (p *prompter) details() (assessment.UserDetails, error) {
	var details assessment.UserDetails
	var err error

	if details.Name, err = p.ask("Full Name"); err != nil {
		return details, err
	}
	if details.Email, err = p.ask("Email Address"); err != nil {
		return details, err
	}
	if details.Phone, err = p.ask("Phone Number"); err != nil {
		return details, err
	}
	return details, nil
}

func (p *prompter) yesNo() (bool, error) {
	for {
		response, err := p.ask("Yes or No [y/n]")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(response) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "Please answer y or n.")
	}
}
