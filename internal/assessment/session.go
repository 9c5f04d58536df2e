package assessment

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation indicates missing or empty user details.
	ErrValidation = errors.New("user details incomplete")
	// ErrOutOfRange indicates an answer was given while no question is active.
	ErrOutOfRange = errors.New("no question is active")
	// ErrInvalidTransition indicates an operation not allowed in the current phase.
	ErrInvalidTransition = errors.New("invalid assessment transition")
	// ErrIncompleteAnswers indicates an answer set without an entry for every question.
	ErrIncompleteAnswers = errors.New("answer set incomplete")
	// ErrUnknownQuestion indicates an answer for an id outside the question set.
	ErrUnknownQuestion = errors.New("answer for unknown question")
)

// Phase enumerates the states of a session.
type Phase int

const (
	PhaseCollectingDetails Phase = iota
	PhaseAskingQuestion
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseCollectingDetails:
		return "collecting_details"
	case PhaseAskingQuestion:
		return "asking_question"
	case PhaseFinished:
		return "finished"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// State is the position of a session. Question is the 1-based index of the
// active question and is only meaningful in PhaseAskingQuestion.
type State struct {
	Phase    Phase
	Question int
}

// UserDetails are collected before the first question is shown.
type UserDetails struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Validate requires every field to be non-blank.
func (d UserDetails) Validate() error {
	var missing []string
	if strings.TrimSpace(d.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(d.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(d.Phone) == "" {
		missing = append(missing, "phone")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s required", ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}

// Finalizer receives a completed assessment exactly once.
type Finalizer interface {
	Finalize(details UserDetails, answers AnswerSet, outcome Outcome) error
}

// FinalizerFunc adapts a function to the Finalizer interface.
type FinalizerFunc func(details UserDetails, answers AnswerSet, outcome Outcome) error

// Finalize calls f.
func (f FinalizerFunc) Finalize(details UserDetails, answers AnswerSet, outcome Outcome) error {
	return f(details, answers, outcome)
}

// Session walks one user through the question set. A Session is owned by a
// single caller and is not safe for concurrent use.
type Session struct {
	questions []Question
	finalizer Finalizer
	state     State
	details   UserDetails
	answers   AnswerSet
	outcome   *Outcome
}

// NewSession starts a session over the given questions. finalizer may be nil.
func NewSession(questions []Question, finalizer Finalizer) *Session {
	qs := make([]Question, len(questions))
	copy(qs, questions)
	return &Session{
		questions: qs,
		finalizer: finalizer,
		state:     State{Phase: PhaseCollectingDetails},
		answers:   make(AnswerSet, len(qs)),
	}
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Step returns the numeric step: 0 while collecting details, n while
// question n is active and len(questions)+1 once finished.
func (s *Session) Step() int {
	switch s.state.Phase {
	case PhaseAskingQuestion:
		return s.state.Question
	case PhaseFinished:
		return len(s.questions) + 1
	default:
		return 0
	}
}

// Progress returns the completion percentage shown to the user.
func (s *Session) Progress() float64 {
	total := len(s.questions) + 1
	progress := float64(s.Step()) / float64(total) * 100
	if progress > 100 {
		return 100
	}
	return progress
}

// TotalQuestions returns the size of the question set.
func (s *Session) TotalQuestions() int {
	return len(s.questions)
}

// SubmitUserDetails records the details and moves to the first question.
func (s *Session) SubmitUserDetails(details UserDetails) error {
	if s.state.Phase != PhaseCollectingDetails {
		return fmt.Errorf("%w: details already submitted", ErrInvalidTransition)
	}
	if err := details.Validate(); err != nil {
		return err
	}

	s.details = UserDetails{
		Name:  strings.TrimSpace(details.Name),
		Email: strings.TrimSpace(details.Email),
		Phone: strings.TrimSpace(details.Phone),
	}

	if len(s.questions) == 0 {
		return s.finish()
	}
	s.state = State{Phase: PhaseAskingQuestion, Question: 1}
	return nil
}

// CurrentQuestion returns the active question, if any.
func (s *Session) CurrentQuestion() (Question, bool) {
	if s.state.Phase != PhaseAskingQuestion {
		return Question{}, false
	}
	return s.questions[s.state.Question-1], true
}

// AnswerCurrentQuestion records the answer for the active question and
// advances. Answering the last question finishes the session and hands the
// outcome to the finalizer; the finalizer's error is returned as is.
func (s *Session) AnswerCurrentQuestion(value bool) error {
	if s.state.Phase != PhaseAskingQuestion {
		return fmt.Errorf("%w: step %d", ErrOutOfRange, s.Step())
	}

	q := s.questions[s.state.Question-1]
	s.answers[q.ID] = value

	if s.state.Question < len(s.questions) {
		s.state.Question++
		return nil
	}
	return s.finish()
}

func (s *Session) finish() error {
	s.state = State{Phase: PhaseFinished}

	outcome, err := Evaluate(s.questions, s.answers)
	if err != nil {
		return err
	}
	s.outcome = &outcome

	if s.finalizer == nil {
		return nil
	}
	return s.finalizer.Finalize(s.details, s.answers.Clone(), outcome)
}

// Details returns the submitted user details.
func (s *Session) Details() UserDetails {
	return s.details
}

// Answers returns a copy of the answers recorded so far.
func (s *Session) Answers() AnswerSet {
	return s.answers.Clone()
}

// Outcome returns the computed outcome once the session has finished.
func (s *Session) Outcome() (Outcome, bool) {
	if s.outcome == nil {
		return Outcome{}, false
	}
	return *s.outcome, true
}
