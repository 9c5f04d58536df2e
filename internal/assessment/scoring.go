package assessment

import (
	"fmt"
	"sort"
)

// Result is the training recommendation derived from an answer set.
type Result string

const (
	ResultLeadershipTraining   Result = "Leadership Training"
	ResultTeamBuildingTraining Result = "Team-Building Training"
	ResultBoth                 Result = "Both Leadership and Team-Building Training"
)

// Valid reports whether r is one of the known recommendations.
func (r Result) Valid() bool {
	switch r {
	case ResultLeadershipTraining, ResultTeamBuildingTraining, ResultBoth:
		return true
	}
	return false
}

func (r Result) String() string {
	return string(r)
}

// ParseResult converts a wire value into a Result.
func ParseResult(value string) (Result, error) {
	r := Result(value)
	if !r.Valid() {
		return "", fmt.Errorf("unknown assessment result %q", value)
	}
	return r, nil
}

// AnswerSet maps question id to the Yes (true) / No (false) answer.
type AnswerSet map[int]bool

// Clone returns an independent copy of the answer set.
func (a AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(a))
	for id, value := range a {
		out[id] = value
	}
	return out
}

// YesCount returns the number of Yes answers.
func (a AnswerSet) YesCount() int {
	count := 0
	for _, value := range a {
		if value {
			count++
		}
	}
	return count
}

// Validate checks that the set holds exactly one answer for every question.
func (a AnswerSet) Validate(questions []Question) error {
	known := make(map[int]struct{}, len(questions))
	for _, q := range questions {
		known[q.ID] = struct{}{}
	}

	var unknown []int
	for id := range a {
		if _, ok := known[id]; !ok {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) > 0 {
		sort.Ints(unknown)
		return fmt.Errorf("%w: %v", ErrUnknownQuestion, unknown)
	}

	var missing []int
	for _, q := range questions {
		if _, ok := a[q.ID]; !ok {
			missing = append(missing, q.ID)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %v", ErrIncompleteAnswers, missing)
	}

	return nil
}

// Scores holds the Yes counts per category.
type Scores struct {
	Leadership   int `json:"leadership_score"`
	TeamBuilding int `json:"team_building_score"`
}

// Outcome bundles the scores with the derived recommendation.
type Outcome struct {
	Scores Scores `json:"scores"`
	Result Result `json:"result"`
}

// Score counts Yes answers per category. Answers for unknown ids are ignored
// and missing answers count as No.
func Score(questions []Question, answers AnswerSet) Scores {
	var scores Scores
	for _, q := range questions {
		if !answers[q.ID] {
			continue
		}
		if q.Category == CategoryLeadership {
			scores.Leadership++
		} else {
			scores.TeamBuilding++
		}
	}
	return scores
}

// Classify applies the tie-break: the larger side wins, equal scores
// (including 0/0) recommend both.
func Classify(scores Scores) Result {
	switch {
	case scores.Leadership > scores.TeamBuilding:
		return ResultLeadershipTraining
	case scores.TeamBuilding > scores.Leadership:
		return ResultTeamBuildingTraining
	default:
		return ResultBoth
	}
}

// ComputeResult scores the answers against the question table and classifies them.
func ComputeResult(questions []Question, answers AnswerSet) Result {
	return Classify(Score(questions, answers))
}

// Evaluate validates that answers is complete before scoring it.
func Evaluate(questions []Question, answers AnswerSet) (Outcome, error) {
	if err := answers.Validate(questions); err != nil {
		return Outcome{}, err
	}
	scores := Score(questions, answers)
	return Outcome{Scores: scores, Result: Classify(scores)}, nil
}
