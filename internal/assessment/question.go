package assessment

// DefaultContactPhone is the number shown with every result.
const DefaultContactPhone = "755-25-25"

// Category groups questions for scoring.
type Category string

const (
	CategoryLeadership   Category = "Leadership-Oriented"
	CategoryTeamBuilding Category = "Team-Building-Oriented"
)

// Question is a single yes/no prompt of the assessment.
type Question struct {
	ID       int      `json:"id"`
	Text     string   `json:"text"`
	Category Category `json:"category"`
}

var questions = []Question{
	{ID: 1, Text: "Do you struggle to set clear goals and expectations for your team?", Category: CategoryLeadership},
	{ID: 2, Text: "Do you find it difficult to adapt your leadership style to different personalities or situations?", Category: CategoryLeadership},
	{ID: 3, Text: "Do you hesitate when making decisions that affect the whole team?", Category: CategoryLeadership},
	{ID: 4, Text: "Do you often avoid giving constructive feedback because you worry about conflict?", Category: CategoryLeadership},
	{ID: 5, Text: "Do team members frequently misunderstand each other or miscommunicate?", Category: CategoryTeamBuilding},
	{ID: 6, Text: "Do you notice low trust or lack of cohesion among team members?", Category: CategoryTeamBuilding},
	{ID: 7, Text: "Do conflicts between team members often remain unresolved or escalate?", Category: CategoryTeamBuilding},
	{ID: 8, Text: "Do projects regularly stall because collaboration breaks down?", Category: CategoryTeamBuilding},
}

// Questions returns a copy of the fixed, ordered question set.
func Questions() []Question {
	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}

// CategorySize reports how many questions belong to the category.
func CategorySize(questions []Question, category Category) int {
	count := 0
	for _, q := range questions {
		if q.Category == category {
			count++
		}
	}
	return count
}
