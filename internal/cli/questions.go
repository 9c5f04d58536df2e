package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kloppmigidemo-web/MVPAssessment3/internal/assessment"
)

func newQuestionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "questions",
		Short: "List the assessment questions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			cyan := color.New(color.FgCyan, color.Bold)

			var current assessment.Category
			for _, q := range assessment.Questions() {
				if q.Category != current {
					current = q.Category
					cyan.Fprintln(out, categoryLabel(current))
				}
				fmt.Fprintf(out, "  %d. %s\n", q.ID, q.Text)
			}
			return nil
		},
	}
}

func categoryLabel(category assessment.Category) string {
	return strings.ReplaceAll(string(category), "-", " ")
}
