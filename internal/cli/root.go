// Package cli implements the assess terminal client.
package cli

import (
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kloppmigidemo-web/MVPAssessment3/internal/assessment"
)

// Version is injected at build time via -ldflags
var Version = "dev"

const defaultServerURL = "http://localhost:8080"

// NewRootCommand creates the root cobra command for assess.
func NewRootCommand() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("ASSESSMENT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("contact.phone", assessment.DefaultContactPhone)

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Leadership assessment terminal client",
		Long: `Assess walks you through the eight question leadership assessment,
scores your answers locally and submits the result to the assessment API,
which stores it and emails you the recommendation.`,
		Version:      Version,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("server", defaultServerURL, "Assessment API base URL (env ASSESSMENT_SERVER_URL)")
	cmd.PersistentFlags().Duration("timeout", 15*time.Second, "Submission timeout (env ASSESSMENT_SERVER_TIMEOUT)")
	_ = v.BindPFlag("server.url", cmd.PersistentFlags().Lookup("server"))
	_ = v.BindPFlag("server.timeout", cmd.PersistentFlags().Lookup("timeout"))

	cmd.AddCommand(newRunCommand(v))
	cmd.AddCommand(newQuestionsCommand())

	return cmd
}
