package main

import (
	"fmt"
	"os"

	"github.com/kloppmigidemo-web/MVPAssessment3/internal/cli"
)

func main() {
	rootCmd := cli.NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
