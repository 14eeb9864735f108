// Package cli implements the coldmail command line interface.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "coldmail",
	Short: "Generate cold outreach emails for job applications",
	Long: `coldmail turns a PDF resume and a job description into a personalized
cold outreach email using the Groq API.

The API key is resolved in order from: --api-key, the GROQ_API_KEY
environment variable, the secrets file, and finally an interactive prompt.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
