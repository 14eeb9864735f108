package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"coldmail-backend/internal/credentials"
	"coldmail-backend/internal/emails"
	"coldmail-backend/internal/shared/config"
)

var (
	resumePath string
	apiKey     string
)

var generateCmd = &cobra.Command{
	Use:   "generate <jd-file>",
	Short: "Generate a cold email from a resume and a job description",
	Long: `Generate a personalized cold outreach email.

The job description is read from the given file; the resume must be a PDF.

Example:
  coldmail generate jd.txt --resume resume.pdf
  coldmail generate jd.txt --resume resume.pdf --api-key gsk_...`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&resumePath, "resume", "", "Path to the PDF resume (required)")
	generateCmd.Flags().StringVar(&apiKey, "api-key", "", "Groq API key (overrides all other sources)")
	_ = generateCmd.MarkFlagRequired("resume")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	jobDescription, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read job description: %w", err)
	}
	resume, err := os.ReadFile(resumePath)
	if err != nil {
		return fmt.Errorf("read resume: %w", err)
	}

	resolver := credentials.NewResolver(cfg.SecretsFile, promptForKey(cmd))
	svc := emails.NewService(resolver, cfg.LLMModel)

	email, err := svc.Generate(context.Background(), emails.GenerateRequest{
		Resume:         resume,
		JobDescription: string(jobDescription),
		APIKey:         apiKey,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), email)
	return nil
}

// promptForKey is the terminal step of credential resolution: ask once on
// stdin and use whatever is entered.
func promptForKey(cmd *cobra.Command) credentials.PromptFunc {
	return func() string {
		fmt.Fprint(cmd.ErrOrStderr(), "Groq API key not found. Enter your API key: ")
		reader := bufio.NewReader(cmd.InOrStdin())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return ""
		}
		return strings.TrimSpace(line)
	}
}
