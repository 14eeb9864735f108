package llm

import "context"

// Client abstracts LLM providers for cold email generation.
type Client interface {
	GenerateEmail(ctx context.Context, input GenerateInput) (string, error)
}

// GenerateInput captures the inputs needed for one email generation.
type GenerateInput struct {
	JobDescription string
	ResumeText     string
}
