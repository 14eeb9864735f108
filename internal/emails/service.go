package emails

import (
	"context"
	"strings"

	"coldmail-backend/internal/credentials"
	"coldmail-backend/internal/extract"
	"coldmail-backend/internal/llm"
	"coldmail-backend/internal/llm/groq"
	"coldmail-backend/internal/shared/telemetry"
)

// ClientFactory builds an LLM client bound to a resolved credential.
type ClientFactory func(apiKey string) (llm.Client, error)

// ExtractFunc turns raw resume bytes into plain text.
type ExtractFunc func(data []byte) (string, error)

// Service contains the generation flow: resolve a credential, extract the
// resume text, issue one completion request. The flow is strictly linear
// with short-circuit exits and no retries.
type Service struct {
	Resolver  *credentials.Resolver
	Extract   ExtractFunc
	NewClient ClientFactory
}

// NewService constructs a Service wired to the PDF extractor and the Groq
// client for the given model.
func NewService(resolver *credentials.Resolver, model string) *Service {
	return &Service{
		Resolver: resolver,
		Extract:  extract.PDF,
		NewClient: func(apiKey string) (llm.Client, error) {
			return groq.NewClient(apiKey, model)
		},
	}
}

// GenerateRequest carries the request-scoped inputs for one generation.
// Nothing here outlives the request.
type GenerateRequest struct {
	Resume         []byte
	JobDescription string
	APIKey         string
}

// Generate produces a cold outreach email or one of the package's failure
// kinds. No network call is made unless a credential resolves and the resume
// text extracts.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	if strings.TrimSpace(req.JobDescription) == "" {
		return "", ErrInvalidInput
	}
	if len(req.Resume) == 0 {
		return "", ErrInvalidInput
	}

	apiKey, ok := s.Resolver.Resolve(req.APIKey)
	if !ok {
		return "", ErrCredentialAbsent
	}

	resumeText, err := s.Extract(req.Resume)
	if err != nil {
		telemetry.Error("emails.extract.failed", map[string]any{
			"err":        err.Error(),
			"size_bytes": len(req.Resume),
		})
		return "", ErrExtractionFailed
	}

	client, err := s.NewClient(apiKey)
	if err != nil {
		telemetry.Error("emails.client.failed", map[string]any{"err": err.Error()})
		return "", ErrRemoteCall
	}

	email, err := client.GenerateEmail(ctx, llm.GenerateInput{
		JobDescription: req.JobDescription,
		ResumeText:     resumeText,
	})
	if err != nil {
		telemetry.Error("emails.generate.failed", map[string]any{"err": err.Error()})
		return "", ErrRemoteCall
	}

	return email, nil
}
