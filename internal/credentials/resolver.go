// Package credentials resolves the API key used for outbound completion
// requests. Resolution is a one-shot, priority-ordered lookup with no
// validation, no caching, and no side effects beyond a warning log when
// every source comes up empty.
package credentials

import (
	"strings"

	"coldmail-backend/internal/shared/telemetry"
)

// EnvKey is the environment variable holding the Groq API key. The secrets
// file uses the same key name.
const EnvKey = "GROQ_API_KEY"

// Source yields a candidate credential. An empty result means the source has
// nothing to offer and the next source is consulted.
type Source func() string

// PromptFunc asks the user for a key interactively. It is the terminal step
// of resolution and only wired on surfaces that have a terminal (the CLI);
// whatever the user enters is used as-is, including nothing.
type PromptFunc func() string

// Resolver locates a credential from a fixed priority order: explicit value,
// environment variable, platform secrets file, interactive prompt.
type Resolver struct {
	Sources []Source
	Prompt  PromptFunc
}

// NewResolver builds a resolver over the standard source order.
func NewResolver(secretsFile string, prompt PromptFunc) *Resolver {
	return &Resolver{
		Sources: []Source{
			FromEnv(EnvKey),
			FromSecretsFile(secretsFile, EnvKey),
		},
		Prompt: prompt,
	}
}

// Resolve returns the first non-empty credential, starting with the explicit
// value. ok is false when every source, including the prompt, yields nothing;
// callers must not attempt network calls in that case.
func (r *Resolver) Resolve(explicit string) (string, bool) {
	if key := strings.TrimSpace(explicit); key != "" {
		return key, true
	}
	for _, src := range r.Sources {
		if key := strings.TrimSpace(src()); key != "" {
			return key, true
		}
	}
	if r.Prompt != nil {
		if key := strings.TrimSpace(r.Prompt()); key != "" {
			return key, true
		}
	}
	telemetry.Warn("credentials.absent", map[string]any{
		"env_key": EnvKey,
	})
	return "", false
}
