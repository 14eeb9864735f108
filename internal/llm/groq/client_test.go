package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coldmail-backend/internal/llm"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient("test-key", "llama3-70b-8192")
	require.NoError(t, err)
	c.apiURL = srv.URL
	return c
}

func TestNewClientValidation(t *testing.T) {
	_, err := NewClient("", "llama3-70b-8192")
	assert.Error(t, err)

	_, err = NewClient("key", "")
	assert.Error(t, err)

	_, err = NewClient("key", "llama3-70b-8192")
	assert.NoError(t, err)
}

func TestGenerateEmailSendsFixedParameters(t *testing.T) {
	var got chatRequest
	var auth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&got)
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "Dear hiring manager,"}},
			},
		})
	})

	out, err := c.GenerateEmail(context.Background(), llm.GenerateInput{
		JobDescription: "Go engineer at Acme",
		ResumeText:     "Ten years of Go",
	})
	require.NoError(t, err)
	assert.Equal(t, "Dear hiring manager,", out)

	assert.Equal(t, "Bearer test-key", auth)
	assert.Equal(t, "llama3-70b-8192", got.Model)
	assert.Equal(t, 500, got.MaxTokens)
	assert.InDelta(t, 0.7, got.Temperature, 0.001)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Contains(t, got.Messages[1].Content, "Job Description:\nGo engineer at Acme")
	assert.Contains(t, got.Messages[1].Content, "My Resume:\nTen years of Go")
}

func TestGenerateEmailReturnsContentVerbatim(t *testing.T) {
	// Leading and trailing whitespace must survive untouched.
	const content = "  Hello there.\n\nBest,\nAlex  "
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		})
	})

	out, err := c.GenerateEmail(context.Background(), llm.GenerateInput{JobDescription: "jd", ResumeText: "cv"})
	require.NoError(t, err)
	assert.Equal(t, content, out)
}

func TestGenerateEmailAPIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "invalid api key", "type": "invalid_request_error"},
		})
	})

	_, err := c.GenerateEmail(context.Background(), llm.GenerateInput{JobDescription: "jd", ResumeText: "cv"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestGenerateEmailNonJSONError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream unavailable"))
	})

	_, err := c.GenerateEmail(context.Background(), llm.GenerateInput{JobDescription: "jd", ResumeText: "cv"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestGenerateEmailMissingChoices(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	})

	_, err := c.GenerateEmail(context.Background(), llm.GenerateInput{JobDescription: "jd", ResumeText: "cv"})
	assert.ErrorContains(t, err, "missing choices")
}

func TestGenerateEmailEmptyContent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "   "}},
			},
		})
	})

	_, err := c.GenerateEmail(context.Background(), llm.GenerateInput{JobDescription: "jd", ResumeText: "cv"})
	assert.ErrorContains(t, err, "empty content")
}
