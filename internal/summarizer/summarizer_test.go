package summarizer

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/gptube/internal/config"
	"github.com/nguyentantai21042004/gptube/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSummarizer(t *testing.T, handler http.HandlerFunc) Summarizer {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	s, err := New(config.LLMSettings{
		Provider: config.ProviderOpenAI,
		APIURL:   server.URL + "/v1/",
		Model:    "test-model",
	}, "test-key", logger.NewNop())
	require.NoError(t, err)
	return s
}

func TestOpenAISummarize(t *testing.T) {
	s := newTestSummarizer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req ChatRequest
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) {
			return
		}
		assert.Equal(t, "test-model", req.Model)
		assert.Equal(t, []Message{{Role: "user", Content: "Summarize this video:hello world\n"}}, req.Messages)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"id": "test-id",
			"object": "chat.completion",
			"choices": [{
				"index": 0,
				"message": {"role": "assistant", "content": "A short summary."},
				"finish_reason": "stop"
			}]
		}`)
	})

	got, err := s.Summarize(context.Background(), "Summarize this video", "hello world\n")
	require.NoError(t, err)
	assert.Equal(t, "A short summary.", got)
}

func TestOpenAIPlaceholder(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"api error object", http.StatusUnauthorized, `{"error": {"message": "Incorrect API key provided", "type": "invalid_request_error"}}`},
		{"api error string", http.StatusBadRequest, `{"error": "bad request"}`},
		{"no choices", http.StatusOK, `{"choices": []}`},
		{"null content", http.StatusOK, `{"choices": [{"message": {"role": "assistant", "content": null}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSummarizer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			got, err := s.Summarize(context.Background(), "p", "")
			require.NoError(t, err)
			assert.Equal(t, Placeholder, got)
		})
	}
}

func TestOpenAIEmptyAnswerIsKept(t *testing.T) {
	s := newTestSummarizer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"choices": [{"message": {"content": ""}}]}`)
	})

	got, err := s.Summarize(context.Background(), "p", "t")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestOpenAIMalformedResponse(t *testing.T) {
	s := newTestSummarizer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "<html>bad gateway</html>")
	})

	_, err := s.Summarize(context.Background(), "p", "t")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse response")
}

func TestOpenAITransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	s, err := New(config.LLMSettings{Provider: config.ProviderOpenAI, APIURL: url, Model: "m"}, "k", logger.NewNop())
	require.NoError(t, err)

	_, err = s.Summarize(context.Background(), "p", "t")
	assert.ErrorContains(t, err, "send request")
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{``, ""},
		{`null`, ""},
		{`"plain"`, "plain"},
		{`{"message": "quota exceeded"}`, "quota exceeded"},
		{`42`, "42"},
	}

	for _, tt := range tests {
		r := ChatResponse{Error: json.RawMessage(tt.raw)}
		assert.Equal(t, tt.want, r.errorMessage(), tt.raw)
	}
}

func TestNew(t *testing.T) {
	_, err := New(config.LLMSettings{Provider: config.ProviderOpenAI}, "", logger.NewNop())
	assert.Error(t, err)

	_, err = New(config.LLMSettings{Provider: "other"}, "k", logger.NewNop())
	assert.Error(t, err)

	s, err := New(config.LLMSettings{Provider: config.ProviderGemini, Model: config.DefaultGeminiModel}, "k", logger.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &geminiSummarizer{}, s)
}

func TestGeminiSummarize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/models/gemini-2.5-flash:generateContent"), r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"candidates": [{
				"content": {"role": "model", "parts": [{"text": "Gemini "}, {"text": "summary"}]}
			}]
		}`)
	}))
	defer server.Close()

	s, err := New(config.LLMSettings{
		Provider: config.ProviderGemini,
		APIURL:   server.URL,
		Model:    "gemini-2.5-flash",
	}, "k", logger.NewNop())
	require.NoError(t, err)

	got, err := s.Summarize(context.Background(), "p", "t")
	require.NoError(t, err)
	assert.Equal(t, "Gemini summary", got)
}
