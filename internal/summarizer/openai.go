package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/nguyentantai21042004/gptube/internal/logger"
)

type openAISummarizer struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	logger     logger.Logger
}

// Summarize sends a single-turn chat completion request. An error reported
// by the API is logged and the placeholder is returned instead of failing.
func (s *openAISummarizer) Summarize(ctx context.Context, prompt, text string) (string, error) {
	s.logger.Debug(ctx, "Sending text to %s...", s.model)

	payload, err := json.Marshal(ChatRequest{
		Model:    s.model,
		Messages: []Message{{Role: "user", Content: buildContent(prompt, text)}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var chat ChatResponse
	if err := json.Unmarshal(body, &chat); err != nil {
		return "", fmt.Errorf("parse response (status %d): %w", resp.StatusCode, err)
	}
	s.logger.Debug(ctx, "LLM response (status %d): %s", resp.StatusCode, body)

	if msg := chat.errorMessage(); msg != "" {
		s.logger.Error(ctx, "Error: %s", msg)
	}

	answer, ok := chat.answer()
	if !ok {
		return Placeholder, nil
	}
	return answer, nil
}
