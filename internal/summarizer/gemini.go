package summarizer

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/gptube/internal/logger"
	"google.golang.org/genai"
)

type geminiSummarizer struct {
	apiKey  string
	baseURL string
	model   string
	logger  logger.Logger
}

// Summarize sends the prompt and text to Gemini and returns the concatenated
// text parts of the first candidate.
func (s *geminiSummarizer) Summarize(ctx context.Context, prompt, text string) (string, error) {
	s.logger.Debug(ctx, "Sending text to %s...", s.model)

	cfg := &genai.ClientConfig{
		APIKey:  s.apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if s.baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: s.baseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(buildContent(prompt, text)), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	var answer string
	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				answer += part.Text
			}
		}
	}

	if answer == "" {
		s.logger.Warn(ctx, "Empty response from Gemini")
		return Placeholder, nil
	}
	return answer, nil
}
