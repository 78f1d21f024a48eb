package summarizer

import (
	"encoding/json"
	"strings"
)

// Message is one chat message in an OpenAI-compatible request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body of POST /chat/completions.
type ChatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

// ChatResponse keeps only what the summarizer reads. Content is a pointer so
// an absent or null answer can be told apart from an empty one.
type ChatResponse struct {
	Choices []Choice        `json:"choices"`
	Error   json.RawMessage `json:"error,omitempty"`
}

type Choice struct {
	Index   int `json:"index"`
	Message struct {
		Role    string  `json:"role"`
		Content *string `json:"content"`
	} `json:"message"`
	FinishReason string `json:"finish_reason"`
}

// answer returns the first choice's content, if there is one.
func (r *ChatResponse) answer() (string, bool) {
	if len(r.Choices) == 0 || r.Choices[0].Message.Content == nil {
		return "", false
	}
	return *r.Choices[0].Message.Content, true
}

// errorMessage renders the error field, which providers send either as a
// plain string or as an object with a message.
func (r *ChatResponse) errorMessage() string {
	raw := strings.TrimSpace(string(r.Error))
	if raw == "" || raw == "null" {
		return ""
	}

	var s string
	if err := json.Unmarshal(r.Error, &s); err == nil {
		return s
	}

	var obj struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    any    `json:"code"`
	}
	if err := json.Unmarshal(r.Error, &obj); err == nil && obj.Message != "" {
		return obj.Message
	}

	return raw
}
