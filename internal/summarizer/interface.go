package summarizer

import "context"

// Placeholder is returned in place of a summary when the model's answer is missing.
const Placeholder = "Failed to create transcript"

// Summarizer sends a prompt and a body of text to a language model and
// returns its answer.
type Summarizer interface {
	Summarize(ctx context.Context, prompt, text string) (string, error)
}

// buildContent joins prompt and text into the single user message.
func buildContent(prompt, text string) string {
	return prompt + ":" + text
}
