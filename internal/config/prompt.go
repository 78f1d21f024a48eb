package config

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompt asks for every configuration field on w and reads the answers from r.
func Prompt(r io.Reader, w io.Writer) (*Config, error) {
	scanner := bufio.NewScanner(r)

	ask := func(question string) (string, error) {
		fmt.Fprintln(w, question)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", fmt.Errorf("read answer: %w", err)
			}
			return "", fmt.Errorf("read answer: %w", io.ErrUnexpectedEOF)
		}
		return strings.TrimSpace(scanner.Text()), nil
	}

	var cfg Config
	fields := []struct {
		question string
		dst      *string
	}{
		{"Please enter your OpenAI API key: ", &cfg.APIKey},
		{"Please enter the language code of the captions you want to use (Example: en, fr, es, etc.): ", &cfg.SubLang},
		{"Please enter the custom prompt you want to use (Example: Summarize this video, Criticize this video, etc.): ", &cfg.CustomPrompt},
		{"Please enter if you want to allow whispers (true or false): ", &cfg.AllowWhisper},
	}

	for _, f := range fields {
		answer, err := ask(f.question)
		if err != nil {
			return nil, err
		}
		*f.dst = answer
	}

	return &cfg, nil
}
