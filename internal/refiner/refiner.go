// Package refiner re-summarizes a result with follow-up prompts typed by the user.
package refiner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nguyentantai21042004/gptube/internal/logger"
	"github.com/nguyentantai21042004/gptube/internal/summarizer"
)

// Refiner drives the interactive post-processing loop.
type Refiner interface {
	Refine(ctx context.Context, summary string) (string, error)
}

type implRefiner struct {
	in         *bufio.Reader
	out        io.Writer
	summarizer summarizer.Summarizer
	logger     logger.Logger
}

// New creates a Refiner that prompts on out and reads answers from in.
func New(in io.Reader, out io.Writer, s summarizer.Summarizer, log logger.Logger) Refiner {
	return &implRefiner{
		in:         bufio.NewReader(in),
		out:        out,
		summarizer: s,
		logger:     log,
	}
}

// Refine asks whether to post-process until the answer is anything but "y".
// Each "y" reads a new prompt and replaces the summary with the model's
// answer to that prompt over the current summary.
func (r *implRefiner) Refine(ctx context.Context, summary string) (string, error) {
	r.logger.Debug(ctx, "Post-processing summary...")

	current := summary
	for {
		fmt.Fprintln(r.out, "Do you want to post process the summary? (y/n)")
		decision, err := r.readLine()
		if err != nil {
			return "", err
		}
		if decision != "y" {
			return current, nil
		}

		fmt.Fprintln(r.out, "Enter a new prompt")
		prompt, err := r.readLine()
		if err != nil {
			return "", err
		}

		refined, err := r.summarizer.Summarize(ctx, prompt, current)
		if err != nil {
			return "", fmt.Errorf("refine summary: %w", err)
		}
		current = refined
		fmt.Fprintf(r.out, "Summary: %s\n", current)
	}
}

// readLine returns the next trimmed line. EOF reads as an empty answer.
func (r *implRefiner) readLine() (string, error) {
	line, err := r.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
