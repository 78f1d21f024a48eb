// Package batch runs the processor over a list of URLs on a bounded worker pool.
package batch

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/gptube/internal/logger"
	"github.com/nguyentantai21042004/gptube/internal/processor"
	"golang.org/x/sync/errgroup"
)

// ErrInteractiveRefine is returned when a processor that reads from the
// terminal is handed to the batch runner.
var ErrInteractiveRefine = errors.New("interactive refinement is only available for a single URL")

// SplitURLs splits comma-separated URL list content. Surrounding whitespace is
// trimmed and empty entries are dropped.
func SplitURLs(content string) []string {
	var urls []string
	for _, part := range strings.Split(content, ",") {
		if url := strings.TrimSpace(part); url != "" {
			urls = append(urls, url)
		}
	}
	return urls
}

// Runner processes URLs concurrently, at most maxConcurrent at a time.
type Runner struct {
	processor     processor.Processor
	maxConcurrent int
	logger        logger.Logger
}

// New creates a Runner. maxConcurrent <= 0 means one worker.
func New(p processor.Processor, maxConcurrent int, log logger.Logger) (*Runner, error) {
	if p.Interactive() {
		return nil, ErrInteractiveRefine
	}
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &Runner{
		processor:     p,
		maxConcurrent: maxConcurrent,
		logger:        log,
	}, nil
}

// Run processes every URL exactly once and waits for all of them. A failing
// URL does not stop the others; all failures are joined into the returned error.
func (r *Runner) Run(ctx context.Context, urls []string) error {
	r.logger.Info(ctx, "Processing %d URLs (max concurrent: %d)", len(urls), r.maxConcurrent)

	var g errgroup.Group
	g.SetLimit(r.maxConcurrent)

	errs := make([]error, len(urls))
	for i, url := range urls {
		g.Go(func() error {
			errs[i] = r.runOne(ctx, url)
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
		}
	}
	r.logger.Info(ctx, "Batch complete: %d success, %d failed", len(urls)-failed, failed)

	return errors.Join(errs...)
}

func (r *Runner) runOne(ctx context.Context, url string) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("process %s: panic: %v", url, rec)
		}
	}()

	if _, err := r.processor.Process(ctx, url); err != nil {
		r.logger.Error(ctx, "Failed to process %s: %v", url, err)
		return fmt.Errorf("process %s: %w", url, err)
	}
	return nil
}
