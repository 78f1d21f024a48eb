package processor

import "context"

// Result is the outcome of processing one URL.
type Result struct {
	URL      string
	Title    string
	ID       string
	Language string
	Summary  string
	// Body is the labeled text written to disk, after any refinement.
	Body  string
	Paths []string
}

// Processor runs the caption-to-summary pipeline for a single URL.
type Processor interface {
	Process(ctx context.Context, url string) (*Result, error)
	// Interactive reports whether Process reads from the terminal.
	Interactive() bool
}
