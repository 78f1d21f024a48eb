package processor

import (
	"io"
	"os"

	"github.com/nguyentantai21042004/gptube/internal/caption"
	"github.com/nguyentantai21042004/gptube/internal/config"
	"github.com/nguyentantai21042004/gptube/internal/downloader"
	"github.com/nguyentantai21042004/gptube/internal/logger"
	"github.com/nguyentantai21042004/gptube/internal/refiner"
	"github.com/nguyentantai21042004/gptube/internal/summarizer"
	"github.com/nguyentantai21042004/gptube/internal/transcriber"
	"github.com/nguyentantai21042004/gptube/internal/writer"
)

// Deps are the collaborators a Processor drives.
type Deps struct {
	Downloader downloader.Downloader
	Summarizer summarizer.Summarizer
	Writer     writer.Writer
	// Transcriber is used for videos without captions. Nil disables the fallback.
	Transcriber transcriber.Transcriber
	Logger      logger.Logger
}

type implProcessor struct {
	prompt   string
	lang     string
	strategy caption.Strategy
	listMode bool
	out      io.Writer

	downloader  downloader.Downloader
	summarizer  summarizer.Summarizer
	writer      writer.Writer
	transcriber transcriber.Transcriber
	refiner     refiner.Refiner
	logger      logger.Logger
}

// Option customizes a Processor.
type Option func(*implProcessor)

// WithRefiner enables interactive refinement before the result is written.
func WithRefiner(r refiner.Refiner) Option {
	return func(p *implProcessor) {
		p.refiner = r
	}
}

// WithListMode labels results for a multi-URL run.
func WithListMode() Option {
	return func(p *implProcessor) {
		p.listMode = true
	}
}

// WithStrategy sets how repeated caption lines are removed.
func WithStrategy(s caption.Strategy) Option {
	return func(p *implProcessor) {
		p.strategy = s
	}
}

// WithOutput redirects console progress output, stdout by default.
func WithOutput(w io.Writer) Option {
	return func(p *implProcessor) {
		p.out = w
	}
}

// New creates a Processor. The prompt and caption language are copied out of
// cfg, so later changes to cfg do not affect it.
func New(cfg *config.Config, deps Deps, opts ...Option) Processor {
	p := &implProcessor{
		prompt:      cfg.CustomPrompt,
		lang:        cfg.SubLang,
		strategy:    caption.Alternate,
		out:         os.Stdout,
		downloader:  deps.Downloader,
		summarizer:  deps.Summarizer,
		writer:      deps.Writer,
		transcriber: deps.Transcriber,
		logger:      deps.Logger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *implProcessor) Interactive() bool {
	return p.refiner != nil
}
