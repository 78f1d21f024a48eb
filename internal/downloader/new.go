package downloader

import (
	"github.com/nguyentantai21042004/gptube/internal/logger"
	"github.com/nguyentantai21042004/gptube/pkg/executor"
)

type implDownloader struct {
	binary   string
	tempDir  string
	executor executor.Executor
	parser   OutputParser
	logger   logger.Logger
}

// Option customizes a Downloader.
type Option func(*implDownloader)

// WithParser replaces the default Destination-line parser.
func WithParser(p OutputParser) Option {
	return func(d *implDownloader) {
		d.parser = p
	}
}

// New creates a yt-dlp backed Downloader. Every fetch runs in its own
// directory under tempDir.
func New(binary, tempDir string, exec executor.Executor, log logger.Logger, opts ...Option) Downloader {
	d := &implDownloader{
		binary:   binary,
		tempDir:  tempDir,
		executor: exec,
		parser:   NewDestinationParser(),
		logger:   log,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}
