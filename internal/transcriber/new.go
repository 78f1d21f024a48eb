package transcriber

import (
	"github.com/nguyentantai21042004/gptube/internal/config"
	"github.com/nguyentantai21042004/gptube/internal/logger"
	"github.com/nguyentantai21042004/gptube/pkg/executor"
)

type implTranscriber struct {
	cfg      *config.Settings
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Transcriber that downloads audio with the configured
// downloader, resamples it with ffmpeg and runs whisper.cpp on it.
func New(cfg *config.Settings, exec executor.Executor, log logger.Logger) Transcriber {
	return &implTranscriber{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
