package transcriber

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// transcribe uses whisper.cpp to convert audio to an SRT file
func (t *implTranscriber) transcribe(ctx context.Context, audioPath, lang string) (string, error) {
	// Whisper appends .srt to the output prefix
	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	t.logger.Debug(ctx, "Starting transcription with %d threads: %s", t.cfg.Whisper.Threads, audioPath)

	// -l: Force language (prevents hallucination)
	// -bo: Best of (5 = better accuracy)
	args := []string{
		"-m", t.cfg.Whisper.ModelPath,
		"-f", audioPath,
		"-osrt",
		"-l", lang,
		"-t", strconv.Itoa(t.cfg.Whisper.Threads),
		"-bo", "5",
		"--output-file", outputPrefix,
	}

	if _, err := t.executor.Execute(ctx, t.cfg.Whisper.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	return outputPrefix + ".srt", nil
}
