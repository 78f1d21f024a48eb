package transcriber

import (
	"context"
	"fmt"
	"os"
	"time"
)

// Transcribe runs the audio pipeline for url and returns whisper's SRT output.
func (t *implTranscriber) Transcribe(ctx context.Context, url, lang string) (string, error) {
	if t.cfg.Whisper.ModelPath == "" {
		return "", fmt.Errorf("whisper.model_path is required for transcription")
	}

	startTime := time.Now()
	t.logger.Info(ctx, "No captions for %s, transcribing audio with whisper", url)

	workDir, err := os.MkdirTemp(t.cfg.Paths.Temp, "gptube-audio-*")
	if err != nil {
		return "", fmt.Errorf("create work dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	// Step 1: Download audio track
	rawAudio, err := t.downloadAudio(ctx, workDir, url)
	if err != nil {
		return "", fmt.Errorf("download audio: %w", err)
	}

	// Step 2: Resample for whisper
	audioPath, err := t.extractAudio(ctx, rawAudio)
	if err != nil {
		return "", fmt.Errorf("extract audio: %w", err)
	}

	// Step 3: Transcribe to SRT
	srtPath, err := t.transcribe(ctx, audioPath, lang)
	if err != nil {
		return "", fmt.Errorf("transcribe: %w", err)
	}

	content, err := os.ReadFile(srtPath)
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}

	t.logger.Debug(ctx, "Transcription of %s took %s", url, time.Since(startTime))
	return string(content), nil
}
