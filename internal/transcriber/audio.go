package transcriber

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// downloadAudio fetches the best audio track of url as WAV into workDir
func (t *implTranscriber) downloadAudio(ctx context.Context, workDir, url string) (string, error) {
	args := []string{
		"-x",
		"--audio-format", "wav",
		"-o", filepath.Join(workDir, "audio.%(ext)s"),
		url,
	}

	if _, err := t.executor.Execute(ctx, t.cfg.Downloader.Binary, args...); err != nil {
		return "", fmt.Errorf("%s extract audio: %w", t.cfg.Downloader.Binary, err)
	}

	return filepath.Join(workDir, "audio.wav"), nil
}

// extractAudio converts audio to 16kHz mono WAV
// This format is optimal for Whisper processing
func (t *implTranscriber) extractAudio(ctx context.Context, inputPath string) (string, error) {
	audioPath := strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + "_16k.wav"

	t.logger.Debug(ctx, "Resampling audio: %s", inputPath)

	// -vn: No video (audio only)
	// -ar 16000: Sample rate 16kHz (optimal for Whisper)
	// -ac 1: Mono channel (Whisper works best with mono)
	// -c:a pcm_s16le: PCM 16-bit little-endian format
	args := []string{
		"-i", inputPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-threads", "0",
		"-y",
		audioPath,
	}

	if _, err := t.executor.Execute(ctx, t.cfg.FFmpeg.Binary, args...); err != nil {
		return "", fmt.Errorf("ffmpeg resample: %w", err)
	}

	return audioPath, nil
}
