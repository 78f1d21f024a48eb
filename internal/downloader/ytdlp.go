package downloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Fetch downloads the auto-generated captions of url in lang and returns them
// with the video's title and id. A video without captions in lang is not an
// error: the result has NoSubtitles set and empty Captions.
func (d *implDownloader) Fetch(ctx context.Context, url, lang string) (*Video, error) {
	startTime := time.Now()
	d.logger.Debug(ctx, "Retrieving video data and transcript for URL: %s", url)

	workDir, err := os.MkdirTemp(d.tempDir, "gptube-*")
	if err != nil {
		return nil, fmt.Errorf("create work dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	args := []string{
		"-o", outputTemplate,
		"--write-auto-sub",
		"--sub-lang", lang,
		"--skip-download",
		url,
	}

	stdout, err := d.executor.ExecuteInDir(ctx, workDir, d.binary, args...)
	if err != nil {
		return nil, fmt.Errorf("fetch captions: %w", err)
	}

	listing, err := d.parser.Parse(stdout)
	if err != nil {
		return nil, fmt.Errorf("parse %s output for %s: %w", d.binary, url, err)
	}

	video := &Video{
		URL:         url,
		Title:       listing.Title,
		ID:          listing.ID,
		Language:    lang,
		NoSubtitles: listing.NoSubtitles,
	}

	if listing.NoSubtitles {
		d.logger.Warn(ctx, "No %s subtitles available for %s", lang, url)
		if video.Title == "" && video.ID == "" {
			if video.Title, video.ID, err = d.probe(ctx, url); err != nil {
				return nil, err
			}
		}
		return video, nil
	}

	subPath := listing.SubtitleFile
	if !filepath.IsAbs(subPath) {
		subPath = filepath.Join(workDir, subPath)
	}
	defer d.cleanupTempFile(ctx, subPath)

	content, err := os.ReadFile(subPath)
	if err != nil {
		return nil, fmt.Errorf("read subtitle file: %w", err)
	}
	video.Captions = string(content)

	d.logger.Debug(ctx, "Video data and transcript retrieved in %.2f seconds", time.Since(startTime).Seconds())
	d.logger.Debug(ctx, "Video selected %s with id %s and language %s", video.Title, video.ID, lang)

	return video, nil
}

// probe asks the downloader for title and id only. Used when no subtitle
// file was announced.
func (d *implDownloader) probe(ctx context.Context, url string) (string, string, error) {
	stdout, err := d.executor.Execute(ctx, d.binary, "--skip-download", "--print", probeTemplate, url)
	if err != nil {
		return "", "", fmt.Errorf("probe video metadata: %w", err)
	}

	line, _, _ := strings.Cut(strings.TrimSpace(stdout), "\n")
	title, id, err := splitFields(strings.TrimSpace(line))
	if err != nil {
		return "", "", fmt.Errorf("probe video metadata: %w", err)
	}

	return sanitizeTitle(title), id, nil
}

func sanitizeTitle(title string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\':
			return '_'
		default:
			return r
		}
	}, title)
}

// cleanupTempFile removes a temporary file, logs warning if fails
func (d *implDownloader) cleanupTempFile(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil {
		d.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", path, err)
	} else {
		d.logger.Debug(ctx, "Cleaned up temp file: %s", path)
	}
}
