package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/gptube/internal/caption"
)

// ResultFileName names the summary file of a video.
func ResultFileName(title, id, lang string) string {
	return fmt.Sprintf("Result-%s.%s.%s.summary", title, id, lang)
}

// Process orchestrates the pipeline for one URL: fetch captions, extract
// their text, summarize, optionally refine, then write a single result file.
func (p *implProcessor) Process(ctx context.Context, url string) (*Result, error) {
	startTime := time.Now()
	p.logger.Debug(ctx, "Processing URL: %s", url)

	// Step 1: Fetch captions
	video, err := p.downloader.Fetch(ctx, url, p.lang)
	if err != nil {
		return nil, fmt.Errorf("fetch video: %w", err)
	}
	if p.listMode {
		fmt.Fprintf(p.out, "Processing Video: %s with id %s and language %s\n", video.Title, video.ID, p.lang)
	}

	// Step 2: Extract plain text
	text, err := p.captionText(ctx, url, video.Captions, video.NoSubtitles)
	if err != nil {
		return nil, err
	}

	// Step 3: Summarize
	summary, err := p.summarizer.Summarize(ctx, p.prompt, text)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}
	fmt.Fprintf(p.out, "Result: %s\n", summary)

	body := p.label(video.Title, summary)

	// Step 4: Refine on request
	if p.refiner != nil {
		body, err = p.refiner.Refine(ctx, body)
		if err != nil {
			return nil, fmt.Errorf("post-process: %w", err)
		}
	}

	// Step 5: Write the result
	fileName := ResultFileName(video.Title, video.ID, p.lang)
	paths, err := p.writer.Write(ctx, fileName, video.Title, body)
	if err != nil {
		return nil, fmt.Errorf("write result: %w", err)
	}

	p.logger.Info(ctx, "Summary for %s saved to %s in %s", url, paths[0], time.Since(startTime).Round(time.Millisecond))

	return &Result{
		URL:      url,
		Title:    video.Title,
		ID:       video.ID,
		Language: p.lang,
		Summary:  summary,
		Body:     body,
		Paths:    paths,
	}, nil
}

// captionText turns the fetched captions into prose. Videos without captions
// are transcribed when a transcriber is configured, otherwise they summarize
// as empty text.
func (p *implProcessor) captionText(ctx context.Context, url, captions string, noSubtitles bool) (string, error) {
	if noSubtitles && p.transcriber != nil {
		srt, err := p.transcriber.Transcribe(ctx, url, p.lang)
		if err != nil {
			return "", fmt.Errorf("fallback transcription: %w", err)
		}
		// whisper does not repeat cues
		return caption.Text(srt, caption.Adjacent), nil
	}

	p.logger.Debug(ctx, "Parsing caption content (%s dedupe)...", p.strategy)
	return caption.Text(captions, p.strategy), nil
}

func (p *implProcessor) label(title, summary string) string {
	if p.listMode {
		return fmt.Sprintf("Result for %s:\n%s\n\n", title, summary)
	}
	return fmt.Sprintf("Result for %s:\n%s\n", title, summary)
}
