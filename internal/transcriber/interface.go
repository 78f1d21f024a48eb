package transcriber

import "context"

// Transcriber produces an SRT transcript for a video that has no captions.
type Transcriber interface {
	Transcribe(ctx context.Context, url, lang string) (string, error)
}
