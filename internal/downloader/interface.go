package downloader

import (
	"context"
	"errors"
)

// ErrNoDestination is returned when the downloader output names no subtitle
// file and does not report the captions as missing either.
var ErrNoDestination = errors.New("no subtitle destination in downloader output")

// Video is what a caption fetch yields for one URL.
type Video struct {
	URL      string
	Title    string
	ID       string
	Language string
	// Captions is the raw subtitle-timing file content. Empty when NoSubtitles is set.
	Captions    string
	NoSubtitles bool
}

// Downloader fetches a video's metadata and auto-generated captions.
type Downloader interface {
	Fetch(ctx context.Context, url, lang string) (*Video, error)
}

// Listing is the information scraped from the downloader's stdout.
type Listing struct {
	Title        string
	ID           string
	SubtitleFile string
	NoSubtitles  bool
}

// OutputParser reads a downloader run's stdout. Swap it when the tool's
// console format changes.
type OutputParser interface {
	Parse(stdout string) (*Listing, error)
}
