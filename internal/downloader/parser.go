package downloader

import (
	"fmt"
	"strings"
)

const (
	// fieldSeparator splits title, id and extension in the output template.
	fieldSeparator = ":::::"
	outputTemplate = "%(title)s" + fieldSeparator + "%(id)s" + fieldSeparator + ".%(ext)s"
	probeTemplate  = "%(title)s" + fieldSeparator + "%(id)s"

	destinationPrefix = "Destination: "
	noSubtitlesMarker = "There's no subtitles"
)

type destinationParser struct{}

// NewDestinationParser parses yt-dlp's "[download] Destination: <file>" line.
func NewDestinationParser() OutputParser {
	return destinationParser{}
}

func (destinationParser) Parse(stdout string) (*Listing, error) {
	listing := &Listing{
		NoSubtitles: strings.Contains(stdout, noSubtitlesMarker),
	}

	for _, line := range strings.Split(stdout, "\n") {
		line = strings.TrimRight(line, "\r")
		idx := strings.Index(line, destinationPrefix)
		if idx < 0 {
			continue
		}

		file := line[idx+len(destinationPrefix):]
		title, id, err := splitFields(file)
		if err != nil {
			return nil, err
		}
		listing.Title = title
		listing.ID = id
		listing.SubtitleFile = file
		return listing, nil
	}

	if listing.NoSubtitles {
		return listing, nil
	}
	return nil, ErrNoDestination
}

func splitFields(s string) (title, id string, err error) {
	parts := strings.Split(s, fieldSeparator)
	if len(parts) < 2 {
		return "", "", fmt.Errorf("unexpected downloader file name %q", s)
	}
	return parts[0], parts[1], nil
}
