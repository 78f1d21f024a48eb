// Package caption turns subtitle-timing files (WebVTT, SRT) into plain text.
package caption

import (
	"fmt"
	"strings"
)

// timingMarker separates the start and end timestamps of a cue.
const timingMarker = "-->"

// Strategy selects how repeated cue text is removed.
type Strategy int

const (
	// Alternate keeps every other line. Auto-generated captions render each
	// cue twice while rolling, so the odd lines are the repeats.
	Alternate Strategy = iota
	// Adjacent drops a line only when it equals the line kept before it.
	Adjacent
)

func (s Strategy) String() string {
	switch s {
	case Alternate:
		return "alternate"
	case Adjacent:
		return "adjacent"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a settings value to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "alternate":
		return Alternate, nil
	case "adjacent":
		return Adjacent, nil
	default:
		return Alternate, fmt.Errorf("unknown dedupe strategy %q", name)
	}
}

// Cues returns the line following every timing line, in order.
func Cues(content string) []string {
	lines := splitLines(content)

	var cues []string
	for i := 0; i < len(lines); i++ {
		if !strings.Contains(lines[i], timingMarker) {
			continue
		}
		if i+1 < len(lines) {
			i++
			cues = append(cues, lines[i])
		}
	}
	return cues
}

// Text extracts the cue text of content, one line per kept cue line, each
// terminated by a newline. Content without timing lines yields "".
func Text(content string, strategy Strategy) string {
	cues := Cues(content)
	if len(cues) == 0 {
		return ""
	}

	// Cues are re-split so a cue holding several lines is deduplicated line by line.
	lines := splitLines(strings.Join(cues, "\n"))

	var b strings.Builder
	switch strategy {
	case Adjacent:
		prev, kept := "", false
		for _, line := range lines {
			if kept && line == prev {
				continue
			}
			b.WriteString(line)
			b.WriteByte('\n')
			prev, kept = line, true
		}
	default:
		for i, line := range lines {
			if i%2 == 0 {
				b.WriteString(line)
				b.WriteByte('\n')
			}
		}
	}
	return b.String()
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
