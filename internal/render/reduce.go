package render

import (
	"strings"

	"github.com/usdAG/reftool/internal/reference"
)

const (
	truncatedPrefix = "[Truncated] - "
	truncatedMarker = "[...]"
	truncateReserve = 15
)

// Reduced is the display copy of a note.
type Reduced struct {
	Text      string
	Comment   string
	Truncated bool
}

// Reduce selects and shortens the lines of a note for display. The note is
// not modified, so reducing the same note twice gives the same result.
//
// Line selection applies only when the text has more than one line; indices
// outside the text are ignored. With Truncate set, lines of textSize runes or
// more are cut to textSize-15 runes followed by "[...]".
func Reduce(note reference.Note, textSize int) Reduced {
	truncated := false
	lines := strings.Split(note.Text, "\n")

	if len(note.Lines) > 0 && len(lines) > 1 {
		selected := make([]string, 0, len(note.Lines))
		for _, idx := range note.Lines {
			if idx >= 0 && idx < len(lines) {
				selected = append(selected, lines[idx])
			}
		}
		lines = selected
		truncated = true
	}

	if note.Truncate {
		keep := max(textSize-truncateReserve, 0)
		for i, line := range lines {
			runes := []rune(line)
			if len(runes) >= textSize {
				lines[i] = string(runes[:min(keep, len(runes))]) + truncatedMarker
				truncated = true
			}
		}
	}

	comment := note.Comment
	if truncated {
		comment = truncatedPrefix + comment
	}
	return Reduced{
		Text:      strings.Join(lines, "\n"),
		Comment:   comment,
		Truncated: truncated,
	}
}
