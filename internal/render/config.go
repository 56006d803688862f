// Package render turns reference items and notes into laid out paragraphs.
//
// A Policy is built once from an immutable Config. Every call builds fresh
// blocks, so a failing note never affects the rest of a listing.
package render

import (
	"fmt"

	"github.com/usdAG/reftool/internal/layout"
)

// countExtra is added to the configured count padding to leave room for the
// note number and its closing parenthesis.
const countExtra = 3

// Fixed geometry of the comment column.
const (
	commentIndent = 5
	commentOffset = 2
)

// HeadlineConfig controls item headlines.
type HeadlineConfig struct {
	Size  int
	Color layout.Color
}

// NoteConfig controls the note row.
type NoteConfig struct {
	TextSize       int
	TextColor      layout.Color
	CountColor     layout.Color
	CountPadding   int
	CountIndent    int
	CommentSize    int
	CommentColor   layout.Color
	ParameterColor layout.Color
}

// Config holds every geometry and color setting used while rendering.
type Config struct {
	InitialIndent int
	Headline      HeadlineConfig
	Note          NoteConfig
}

// DefaultConfig returns the built in render settings.
func DefaultConfig() Config {
	return Config{
		InitialIndent: 2,
		Headline:      HeadlineConfig{Size: 80, Color: "blue"},
		Note: NoteConfig{
			TextSize:       80,
			TextColor:      layout.NoColor,
			CountColor:     "yellow",
			CountPadding:   2,
			CountIndent:    0,
			CommentSize:    50,
			CommentColor:   "light_grey",
			ParameterColor: "red",
		},
	}
}

// Validate reports the first setting that cannot produce a layout.
func (c Config) Validate() error {
	positive := []struct {
		field string
		v     int
	}{
		{"headline size", c.Headline.Size},
		{"text size", c.Note.TextSize},
		{"comment size", c.Note.CommentSize},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return &layout.ConfigError{Field: p.field, Reason: fmt.Sprintf("must be positive, got %d", p.v)}
		}
	}

	nonNegative := []struct {
		field string
		v     int
	}{
		{"initial indent", c.InitialIndent},
		{"count padding", c.Note.CountPadding},
		{"count indent", c.Note.CountIndent},
	}
	for _, n := range nonNegative {
		if n.v < 0 {
			return &layout.ConfigError{Field: n.field, Reason: fmt.Sprintf("must not be negative, got %d", n.v)}
		}
	}

	if offset := c.Note.CountPadding + countExtra; offset >= c.Note.TextSize {
		return &layout.ConfigError{Field: "count padding", Reason: fmt.Sprintf("leaves no room for text (offset %d, text size %d)", offset, c.Note.TextSize)}
	}
	if c.Note.CommentSize <= commentOffset {
		return &layout.ConfigError{Field: "comment size", Reason: fmt.Sprintf("must be greater than %d, got %d", commentOffset, c.Note.CommentSize)}
	}

	for _, col := range []layout.Color{
		c.Headline.Color, c.Note.TextColor, c.Note.CountColor,
		c.Note.CommentColor, c.Note.ParameterColor,
	} {
		if _, err := layout.ParseColor(string(col)); err != nil {
			return err
		}
	}
	return nil
}

// NoteWidth returns the visible width of a rendered note row.
func (c Config) NoteWidth() int {
	return c.InitialIndent + c.Note.CountIndent + c.Note.TextSize + commentIndent + c.Note.CommentSize
}

// minimum column sizes kept by Fit
const (
	minComment = 10
	minText    = 20
)

// Fit returns a copy of c whose rows fit into width cells. The comment column
// shrinks first, then the text column; neither goes below a readable minimum.
// A non-positive width returns c unchanged.
func (c Config) Fit(width int) Config {
	if width <= 0 {
		return c
	}
	out := c

	if limit := width - out.InitialIndent; out.Headline.Size > limit && limit > 0 {
		out.Headline.Size = limit
	}

	excess := out.NoteWidth() - width
	if excess <= 0 {
		return out
	}
	if room := out.Note.CommentSize - max(minComment, commentOffset+1); room > 0 {
		cut := min(room, excess)
		out.Note.CommentSize -= cut
		excess -= cut
	}
	floor := max(minText, out.Note.CountPadding+countExtra+1)
	if room := out.Note.TextSize - floor; room > 0 && excess > 0 {
		out.Note.TextSize -= min(room, excess)
	}
	return out
}
