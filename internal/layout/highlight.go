package layout

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// cells measures terminal width independent of the user's locale, so
// ambiguous-width runes like "…" always take one cell.
var cells = &runewidth.Condition{EastAsianWidth: false}

// Keyword marks every match of Pattern in a body with Color.
type Keyword struct {
	Pattern *regexp.Regexp
	Color   Color
}

// NewKeyword compiles pattern into a Keyword.
func NewKeyword(pattern string, c Color) (Keyword, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Keyword{}, &ConfigError{Field: "keyword", Reason: err.Error()}
	}
	return Keyword{Pattern: re, Color: c}, nil
}

// StyledText is text carrying one style slot per rune. Slot 0 is the base
// color, slot k is the color of the k-th keyword.
type StyledText struct {
	runes  []rune
	slots  []int
	colors []Color
}

// Highlight assigns keyword colors to the runes of text. Keywords are applied
// in order and a rune keeps the first keyword that matched it. The runes are
// never changed, so line count and visible width stay those of text.
func Highlight(text string, base Color, keywords []Keyword) StyledText {
	runes := []rune(text)
	t := StyledText{
		runes:  runes,
		slots:  make([]int, len(runes)),
		colors: make([]Color, 0, len(keywords)+1),
	}
	t.colors = append(t.colors, base)
	if len(keywords) == 0 || len(runes) == 0 {
		return t
	}

	// regexp reports byte offsets; map them to rune positions.
	runeAt := make([]int, len(text)+1)
	pos := 0
	for i := range text {
		runeAt[i] = pos
		pos++
	}
	runeAt[len(text)] = pos

	for k, kw := range keywords {
		t.colors = append(t.colors, kw.Color)
		if kw.Pattern == nil {
			continue
		}
		for _, m := range kw.Pattern.FindAllStringIndex(text, -1) {
			for r := runeAt[m[0]]; r < runeAt[m[1]]; r++ {
				if t.slots[r] == 0 {
					t.slots[r] = k + 1
				}
			}
		}
	}
	return t
}

// Len returns the number of runes in t.
func (t StyledText) Len() int {
	return len(t.runes)
}

// String returns the text without styling.
func (t StyledText) String() string {
	return string(t.runes)
}

// Width returns the number of terminal cells t occupies.
func (t StyledText) Width() int {
	w := 0
	for _, r := range t.runes {
		w += cells.RuneWidth(r)
	}
	return w
}

// Render returns t with every run of equally styled runes painted by s.
func (t StyledText) Render(s *Styler) string {
	if len(t.runes) == 0 {
		return ""
	}
	if s.Plain() {
		return string(t.runes)
	}
	var b strings.Builder
	start := 0
	for i := 1; i <= len(t.runes); i++ {
		if i < len(t.runes) && t.slots[i] == t.slots[start] {
			continue
		}
		b.WriteString(s.Paint(string(t.runes[start:i]), t.colors[t.slots[start]], false))
		start = i
	}
	return b.String()
}

func (t StyledText) slice(i, j int) StyledText {
	return StyledText{runes: t.runes[i:j], slots: t.slots[i:j], colors: t.colors}
}

func (t StyledText) concat(parts ...StyledText) StyledText {
	out := StyledText{
		runes:  append([]rune(nil), t.runes...),
		slots:  append([]int(nil), t.slots...),
		colors: t.colors,
	}
	for _, p := range parts {
		out.runes = append(out.runes, p.runes...)
		out.slots = append(out.slots, p.slots...)
		if out.colors == nil {
			out.colors = p.colors
		}
	}
	return out
}

func (t StyledText) trimRight() StyledText {
	end := len(t.runes)
	for end > 0 && t.runes[end-1] == ' ' {
		end--
	}
	return t.slice(0, end)
}

// fit cuts t to at most width cells.
func (t StyledText) fit(width int) StyledText {
	w := 0
	for i, r := range t.runes {
		w += cells.RuneWidth(r)
		if w > width {
			return t.slice(0, i)
		}
	}
	return t
}

// lines splits t on newlines.
func (t StyledText) lines() []StyledText {
	var out []StyledText
	start := 0
	for i, r := range t.runes {
		if r == '\n' {
			out = append(out, t.slice(start, i))
			start = i + 1
		}
	}
	return append(out, t.slice(start, len(t.runes)))
}
