package layout

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color names a terminal color. Supported values are the basic color names
// ("red", "light_blue", ...), ANSI codes ("0" to "255"), hex colors
// ("#RRGGBB" or "#RGB") and "none".
type Color string

// NoColor leaves text in the terminal's default color.
const NoColor Color = "none"

var namedColors = map[string]string{
	"black":         "0",
	"red":           "1",
	"green":         "2",
	"yellow":        "3",
	"blue":          "4",
	"magenta":       "5",
	"cyan":          "6",
	"white":         "7",
	"grey":          "8",
	"gray":          "8",
	"dark_grey":     "8",
	"dark_gray":     "8",
	"light_red":     "9",
	"light_green":   "10",
	"light_yellow":  "11",
	"light_blue":    "12",
	"light_magenta": "13",
	"light_cyan":    "14",
	"light_white":   "15",
	"light_grey":    "7",
	"light_gray":    "7",
}

// ParseColor validates s and returns it as a Color.
func ParseColor(s string) (Color, error) {
	c := Color(strings.TrimSpace(s))
	if _, ok := c.value(); !ok && !c.IsNone() {
		return "", &ConfigError{Field: "color", Reason: strconv.Quote(s) + " is not a color name, ANSI code or hex value"}
	}
	return c, nil
}

// IsNone reports whether c leaves text unstyled.
func (c Color) IsNone() bool {
	switch strings.ToLower(strings.TrimSpace(string(c))) {
	case "", "none", "default", "off":
		return true
	}
	return false
}

// value returns the lipgloss color string for c.
func (c Color) value() (string, bool) {
	raw := strings.ToLower(strings.TrimSpace(string(c)))
	if raw == "" {
		return "", false
	}
	raw = strings.ReplaceAll(raw, "-", "_")
	raw = strings.Replace(raw, "bright_", "light_", 1)
	if code, ok := namedColors[raw]; ok {
		return code, true
	}
	if n, err := strconv.Atoi(raw); err == nil {
		if n < 0 || n > 255 {
			return "", false
		}
		return strconv.Itoa(n), true
	}
	if strings.HasPrefix(raw, "#") {
		return normalizeHex(raw[1:])
	}
	return "", false
}

func normalizeHex(hex string) (string, bool) {
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return "", false
		}
	}
	switch len(hex) {
	case 3:
		return "#" + string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]}), true
	case 6:
		return "#" + hex, true
	}
	return "", false
}

// Styler paints text with terminal colors. A Styler bound to the Ascii
// profile returns text unchanged.
type Styler struct {
	renderer *lipgloss.Renderer
	plain    bool
}

// NewStyler returns a Styler painting through r.
func NewStyler(r *lipgloss.Renderer) *Styler {
	return &Styler{
		renderer: r,
		plain:    r == nil || r.ColorProfile() == termenv.Ascii,
	}
}

// PlainStyler returns a Styler that never emits escape sequences.
func PlainStyler() *Styler {
	return &Styler{plain: true}
}

// Plain reports whether s emits no escape sequences.
func (s *Styler) Plain() bool {
	return s == nil || s.plain
}

// Paint renders text in color c, bold when requested.
func (s *Styler) Paint(text string, c Color, bold bool) string {
	if s.Plain() || text == "" {
		return text
	}
	code, hasColor := c.value()
	if !hasColor && !bold {
		return text
	}
	style := s.renderer.NewStyle().TabWidth(lipgloss.NoTabConversion)
	if hasColor {
		style = style.Foreground(lipgloss.Color(code))
	}
	if bold {
		style = style.Bold(true)
	}
	return style.Render(text)
}
