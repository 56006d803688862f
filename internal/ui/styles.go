package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
// - Accent (configurable, default soft purple): headlines, reference names
// - Muted (gray): hints and secondary info
// - Green/red status tags mirror the classic [+] / [-] markers

const defaultAccent = "#A78BFA"

var (
	renderer    = lipgloss.DefaultRenderer()
	accentColor = defaultAccent

	// Accent style for reference names and highlights
	Accent lipgloss.Style

	// Muted style for secondary info and hints
	Muted lipgloss.Style

	// Bold style for emphasis
	Bold lipgloss.Style

	// AccentBold combines accent color with bold
	AccentBold lipgloss.Style

	// Good and Bad color the status tags.
	Good lipgloss.Style
	Bad  lipgloss.Style
)

func init() {
	rebuildStyles()
}

// SetRenderer binds every style to r, which decides the color profile.
func SetRenderer(r *lipgloss.Renderer) {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	renderer = r
	rebuildStyles()
}

// Renderer returns the renderer the styles are bound to.
func Renderer() *lipgloss.Renderer {
	return renderer
}

// ConfigureTheme sets the accent color. Values that are not an ANSI code or
// hex color disable the accent.
func ConfigureTheme(accent string) {
	if strings.TrimSpace(accent) == "" {
		accentColor = defaultAccent
	} else if color, ok := normalizeAccentColor(accent); ok {
		accentColor = color
	} else {
		accentColor = ""
	}
	rebuildStyles()
}

// AccentColor returns the configured accent color, if any.
func AccentColor() (string, bool) {
	return accentColor, accentColor != ""
}

func rebuildStyles() {
	Accent = renderer.NewStyle()
	AccentBold = renderer.NewStyle().Bold(true)
	if accentColor != "" {
		Accent = Accent.Foreground(lipgloss.Color(accentColor))
		AccentBold = AccentBold.Foreground(lipgloss.Color(accentColor))
	}
	Muted = renderer.NewStyle().Foreground(lipgloss.Color("#6C7086"))
	Bold = renderer.NewStyle().Bold(true)
	Good = renderer.NewStyle().Foreground(lipgloss.Color("2"))
	Bad = renderer.NewStyle().Foreground(lipgloss.Color("1"))
}

func normalizeAccentColor(value string) (string, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "", "none", "off", "default":
		return "", false
	}
	if n, err := strconv.Atoi(v); err == nil {
		if n < 0 || n > 255 {
			return "", false
		}
		return strconv.Itoa(n), true
	}
	if !strings.HasPrefix(v, "#") {
		return "", false
	}
	hex := v[1:]
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return "", false
		}
	}
	switch len(hex) {
	case 3:
		return "#" + string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]}), true
	case 6:
		return v, true
	}
	return "", false
}
