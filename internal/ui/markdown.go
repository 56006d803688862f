package ui

import (
	"strings"

	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/muesli/termenv"
)

// MarkdownRenderMargin is the left margin used for terminal markdown rendering.
const MarkdownRenderMargin = 2

const defaultCodeTheme = "monokai"

var markdownCodeTheme = defaultCodeTheme

// ConfigureMarkdownCodeTheme selects the chroma theme for fenced code in
// reference descriptions. Unknown names fall back to the default theme.
func ConfigureMarkdownCodeTheme(theme string) {
	name := strings.ToLower(strings.TrimSpace(theme))
	if _, ok := styles.Registry[name]; !ok {
		name = defaultCodeTheme
	}
	markdownCodeTheme = name
}

// RenderMarkdown renders a reference description for terminal display.
// Output is plain when the configured renderer has no colors.
func RenderMarkdown(content string, width int) (string, error) {
	if width <= 0 {
		width = DefaultTermWidth
	}

	style := descriptionStyle()
	if renderer.ColorProfile() == termenv.Ascii {
		style = glamourstyles.ASCIIStyleConfig
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithColorProfile(renderer.ColorProfile()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}

	rendered, err := r.Render(content)
	if err != nil {
		return "", err
	}

	// glamour adds trailing newlines; normalize to a single trailing newline.
	rendered = strings.TrimRight(rendered, "\n") + "\n"
	return rendered, nil
}

// descriptionStyle is glamour's dark theme with the accent color on
// headings, underlined top-level headings and the configured chroma theme.
func descriptionStyle() ansi.StyleConfig {
	style := glamourstyles.DarkStyleConfig

	// The summary table follows directly, so no blank lines around the text.
	style.Document.BlockPrefix = ""
	style.Document.BlockSuffix = ""
	style.Document.Margin = uintPtr(MarkdownRenderMargin)

	if color, ok := AccentColor(); ok {
		style.Heading.Color = stringPtr(color)
	}
	style.H1.Prefix = "# "
	style.H1.Suffix = ""
	style.H1.Color = nil
	style.H1.BackgroundColor = nil
	style.H1.Underline = boolPtr(true)
	style.H2.Underline = boolPtr(true)

	style.Code.Prefix = "`"
	style.Code.Suffix = "`"
	style.Code.Color = stringPtr("3")
	style.Code.BackgroundColor = nil

	style.CodeBlock.Margin = uintPtr(MarkdownRenderMargin)
	style.CodeBlock.Theme = markdownCodeTheme
	style.CodeBlock.Chroma = nil
	return style
}

func boolPtr(v bool) *bool { return &v }

func stringPtr(v string) *string { return &v }

func uintPtr(v uint) *uint { return &v }
