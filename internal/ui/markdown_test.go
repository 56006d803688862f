package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestRenderMarkdown(t *testing.T) {
	SetRenderer(NewRenderer(&bytes.Buffer{}, ColorNever))
	t.Cleanup(func() { SetRenderer(nil) })

	tests := []struct {
		name    string
		content string
		width   int
		want    []string
	}{
		{"heading and paragraph", "# Networking\n\nPing and scan hosts.", 80, []string{"Networking", "Ping and scan hosts."}},
		{"non-positive width falls back", "hello", 0, []string{"hello"}},
		{"inline code", "run `nmap -sV`", 80, []string{"nmap -sV"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := RenderMarkdown(tt.content, tt.width)
			if err != nil {
				t.Fatalf("RenderMarkdown() error = %v", err)
			}
			if !strings.HasSuffix(out, "\n") || strings.HasSuffix(out, "\n\n") {
				t.Errorf("want exactly one trailing newline, got %q", out)
			}
			if out != ansi.Strip(out) {
				t.Errorf("plain renderer produced escapes: %q", out)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestDescriptionStyle(t *testing.T) {
	origAccent := accentColor
	t.Cleanup(func() { ConfigureTheme(origAccent) })

	ConfigureTheme("39")
	style := descriptionStyle()

	if style.Heading.Color == nil || *style.Heading.Color != "39" {
		t.Errorf("headings should use the accent color, got %v", style.Heading.Color)
	}
	if style.H1.Underline == nil || !*style.H1.Underline || style.H2.Underline == nil || !*style.H2.Underline {
		t.Error("expected H1 and H2 to be underlined")
	}
	if style.Code.Color == nil || style.CodeBlock.StylePrimitive.Color == nil {
		t.Error("expected inline code and code blocks to be colored")
	}
	if style.CodeBlock.Chroma != nil || style.CodeBlock.Theme != markdownCodeTheme {
		t.Errorf("code blocks should use the %q theme", markdownCodeTheme)
	}
	if style.Document.BlockPrefix != "" || style.Document.BlockSuffix != "" {
		t.Error("document should not add blank lines")
	}
}

func TestConfigureMarkdownCodeTheme(t *testing.T) {
	orig := markdownCodeTheme
	t.Cleanup(func() { markdownCodeTheme = orig })

	tests := []struct {
		input string
		want  string
	}{
		{"dracula", "dracula"},
		{"DrAcUlA", "dracula"},
		{"  github ", "github"},
		{"not-a-real-theme", defaultCodeTheme},
		{"", defaultCodeTheme},
	}

	for _, tt := range tests {
		ConfigureMarkdownCodeTheme(tt.input)
		if markdownCodeTheme != tt.want {
			t.Errorf("ConfigureMarkdownCodeTheme(%q) = %q, want %q", tt.input, markdownCodeTheme, tt.want)
		}
		if got := descriptionStyle().CodeBlock.Theme; got != tt.want {
			t.Errorf("style theme = %q, want %q", got, tt.want)
		}
	}
}
