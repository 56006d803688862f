package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestNormalizeAccentColor(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"", "", false},
		{"none", "", false},
		{"off", "", false},
		{"default", "", false},
		{"39", "39", true},
		{"  244 ", "244", true},
		{"256", "", false},
		{"-1", "", false},
		{"#7aa2f7", "#7aa2f7", true},
		{"#abc", "#aabbcc", true},
		{"#zzzzzz", "", false},
		{"blue", "", false},
	}

	for _, tt := range tests {
		got, ok := normalizeAccentColor(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("normalizeAccentColor(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestConfigureTheme(t *testing.T) {
	origAccent := accentColor
	t.Cleanup(func() { ConfigureTheme(origAccent) })

	steps := []struct {
		accent string
		want   string
		ok     bool
	}{
		{"39", "39", true},
		{"none", "", false},
		{"", defaultAccent, true},
	}
	for _, step := range steps {
		ConfigureTheme(step.accent)
		got, ok := AccentColor()
		if ok != step.ok || (ok && got != step.want) {
			t.Errorf("after ConfigureTheme(%q): AccentColor() = %q, %v", step.accent, got, ok)
		}
	}
}

func TestSetRendererControlsStyles(t *testing.T) {
	t.Cleanup(func() { SetRenderer(nil) })

	SetRenderer(NewRenderer(&bytes.Buffer{}, ColorNever))
	if got := Success("done"); got != "[+] done" {
		t.Errorf("plain Success() = %q", got)
	}

	SetRenderer(NewRenderer(&bytes.Buffer{}, ColorAlways))
	if got := Success("done"); !strings.Contains(got, "\x1b[") {
		t.Errorf("colored Success() = %q, want escapes", got)
	}
}
