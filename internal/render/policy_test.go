package render

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/usdAG/reftool/internal/layout"
	"github.com/usdAG/reftool/internal/reference"
)

func colorStyler() *layout.Styler {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI256)
	return layout.NewStyler(r)
}

func scenarioConfig() Config {
	cfg := DefaultConfig()
	cfg.InitialIndent = 2
	cfg.Headline.Size = 30
	cfg.Note.TextSize = 40
	cfg.Note.CountPadding = 2
	cfg.Note.CountIndent = 0
	cfg.Note.CommentSize = 20
	return cfg
}

func mustPolicy(t *testing.T, cfg Config, s *layout.Styler) *Policy {
	t.Helper()
	p, err := New(cfg, s)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return p
}

func collect(paras []*layout.Paragraph) []string {
	var lines []string
	for _, p := range paras {
		lines = append(lines, p.Lines()...)
	}
	return lines
}

func TestItemEndToEnd(t *testing.T) {
	p := mustPolicy(t, scenarioConfig(), colorStyler())
	item := reference.Item{
		Title: "Networking",
		Notes: []reference.Note{{Number: "1", Text: "ping <HOST>", Comment: "basic connectivity"}},
	}

	paras, err := p.Item(item, false)
	if err != nil {
		t.Fatalf("Item() error = %v", err)
	}
	lines := collect(paras)

	want := []string{
		strings.Repeat(" ", 32),
		"  Networking" + strings.Repeat(" ", 20),
		"  1)   ping <HOST>" + strings.Repeat(" ", 24) + "     # basic connectivity",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(lines), len(want), lines)
	}
	for i := range want {
		if got := ansi.Strip(lines[i]); got != want[i] {
			t.Errorf("line %d = %q, want %q", i, got, want[i])
		}
	}

	noteLine := lines[2]
	idx := strings.Index(noteLine, "<HOST>")
	if idx <= 0 || !strings.HasSuffix(noteLine[:idx], "m") {
		t.Errorf("<HOST> is not highlighted: %q", noteLine)
	}
	if !strings.Contains(noteLine, "1)") {
		t.Errorf("note head missing: %q", noteLine)
	}
}

func TestFirstItemHasNoTopPadding(t *testing.T) {
	p := mustPolicy(t, scenarioConfig(), nil)

	head, err := p.Headline("Networking", true)
	if err != nil {
		t.Fatalf("Headline() error = %v", err)
	}
	if got := head.Lines(); len(got) != 1 || strings.TrimSpace(got[0]) != "Networking" {
		t.Errorf("Headline(first) = %q", got)
	}
}

func TestNoteRowWidth(t *testing.T) {
	cfg := scenarioConfig()
	cfg.Note.CountIndent = 3
	p := mustPolicy(t, cfg, colorStyler())

	note := reference.Note{
		Number:  "12",
		Text:    "for i in $(seq 1 <COUNT>); do curl -s http://<HOST>:<PORT>/$i; done",
		Comment: "a fairly long comment that needs to wrap over several lines",
	}
	para, err := p.Note(note)
	if err != nil {
		t.Fatalf("Note() error = %v", err)
	}
	lines := para.Lines()
	if len(lines) < 2 {
		t.Fatalf("expected wrapped output, got %q", lines)
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != cfg.NoteWidth() {
			t.Errorf("line %d width = %d, want %d: %q", i, w, cfg.NoteWidth(), ansi.Strip(line))
		}
	}
}

func TestTruncatedNoteShowsMarker(t *testing.T) {
	p := mustPolicy(t, scenarioConfig(), nil)

	para, err := p.Note(reference.Note{Number: "1", Text: strings.Repeat("y", 60), Comment: "long", Truncate: true})
	if err != nil {
		t.Fatalf("Note() error = %v", err)
	}
	out := strings.Join(para.Lines(), "\n")
	if !strings.Contains(out, "[...]") || !strings.Contains(out, "[Truncated] - long") {
		t.Errorf("truncation not visible:\n%s", out)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero config", func(c *Config) { *c = Config{} }},
		{"headline size", func(c *Config) { c.Headline.Size = 0 }},
		{"negative indent", func(c *Config) { c.InitialIndent = -1 }},
		{"offset beyond text", func(c *Config) { c.Note.CountPadding = c.Note.TextSize }},
		{"comment too narrow", func(c *Config) { c.Note.CommentSize = 2 }},
		{"bad color", func(c *Config) { c.Note.ParameterColor = "ultraviolet" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			_, err := New(cfg, nil)
			var cfgErr *layout.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Errorf("New() error = %v, want ConfigError", err)
			}
		})
	}
}

func TestListingTruncatesLongTitles(t *testing.T) {
	cfg := scenarioConfig()
	cfg.Headline.Size = 5
	p := mustPolicy(t, cfg, nil)

	items := []reference.Item{
		{Title: "First", Notes: []reference.Note{{Number: "1", Text: "a", Comment: "x"}}},
		{Title: "Second", Notes: []reference.Note{{Number: "2", Text: "b", Comment: "y"}}},
	}

	var buf bytes.Buffer
	failed, err := p.Listing(layout.NewPrinter(&buf), items)
	if err != nil {
		t.Fatalf("Listing() error = %v", err)
	}
	if failed != 0 {
		t.Errorf("failed = %d, want 0", failed)
	}
	out := buf.String()
	if !strings.Contains(out, "Seco…") || !strings.Contains(out, "2)") {
		t.Errorf("unexpected listing:\n%s", out)
	}
}

func TestListingIsolatesFailures(t *testing.T) {
	cfg := scenarioConfig()
	cfg.Headline.Size = 0
	p := &Policy{cfg: cfg, styler: layout.PlainStyler()}

	items := []reference.Item{
		{Title: "First", Notes: []reference.Note{{Number: "1", Text: "alpha", Comment: "x"}}},
		{Title: "Second", Notes: []reference.Note{{Number: "2", Text: "beta", Comment: "y"}}},
	}

	var buf bytes.Buffer
	failed, err := p.Listing(layout.NewPrinter(&buf), items)
	if err != nil {
		t.Fatalf("Listing() error = %v", err)
	}
	if failed != 2 {
		t.Errorf("failed = %d, want 2", failed)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), buf.String())
	}
	for _, i := range []int{0, 2} {
		if !strings.HasPrefix(lines[i], "[-] Error: headline") {
			t.Errorf("line %d = %q, want tagged error", i, lines[i])
		}
	}
	if !strings.Contains(lines[1], "alpha") || !strings.Contains(lines[3], "beta") {
		t.Errorf("notes missing after failed headlines:\n%s", buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestListingReportsWriteErrors(t *testing.T) {
	p := mustPolicy(t, scenarioConfig(), nil)
	items := []reference.Item{{Title: "T", Notes: []reference.Note{{Number: "1", Text: "a", Comment: "b"}}}}

	if _, err := p.Listing(layout.NewPrinter(failingWriter{}), items); err == nil {
		t.Error("Listing() expected write error")
	}
}

func TestErrorLine(t *testing.T) {
	p := mustPolicy(t, DefaultConfig(), nil)
	got := p.ErrorLine(&layout.ConfigError{Field: "width", Reason: "must be positive, got 0"})
	if got != "[-] Error: invalid block geometry: width must be positive, got 0" {
		t.Errorf("ErrorLine() = %q", got)
	}
}

func TestFit(t *testing.T) {
	cfg := DefaultConfig()

	if got := cfg.Fit(0); got != cfg {
		t.Errorf("Fit(0) changed the config: %+v", got)
	}
	if got := cfg.Fit(500); got != cfg {
		t.Errorf("Fit(500) changed the config: %+v", got)
	}

	got := cfg.Fit(120)
	if got.NoteWidth() > 120 {
		t.Errorf("Fit(120).NoteWidth() = %d", got.NoteWidth())
	}
	if got.Note.TextSize != cfg.Note.TextSize {
		t.Errorf("text column shrank before the comment column: %+v", got.Note)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("Fit(120) produced invalid config: %v", err)
	}

	tiny := cfg.Fit(10)
	if tiny.Note.CommentSize != minComment || tiny.Note.TextSize != minText {
		t.Errorf("Fit(10) = %+v, want minimum columns", tiny.Note)
	}
	if err := tiny.Validate(); err != nil {
		t.Errorf("Fit(10) produced invalid config: %v", err)
	}
}
