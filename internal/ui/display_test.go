package ui

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDisplayContextForFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	d := displayContextFor(f)
	if d.IsTTY {
		t.Error("regular file reported as terminal")
	}
	if d.TermWidth != DefaultTermWidth || d.FitWidth() != 0 {
		t.Errorf("TermWidth = %d, FitWidth = %d", d.TermWidth, d.FitWidth())
	}
}

func TestFitWidthOnTerminal(t *testing.T) {
	if got := NewDisplayContextWithWidth(90).FitWidth(); got != 90 {
		t.Errorf("FitWidth() = %d, want 90", got)
	}
}
