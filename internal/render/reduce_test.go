package render

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/usdAG/reftool/internal/reference"
)

func TestReduce(t *testing.T) {
	tests := []struct {
		name      string
		note      reference.Note
		textSize  int
		want      string
		truncated bool
	}{
		{
			name:     "untouched",
			note:     reference.Note{Text: "A\nB", Comment: "c"},
			textSize: 20,
			want:     "A\nB",
		},
		{
			name:      "line selection",
			note:      reference.Note{Text: "A\nB\nC", Comment: "c", Lines: []int{0, 2}},
			textSize:  20,
			want:      "A\nC",
			truncated: true,
		},
		{
			name:     "line selection ignored for single line",
			note:     reference.Note{Text: "A", Comment: "c", Lines: []int{3}},
			textSize: 20,
			want:     "A",
		},
		{
			name:      "out of range index skipped",
			note:      reference.Note{Text: "A\nB", Comment: "c", Lines: []int{1, 7}},
			textSize:  20,
			want:      "B",
			truncated: true,
		},
		{
			name:      "truncate by width",
			note:      reference.Note{Text: strings.Repeat("x", 25), Comment: "c", Truncate: true},
			textSize:  20,
			want:      "xxxxx[...]",
			truncated: true,
		},
		{
			name:     "truncate leaves short lines",
			note:     reference.Note{Text: strings.Repeat("x", 19), Comment: "c", Truncate: true},
			textSize: 20,
			want:     strings.Repeat("x", 19),
		},
		{
			name:      "truncate counts runes",
			note:      reference.Note{Text: strings.Repeat("ü", 20), Comment: "c", Truncate: true},
			textSize:  20,
			want:      "üüüüü[...]",
			truncated: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reduce(tt.note, tt.textSize)
			if got.Text != tt.want {
				t.Errorf("Text = %q, want %q", got.Text, tt.want)
			}
			if got.Truncated != tt.truncated {
				t.Errorf("Truncated = %v, want %v", got.Truncated, tt.truncated)
			}
			wantComment := tt.note.Comment
			if tt.truncated {
				wantComment = "[Truncated] - " + tt.note.Comment
			}
			if got.Comment != wantComment {
				t.Errorf("Comment = %q, want %q", got.Comment, wantComment)
			}
		})
	}
}

func TestReduceTruncatedLength(t *testing.T) {
	got := Reduce(reference.Note{Text: strings.Repeat("a", 25), Truncate: true}, 20)
	if n := utf8.RuneCountInString(got.Text); n != 10 || !strings.HasSuffix(got.Text, "[...]") {
		t.Errorf("Text = %q (%d runes), want 10 runes ending in [...]", got.Text, n)
	}
}

func TestReduceDoesNotMutateNote(t *testing.T) {
	note := reference.Note{Number: "4", Text: "A\nB\nC", Comment: "c", Lines: []int{0, 2}}

	first := Reduce(note, 20)
	second := Reduce(note, 20)

	if first != second {
		t.Errorf("repeated Reduce differs: %+v vs %+v", first, second)
	}
	if strings.Count(second.Comment, "[Truncated] - ") != 1 {
		t.Errorf("Comment = %q, want a single prefix", second.Comment)
	}
	if note.Comment != "c" || note.Text != "A\nB\nC" || note.Number != "4" {
		t.Errorf("note mutated: %+v", note)
	}
}
