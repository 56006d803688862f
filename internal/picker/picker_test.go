package picker

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/usdAG/reftool/internal/reference"
)

func testReference() *reference.Reference {
	return &reference.Reference{
		Name: "network",
		Items: []reference.Item{
			{Title: "Discovery", Notes: []reference.Note{
				{Number: "1", Text: "ping <HOST>", Comment: "echo"},
				{Number: "2", Text: "nmap <HOST>\n-p-", Comment: "scan"},
			}},
		},
	}
}

func sized(t *testing.T) Model {
	t.Helper()
	next, _ := New(testReference()).Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(Model)
}

func TestEnterChoosesSelectedNote(t *testing.T) {
	m := sized(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.(Model).Update(tea.KeyMsg{Type: tea.KeyEnter})

	note, ok := next.(Model).Chosen()
	if !ok {
		t.Fatal("expected a chosen note")
	}
	if note.Number != "2" {
		t.Errorf("chosen note = %s, want 2", note.Number)
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, isQuit := cmd().(tea.QuitMsg); !isQuit {
		t.Error("expected tea.QuitMsg after choosing")
	}
}

func TestCtrlCAbortsWithoutChoice(t *testing.T) {
	m := sized(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if _, ok := next.(Model).Chosen(); ok {
		t.Error("expected no chosen note")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, isQuit := cmd().(tea.QuitMsg); !isQuit {
		t.Error("expected tea.QuitMsg")
	}
}

func TestEntryShowsFirstLine(t *testing.T) {
	e := entry{item: "Discovery", note: testReference().Items[0].Notes[1]}
	if e.Title() != "2) nmap <HOST>" {
		t.Errorf("Title() = %q", e.Title())
	}
	if e.Description() != "[Discovery] scan" {
		t.Errorf("Description() = %q", e.Description())
	}
	if !strings.Contains(e.FilterValue(), "-p-") {
		t.Errorf("FilterValue() = %q", e.FilterValue())
	}
}

func TestViewListsNotes(t *testing.T) {
	view := sized(t).View()
	if !strings.Contains(view, "ping <HOST>") {
		t.Errorf("view missing note:\n%s", view)
	}
}
