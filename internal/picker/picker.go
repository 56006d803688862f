// Package picker provides an interactive note selector.
package picker

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/usdAG/reftool/internal/reference"
)

var (
	appStyle   = lipgloss.NewStyle().Padding(1, 2)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A78BFA"))
)

type entry struct {
	item string
	note reference.Note
}

func (e entry) Title() string {
	text, _, _ := strings.Cut(e.note.Text, "\n")
	return e.note.Number + ") " + text
}

func (e entry) Description() string {
	return "[" + e.item + "] " + e.note.Comment
}

func (e entry) FilterValue() string {
	return e.note.Text + " " + e.note.Comment + " " + e.item
}

type keyMap struct {
	choose key.Binding
	abort  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		choose: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "copy note")),
		abort:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "abort")),
	}
}

// Model is the bubbletea model of the picker.
type Model struct {
	list   list.Model
	keys   keyMap
	chosen *reference.Note
}

// New builds a picker listing every note of ref.
func New(ref *reference.Reference) Model {
	var items []list.Item
	for _, item := range ref.Items {
		for _, note := range item.Notes {
			items = append(items, entry{item: item.Title, note: note})
		}
	}

	keys := newKeyMap()
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = ref.Name
	l.Styles.Title = titleStyle
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.choose}
	}

	return Model{list: l, keys: keys}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := appStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.abort) {
			return m, tea.Quit
		}
		if m.list.FilterState() == list.Filtering {
			break
		}
		if key.Matches(msg, m.keys.choose) {
			if e, ok := m.list.SelectedItem().(entry); ok {
				note := e.note
				m.chosen = &note
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	return appStyle.Render(m.list.View())
}

// Chosen returns the selected note, if the user picked one.
func (m Model) Chosen() (reference.Note, bool) {
	if m.chosen == nil {
		return reference.Note{}, false
	}
	return *m.chosen, true
}

// Run shows the picker on the given streams and returns the chosen note.
func Run(ref *reference.Reference, in io.Reader, out io.Writer) (reference.Note, bool, error) {
	if ref.NoteCount() == 0 {
		return reference.Note{}, false, fmt.Errorf("reference %s has no notes: %w", ref.Name, reference.ErrNoteNotFound)
	}
	p := tea.NewProgram(New(ref), tea.WithInput(in), tea.WithOutput(out), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return reference.Note{}, false, fmt.Errorf("picker: %w", err)
	}
	note, ok := final.(Model).Chosen()
	return note, ok, nil
}
