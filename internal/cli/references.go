package cli

import (
	"fmt"
	"strings"

	"github.com/usdAG/reftool/internal/layout"
	"github.com/usdAG/reftool/internal/reference"
)

type noteData struct {
	Number  string   `json:"number"`
	Text    string   `json:"text"`
	Comment string   `json:"comment"`
	Args    []string `json:"args,omitempty"`
}

type itemData struct {
	Title string     `json:"title"`
	Notes []noteData `json:"notes"`
}

// loadReferences loads every named reference. Several names are joined into
// one reference named after all of them.
func loadReferences(names []string) (*reference.Reference, error) {
	lib := getLibrary()
	if len(names) == 1 {
		return lib.Load(names[0])
	}
	refs, err := lib.LoadAll(names)
	if err != nil {
		return nil, err
	}
	return reference.Join(refs, strings.Join(names, ",")), nil
}

// loadNote loads a single reference and looks up one of its notes.
func loadNote(name, number string) (*reference.Note, error) {
	ref, err := getLibrary().Load(name)
	if err != nil {
		return nil, err
	}
	return ref.Note(number)
}

// renderReference prints ref as a listing. Entries that fail to render are
// reported inline; the count of failures is logged.
func renderReference(ref *reference.Reference, fit bool) error {
	policy, err := newPolicy(fit)
	if err != nil {
		return handleReferenceError(err)
	}
	failed, err := policy.Listing(layout.NewPrinter(stdout()), ref.Items)
	if err != nil {
		return handleError(ErrInternal, fmt.Errorf("failed to write output: %w", err), "")
	}
	if failed > 0 {
		log.Warn("entries failed to render", "reference", ref.Name, "failed", failed)
	}
	return nil
}

// outputReference writes ref in JSON mode.
func outputReference(ref *reference.Reference) {
	items := make([]itemData, 0, len(ref.Items))
	for _, item := range ref.Items {
		data := itemData{Title: item.Title, Notes: make([]noteData, 0, len(item.Notes))}
		for _, note := range item.Notes {
			data.Notes = append(data.Notes, toNoteData(note))
		}
		items = append(items, data)
	}
	outputSuccess(map[string]interface{}{
		"reference": ref.Name,
		"items":     items,
	}, &Meta{Count: ref.NoteCount()})
}

func toNoteData(note reference.Note) noteData {
	return noteData{
		Number:  note.Number,
		Text:    note.Text,
		Comment: note.Comment,
		Args:    note.Args(),
	}
}
