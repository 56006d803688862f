// Package reference loads reference collections from YAML files and
// implements the operations that run directly on their notes: listing,
// search, joining, filtering, parameter substitution, encodings and
// completion lookups.
package reference

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var (
	// ErrReferenceNotFound is returned when no file matches a reference name.
	ErrReferenceNotFound = errors.New("reference not found")
	// ErrNoItems is returned for reference files without an Items section.
	ErrNoItems = errors.New("reference does not contain an Items section")
	// ErrNoteNotFound is returned when a note number does not exist.
	ErrNoteNotFound = errors.New("note not found")
	// ErrInvalidExpression wraps regular expression syntax errors.
	ErrInvalidExpression = errors.New("invalid regular expression syntax")
)

// MissingDataError describes a reference entry lacking a required field.
type MissingDataError struct {
	Reference string
	Entry     string
	Field     string
}

func (e *MissingDataError) Error() string {
	return fmt.Sprintf("reference %s: %s without a %s section", e.Reference, e.Entry, e.Field)
}

// Reference is a named collection of items.
type Reference struct {
	Name        string
	Description string
	Path        string
	Items       []Item
}

// Item is a titled group of notes.
type Item struct {
	Title string
	Notes []Note
}

// Note is a single reference entry.
type Note struct {
	Number       string
	Text         string
	Comment      string
	Lines        []int
	Truncate     bool
	Autocomplete map[string]Completion
}

// NoteCount returns the number of notes across all items.
func (r *Reference) NoteCount() int {
	n := 0
	for _, item := range r.Items {
		n += len(item.Notes)
	}
	return n
}

// Note returns the note with the given number.
func (r *Reference) Note(number string) (*Note, error) {
	for i := range r.Items {
		for j := range r.Items[i].Notes {
			if r.Items[i].Notes[j].Number == number {
				return &r.Items[i].Notes[j], nil
			}
		}
	}
	return nil, fmt.Errorf("%w: unable to find note with ID %s in reference %s", ErrNoteNotFound, number, r.Name)
}

// Filter returns a copy of r holding only the notes whose text matches
// expr. Surviving notes are renumbered from 1 and items left without notes
// are dropped.
func (r *Reference) Filter(expr string) (*Reference, error) {
	re, err := compile(expr)
	if err != nil {
		return nil, err
	}

	out := &Reference{Name: r.Name, Description: r.Description, Path: r.Path}
	counter := 1
	for _, item := range r.Items {
		var notes []Note
		for _, note := range item.Notes {
			if !re.MatchString(note.Text) {
				continue
			}
			note.Number = strconv.Itoa(counter)
			notes = append(notes, note)
			counter++
		}
		if len(notes) > 0 {
			out.Items = append(out.Items, Item{Title: item.Title, Notes: notes})
		}
	}
	return out, nil
}

// Join merges refs into a single reference. Item titles are prefixed with
// the name of the reference they came from; the inputs are not modified.
func Join(refs []*Reference, name string) *Reference {
	joined := &Reference{Name: name}
	for _, ref := range refs {
		if ref == nil {
			continue
		}
		for _, item := range ref.Items {
			joined.Items = append(joined.Items, Item{
				Title: fmt.Sprintf("[%s] %s", ref.Name, item.Title),
				Notes: append([]Note(nil), item.Notes...),
			})
		}
	}
	return joined
}

func compile(expr string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidExpression, err)
	}
	return re, nil
}
