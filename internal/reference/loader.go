package reference

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/usdAG/reftool/internal/logging"
)

const fileExt = ".yml"

// Library locates and loads reference files below a reference directory.
// Note numbers are handed out by a counter shared by every reference loaded
// through the same Library.
type Library struct {
	referencePath string
	completerPath string

	mu      sync.Mutex
	counter int

	logger *slog.Logger
}

// NewLibrary creates a Library for the given directories.
func NewLibrary(referencePath, completerPath string) *Library {
	return &Library{
		referencePath: referencePath,
		completerPath: completerPath,
		counter:       1,
		logger:        logging.New("reference"),
	}
}

// SetLogger replaces the logger used to report skipped entries.
func (l *Library) SetLogger(logger *slog.Logger) {
	if logger != nil {
		l.logger = logger
	}
}

// ReferencePath returns the directory references are loaded from.
func (l *Library) ReferencePath() string { return l.referencePath }

// CompleterPath returns the directory completion scripts are searched in.
func (l *Library) CompleterPath() string { return l.completerPath }

// Paths returns every reference file below the reference directory, sorted.
func (l *Library) Paths() ([]string, error) {
	var paths []string
	err := filepath.WalkDir(l.referencePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == fileExt {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan reference directory: %w", err)
	}
	sort.Strings(paths)
	return paths, nil
}

// List returns the sorted, unique names of all references starting with prefix.
func (l *Library) List(prefix string) ([]string, error) {
	paths, err := l.Paths()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var names []string
	for _, path := range paths {
		name := stem(path)
		if !strings.HasPrefix(name, prefix) || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Search returns the names of all references whose file content matches expr.
func (l *Library) Search(expr string) ([]string, error) {
	re, err := compile(expr)
	if err != nil {
		return nil, err
	}
	paths, err := l.Paths()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var names []string
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			l.logger.Warn("skipping unreadable reference", "path", path, "error", err)
			continue
		}
		name := stem(path)
		if seen[name] || !re.Match(content) {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Load reads the reference with the given name.
func (l *Library) Load(name string) (*Reference, error) {
	path, err := l.find(name)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read reference %s: %w", name, err)
	}
	ref, err := l.parse(name, content)
	if err != nil {
		return nil, err
	}
	ref.Path = path
	return ref, nil
}

// LoadAll loads every named reference, stopping at the first failure.
func (l *Library) LoadAll(names []string) ([]*Reference, error) {
	refs := make([]*Reference, 0, len(names))
	for _, name := range names {
		ref, err := l.Load(name)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// Matching searches for expr, loads every match and joins them into a single
// reference named after the expression.
func (l *Library) Matching(expr string) (*Reference, error) {
	names, err := l.Search(expr)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no reference matches %q", ErrReferenceNotFound, expr)
	}
	refs, err := l.LoadAll(names)
	if err != nil {
		return nil, err
	}
	return Join(refs, expr), nil
}

func (l *Library) find(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: invalid name %q", ErrReferenceNotFound, name)
	}
	paths, err := l.Paths()
	if err != nil {
		return "", err
	}
	for _, path := range paths {
		if stem(path) == name {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: unable to find reference %s", ErrReferenceNotFound, name)
}

type rawReference struct {
	Description string     `yaml:"Description"`
	Items       *[]rawItem `yaml:"Items"`
}

type rawItem struct {
	Name  *string    `yaml:"Name"`
	Notes *[]rawNote `yaml:"Notes"`
}

type rawNote struct {
	Text         *string                  `yaml:"Text"`
	Comment      *string                  `yaml:"Comment"`
	Truncate     bool                     `yaml:"Truncate"`
	Lines        []int                    `yaml:"Lines"`
	Autocomplete map[string]rawCompletion `yaml:"Autocomplete"`
}

type rawCompletion struct {
	Type      string    `yaml:"type"`
	Completer yaml.Node `yaml:"completer"`
}

// parse decodes a reference file. Entries lacking required fields are logged
// and skipped.
func (l *Library) parse(name string, content []byte) (*Reference, error) {
	var raw rawReference
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse reference %s: %w", name, err)
	}
	if raw.Items == nil {
		return nil, fmt.Errorf("reference %s: %w", name, ErrNoItems)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	ref := &Reference{Name: name, Description: raw.Description}
	for i, rawItem := range *raw.Items {
		item, err := l.item(name, i, rawItem)
		if err != nil {
			l.skip(err)
			continue
		}
		ref.Items = append(ref.Items, item)
	}
	return ref, nil
}

func (l *Library) item(ref string, index int, raw rawItem) (Item, error) {
	entry := fmt.Sprintf("item %d", index+1)
	if raw.Name == nil {
		return Item{}, &MissingDataError{Reference: ref, Entry: entry, Field: "Name"}
	}
	if raw.Notes == nil {
		return Item{}, &MissingDataError{Reference: ref, Entry: entry, Field: "Notes"}
	}

	item := Item{Title: *raw.Name}
	for j, rawNote := range *raw.Notes {
		note, err := l.note(ref, fmt.Sprintf("%s note %d", entry, j+1), rawNote)
		if err != nil {
			l.skip(err)
			continue
		}
		item.Notes = append(item.Notes, note)
	}
	return item, nil
}

func (l *Library) note(ref, entry string, raw rawNote) (Note, error) {
	if raw.Text == nil {
		return Note{}, &MissingDataError{Reference: ref, Entry: entry, Field: "Text"}
	}
	if raw.Comment == nil {
		return Note{}, &MissingDataError{Reference: ref, Entry: entry, Field: "Comment"}
	}

	note := Note{
		Text:     *raw.Text,
		Comment:  *raw.Comment,
		Lines:    raw.Lines,
		Truncate: raw.Truncate,
	}
	if len(raw.Autocomplete) > 0 {
		note.Autocomplete = make(map[string]Completion, len(raw.Autocomplete))
		for param, rc := range raw.Autocomplete {
			comp, err := rc.decode()
			if err != nil {
				l.logger.Warn("ignoring completion", "reference", ref, "entry", entry, "param", param, "error", err)
				continue
			}
			note.Autocomplete[strings.ToLower(param)] = comp
		}
	}

	note.Number = strconv.Itoa(l.counter)
	l.counter++
	return note, nil
}

func (l *Library) skip(err error) {
	var missing *MissingDataError
	if errors.As(err, &missing) {
		l.logger.Warn("skipping reference entry", "reference", missing.Reference, "entry", missing.Entry, "missing", missing.Field)
		return
	}
	l.logger.Warn("skipping reference entry", "error", err)
}

func (rc rawCompletion) decode() (Completion, error) {
	kind, err := ParseCompletionKind(rc.Type)
	if err != nil {
		return Completion{}, err
	}
	comp := Completion{Kind: kind}
	switch kind {
	case CompletionList:
		if rc.Completer.Kind != yaml.SequenceNode {
			return Completion{}, errors.New("list completer must be a sequence")
		}
		if err := rc.Completer.Decode(&comp.Entries); err != nil {
			return Completion{}, err
		}
	case CompletionScript:
		if rc.Completer.Kind != yaml.ScalarNode {
			return Completion{}, errors.New("script completer must be a file name")
		}
		comp.Script = rc.Completer.Value
	}
	return comp, nil
}

func stem(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
