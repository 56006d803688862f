package reference

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// CompletionKind selects how a note parameter is completed.
type CompletionKind string

const (
	CompletionList   CompletionKind = "list"
	CompletionIP     CompletionKind = "IP"
	CompletionScript CompletionKind = "script"
)

// ParseCompletionKind validates a completion type from a reference file.
func ParseCompletionKind(s string) (CompletionKind, error) {
	switch CompletionKind(s) {
	case CompletionList, CompletionIP, CompletionScript:
		return CompletionKind(s), nil
	}
	return "", fmt.Errorf("unknown completion type %q", s)
}

// Completion describes the completion source of one parameter.
type Completion struct {
	Kind    CompletionKind
	Entries []string
	Script  string
}

const (
	// DefaultCompletion tells the shell to complete file names.
	DefaultCompletion = "[FILE]"
	// IPCompletion tells the shell to complete IP addresses.
	IPCompletion = "[IP]"

	completersDir = "completers"
	scriptTimeout = 5 * time.Second
)

// Complete returns the completion candidates for param of note. Anything
// that cannot be resolved falls back to DefaultCompletion.
func (l *Library) Complete(ctx context.Context, note Note, param string) []string {
	def := []string{DefaultCompletion}

	comp, ok := note.Autocomplete[strings.ToLower(param)]
	if !ok {
		return def
	}

	switch comp.Kind {
	case CompletionList:
		return append([]string(nil), comp.Entries...)
	case CompletionIP:
		return []string{IPCompletion}
	case CompletionScript:
		out, err := l.runCompleter(ctx, comp.Script)
		if err != nil {
			l.logger.Warn("completer failed", "script", comp.Script, "error", err)
			return def
		}
		return out
	}
	return def
}

func (l *Library) runCompleter(ctx context.Context, name string) ([]string, error) {
	script, err := l.findCompleter(name)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, scriptTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, script).Output()
	if err != nil {
		return nil, fmt.Errorf("running %s: %w", name, err)
	}

	var lines []string
	for _, line := range strings.Split(string(out), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// findCompleter locates an executable script named name inside any
// completers directory below the completer path.
func (l *Library) findCompleter(name string) (string, error) {
	if !strings.HasSuffix(name, ".sh") || filepath.Base(name) != name {
		return "", fmt.Errorf("invalid completer name %q", name)
	}
	if l.completerPath == "" {
		return "", fmt.Errorf("no completer path configured")
	}
	root, err := filepath.EvalSymlinks(l.completerPath)
	if err != nil {
		return "", fmt.Errorf("resolving completer path: %w", err)
	}

	var found string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() || d.Name() != completersDir {
			return nil
		}
		candidate := filepath.Join(path, name)
		if ok := executableWithin(root, candidate); ok {
			found = candidate
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	if found == "" {
		return "", fmt.Errorf("completer %s not found", name)
	}
	return found, nil
}

func executableWithin(root, path string) bool {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(root, resolved)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	info, err := os.Stat(resolved)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	return info.Mode().Perm()&0o111 != 0
}
