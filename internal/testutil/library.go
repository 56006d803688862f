// Package testutil provides reusable fixtures for reftool tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// TestLibrary is a temporary home directory holding reference files,
// completer scripts and a config file.
type TestLibrary struct {
	Home string

	t          *testing.T
	references map[string]string
	completers map[string]string
	config     string
}

// NewTestLibrary creates a new library builder.
// Call Build() to create the actual directory tree.
func NewTestLibrary(t *testing.T) *TestLibrary {
	t.Helper()
	return &TestLibrary{
		t:          t,
		references: make(map[string]string),
		completers: make(map[string]string),
	}
}

// WithReference adds a reference file. The path is relative to the
// reference directory and gets a .yml extension when it has none.
func (l *TestLibrary) WithReference(path, content string) *TestLibrary {
	if filepath.Ext(path) == "" {
		path += ".yml"
	}
	l.references[path] = content
	return l
}

// WithCompleter adds an executable completer script below
// <completer dir>/<group>/completers/.
func (l *TestLibrary) WithCompleter(group, name, script string) *TestLibrary {
	l.completers[filepath.Join(group, "completers", name)] = script
	return l
}

// WithConfig appends TOML to the generated config file.
func (l *TestLibrary) WithConfig(toml string) *TestLibrary {
	l.config += toml
	return l
}

// Build creates the directory tree and returns the TestLibrary for chaining.
func (l *TestLibrary) Build() *TestLibrary {
	l.t.Helper()

	l.Home = l.t.TempDir()
	l.mkdir(l.ReferenceDir())
	l.mkdir(l.CompleterDir())

	for path, content := range l.references {
		l.writeFile(filepath.Join(l.ReferenceDir(), path), content, 0o644)
	}
	for path, content := range l.completers {
		l.writeFile(filepath.Join(l.CompleterDir(), path), content, 0o755)
	}

	config := fmt.Sprintf("[reference]\nreference_path = %q\ncompleter_path = %q\n", l.ReferenceDir(), l.CompleterDir())
	l.writeFile(l.ConfigPath(), config+l.config, 0o644)
	return l
}

// ReferenceDir returns the directory holding reference files.
func (l *TestLibrary) ReferenceDir() string { return filepath.Join(l.Home, "references") }

// CompleterDir returns the directory holding completer scripts.
func (l *TestLibrary) CompleterDir() string { return filepath.Join(l.Home, "completers") }

// ConfigPath returns the path of the generated config file.
func (l *TestLibrary) ConfigPath() string { return filepath.Join(l.Home, "config.toml") }

func (l *TestLibrary) mkdir(dir string) {
	l.t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		l.t.Fatalf("failed to create directory %s: %v", dir, err)
	}
}

// writeFile writes a file, creating directories as needed.
func (l *TestLibrary) writeFile(fullPath, content string, perm os.FileMode) {
	l.t.Helper()
	l.mkdir(filepath.Dir(fullPath))
	if err := os.WriteFile(fullPath, []byte(content), perm); err != nil {
		l.t.Fatalf("failed to write file %s: %v", fullPath, err)
	}
}

// ReadFile reads a file relative to the home directory.
func (l *TestLibrary) ReadFile(relPath string) string {
	l.t.Helper()
	content, err := os.ReadFile(filepath.Join(l.Home, relPath))
	if err != nil {
		l.t.Fatalf("failed to read file %s: %v", relPath, err)
	}
	return string(content)
}

// FileExists checks if a file exists relative to the home directory.
func (l *TestLibrary) FileExists(relPath string) bool {
	l.t.Helper()
	_, err := os.Stat(filepath.Join(l.Home, relPath))
	return err == nil
}

// NetworkReference is a small reference with two items and a parameterized
// note.
func NetworkReference() string {
	return `Description: |
  Networking one-liners.

  Second paragraph.
Items:
  - Name: Discovery
    Notes:
      - Text: ping -c 1 <HOST>
        Comment: single echo request
        Autocomplete:
          host: {type: IP}
      - Text: nmap -p <PORT> <HOST>
        Comment: scan one port
        Autocomplete:
          port: {type: list, completer: ["80", "443"]}
  - Name: Transfer
    Notes:
      - Text: curl -o <FILE> <URL>
        Comment: download a file
`
}

// ShellReference is a second reference used for joins and searches.
func ShellReference() string {
	return `Items:
  - Name: Listeners
    Notes:
      - Text: nc -lvnp <PORT>
        Comment: netcat listener
`
}
