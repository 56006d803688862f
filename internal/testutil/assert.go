package testutil

import (
	"strings"
	"testing"
)

// AssertFileExists reports an error when relPath is missing under Home.
func (l *TestLibrary) AssertFileExists(relPath string) {
	l.t.Helper()
	if !l.FileExists(relPath) {
		l.t.Errorf("%s does not exist", relPath)
	}
}

// AssertFileContains reports an error when relPath lacks substr.
func (l *TestLibrary) AssertFileContains(relPath, substr string) {
	l.t.Helper()
	if content := l.ReadFile(relPath); !strings.Contains(content, substr) {
		l.t.Errorf("%s does not contain %q:\n%s", relPath, substr, content)
	}
}

// AssertHasWarning reports an error unless a warning with code was returned.
func (r *CLIResult) AssertHasWarning(t *testing.T, code string) {
	t.Helper()
	for _, w := range r.Warnings {
		if w.Code == code {
			return
		}
	}
	t.Errorf("no %s warning in %+v", code, r.Warnings)
}

// AssertResultCount reports an error unless the data list key has n entries.
func (r *CLIResult) AssertResultCount(t *testing.T, key string, n int) {
	t.Helper()
	if got := len(r.DataList(key)); got != n {
		t.Errorf("%s: got %d entries, want %d\n%s", key, got, n, r.Raw)
	}
}
