package atomicfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileReplacesContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ref.yml")

	for _, content := range []string{"first", "second"} {
		if err := WriteFile(path, []byte(content), 0); err != nil {
			t.Fatalf("WriteFile(%q) error = %v", content, err)
		}
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != content {
			t.Errorf("content = %q, want %q", got, content)
		}
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %v", entries)
	}
}

func TestCreateNew(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "ref.yml")

	if err := CreateNew(path, []byte("Items: []\n"), 0o644); err != nil {
		t.Fatalf("CreateNew() error = %v", err)
	}
	err := CreateNew(path, []byte("other"), 0o644)
	if !errors.Is(err, ErrExists) {
		t.Fatalf("second CreateNew() error = %v, want ErrExists", err)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "Items: []\n" {
		t.Errorf("existing file overwritten: %q", got)
	}
}
