package reference

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"testing"

	"github.com/usdAG/reftool/internal/testutil"
)

func TestComplete(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("completer scripts require a POSIX shell")
	}

	fixture := testutil.NewTestLibrary(t).
		WithCompleter("net", "users.sh", "#!/bin/sh\necho alice\necho\necho bob\n")
	lib := newTestLibrary(t, fixture)

	outside := filepath.Join(fixture.Home, "outside.sh")
	if err := os.WriteFile(outside, []byte("#!/bin/sh\necho leaked\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	note := Note{Autocomplete: map[string]Completion{
		"host":    {Kind: CompletionIP},
		"port":    {Kind: CompletionList, Entries: []string{"80", "443"}},
		"user":    {Kind: CompletionScript, Script: "users.sh"},
		"missing": {Kind: CompletionScript, Script: "nope.sh"},
		"escape":  {Kind: CompletionScript, Script: "../outside.sh"},
		"notsh":   {Kind: CompletionScript, Script: "users.py"},
	}}

	tests := []struct {
		param string
		want  []string
	}{
		{"host", []string{IPCompletion}},
		{"PORT", []string{"80", "443"}},
		{"user", []string{"alice", "bob"}},
		{"missing", []string{DefaultCompletion}},
		{"escape", []string{DefaultCompletion}},
		{"notsh", []string{DefaultCompletion}},
		{"unknown", []string{DefaultCompletion}},
	}
	for _, tt := range tests {
		t.Run(tt.param, func(t *testing.T) {
			got := lib.Complete(context.Background(), note, tt.param)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Complete(%q) = %v, want %v", tt.param, got, tt.want)
			}
		})
	}
}

func TestCompleteRejectsSymlinkOutsideRoot(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require elevated privileges on windows")
	}

	fixture := testutil.NewTestLibrary(t)
	lib := newTestLibrary(t, fixture)

	target := filepath.Join(fixture.Home, "evil.sh")
	if err := os.WriteFile(target, []byte("#!/bin/sh\necho evil\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	dir := filepath.Join(fixture.CompleterDir(), "completers")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(target, filepath.Join(dir, "evil.sh")); err != nil {
		t.Fatal(err)
	}

	note := Note{Autocomplete: map[string]Completion{"x": {Kind: CompletionScript, Script: "evil.sh"}}}
	got := lib.Complete(context.Background(), note, "x")
	if !reflect.DeepEqual(got, []string{DefaultCompletion}) {
		t.Errorf("Complete() = %v, want default", got)
	}
}

func TestParseCompletionKind(t *testing.T) {
	if _, err := ParseCompletionKind("ip"); err == nil {
		t.Error("ParseCompletionKind(ip) expected error: kinds are case sensitive")
	}
	if k, err := ParseCompletionKind("script"); err != nil || k != CompletionScript {
		t.Errorf("ParseCompletionKind(script) = %q, %v", k, err)
	}
}
