package reference

import (
	"errors"
	"reflect"
	"testing"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func TestArgs(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{text: "nmap -p <PORT> <HOST> && ping <HOST>", want: []string{"port", "host"}},
		{text: "echo <lower> <X1>", want: []string{"x1"}},
		{text: "no params", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := Note{Text: tt.text}.Args()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Args() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSubstitute(t *testing.T) {
	note := Note{Text: "curl -o <FILE> <URL> # <FILE>"}

	got, err := note.Substitute([]string{"file=out.bin", "URL=http://x/?a=b"})
	if err != nil {
		t.Fatalf("Substitute() error = %v", err)
	}
	if want := "curl -o out.bin http://x/?a=b # out.bin"; got != want {
		t.Errorf("Substitute() = %q, want %q", got, want)
	}

	if _, err := note.Substitute([]string{"file"}); err == nil {
		t.Error("Substitute(file) expected error for missing '='")
	}
	if note.Text != "curl -o <FILE> <URL> # <FILE>" {
		t.Errorf("Substitute modified the note: %q", note.Text)
	}
}

func TestMissing(t *testing.T) {
	note := Note{Text: "nmap -p <PORT> <HOST> -oN <FILE>"}

	got := note.Missing([]string{"HOST=10.0.0.1", "bogus"})
	if want := []string{"port", "file"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Missing() = %v, want %v", got, want)
	}
	if got := note.Missing([]string{"port=80", "host=x", "file=y"}); got != nil {
		t.Errorf("Missing() = %v, want nil", got)
	}
}

func TestCopy(t *testing.T) {
	note := Note{Text: "ping <HOST>"}

	cb := &fakeClipboard{}
	got, err := note.Copy([]string{"host=a b"}, EncodingURL, cb)
	if err != nil {
		t.Fatalf("Copy() error = %v", err)
	}
	if got != "ping+a+b" || cb.text != got {
		t.Errorf("Copy() = %q, clipboard = %q", got, cb.text)
	}

	failing := &fakeClipboard{err: errors.New("no display")}
	if _, err := note.Copy(nil, EncodingNone, failing); err == nil {
		t.Error("Copy() expected clipboard error")
	}
}
