package ui

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestStatusMessages(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{Success("copied"), "[+] copied"},
		{Errorf("no note %d", 7), "[-] Error: no note 7"},
		{Warning("careful"), "[!] careful"},
		{Info("fyi"), "[*] fyi"},
		{Count(1, "note", "notes"), "1 note"},
		{Count(3, "note", "notes"), "3 notes"},
	}
	for _, tt := range tests {
		if got := ansi.Strip(tt.got); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestPrettyList(t *testing.T) {
	var buf bytes.Buffer
	PrettyList(&buf, "Matching references:", []string{"network", "shell"})

	want := "[+] Matching references:\n[+]   network\n[+]   shell\n"
	if got := ansi.Strip(buf.String()); got != want {
		t.Errorf("PrettyList() = %q, want %q", got, want)
	}
}
