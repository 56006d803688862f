package ui

import (
	"fmt"
	"io"
)

// Status tags
const (
	TagSuccess = "[+]"
	TagError   = "[-]"
	TagWarning = "[!]"
	TagInfo    = "[*]"
)

// Success returns a success message with the [+] tag
func Success(msg string) string {
	return fmt.Sprintf("%s %s", Good.Render(TagSuccess), msg)
}

// Successf returns a formatted success message with the [+] tag
func Successf(format string, args ...interface{}) string {
	return Success(fmt.Sprintf(format, args...))
}

// Error returns an error message with the [-] tag
func Error(msg string) string {
	return fmt.Sprintf("%s Error: %s", Bad.Render(TagError), msg)
}

// Errorf returns a formatted error message with the [-] tag
func Errorf(format string, args ...interface{}) string {
	return Error(fmt.Sprintf(format, args...))
}

// Warning returns a warning message with the [!] tag
func Warning(msg string) string {
	return fmt.Sprintf("%s %s", Bold.Render(TagWarning), msg)
}

// Info returns an info message with the [*] tag
func Info(msg string) string {
	return fmt.Sprintf("%s %s", Muted.Render(TagInfo), msg)
}

// Hint returns muted hint text
func Hint(msg string) string {
	return Muted.Render(msg)
}

// Count returns a count with the matching noun, e.g. "3 notes"
func Count(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

// PrettyList writes a headline followed by indented values, every line
// tagged with [+].
func PrettyList(w io.Writer, headline string, values []string) {
	tag := Good.Render(TagSuccess)
	fmt.Fprintf(w, "%s %s\n", tag, AccentBold.Render(headline))
	for _, v := range values {
		fmt.Fprintf(w, "%s   %s\n", tag, Accent.Render(v))
	}
}
