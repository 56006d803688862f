// Package shellquote quotes words for display in copy-pasteable commands.
package shellquote

import "strings"

// Quote wraps s in single quotes, escaping any internal single quotes.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// QuoteIfNeeded quotes strings that a POSIX shell would split or expand.
func QuoteIfNeeded(s string) string {
	if s == "" {
		return "''"
	}
	if strings.ContainsAny(s, " \t\n#[]()|!\"'$`\\;&<>*?~{}") {
		return Quote(s)
	}
	return s
}
