package reference

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/atotto/clipboard"
)

// ParameterPattern matches note parameters such as <HOST>.
const ParameterPattern = `<[A-Z0-9]+>`

var parameterRe = regexp.MustCompile(`<([A-Z0-9]+)>`)

// Args returns the distinct parameter names of the note, lower-cased, in the
// order they first appear.
func (n Note) Args() []string {
	seen := make(map[string]bool)
	var args []string
	for _, m := range parameterRe.FindAllStringSubmatch(n.Text, -1) {
		name := strings.ToLower(m[1])
		if seen[name] {
			continue
		}
		seen[name] = true
		args = append(args, name)
	}
	return args
}

// Substitute returns the note text with every <KEY> replaced by the value of
// the matching key=value argument.
func (n Note) Substitute(args []string) (string, error) {
	text := n.Text
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return "", fmt.Errorf("invalid argument %q: expected key=value", arg)
		}
		text = strings.ReplaceAll(text, "<"+strings.ToUpper(key)+">", value)
	}
	return text, nil
}

// Missing returns the parameters of the note that args leave unset, in the
// order of Args. Malformed arguments are ignored.
func (n Note) Missing(args []string) []string {
	set := make(map[string]bool, len(args))
	for _, arg := range args {
		if key, _, ok := strings.Cut(arg, "="); ok {
			set[strings.ToLower(key)] = true
		}
	}
	var missing []string
	for _, name := range n.Args() {
		if !set[name] {
			missing = append(missing, name)
		}
	}
	return missing
}

// Clipboard receives copied note text.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// SystemClipboard returns the clipboard of the running desktop session.
func SystemClipboard() Clipboard { return systemClipboard{} }

// Render substitutes args and applies enc, returning the text that Copy
// would place on the clipboard.
func (n Note) Render(args []string, enc Encoding) (string, error) {
	text, err := n.Substitute(args)
	if err != nil {
		return "", err
	}
	return enc.Apply(text), nil
}

// Copy renders the note and writes the result to cb.
func (n Note) Copy(args []string, enc Encoding, cb Clipboard) (string, error) {
	text, err := n.Render(args, enc)
	if err != nil {
		return "", err
	}
	if cb == nil {
		cb = SystemClipboard()
	}
	if err := cb.WriteAll(text); err != nil {
		return "", fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return text, nil
}
