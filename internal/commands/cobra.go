package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// Use builds the cobra Use line for a registered command, e.g.
// "copy <reference> <number> [args...]". Unknown names are returned as is.
func Use(path string) string {
	meta, ok := Registry[path]
	if !ok {
		return path
	}

	var b strings.Builder
	b.WriteString(meta.Name)
	for _, arg := range meta.Args {
		name := arg.Name
		if arg.Variadic {
			name += "..."
		}
		if arg.Required {
			fmt.Fprintf(&b, " <%s>", name)
		} else {
			fmt.Fprintf(&b, " [%s]", name)
		}
	}
	return b.String()
}

// PositionalArgs derives cobra argument validation from the registry.
func PositionalArgs(path string) cobra.PositionalArgs {
	meta, ok := Registry[path]
	if !ok {
		return cobra.ArbitraryArgs
	}

	minArgs := 0
	maxArgs := len(meta.Args)
	variadic := false
	for _, arg := range meta.Args {
		if arg.Required {
			minArgs++
		}
		if arg.Variadic {
			variadic = true
		}
	}

	switch {
	case variadic:
		return cobra.MinimumNArgs(minArgs)
	case minArgs == maxArgs && minArgs == 0:
		return cobra.NoArgs
	case minArgs == maxArgs:
		return cobra.ExactArgs(minArgs)
	default:
		return cobra.RangeArgs(minArgs, maxArgs)
	}
}

// DynamicCompletion returns the completion type for the positional argument
// at index, or "" when it has none. A trailing variadic argument covers every
// index past its own.
func DynamicCompletion(path string, index int) string {
	meta, ok := Registry[path]
	if !ok || len(meta.Args) == 0 || index < 0 {
		return ""
	}
	if index >= len(meta.Args) {
		last := meta.Args[len(meta.Args)-1]
		if !last.Variadic {
			return ""
		}
		return last.DynamicComp
	}
	return meta.Args[index].DynamicComp
}
