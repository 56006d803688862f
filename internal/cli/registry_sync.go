package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/usdAG/reftool/internal/commands"
)

// syncRegistryMetadata copies help text from the command registry onto the
// cobra tree. Use lines and argument validation are set where each command
// is declared.
func syncRegistryMetadata(root *cobra.Command) {
	var walk func(cmd *cobra.Command, path string)
	walk = func(cmd *cobra.Command, path string) {
		if meta, ok := lookupRegistryMeta(path); ok && path != "" {
			applyRegistryMetadata(cmd, meta)
		}
		for _, child := range cmd.Commands() {
			walk(child, strings.TrimSpace(path+" "+child.Name()))
		}
	}
	walk(root, "")
}

func applyRegistryMetadata(cmd *cobra.Command, meta commands.Meta) {
	if meta.Description != "" {
		cmd.Short = meta.Description
	}
	if meta.LongDesc != "" {
		cmd.Long = meta.LongDesc
	}
	if len(meta.Examples) > 0 {
		cmd.Example = "  " + strings.Join(meta.Examples, "\n  ")
	}
}

func lookupRegistryMeta(path string) (commands.Meta, bool) {
	meta, ok := commands.Registry[path]
	return meta, ok
}
