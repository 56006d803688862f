package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/usdAG/reftool/internal/atomicfile"
	"github.com/usdAG/reftool/internal/commands"
	"github.com/usdAG/reftool/internal/reference"
	"github.com/usdAG/reftool/internal/slugs"
	"github.com/usdAG/reftool/internal/ui"
)

var newCmd = &cobra.Command{
	Use:   commands.Use("new"),
	Short: commands.Registry["new"].Description,
	Args:  commands.PositionalArgs("new"),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.TrimSpace(args[0])
		rel := slugs.ReferencePath(title)
		if rel == "" {
			return handleErrorMsg(ErrInvalidInput, fmt.Sprintf("cannot derive a file name from %q", title), "Use letters or digits in the title")
		}

		content, err := reference.Skeleton(filepath.Base(title))
		if err != nil {
			return handleError(ErrInternal, err, "")
		}

		path := filepath.Join(getConfig().Reference.ReferencePath, rel)
		if err := atomicfile.CreateNew(path, content, 0o644); err != nil {
			if errors.Is(err, atomicfile.ErrExists) {
				return handleError(ErrFileExists, err, "Pick another title or edit the existing file")
			}
			return handleError(ErrFileWriteError, err, "")
		}

		name := strings.TrimSuffix(filepath.Base(rel), slugs.Ext)
		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"name": name,
				"file": path,
			}, nil)
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.Successf("Created %s", path))
		fmt.Fprintln(cmd.OutOrStdout(), ui.Hint(fmt.Sprintf("  Show it with: ref show %s", name)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
}
