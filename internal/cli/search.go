package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/usdAG/reftool/internal/commands"
	"github.com/usdAG/reftool/internal/ui"
)

var searchShow bool

var searchCmd = &cobra.Command{
	Use:   commands.Use("search"),
	Short: commands.Registry["search"].Description,
	Args:  commands.PositionalArgs("search"),
	RunE: func(cmd *cobra.Command, args []string) error {
		expr := args[0]

		if searchShow {
			ref, err := getLibrary().Matching(expr)
			if err != nil {
				return handleReferenceError(err)
			}
			if isJSONOutput() {
				outputReference(ref)
				return nil
			}
			return renderReference(ref, false)
		}

		names, err := getLibrary().Search(expr)
		if err != nil {
			return handleReferenceError(err)
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"expression": expr,
				"references": names,
			}, &Meta{Count: len(names)})
			return nil
		}

		if len(names) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), ui.Info(fmt.Sprintf("No references match: %s", expr)))
			return nil
		}
		ui.PrettyList(cmd.OutOrStdout(), fmt.Sprintf("Search results for %q:", expr), names)
		return nil
	},
}

func init() {
	searchCmd.Flags().BoolVarP(&searchShow, "show", "s", false, "Render the joined matching references")
	rootCmd.AddCommand(searchCmd)
}
