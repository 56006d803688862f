package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/usdAG/reftool/internal/commands"
)

var argsCmd = &cobra.Command{
	Use:               commands.Use("args"),
	Short:             commands.Registry["args"].Description,
	Args:              commands.PositionalArgs("args"),
	ValidArgsFunction: completeArgs("args"),
	RunE: func(cmd *cobra.Command, args []string) error {
		note, err := loadNote(args[0], args[1])
		if err != nil {
			return handleReferenceError(err)
		}

		params := note.Args()
		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"reference": args[0],
				"number":    note.Number,
				"args":      params,
			}, &Meta{Count: len(params)})
			return nil
		}

		for _, p := range params {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(argsCmd)
}
