package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/usdAG/reftool/internal/commands"
)

var completeCmd = &cobra.Command{
	Use:               commands.Use("complete"),
	Short:             commands.Registry["complete"].Description,
	Args:              commands.PositionalArgs("complete"),
	ValidArgsFunction: completeArgs("complete"),
	RunE: func(cmd *cobra.Command, args []string) error {
		note, err := loadNote(args[0], args[1])
		if err != nil {
			return handleReferenceError(err)
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		candidates := getLibrary().Complete(ctx, *note, args[2])
		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"param":      args[2],
				"candidates": candidates,
			}, &Meta{Count: len(candidates)})
			return nil
		}

		for _, c := range candidates {
			fmt.Fprintln(cmd.OutOrStdout(), c)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completeCmd)
}
