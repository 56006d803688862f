package cli

import (
	"github.com/spf13/cobra"

	"github.com/usdAG/reftool/internal/commands"
)

var (
	showFilter string
	showFit    bool
)

var showCmd = &cobra.Command{
	Use:               commands.Use("show"),
	Short:             commands.Registry["show"].Description,
	Args:              commands.PositionalArgs("show"),
	ValidArgsFunction: completeArgs("show"),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, err := loadReferences(args)
		if err != nil {
			return handleReferenceError(err)
		}

		if cmd.Flags().Changed("filter") {
			ref, err = ref.Filter(showFilter)
			if err != nil {
				return handleReferenceError(err)
			}
		}

		if isJSONOutput() {
			outputReference(ref)
			return nil
		}
		return renderReference(ref, showFit)
	},
}

func init() {
	showCmd.Flags().StringVarP(&showFilter, "filter", "f", "", "Only show notes whose text matches this regular expression")
	showCmd.Flags().BoolVar(&showFit, "fit", false, "Shrink comment and text columns to the terminal width")
	rootCmd.AddCommand(showCmd)
}
