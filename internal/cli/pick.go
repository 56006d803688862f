package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/usdAG/reftool/internal/commands"
	"github.com/usdAG/reftool/internal/picker"
	"github.com/usdAG/reftool/internal/reference"
	"github.com/usdAG/reftool/internal/ui"
)

var pickPrint bool

// runPicker shows the interactive picker; tests replace it.
var runPicker = picker.Run

var pickCmd = &cobra.Command{
	Use:               commands.Use("pick"),
	Short:             commands.Registry["pick"].Description,
	Args:              commands.PositionalArgs("pick"),
	ValidArgsFunction: completeArgs("pick"),
	RunE: func(cmd *cobra.Command, args []string) error {
		if isJSONOutput() {
			return handleErrorMsg(ErrInvalidInput, "pick is interactive and does not support --json", "Use 'ref show' and 'ref copy' instead")
		}

		ref, err := loadReferences(args)
		if err != nil {
			return handleReferenceError(err)
		}

		// The picker draws on stderr so a printed note can be piped.
		note, ok, err := runPicker(ref, cmd.InOrStdin(), cmd.ErrOrStderr())
		if err != nil {
			if errors.Is(err, reference.ErrNoteNotFound) {
				return handleReferenceError(err)
			}
			return handleError(ErrPickerFailed, err, "")
		}
		if !ok {
			fmt.Fprintln(cmd.ErrOrStderr(), ui.Info("Nothing picked"))
			return nil
		}
		return copyNote(cmd, ref.Name, note, nil, reference.EncodingNone, pickPrint)
	},
}

func init() {
	pickCmd.Flags().BoolVarP(&pickPrint, "print", "p", false, "Print the chosen note instead of copying it")
	rootCmd.AddCommand(pickCmd)
}
