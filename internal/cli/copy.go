package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/usdAG/reftool/internal/commands"
	"github.com/usdAG/reftool/internal/reference"
	"github.com/usdAG/reftool/internal/shellquote"
	"github.com/usdAG/reftool/internal/ui"
)

var (
	copyEncoding reference.Encoding
	copyPrint    bool
)

var copyCmd = &cobra.Command{
	Use:               commands.Use("copy"),
	Short:             commands.Registry["copy"].Description,
	Args:              commands.PositionalArgs("copy"),
	ValidArgsFunction: completeArgs("copy"),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, number, params := args[0], args[1], args[2:]

		note, err := loadNote(name, number)
		if err != nil {
			return handleReferenceError(err)
		}
		return copyNote(cmd, name, *note, params, copyEncoding, copyPrint)
	},
}

// copyNote renders note with params and either prints it or places it on
// the clipboard. Parameters left unset are reported as a warning.
func copyNote(cmd *cobra.Command, name string, note reference.Note, params []string, enc reference.Encoding, printOnly bool) error {
	text, err := note.Render(params, enc)
	if err != nil {
		return handleError(ErrInvalidInput, err, "Parameters are given as key=value")
	}

	if !printOnly {
		if _, err := note.Copy(params, enc, noteClipboard); err != nil {
			return handleError(ErrClipboard, err, "Use --print to write the note to stdout instead")
		}
	}

	missing := note.Missing(params)
	if isJSONOutput() {
		var warnings []Warning
		if len(missing) > 0 {
			warnings = append(warnings, Warning{
				Code:    WarnMissingParameters,
				Message: "unset parameters: " + strings.Join(missing, ", "),
			})
		}
		outputSuccessWithWarnings(map[string]interface{}{
			"reference": name,
			"number":    note.Number,
			"text":      text,
			"encoding":  string(enc),
			"copied":    !printOnly,
			"missing":   missing,
		}, warnings, nil)
		return nil
	}

	out := cmd.OutOrStdout()
	if printOnly {
		fmt.Fprintln(out, text)
	} else {
		fmt.Fprintln(out, ui.Successf("Copied note %s of %s to the clipboard", note.Number, name))
	}
	if len(missing) > 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Warning("Unset parameters: "+strings.Join(missing, ", ")))
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Hint("  "+copyHint(name, note.Number, params, missing)))
	}
	return nil
}

// copyHint suggests the command that fills in the missing parameters.
func copyHint(name, number string, params, missing []string) string {
	words := []string{"ref", "copy", shellquote.QuoteIfNeeded(name), number}
	for _, p := range params {
		words = append(words, shellquote.QuoteIfNeeded(p))
	}
	for _, m := range missing {
		words = append(words, m+"=…")
	}
	return strings.Join(words, " ")
}

func init() {
	copyCmd.Flags().VarP(&copyEncoding, "encode", "e", "Encode the note before copying (url, URL, hex, json, base64, html, HTML)")
	copyCmd.Flags().BoolVarP(&copyPrint, "print", "p", false, "Print the note instead of copying it")
	_ = copyCmd.RegisterFlagCompletionFunc("encode", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(reference.Encodings))
		for _, enc := range reference.Encodings {
			names = append(names, string(enc))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
	rootCmd.AddCommand(copyCmd)
}
