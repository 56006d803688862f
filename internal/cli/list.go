package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/usdAG/reftool/internal/commands"
	"github.com/usdAG/reftool/internal/ui"
)

var listLong bool

type listEntry struct {
	Name    string `json:"name"`
	Summary string `json:"summary,omitempty"`
}

var listCmd = &cobra.Command{
	Use:               commands.Use("list"),
	Short:             commands.Registry["list"].Description,
	Args:              commands.PositionalArgs("list"),
	ValidArgsFunction: completeArgs("list"),
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix := ""
		if len(args) > 0 {
			prefix = args[0]
		}

		names, err := getLibrary().List(prefix)
		if err != nil {
			return handleError(ErrInternal, err, "")
		}

		entries := make([]listEntry, 0, len(names))
		var warnings []Warning
		for _, name := range names {
			entry := listEntry{Name: name}
			if listLong {
				ref, err := getLibrary().Load(name)
				if err != nil {
					code, _ := classifyError(err)
					warnings = append(warnings, Warning{Code: code, Message: err.Error()})
					log.Warn("failed to load reference", "reference", name, "error", err)
				} else {
					entry.Summary = ref.Summary()
				}
			}
			entries = append(entries, entry)
		}

		if isJSONOutput() {
			outputSuccessWithWarnings(map[string]interface{}{
				"references": entries,
			}, warnings, &Meta{Count: len(entries)})
			return nil
		}

		out := cmd.OutOrStdout()
		if len(entries) == 0 {
			fmt.Fprintln(out, ui.Info("No references found in "+getConfig().Reference.ReferencePath))
			return nil
		}

		if !listLong {
			for _, entry := range entries {
				fmt.Fprintln(out, entry.Name)
			}
			return nil
		}

		table := ui.NewTable(2)
		for _, entry := range entries {
			table.AddRow(ui.Accent.Render(entry.Name), ui.Muted.Render(entry.Summary))
		}
		fmt.Fprint(out, table.String())
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVarP(&listLong, "long", "l", false, "Show a one-line summary next to each name")
	rootCmd.AddCommand(listCmd)
}
