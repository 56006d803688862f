package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/usdAG/reftool/internal/commands"
	"github.com/usdAG/reftool/internal/ui"
)

var infoCmd = &cobra.Command{
	Use:               commands.Use("info"),
	Short:             commands.Registry["info"].Description,
	Args:              commands.PositionalArgs("info"),
	ValidArgsFunction: completeArgs("info"),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, err := getLibrary().Load(args[0])
		if err != nil {
			return handleReferenceError(err)
		}

		titles := make([]string, 0, len(ref.Items))
		for _, item := range ref.Items {
			titles = append(titles, item.Title)
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"name":        ref.Name,
				"path":        ref.Path,
				"description": ref.Description,
				"summary":     ref.Summary(),
				"items":       titles,
				"notes":       ref.NoteCount(),
			}, &Meta{Count: ref.NoteCount()})
			return nil
		}

		out := cmd.OutOrStdout()
		if ref.Description != "" {
			rendered, err := ui.RenderMarkdown(ref.Description, ui.NewDisplayContext().TermWidth)
			if err != nil {
				log.Warn("failed to render description", "reference", ref.Name, "error", err)
				rendered = ref.Description + "\n"
			}
			fmt.Fprint(out, rendered)
			fmt.Fprintln(out)
		}

		fmt.Fprintln(out, ui.SummaryTable([2]string{"Reference", ref.Name}, [][2]string{
			{"File", ref.Path},
			{"Items", strconv.Itoa(len(ref.Items))},
			{"Notes", strconv.Itoa(ref.NoteCount())},
		}))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
