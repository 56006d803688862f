package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/usdAG/reftool/internal/commands"
	"github.com/usdAG/reftool/internal/config"
	"github.com/usdAG/reftool/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   commands.Use("config"),
	Short: commands.Registry["config"].Description,
	Args:  cobra.NoArgs,
}

var configInitCmd = &cobra.Command{
	Use:   commands.Use("config init"),
	Short: commands.Registry["config init"].Description,
	Args:  commands.PositionalArgs("config init"),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolveConfigPath()
		created, err := config.CreateDefault(path)
		if err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"path":    path,
				"created": created,
			}, nil)
			return nil
		}

		if created {
			fmt.Fprintln(cmd.OutOrStdout(), ui.Successf("Wrote %s", path))
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), ui.Info(fmt.Sprintf("%s already exists, left unchanged", path)))
		}
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   commands.Use("config path"),
	Short: commands.Registry["config path"].Description,
	Args:  commands.PositionalArgs("config path"),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolveConfigPath()
		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"path": path}, nil)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

// resolveConfigPath returns --config when set, else the default location.
func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultPath()
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}
