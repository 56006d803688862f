// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/usdAG/reftool/internal/config"
	"github.com/usdAG/reftool/internal/layout"
	"github.com/usdAG/reftool/internal/logging"
	"github.com/usdAG/reftool/internal/reference"
	"github.com/usdAG/reftool/internal/render"
	"github.com/usdAG/reftool/internal/ui"
)

var (
	// Global flags
	configPath string
	colorMode  = ui.ColorAuto

	// Resolved values
	cfg     *config.Config
	library *reference.Library

	// noteClipboard receives copied notes; tests swap it out.
	noteClipboard = reference.SystemClipboard()
)

var log = logging.New("cli")

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ref",
	Short: "reftool - a command-line reference browser",
	Long: `reftool keeps collections of command snippets ("references") in YAML files
and renders them as numbered, column-aligned notes in the terminal.

Notes can be searched, filtered, and copied to the clipboard with their
<PARAMETERS> filled in and optionally encoded.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the CLI.
func Execute() error {
	syncRegistryMetadata(rootCmd)
	err := rootCmd.Execute()
	if err != nil && !jsonOutput {
		fmt.Fprintln(rootCmd.ErrOrStderr(), ui.Error(err.Error()))
	}
	return err
}

func init() {
	// Assigned here rather than in the rootCmd literal to avoid an
	// initialization cycle (loadConfig -> stdout -> rootCmd).
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Skip config loading for commands that don't need it
		switch cmd.Name() {
		case "completion", "help", "version", "config":
			return nil
		}
		if cmd.Parent() != nil && (cmd.Parent().Name() == "completion" || cmd.Parent().Name() == "config") {
			return nil
		}
		return loadConfig(cmd)
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for scripts)")
	rootCmd.PersistentFlags().Var(&colorMode, "color", "Color output: auto, always or never")
}

// loadConfig resolves the configuration, the output styling and the
// reference library for cmd.
func loadConfig(cmd *cobra.Command) error {
	var err error
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return abort(ErrConfigInvalid, err, "Run 'ref config init' to write a valid config file")
	}
	for _, warning := range cfg.Warnings {
		log.Warn(warning, "config", cfg.Path)
	}

	mode := colorMode
	if !cmd.Flags().Changed("color") && cfg.UI.Color != "" {
		mode, err = ui.ParseColorMode(cfg.UI.Color)
		if err != nil {
			return abort(ErrConfigInvalid, fmt.Errorf("ui.color: %w", err), "")
		}
	}
	ui.SetRenderer(ui.NewRenderer(stdout(), mode))
	ui.ConfigureTheme(cfg.UI.Accent)
	ui.ConfigureMarkdownCodeTheme(cfg.UI.CodeTheme)

	library = reference.NewLibrary(cfg.Reference.ReferencePath, cfg.Reference.CompleterPath)
	library.SetLogger(logging.New("reference"))
	return nil
}

// stdout is where command output goes. Subcommands inherit the root's
// writer, which tests replace with a buffer.
func stdout() io.Writer {
	return rootCmd.OutOrStdout()
}

// newPolicy builds the render policy for the loaded config, shrunk to the
// terminal when fit is set.
func newPolicy(fit bool) (*render.Policy, error) {
	rc := cfg.RenderConfig()
	if fit || cfg.UI.Fit {
		if width := ui.NewDisplayContext().FitWidth(); width > 0 {
			rc = rc.Fit(width)
		}
	}
	policy, err := render.New(rc, layout.NewStyler(ui.Renderer()))
	if err != nil {
		return nil, err
	}
	return policy, nil
}

// getConfig returns the loaded config.
func getConfig() *config.Config {
	return cfg
}

// getLibrary returns the reference library for the loaded config.
func getLibrary() *reference.Library {
	return library
}
