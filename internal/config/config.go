// Package config handles reftool configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/usdAG/reftool/internal/atomicfile"
	"github.com/usdAG/reftool/internal/layout"
	"github.com/usdAG/reftool/internal/render"
)

// Config represents the reftool configuration. Every key has a default; a
// config file only needs the keys it changes.
type Config struct {
	Reference ReferenceConfig `toml:"reference"`
	Item      ItemConfig      `toml:"item"`
	Note      NoteConfig      `toml:"note"`
	UI        UIConfig        `toml:"ui"`

	// Path is the file the config was read from, empty for defaults.
	Path string `toml:"-"`

	// Warnings lists keys in the file that reftool does not know.
	Warnings []string `toml:"-"`
}

// ReferenceConfig locates reference files and completer scripts. Relative
// paths are resolved against the home directory.
type ReferenceConfig struct {
	ReferencePath string `toml:"reference_path"`
	CompleterPath string `toml:"completer_path"`
	InitialIndent int    `toml:"initial_indent"`
}

// ItemConfig controls item headlines.
type ItemConfig struct {
	HeadlineSize  int    `toml:"headline_size"`
	HeadlineColor string `toml:"headline_color"`
}

// NoteConfig controls note rows.
type NoteConfig struct {
	TextSize       int    `toml:"text_size"`
	TextColor      string `toml:"text_color"`
	CountColor     string `toml:"count_color"`
	CountPadding   int    `toml:"count_padding"`
	CountIndent    int    `toml:"count_indent"`
	CommentSize    int    `toml:"comment_size"`
	CommentColor   string `toml:"comment_color"`
	ParameterColor string `toml:"parameter_color"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Color selects when output is colored: auto, always or never.
	Color string `toml:"color"`

	// Fit shrinks the note columns to the terminal width.
	Fit bool `toml:"fit"`

	// Accent is an optional accent color for status output and markdown.
	// Supported values are ANSI color codes ("0" to "255") or hex colors ("#RRGGBB").
	Accent string `toml:"accent"`

	// CodeTheme sets the Glamour/Chroma theme used for rendered markdown code blocks.
	CodeTheme string `toml:"code_theme"`
}

// Default returns the built in configuration with unexpanded paths.
func Default() *Config {
	r := render.DefaultConfig()
	return &Config{
		Reference: ReferenceConfig{
			ReferencePath: ".config/reftool/references",
			CompleterPath: ".config/reftool/completers",
			InitialIndent: r.InitialIndent,
		},
		Item: ItemConfig{
			HeadlineSize:  r.Headline.Size,
			HeadlineColor: string(r.Headline.Color),
		},
		Note: NoteConfig{
			TextSize:       r.Note.TextSize,
			TextColor:      string(r.Note.TextColor),
			CountColor:     string(r.Note.CountColor),
			CountPadding:   r.Note.CountPadding,
			CountIndent:    r.Note.CountIndent,
			CommentSize:    r.Note.CommentSize,
			CommentColor:   string(r.Note.CommentColor),
			ParameterColor: string(r.Note.ParameterColor),
		},
		UI: UIConfig{Color: "auto"},
	}
}

// RenderConfig returns the render settings described by c.
func (c *Config) RenderConfig() render.Config {
	return render.Config{
		InitialIndent: c.Reference.InitialIndent,
		Headline: render.HeadlineConfig{
			Size:  c.Item.HeadlineSize,
			Color: layout.Color(c.Item.HeadlineColor),
		},
		Note: render.NoteConfig{
			TextSize:       c.Note.TextSize,
			TextColor:      layout.Color(c.Note.TextColor),
			CountColor:     layout.Color(c.Note.CountColor),
			CountPadding:   c.Note.CountPadding,
			CountIndent:    c.Note.CountIndent,
			CommentSize:    c.Note.CommentSize,
			CommentColor:   layout.Color(c.Note.CommentColor),
			ParameterColor: layout.Color(c.Note.ParameterColor),
		},
	}
}

// Load loads the configuration from the default location.
// Returns the default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath := DefaultPath()

	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		cfg := Default()
		if err := cfg.expand(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from a specific path on top of the
// defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("unknown config key %q", key.String()))
	}
	cfg.Path = path
	if err := cfg.expand(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) expand() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to determine home directory: %w", err)
	}
	c.Reference.ReferencePath = ExpandPath(c.Reference.ReferencePath, home)
	c.Reference.CompleterPath = ExpandPath(c.Reference.CompleterPath, home)
	return nil
}

// ExpandPath resolves "~/" and relative paths against home. Absolute paths
// are returned cleaned.
func ExpandPath(path, home string) string {
	path = strings.TrimSpace(path)
	switch {
	case path == "":
		return ""
	case path == "~":
		return home
	case strings.HasPrefix(path, "~/"):
		return filepath.Join(home, path[2:])
	case filepath.IsAbs(path):
		return filepath.Clean(path)
	}
	return filepath.Join(home, path)
}

// DefaultPath returns the default config file path.
// Checks ~/.config/reftool/config.toml first (XDG style),
// then falls back to the OS-specific location.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "reftool", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "reftool", "config.toml")
	}

	return filepath.Join(".", "config.toml")
}

const defaultConfig = `# reftool configuration
# Relative paths are resolved against your home directory.

[reference]
# reference_path = ".config/reftool/references"
# completer_path = ".config/reftool/completers"
# initial_indent = 2

[item]
# headline_size = 80
# headline_color = "blue"

[note]
# text_size = 80
# text_color = "none"
# count_color = "yellow"
# count_padding = 2
# count_indent = 0
# comment_size = 50
# comment_color = "light_grey"
# parameter_color = "red"

[ui]
# color = "auto"      # auto, always or never
# fit = false         # shrink note columns to the terminal width
# accent = "39"
# code_theme = "monokai"
`

// CreateDefault writes a commented default config file to path unless one
// already exists. It returns true when a file was written.
func CreateDefault(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := atomicfile.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return false, fmt.Errorf("failed to write config file: %w", err)
	}
	return true, nil
}
