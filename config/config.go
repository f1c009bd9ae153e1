// Package config loads settings for the iq command from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"

	"github.com/BurntSushi/toml"
)

// Config holds the settings of the iq command.
type Config struct {
	Output OutputConfig `toml:"output"`
	Check  CheckConfig  `toml:"check"`
	Log    LogConfig    `toml:"log"`
	LSP    LSPConfig    `toml:"lsp"`
}

// OutputConfig controls how parse results are printed.
type OutputConfig struct {
	Format string `toml:"format"`
	Color  bool   `toml:"color"`
}

// CheckConfig controls batch checking of query files.
type CheckConfig struct {
	Jobs int `toml:"jobs"`
	// Comment is the line prefix that marks a comment in query files.
	Comment string `toml:"comment"`
}

// LogConfig configures commonlog.
type LogConfig struct {
	Verbosity int    `toml:"verbosity"`
	File      string `toml:"file"`
}

// LSPConfig configures the language server.
type LSPConfig struct {
	Name  string `toml:"name"`
	Debug bool   `toml:"debug"`
}

var formats = []string{"tree", "text", "json", "yaml"}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Output: OutputConfig{Format: "tree", Color: true},
		Check:  CheckConfig{Jobs: runtime.NumCPU(), Comment: "#"},
		LSP:    LSPConfig{Name: "iq"},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/isgci/iq.toml or its platform
// equivalent.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "isgci", "iq.toml")
}

// Load reads the file at path over the defaults. A missing file is not an
// error when optional is true.
func Load(path string, optional bool) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("load config %s: unknown key %s", path, undecoded[0])
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	if !slices.Contains(formats, c.Output.Format) {
		return fmt.Errorf("output.format: unknown format %q", c.Output.Format)
	}
	if c.Check.Jobs < 1 {
		return fmt.Errorf("check.jobs: must be at least 1, got %d", c.Check.Jobs)
	}
	if c.Log.Verbosity < 0 {
		return fmt.Errorf("log.verbosity: must not be negative")
	}
	if c.LSP.Name == "" {
		return fmt.Errorf("lsp.name: must not be empty")
	}
	return nil
}
