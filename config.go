package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the resolved app settings: defaults, overlaid by the config
// file, overlaid by command line flags.
type Config struct {
	TabSize    int
	Theme      string
	LogFile    string
	GrammarDir string
	AutoIndent bool
}

// configFile is the TOML form. Zero values mean "unset" and keep the
// default; AutoIndent needs a pointer so an explicit false survives.
type configFile struct {
	TabSize    int    `toml:"tab_size"`
	Theme      string `toml:"theme"`
	LogFile    string `toml:"log_file"`
	GrammarDir string `toml:"grammar_dir"`
	AutoIndent *bool  `toml:"auto_indent"`
}

// defaultConfigPath is ~/.config/inkwell/config.toml (or the platform
// equivalent), "" when no user config directory exists.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "inkwell", "config.toml")
}

// loadConfig reads the config file at path (the default location when path
// is empty) over the built-in defaults. A missing file is fine; a malformed
// one is an error.
func loadConfig(path string) (Config, error) {
	cfg := Config{TabSize: 4, Theme: "dark", AutoIndent: true}

	if path == "" {
		path = defaultConfigPath()
		if path == "" {
			return cfg, nil
		}
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	var f configFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if f.TabSize > 0 {
		cfg.TabSize = f.TabSize
	}
	if f.Theme != "" {
		cfg.Theme = f.Theme
	}
	if f.LogFile != "" {
		cfg.LogFile = f.LogFile
	}
	if f.GrammarDir != "" {
		cfg.GrammarDir = f.GrammarDir
	}
	if f.AutoIndent != nil {
		cfg.AutoIndent = *f.AutoIndent
	}
	return cfg, nil
}
