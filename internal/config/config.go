// Package config loads the application configuration from TOML files.
package config

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	DefaultFolder string `koanf:"default_folder"` // start here when no path argument is given
	Icons         string `koanf:"icons"`          // "nerd", "unicode", or "none"
	ShowHidden    bool   `koanf:"show_hidden"`    // include dotfiles in listings
	RememberPath  *bool  `koanf:"remember_path"`  // restore last browsed directory (default: true)
}

// Load reads the config files in priority order (last match wins) and
// applies defaults. Missing files are fine; a malformed file is not.
func Load() (*Config, error) {
	k := koanf.New(".")

	for _, path := range configPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		Icons:      "unicode",
		ShowHidden: true,
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.DefaultFolder != "" {
		cfg.DefaultFolder = expandPath(cfg.DefaultFolder)
	}

	return cfg, nil
}

// ShouldRememberPath reports whether the last browsed directory is
// restored on startup.
func (c *Config) ShouldRememberPath() bool {
	return c.RememberPath == nil || *c.RememberPath
}

func configPaths() []string {
	paths := []string{}

	// 1. ~/.config/arbor/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "arbor", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
