// Package config loads the optional gitgarden config file.
//
// The file lives at ~/.config/gitgarden/config.toml and holds defaults for
// values that would otherwise come from flags or the environment. Flags
// override the environment, which overrides the file. There is no ambient
// configuration state: Load returns a plain struct the caller passes on.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/gitgarden/pkg/garden"
)

// Config mirrors the TOML file. Zero values mean "not set".
type Config struct {
	// Login is the GitHub username to grow a garden for.
	Login string `toml:"login"`

	// MaxRepos caps how many repositories become branches.
	MaxRepos int `toml:"max_repos"`

	// KeepEmpty keeps zero-commit repositories in the garden.
	KeepEmpty bool `toml:"keep_empty"`

	// Output is the SVG output path.
	Output string `toml:"output"`

	// Seed fixes the geometry jitter for reproducible gardens.
	Seed uint64 `toml:"seed"`

	// Palette overrides individual colors; unset fields keep the stock
	// look.
	Palette garden.Palette `toml:"palette"`
}

// DefaultPath returns the standard config file location, honoring
// XDG_CONFIG_HOME.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "gitgarden", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gitgarden", "config.toml"), nil
}

// Load reads the config file at path. A missing file is not an error; it
// yields a zero Config so the caller's defaults apply.
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
