// Package config loads gopatterns configuration from TOML files.
// A missing file is not an error; defaults apply.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the full configuration.
type Config struct {
	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `toml:"log_level"`

	Editor EditorConfig `toml:"editor"`
	Auth   AuthConfig   `toml:"auth"`
}

// EditorConfig configures the editor demos.
type EditorConfig struct {
	// MaxHistory bounds the undo stack.
	MaxHistory int `toml:"max_history"`
}

// AuthConfig configures the login chain.
type AuthConfig struct {
	// UsersFile is a YAML user file; empty uses the built-in demo users.
	UsersFile string `toml:"users_file"`

	// RequiredRole is the role the authorization stage demands.
	// Empty admits any authenticated user.
	RequiredRole string `toml:"required_role"`

	// WatchUsers reloads UsersFile when it changes on disk.
	WatchUsers bool `toml:"watch_users"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		Editor: EditorConfig{
			MaxHistory: 1000,
		},
		Auth: AuthConfig{
			RequiredRole: "admin",
		},
	}
}

// Load reads configuration from path, layered over defaults. A missing file
// yields the defaults; a malformed file yields a ParseError.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), &ParseError{Path: path, Message: err.Error(), Err: err}
	}

	if cfg.Editor.MaxHistory <= 0 {
		cfg.Editor.MaxHistory = Default().Editor.MaxHistory
	}

	return cfg, nil
}

// ParseError represents a malformed configuration file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
