// Package cmd implements the gopatterns CLI commands.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/gopatterns/internal/config"
	"github.com/dshills/gopatterns/internal/logging"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

var (
	cfgFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "gopatterns",
	Short: "Behavioral pattern demos: command/undo editing and a validation chain",
	Long: `gopatterns demonstrates two behavioral mechanisms as working programs:

  edit    - a terminal editor whose every keystroke is an undoable command
  script  - the same editor core driven from a Lua script
  login   - a three-stage chain-of-responsibility login pipeline`,
	Version:       version + " (" + commit + ")",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ./gopatterns.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}

// setup loads configuration and builds the logger shared by all commands.
func setup() (config.Config, *logging.Logger, error) {
	path := cfgFile
	if path == "" {
		path = "gopatterns.toml"
	}

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, nil, err
	}

	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}

	return cfg, logging.New(logging.ParseLevel(level), os.Stderr), nil
}
