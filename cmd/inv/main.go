// Package main is the entry point for the inv CLI.
package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/inv/internal/cli"
	"github.com/jacksmith/inv/internal/logger"
	"github.com/jacksmith/inv/internal/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is set at build time via ldflags.
var Version = "dev"

var (
	// Global flags
	invFile string
	verbose bool

	// Set up in PersistentPreRunE
	cfg *storage.Config
	zlog *zap.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "inv",
	Short: "inv - a small stock tracker backed by a JSON file",
	Long: `inv keeps item quantities in a JSON file (inventory.json by default).

Run without a subcommand to play the demonstration session: it adds and
removes a few sample items, reports stock, saves and reloads the file.

Settings are read from .invconfig.yaml in the current directory when present.`,
	Version:           Version,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if zlog != nil {
			_ = zlog.Sync()
		}
	},
	RunE: runDemo,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("inv version {{.Version}}\n")

	rootCmd.PersistentFlags().StringVarP(&invFile, "file", "f", "", "inventory file (overrides .invconfig.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// setup loads .invconfig.yaml and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	c, err := storage.LoadConfig(".")
	if err != nil {
		return err
	}
	cfg = c

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	l, err := logger.New(logger.Config{Level: level, Format: cfg.LogFormat})
	if err != nil {
		return err
	}
	zlog = l
	return nil
}

// config returns the loaded configuration, or defaults before setup has run.
func config() *storage.Config {
	if cfg == nil {
		return storage.DefaultConfig()
	}
	return cfg
}

// logr returns the CLI logger, or a no-op logger before setup has run.
func logr() *zap.Logger {
	if zlog == nil {
		return zap.NewNop()
	}
	return zlog
}

// openStorage returns the Storage for the selected inventory file.
func openStorage() *storage.Storage {
	path := invFile
	if path == "" {
		path = config().InventoryPath(".")
	}
	return storage.New(path, logr())
}
