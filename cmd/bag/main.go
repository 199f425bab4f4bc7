// Package main is the entry point for the bag CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jacksmith/bag/internal/cli"
	"github.com/jacksmith/bag/internal/config"
	"github.com/jacksmith/bag/internal/logging"
	"github.com/jacksmith/bag/internal/ops"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bag",
	Short: "bag - an inventory kept in an array and in a linked list",
	Long: `bag manages a small inventory of named items twice: once in a fixed
array of 100 slots and once in a singly linked list. It compares how the two
behave on insert, remove, linear search, and (array only) selection sort and
binary search, counting the comparisons each search makes.

Without a subcommand, bag starts the interactive shell.`,
	Version:           Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runShell,
}

var (
	configFile string
	logLevel   string
	noColor    bool

	appConfig *config.Config
	appLogger *zap.Logger
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default ./"+config.FileName+")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("bag version {{.Version}}\n")
}

// setup loads configuration and builds the logger before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(".", configFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if noColor {
		cfg.Color = config.ColorNever
	}

	cli.ConfigureColor(cfg.Color, cmd.OutOrStdout())
	appConfig = cfg
	appLogger = logging.New(cfg.LogLevel, cmd.ErrOrStderr())
	return nil
}

func currentConfig() *config.Config {
	if appConfig == nil {
		return config.Default()
	}
	return appConfig
}

func currentLogger() *zap.Logger {
	if appLogger == nil {
		return logging.Nop()
	}
	return appLogger
}

// newSession creates a session, loading the sample inventory when configured.
func newSession() (*ops.Session, error) {
	s := ops.NewSession(currentLogger())
	if currentConfig().Seed {
		if err := s.Seed(); err != nil {
			s.Close()
			return nil, err
		}
	}
	return s, nil
}
