// Package main is the entry point for the memento editor.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Tharindu714/Code-Editor-Memento/internal/app"
	"github.com/Tharindu714/Code-Editor-Memento/internal/config"
	"github.com/Tharindu714/Code-Editor-Memento/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// rootOptions holds flag values for the root command.
type rootOptions struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "memento",
		Short: "Minimal terminal text editor with undo/redo history",
		Long: `memento is a small dark-themed terminal editor.

Every edit is recorded as a full snapshot of the document.
Ctrl+Z undoes, Ctrl+Y redoes, Ctrl+Q or Esc quits.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return validateLogLevel(opts.logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEditor(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", defaultConfigPath(), "Path to configuration file")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(newInitCmd())
	return cmd
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Short: "Write a default configuration file",
		Long:  `Creates a configuration file with default settings. Defaults to the user config location.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultConfigPath()
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return errors.New("no config path: pass one explicitly")
			}
			if err := config.WriteDefault(path); err != nil {
				return fmt.Errorf("creating config file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}
}

// validateLogLevel accepts an empty level, meaning "use the config file".
func validateLogLevel(level string) error {
	switch level {
	case "", "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", level)
	}
}

// defaultConfigPath returns the per-user config file location.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "memento", "config.toml")
}

func runEditor(ctx context.Context, opts rootOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	application, err := app.New(app.Options{
		ConfigPath: opts.configPath,
		LogLevel:   opts.logLevel,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	// Ensure cleanup on all exit paths
	defer application.Shutdown()

	term, err := backend.NewTerminal()
	if err != nil {
		return fmt.Errorf("failed to create terminal: %w", err)
	}
	if err := application.SetBackend(term); err != nil {
		return fmt.Errorf("failed to set backend: %w", err)
	}

	// Handle signals for graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = application.Run(ctx)
	if errors.Is(err, app.ErrQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
