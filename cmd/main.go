package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"brandcollab/internal/config"
)

// main is the entry point of the brandcollab lifecycle engine. It dispatches
// to the serve, migrate, sweep and seed commands; each loads configuration
// from environment variables and builds a structured logger first.
func main() {
	var (
		cfg    config.Config
		logger *slog.Logger
	)

	root := &cobra.Command{
		Use:           "brandcollab",
		Short:         "Campaign and application lifecycle engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			// Load configuration from environment variables.
			cfg, err = config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger = newLogger(cfg)
			return nil
		},
	}
	root.AddCommand(
		serveCommand(&cfg, &logger),
		migrateCommand(&cfg, &logger),
		sweepCommand(&cfg, &logger),
		seedCommand(&cfg, &logger),
	)

	if err := root.Execute(); err != nil {
		slog.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// newLogger initialises the structured logger based on configuration.
func newLogger(cfg config.Config) *slog.Logger {
	var handler slog.Handler
	opts := cfg.Log.HandlerOptions()
	switch cfg.Log.SlogFormat() {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default:
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(handler).With(slog.String("env", cfg.Env))
}
