package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"brandcollab/internal/adapter/usecase"
	"brandcollab/internal/config"
	"brandcollab/internal/db"
)

func migrateCommand(cfg *config.Config, logger **slog.Logger) *cobra.Command {
	var down bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply (or with --down revert) the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr := cfg.Psql.Addr.String()
			if down {
				if err := db.Rollback(addr); err != nil {
					return fmt.Errorf("rollback: %w", err)
				}
				(*logger).Info("migrations rolled back")
				return nil
			}
			if err := db.Migrate(addr); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			(*logger).Info("migrations applied successfully")
			return nil
		},
	}
	cmd.Flags().BoolVar(&down, "down", false, "revert every migration")
	return cmd
}

// sweepCommand runs a single expiration sweep and prints its result as JSON.
// It is meant for external schedulers (cron, Kubernetes CronJob) when the
// in-process sweeper is disabled.
func sweepCommand(cfg *config.Config, logger **slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Run one expiration sweep and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := openStores(cmd.Context(), *cfg, *logger)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer st.close()

			sweep := usecase.NewSweepUseCase(st.campaigns, cfg.Sweep.Retention, usecase.WithLogger(*logger))
			res, sweepErr := sweep.RunExpirationSweep(cmd.Context())
			if err = json.NewEncoder(os.Stdout).Encode(res); err != nil {
				return errors.Join(sweepErr, err)
			}
			return sweepErr
		},
	}
}

func seedCommand(cfg *config.Config, logger **slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert demo campaigns and applications",
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := openStores(cmd.Context(), *cfg, *logger)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer st.close()

			if err = db.Seed(cmd.Context(), usecase.NewLifecycleUseCase(st.campaigns, st.applications)); err != nil {
				return err
			}
			(*logger).Info("demo data seeded")
			return nil
		},
	}
}
