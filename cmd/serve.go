package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"sync"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	httpadapter "brandcollab/internal/adapter/http"
	"brandcollab/internal/adapter/scheduler"
	"brandcollab/internal/adapter/usecase"
	"brandcollab/internal/config"
	"brandcollab/internal/config/configs"
	"brandcollab/internal/db"
	"brandcollab/internal/metrics"
)

// serveCommand optionally runs database migrations, initializes the store
// and the expiration sweeper, then starts the HTTP server. On receiving a
// termination signal it gracefully shuts down the server and the sweeper.
func serveCommand(cfg *config.Config, logger **slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and the expiration sweeper",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), *cfg, *logger)
		},
	}
}

func serve(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	// Optionally run migrations if configured. We use the Psql sub-config.
	if cfg.Psql.RunMigrations && cfg.Store.DriverName() == configs.StoreDriverPostgres {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	st, err := openStores(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	lifecycleMetrics := metrics.NewLifecycle(reg)

	svc := usecase.NewLifecycleUseCase(st.campaigns, st.applications,
		usecase.WithMetrics(lifecycleMetrics),
		usecase.WithLogger(logger),
	)
	sweep := usecase.NewSweepUseCase(st.campaigns, cfg.Sweep.Retention,
		usecase.WithMetrics(lifecycleMetrics),
		usecase.WithLogger(logger),
	)

	var wg sync.WaitGroup
	if cfg.Sweep.Enabled {
		sweeper := scheduler.NewSweeper(sweep, logger, cfg.Sweep.Interval, cfg.Sweep.RunOnStart)
		wg.Add(1)
		go func() {
			defer wg.Done()
			sweeper.RunForever(ctx)
		}()
	}

	handler := httpadapter.NewHandler(svc, logger, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serveErr:
		cancel()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
		logger.Error("server shutdown error", slog.Any("error", shutdownErr))
	} else {
		logger.Info("server gracefully stopped")
	}
	wg.Wait()
	return err
}
