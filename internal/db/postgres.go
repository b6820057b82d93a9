package db

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"

	"brandcollab/internal/config/configs"
)

const pingTimeout = 5 * time.Second

// NewPostgresPool opens a pgxpool for cfg and pings the database before
// returning it. Pool sizes are left at the pgxpool defaults unless cfg sets
// them. When queryLogger is not nil every query is traced to it at debug
// level. The caller owns the returned pool and must close it.
func NewPostgresPool(ctx context.Context, cfg configs.Postgres, queryLogger *slog.Logger) (*pgxpool.Pool, error) {
	poolConf, err := pgxpool.ParseConfig(cfg.Addr.String())
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		poolConf.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolConf.MinConns = cfg.MinConns
	}
	if queryLogger != nil {
		poolConf.ConnConfig.Tracer = &tracelog.TraceLog{
			Logger:   slogTracer(queryLogger),
			LogLevel: tracelog.LogLevelDebug,
		}
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConf)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err = pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// slogTracer adapts pgx trace output to slog.
func slogTracer(logger *slog.Logger) tracelog.LoggerFunc {
	return func(ctx context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
		attrs := make([]slog.Attr, 0, len(data))
		for k, v := range data {
			attrs = append(attrs, slog.Any(k, v))
		}
		logger.LogAttrs(ctx, slogLevel(level), msg, attrs...)
	}
}

func slogLevel(level tracelog.LogLevel) slog.Level {
	switch level {
	case tracelog.LogLevelError:
		return slog.LevelError
	case tracelog.LogLevelWarn:
		return slog.LevelWarn
	case tracelog.LogLevelInfo:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
