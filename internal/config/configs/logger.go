package configs

import (
	"log/slog"
	"strings"
)

// Logger configures the slog handler built by the CLI.
type Logger struct {
	// Level is one of debug, info, warn or error. Anything else means info.
	Level string `env:"LEVEL" envDefault:"info"`
	// Format is text or json. Anything else means text.
	Format string `env:"FORMAT" envDefault:"text"`
	// AddSource adds the calling file and line to every record.
	AddSource bool `env:"ADD_SOURCE" envDefault:"false"`
	// Queries forwards pgx query traces to the logger at debug level.
	Queries bool `env:"QUERIES" envDefault:"false"`
}

// SlogLevel maps Level onto a slog.Level.
func (c Logger) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.Level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SlogFormat normalises Format to "text" or "json".
func (c Logger) SlogFormat() string {
	if strings.EqualFold(strings.TrimSpace(c.Format), "json") {
		return "json"
	}
	return "text"
}

// HandlerOptions returns the slog handler options for this configuration.
func (c Logger) HandlerOptions() *slog.HandlerOptions {
	return &slog.HandlerOptions{Level: c.SlogLevel(), AddSource: c.AddSource}
}
