package usecase

import (
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"brandcollab/internal/metrics"
)

// Option customises a use case at construction time.
type Option func(*options)

type options struct {
	now     func() time.Time
	newID   func() string
	metrics *metrics.Lifecycle
	logger  *slog.Logger
}

func buildOptions(opts []Option) options {
	o := options{
		now:    func() time.Time { return time.Now().UTC() },
		newID:  uuid.NewString,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithClock replaces the wall clock, e.g. with a simulated one in tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithIDGenerator replaces the uuid generator used for new records.
func WithIDGenerator(newID func() string) Option {
	return func(o *options) {
		if newID != nil {
			o.newID = newID
		}
	}
}

// WithMetrics records lifecycle activity on m.
func WithMetrics(m *metrics.Lifecycle) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithLogger sets the logger used for non-fatal failures.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
