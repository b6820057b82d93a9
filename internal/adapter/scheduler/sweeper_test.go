package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"brandcollab/internal/core/port"
	"brandcollab/internal/core/port/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSweeper_RunOnce(t *testing.T) {
	sweep := mocks.NewMockSweepUseCase(t)
	sweep.EXPECT().RunExpirationSweep(mock.Anything).
		RunAndReturn(func(ctx context.Context) (port.SweepResult, error) {
			_, ok := ctx.Deadline()
			assert.True(t, ok, "a run is bounded by the interval")
			return port.SweepResult{Promoted: 2, Deleted: 1}, nil
		}).Once()

	s := NewSweeper(sweep, discardLogger(), time.Minute, false)
	res := s.RunOnce(context.Background())
	assert.Equal(t, port.SweepResult{Promoted: 2, Deleted: 1}, res)
}

func TestSweeper_RunOnceKeepsPartialResult(t *testing.T) {
	sweep := mocks.NewMockSweepUseCase(t)
	sweep.EXPECT().RunExpirationSweep(mock.Anything).
		Return(port.SweepResult{Promoted: 1, Failed: 1}, errors.New("select expired campaigns: timeout")).Once()

	s := NewSweeper(sweep, discardLogger(), time.Minute, false)
	res := s.RunOnce(context.Background())
	assert.Equal(t, 1, res.Promoted)
}

func TestSweeper_RunForeverTicksUntilCancelled(t *testing.T) {
	sweep := mocks.NewMockSweepUseCase(t)
	ctx, cancel := context.WithCancel(context.Background())
	var runs atomic.Int32

	sweep.EXPECT().RunExpirationSweep(mock.Anything).
		RunAndReturn(func(context.Context) (port.SweepResult, error) {
			if runs.Add(1) == 3 {
				cancel()
			}
			return port.SweepResult{}, nil
		})

	s := NewSweeper(sweep, discardLogger(), 10*time.Millisecond, true)
	done := make(chan struct{})
	go func() {
		s.RunForever(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("sweeper did not stop after cancellation")
	}
	assert.GreaterOrEqual(t, runs.Load(), int32(3))
}

func TestSweeper_RunForeverWithoutRunOnStart(t *testing.T) {
	sweep := mocks.NewMockSweepUseCase(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewSweeper(sweep, discardLogger(), time.Hour, false)
	s.RunForever(ctx)
	// no expectation set: any sweep would fail the mock
}
