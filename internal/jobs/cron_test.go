package jobs

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSweeper struct {
	calls    atomic.Int32
	deadline atomic.Bool
}

func (s *countingSweeper) SweepStale(ctx context.Context) int64 {
	_, ok := ctx.Deadline()
	s.deadline.Store(ok)
	s.calls.Add(1)
	return 2
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestScheduler_RunsSweep(t *testing.T) {
	sweeper := &countingSweeper{}
	s := NewScheduler(sweeper, time.Second, nopLogger{})

	require.NoError(t, s.Start("@every 1s"))
	defer s.Stop(context.Background())

	assert.Eventually(t, func() bool { return sweeper.calls.Load() > 0 }, 3*time.Second, 50*time.Millisecond)
	assert.True(t, sweeper.deadline.Load())
}

func TestScheduler_InvalidSchedule(t *testing.T) {
	s := NewScheduler(&countingSweeper{}, time.Second, nopLogger{})
	assert.Error(t, s.Start("every minute please"))
}

func TestScheduler_SweepDirect(t *testing.T) {
	sweeper := &countingSweeper{}
	NewScheduler(sweeper, time.Second, nopLogger{}).sweep()
	assert.EqualValues(t, 1, sweeper.calls.Load())
}
