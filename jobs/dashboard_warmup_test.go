package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubWarmer struct {
	err   error
	calls int
}

func (w *stubWarmer) WarmCache(ctx context.Context) error {
	w.calls++
	return w.err
}

func TestDashboardWarmupHandle(t *testing.T) {
	warmer := &stubWarmer{}
	job := NewDashboardWarmupJob(warmer, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := job.Handle(context.Background(), NewWarmDashboardTask())
	require.NoError(t, err)
	require.Equal(t, 1, warmer.calls)
}

func TestDashboardWarmupHandleError(t *testing.T) {
	warmer := &stubWarmer{err: errors.New("redis down")}
	job := NewDashboardWarmupJob(warmer, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := job.Handle(context.Background(), NewWarmDashboardTask())
	require.Error(t, err)
}

func TestDashboardWarmupNotConfigured(t *testing.T) {
	var job *DashboardWarmupJob
	require.Error(t, job.Handle(context.Background(), NewWarmDashboardTask()))
}
