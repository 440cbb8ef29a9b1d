package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
)

// DashboardWarmer refreshes the inventory dashboard cache.
type DashboardWarmer interface {
	WarmCache(ctx context.Context) error
}

// DashboardWarmupJob pre-populates the inventory dashboard cache so the
// first reader after a deploy or cache expiry does not pay the load.
type DashboardWarmupJob struct {
	Warmer DashboardWarmer
	Logger *slog.Logger
	clock  func() time.Time
}

// NewDashboardWarmupJob wires dependencies for the warmup handler.
func NewDashboardWarmupJob(warmer DashboardWarmer, logger *slog.Logger) *DashboardWarmupJob {
	return &DashboardWarmupJob{
		Warmer: warmer,
		Logger: logger,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Handle processes dashboard warmup tasks.
func (j *DashboardWarmupJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil || j.Warmer == nil {
		return errors.New("dashboard warmup: handler not configured")
	}
	start := j.clock()
	if err := j.Warmer.WarmCache(ctx); err != nil {
		j.logger().Error("dashboard warmup", slog.Any("error", err))
		return err
	}
	j.logger().Info("dashboard cache warmed",
		slog.String("job", TaskWarmDashboard),
		slog.Duration("took", j.clock().Sub(start)))
	return nil
}

func (j *DashboardWarmupJob) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger
	}
	return slog.Default()
}
