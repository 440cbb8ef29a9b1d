package jobs

import (
	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskWarmDashboard is the task type for warming the inventory
	// dashboard cache.
	TaskWarmDashboard = "inventory:warm_dashboard"
)

// NewWarmDashboardTask constructs an Asynq task. The task carries no payload;
// the handler always refreshes the single dashboard summary.
func NewWarmDashboardTask() *asynq.Task {
	return asynq.NewTask(TaskWarmDashboard, nil)
}
