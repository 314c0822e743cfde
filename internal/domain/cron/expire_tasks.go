package cron

import (
	"context"
	"time"

	"github.com/watchearn/backend/internal/repository"
	"github.com/watchearn/backend/pkg/xcontext"
)

type ExpireTasksCronJob struct {
	taskRepo repository.TaskRepository
	interval time.Duration
}

func NewExpireTasksCronJob(taskRepo repository.TaskRepository, interval time.Duration) *ExpireTasksCronJob {
	if interval <= 0 {
		interval = time.Hour
	}

	return &ExpireTasksCronJob{taskRepo: taskRepo, interval: interval}
}

func (job *ExpireTasksCronJob) Do(ctx context.Context) {
	expired, err := job.taskRepo.ExpireBefore(ctx, time.Now())
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot expire tasks: %v", err)
		return
	}

	if expired > 0 {
		xcontext.Logger(ctx).Infof("Marked %d tasks as expired", expired)
	}
}

func (job *ExpireTasksCronJob) RunNow() bool {
	return true
}

func (job *ExpireTasksCronJob) Next() time.Time {
	return time.Now().Add(job.interval)
}
