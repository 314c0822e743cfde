package cron

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/watchearn/backend/internal/entity"
	"github.com/watchearn/backend/internal/repository"
	"github.com/watchearn/backend/pkg/testutil"
)

func Test_ExpireTasksCronJob(t *testing.T) {
	ctx := testutil.MockContext()
	taskRepo := repository.NewTaskRepository()

	stale := entity.Task{
		Base:          entity.Base{ID: "stale"},
		ChannelName:   "Old Channel",
		VideoTitle:    "Old Video",
		VideoURL:      "https://youtube.com/watch?v=old",
		VideoDuration: 3,
		Status:        entity.TaskAvailable,
		ExpiresAt:     time.Now().Add(-time.Hour),
	}
	require.NoError(t, taskRepo.Create(ctx, &stale))

	fresh := entity.Task{
		Base:          entity.Base{ID: "fresh"},
		ChannelName:   "New Channel",
		VideoTitle:    "New Video",
		VideoURL:      "https://youtube.com/watch?v=new",
		VideoDuration: 3,
		Status:        entity.TaskAvailable,
		ExpiresAt:     time.Now().Add(time.Hour),
	}
	require.NoError(t, taskRepo.Create(ctx, &fresh))

	NewExpireTasksCronJob(taskRepo, time.Hour).Do(ctx)

	got, err := taskRepo.GetByID(ctx, stale.ID)
	require.NoError(t, err)
	require.Equal(t, entity.TaskExpired, got.Status)

	got, err = taskRepo.GetByID(ctx, fresh.ID)
	require.NoError(t, err)
	require.Equal(t, entity.TaskAvailable, got.Status)
}
