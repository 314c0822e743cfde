package taskreward

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/watchearn/backend/internal/entity"
)

func sampleTask() *entity.Task {
	return &entity.Task{
		VideoDuration: 10,
		Actions: []entity.TaskAction{
			{Type: entity.ActionWatch, Label: "Watch the video", Reward: 20, Required: true},
			{Type: entity.ActionLike, Label: "Like the video", Reward: 5},
			{Type: entity.ActionSubscribe, Label: "Subscribe to the channel", Reward: 10},
		},
	}
}

func Test_Progress_Toggle(t *testing.T) {
	progress := NewProgress(sampleTask())
	progress.Start()
	require.True(t, progress.Started())

	require.NoError(t, progress.Toggle(entity.ActionLike))
	require.Equal(t, Cents(5), progress.EarnedReward())

	// Toggling again takes the action back.
	require.NoError(t, progress.Toggle(entity.ActionLike))
	require.Equal(t, Cents(0), progress.EarnedReward())

	require.Error(t, progress.Toggle(entity.TaskActionType("share")))
}

func Test_Progress_Complete_idempotent(t *testing.T) {
	progress := NewProgress(sampleTask())

	require.NoError(t, progress.Complete(entity.ActionWatch))
	require.NoError(t, progress.Complete(entity.ActionWatch))
	require.Equal(t, Cents(20), progress.EarnedReward())
	require.Equal(t, []string{"watch"}, progress.CompletedTypes())
}

func Test_Progress_Validate(t *testing.T) {
	progress := NewProgress(sampleTask())

	// Nothing completed yet.
	err := progress.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "Watch the video")

	// Optional actions alone do not satisfy the required one.
	require.NoError(t, progress.Complete(entity.ActionLike))
	err = progress.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "Watch the video")

	require.NoError(t, progress.Complete(entity.ActionWatch))
	require.NoError(t, progress.Validate())
	require.Equal(t, Cents(25), progress.EarnedReward())
}

func Test_Progress_Validate_emptySubmission(t *testing.T) {
	// A task with no required actions still rejects an empty submission.
	task := &entity.Task{
		Actions: []entity.TaskAction{
			{Type: entity.ActionLike, Label: "Like the video", Reward: 5},
		},
	}

	progress := NewProgress(task)
	err := progress.Validate()
	require.Error(t, err)

	require.NoError(t, progress.Complete(entity.ActionLike))
	require.NoError(t, progress.Validate())
}
