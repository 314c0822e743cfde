package model

import (
	"time"

	"github.com/watchearn/backend/internal/entity"
	"github.com/watchearn/backend/pkg/numberutil"
)

const DefaultTimeLayout string = time.RFC3339Nano

func ConvertUser(user *entity.User, includeSensitive bool) User {
	if user == nil {
		return User{}
	}

	result := User{
		ID:   user.ID,
		Name: user.Name,
	}

	if includeSensitive {
		result.Email = user.Email
		result.Role = user.Role
	}

	return result
}

func ConvertProfile(profile *entity.Profile) Profile {
	if profile == nil {
		return Profile{}
	}

	return Profile{
		UserID:         profile.UserID,
		TotalEarnings:  numberutil.FormatCents(profile.TotalEarnings),
		PendingRewards: numberutil.FormatCents(profile.PendingRewards),
		TasksCompleted: profile.TasksCompleted,
		ActiveStreak:   profile.ActiveStreak,
	}
}

func ConvertTaskAction(action *entity.TaskAction) TaskAction {
	if action == nil {
		return TaskAction{}
	}

	return TaskAction{
		ID:        action.ID,
		Type:      string(action.Type),
		Label:     action.Label,
		Reward:    numberutil.FormatCents(action.Reward),
		Required:  action.Required,
		SortOrder: action.SortOrder,
	}
}

func ConvertTask(task *entity.Task) Task {
	if task == nil {
		return Task{}
	}

	actions := []TaskAction{}
	for i := range task.Actions {
		actions = append(actions, ConvertTaskAction(&task.Actions[i]))
	}

	return Task{
		ID:                task.ID,
		CreatedAt:         task.CreatedAt.Format(DefaultTimeLayout),
		ChannelName:       task.ChannelName,
		ChannelAvatarURL:  task.ChannelAvatarURL,
		VideoTitle:        task.VideoTitle,
		VideoThumbnailURL: task.VideoThumbnailURL,
		VideoURL:          task.VideoURL,
		VideoDuration:     task.VideoDuration,
		Keywords:          task.Keywords,
		Status:            string(task.Status),
		BaseReward:        numberutil.FormatCents(task.BaseReward),
		TotalReward:       numberutil.FormatCents(task.TotalReward),
		ExpiresAt:         task.ExpiresAt.Format(DefaultTimeLayout),
		CreatedBy:         task.CreatedBy,
		Actions:           actions,
	}
}

func ConvertTaskCompletion(completion *entity.TaskCompletion, task Task, user User) TaskCompletion {
	if completion == nil {
		return TaskCompletion{}
	}

	result := TaskCompletion{
		UserID:           completion.UserID,
		TaskID:           completion.TaskID,
		Task:             task,
		User:             user,
		CompletedActions: completion.CompletedActions,
		EarnedReward:     numberutil.FormatCents(completion.EarnedReward),
		ScreenshotURL:    completion.ScreenshotURL,
		Status:           string(completion.Status),
		SubmittedAt:      completion.SubmittedAt.Format(DefaultTimeLayout),
		Comment:          completion.Comment,
	}

	if completion.ReviewerID.Valid {
		result.ReviewerID = completion.ReviewerID.String
	}

	if completion.ReviewedAt.Valid {
		result.ReviewedAt = completion.ReviewedAt.Time.Format(DefaultTimeLayout)
	}

	return result
}
