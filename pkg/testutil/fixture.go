package testutil

import (
	"context"
	"time"

	"github.com/watchearn/backend/internal/entity"
	"github.com/watchearn/backend/internal/repository"
)

var (
	User1 = entity.User{
		Base:  entity.Base{ID: "user1"},
		Name:  "user1",
		Email: "user1@example.com",
		Role:  entity.UserRole,
	}

	User2 = entity.User{
		Base:  entity.Base{ID: "user2"},
		Name:  "user2",
		Email: "user2@example.com",
		Role:  entity.UserRole,
	}

	Admin = entity.User{
		Base:  entity.Base{ID: "admin"},
		Name:  "admin",
		Email: "admin@example.com",
		Role:  entity.AdminRole,
	}

	Task1 = entity.Task{
		Base:          entity.Base{ID: "task1"},
		ChannelName:   "TechReview Pro",
		VideoTitle:    "iPhone 16 Review",
		VideoURL:      "https://youtube.com/watch?v=task1",
		VideoDuration: 10,
		Keywords:      entity.Array[string]{"tech", "review"},
		Status:        entity.TaskAvailable,
		BaseReward:    20,
		TotalReward:   50,
		ExpiresAt:     time.Now().AddDate(0, 0, 7),
		CreatedBy:     Admin.ID,
	}

	Task1Actions = []entity.TaskAction{
		{
			Base:      entity.Base{ID: "task1-watch"},
			TaskID:    Task1.ID,
			Type:      entity.ActionWatch,
			Label:     "Watch the video",
			Reward:    20,
			Required:  true,
			SortOrder: 0,
		},
		{
			Base:      entity.Base{ID: "task1-like"},
			TaskID:    Task1.ID,
			Type:      entity.ActionLike,
			Label:     "Like the video",
			Reward:    5,
			SortOrder: 1,
		},
		{
			Base:      entity.Base{ID: "task1-subscribe"},
			TaskID:    Task1.ID,
			Type:      entity.ActionSubscribe,
			Label:     "Subscribe to the channel",
			Reward:    10,
			SortOrder: 2,
		},
		{
			Base:      entity.Base{ID: "task1-comment"},
			TaskID:    Task1.ID,
			Type:      entity.ActionComment,
			Label:     "Leave a comment",
			Reward:    15,
			SortOrder: 3,
		},
	}

	Task2 = entity.Task{
		Base:          entity.Base{ID: "task2"},
		ChannelName:   "Cooking Daily",
		VideoTitle:    "Five Minute Pasta",
		VideoURL:      "https://youtube.com/watch?v=task2",
		VideoDuration: 5,
		Keywords:      entity.Array[string]{"cooking"},
		Status:        entity.TaskAvailable,
		BaseReward:    10,
		TotalReward:   10,
		ExpiresAt:     time.Now().AddDate(0, 0, 7),
		CreatedBy:     Admin.ID,
	}

	Task2Actions = []entity.TaskAction{
		{
			Base:      entity.Base{ID: "task2-watch"},
			TaskID:    Task2.ID,
			Type:      entity.ActionWatch,
			Label:     "Watch the video",
			Reward:    10,
			Required:  true,
			SortOrder: 0,
		},
	}
)

func CreateFixtureDb(ctx context.Context) {
	InsertUsers(ctx)
	InsertTasks(ctx)
}

func InsertUsers(ctx context.Context) {
	userRepo := repository.NewUserRepository()

	for _, user := range []entity.User{User1, User2, Admin} {
		user := user
		if err := userRepo.Create(ctx, &user); err != nil {
			panic(err)
		}
	}
}

func InsertTasks(ctx context.Context) {
	taskRepo := repository.NewTaskRepository()

	task1 := Task1
	task1.Actions = Task1Actions
	if err := taskRepo.Create(ctx, &task1); err != nil {
		panic(err)
	}

	task2 := Task2
	task2.Actions = Task2Actions
	if err := taskRepo.Create(ctx, &task2); err != nil {
		panic(err)
	}
}
