package entity

import (
	"time"

	"github.com/watchearn/backend/pkg/enum"
)

type TaskStatusType string

var (
	TaskAvailable  = enum.New(TaskStatusType("available"))
	TaskInProgress = enum.New(TaskStatusType("in_progress"))
	TaskCompleted  = enum.New(TaskStatusType("completed"))
	TaskExpired    = enum.New(TaskStatusType("expired"))
)

type TaskActionType string

var (
	ActionWatch     = enum.New(TaskActionType("watch"))
	ActionLike      = enum.New(TaskActionType("like"))
	ActionSubscribe = enum.New(TaskActionType("subscribe"))
	ActionComment   = enum.New(TaskActionType("comment"))
)

type Task struct {
	Base

	ChannelName       string
	ChannelAvatarURL  string
	VideoTitle        string
	VideoThumbnailURL string
	VideoURL          string
	VideoDuration     int
	Keywords          Array[string]
	Status            TaskStatusType

	// Rewards are kept in cents to avoid floating point drift.
	BaseReward  int64
	TotalReward int64

	ExpiresAt time.Time

	CreatedBy string
	Creator   User `gorm:"foreignKey:CreatedBy"`

	Actions []TaskAction `gorm:"foreignKey:TaskID"`
}

type TaskAction struct {
	Base

	TaskID string
	Task   Task `gorm:"foreignKey:TaskID"`

	Type      TaskActionType
	Label     string
	Reward    int64
	Required  bool
	SortOrder int
}
