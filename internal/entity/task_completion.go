package entity

import (
	"database/sql"
	"time"

	"github.com/watchearn/backend/pkg/enum"
	"gorm.io/gorm"
)

type TaskCompletionStatus string

var (
	CompletionSubmitted = enum.New(TaskCompletionStatus("submitted"))
	CompletionApproved  = enum.New(TaskCompletionStatus("approved"))
	CompletionRejected  = enum.New(TaskCompletionStatus("rejected"))
)

type TaskCompletion struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	TaskID string `gorm:"primaryKey"`
	Task   Task   `gorm:"foreignKey:TaskID"`

	CompletedActions Array[string]
	EarnedReward     int64
	ScreenshotURL    string
	Status           TaskCompletionStatus
	SubmittedAt      time.Time

	ReviewerID sql.NullString
	Reviewer   User `gorm:"foreignKey:ReviewerID"`
	ReviewedAt sql.NullTime
	Comment    string
}
