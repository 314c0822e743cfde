package entity

import (
	"database/sql"
	"time"

	"gorm.io/gorm"
)

// Profile aggregates earnings of a user. All amounts are in cents.
type Profile struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	TotalEarnings  int64
	PendingRewards int64
	TasksCompleted int
	ActiveStreak   int
	LastApprovedAt sql.NullTime
}
