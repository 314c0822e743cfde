package model

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

type Profile struct {
	UserID         string `json:"user_id"`
	TotalEarnings  string `json:"total_earnings"`
	PendingRewards string `json:"pending_rewards"`
	TasksCompleted int    `json:"tasks_completed"`
	ActiveStreak   int    `json:"active_streak"`
}

type TaskAction struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Label     string `json:"label"`
	Reward    string `json:"reward"`
	Required  bool   `json:"required"`
	SortOrder int    `json:"sort_order"`
}

type Task struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`

	ChannelName       string   `json:"channel_name"`
	ChannelAvatarURL  string   `json:"channel_avatar_url"`
	VideoTitle        string   `json:"video_title"`
	VideoThumbnailURL string   `json:"video_thumbnail_url"`
	VideoURL          string   `json:"video_url"`
	VideoDuration     int      `json:"video_duration"`
	Keywords          []string `json:"keywords"`
	Status            string   `json:"status"`

	BaseReward  string `json:"base_reward"`
	TotalReward string `json:"total_reward"`

	ExpiresAt string `json:"expires_at"`
	CreatedBy string `json:"created_by"`

	Actions []TaskAction `json:"actions"`
}

type TaskCompletion struct {
	UserID string `json:"user_id"`
	TaskID string `json:"task_id"`
	Task   Task   `json:"task"`
	User   User   `json:"user"`

	CompletedActions []string `json:"completed_actions"`
	EarnedReward     string   `json:"earned_reward"`
	ScreenshotURL    string   `json:"screenshot_url"`
	Status           string   `json:"status"`
	SubmittedAt      string   `json:"submitted_at"`

	ReviewerID string `json:"reviewer_id"`
	ReviewedAt string `json:"reviewed_at"`
	Comment    string `json:"comment"`
}
