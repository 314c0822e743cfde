package model

type SubmitCompletionRequest struct {
	TaskID           string   `json:"task_id"`
	CompletedActions []string `json:"completed_actions"`
	ScreenshotURL    string   `json:"screenshot_url"`
}

type SubmitCompletionResponse struct {
	Status       string `json:"status"`
	EarnedReward string `json:"earned_reward"`
}

type GetMyCompletionsRequest struct{}

type GetMyCompletionsResponse struct {
	Completions []TaskCompletion `json:"completions"`
}

type GetPendingCompletionsRequest struct {
	TaskID string `json:"task_id"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type GetPendingCompletionsResponse struct {
	Completions []TaskCompletion `json:"completions"`
}

type ReviewCompletionRequest struct {
	UserID  string `json:"user_id"`
	TaskID  string `json:"task_id"`
	Action  string `json:"action"`
	Comment string `json:"comment"`
}

type ReviewCompletionResponse struct{}
