package model

type Pricing struct {
	Type string         `json:"type"`
	Data map[string]any `json:"data"`
}

type CreateTaskActionRequest struct {
	Type     string `json:"type"`
	Label    string `json:"label"`
	Reward   string `json:"reward"`
	Required bool   `json:"required"`
}

type CreateTaskRequest struct {
	ChannelName       string   `json:"channel_name"`
	ChannelAvatarURL  string   `json:"channel_avatar_url"`
	VideoTitle        string   `json:"video_title"`
	VideoThumbnailURL string   `json:"video_thumbnail_url"`
	VideoURL          string   `json:"video_url"`
	VideoDuration     int      `json:"video_duration"`
	Keywords          []string `json:"keywords"`
	ExpiresAt         string   `json:"expires_at"`

	Pricing *Pricing                  `json:"pricing"`
	Actions []CreateTaskActionRequest `json:"actions"`
}

type CreateTaskResponse struct {
	Task    Task    `json:"task"`
	Pricing Pricing `json:"pricing"`
}

type GetTaskRequest struct {
	ID string `json:"id"`
}

type GetTaskResponse Task

type GetListTaskRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type GetListTaskResponse struct {
	Tasks []Task `json:"tasks"`
}
