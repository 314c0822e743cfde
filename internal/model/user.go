package model

type GetMeRequest struct{}

type GetMeResponse struct {
	User User `json:"user"`
}

type GetMyProfileRequest struct{}

type GetMyProfileResponse struct {
	Profile Profile `json:"profile"`
}
