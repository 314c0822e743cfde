package domain

import (
	"context"
	"errors"

	"github.com/watchearn/backend/internal/model"
	"github.com/watchearn/backend/internal/repository"
	"github.com/watchearn/backend/pkg/errorx"
	"github.com/watchearn/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type UserDomain interface {
	GetMe(context.Context, *model.GetMeRequest) (*model.GetMeResponse, error)
	GetMyProfile(context.Context, *model.GetMyProfileRequest) (*model.GetMyProfileResponse, error)
	GetMyCompletions(context.Context, *model.GetMyCompletionsRequest) (*model.GetMyCompletionsResponse, error)
}

type userDomain struct {
	userRepo       repository.UserRepository
	profileRepo    repository.ProfileRepository
	completionRepo repository.TaskCompletionRepository
	taskRepo       repository.TaskRepository
}

func NewUserDomain(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	completionRepo repository.TaskCompletionRepository,
	taskRepo repository.TaskRepository,
) *userDomain {
	return &userDomain{
		userRepo:       userRepo,
		profileRepo:    profileRepo,
		completionRepo: completionRepo,
		taskRepo:       taskRepo,
	}
}

func (d *userDomain) GetMe(
	ctx context.Context, req *model.GetMeRequest,
) (*model.GetMeResponse, error) {
	user, err := d.userRepo.GetByID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetMeResponse{User: model.ConvertUser(user, true)}, nil
}

func (d *userDomain) GetMyProfile(
	ctx context.Context, req *model.GetMyProfileRequest,
) (*model.GetMyProfileResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	profile, err := d.profileRepo.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot get profile: %v", err)
			return nil, errorx.Unknown
		}

		// The profile is created on the first submission. Before that the
		// user has an all-zero one.
		return &model.GetMyProfileResponse{
			Profile: model.Profile{
				UserID:         userID,
				TotalEarnings:  "0.00",
				PendingRewards: "0.00",
			},
		}, nil
	}

	return &model.GetMyProfileResponse{Profile: model.ConvertProfile(profile)}, nil
}

func (d *userDomain) GetMyCompletions(
	ctx context.Context, req *model.GetMyCompletionsRequest,
) (*model.GetMyCompletionsResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	completions, err := d.completionRepo.GetByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get completions: %v", err)
		return nil, errorx.Unknown
	}

	result := []model.TaskCompletion{}
	for i := range completions {
		task, err := d.taskRepo.GetByID(ctx, completions[i].TaskID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get task of completion: %v", err)
			return nil, errorx.Unknown
		}

		result = append(result, model.ConvertTaskCompletion(
			&completions[i], model.ConvertTask(task), model.User{}))
	}

	return &model.GetMyCompletionsResponse{Completions: result}, nil
}
