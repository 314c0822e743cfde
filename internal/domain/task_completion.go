package domain

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/pkg/math"
	"github.com/watchearn/backend/internal/common"
	"github.com/watchearn/backend/internal/domain/taskreward"
	"github.com/watchearn/backend/internal/entity"
	"github.com/watchearn/backend/internal/model"
	"github.com/watchearn/backend/internal/repository"
	"github.com/watchearn/backend/pkg/dateutil"
	"github.com/watchearn/backend/pkg/enum"
	"github.com/watchearn/backend/pkg/errorx"
	"github.com/watchearn/backend/pkg/numberutil"
	"github.com/watchearn/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type TaskCompletionDomain interface {
	Submit(context.Context, *model.SubmitCompletionRequest) (*model.SubmitCompletionResponse, error)
	GetPendingList(context.Context, *model.GetPendingCompletionsRequest) (*model.GetPendingCompletionsResponse, error)
	Review(context.Context, *model.ReviewCompletionRequest) (*model.ReviewCompletionResponse, error)
}

type taskCompletionDomain struct {
	completionRepo     repository.TaskCompletionRepository
	taskRepo           repository.TaskRepository
	userRepo           repository.UserRepository
	profileRepo        repository.ProfileRepository
	globalRoleVerifier *common.GlobalRoleVerifier
}

func NewTaskCompletionDomain(
	completionRepo repository.TaskCompletionRepository,
	taskRepo repository.TaskRepository,
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
) *taskCompletionDomain {
	return &taskCompletionDomain{
		completionRepo:     completionRepo,
		taskRepo:           taskRepo,
		userRepo:           userRepo,
		profileRepo:        profileRepo,
		globalRoleVerifier: common.NewGlobalRoleVerifier(userRepo),
	}
}

func (d *taskCompletionDomain) Submit(
	ctx context.Context, req *model.SubmitCompletionRequest,
) (*model.SubmitCompletionResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	task, err := d.taskRepo.GetByID(ctx, req.TaskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found task")
		}

		xcontext.Logger(ctx).Errorf("Cannot get task: %v", err)
		return nil, errorx.Unknown
	}

	if task.Status == entity.TaskExpired || !task.ExpiresAt.After(time.Now()) {
		return nil, errorx.New(errorx.Unavailable, "This task is expired")
	}

	progress := taskreward.NewProgress(task)
	progress.Start()
	for _, actionType := range req.CompletedActions {
		parsed, err := enum.ToEnum[entity.TaskActionType](actionType)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid action type %s", actionType)
		}

		if err := progress.Complete(parsed); err != nil {
			return nil, err
		}
	}

	if err := progress.Validate(); err != nil {
		return nil, err
	}

	earned := progress.EarnedReward()

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	// A resubmission replaces the previous one, only the difference between
	// the two rewards moves the pending balance.
	var previousPending int64
	previous, err := d.completionRepo.Get(ctx, userID, task.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get previous completion: %v", err)
		return nil, errorx.Unknown
	}

	if err == nil {
		if previous.Status == entity.CompletionApproved {
			return nil, errorx.New(errorx.AlreadyExists, "You already completed this task")
		}

		if previous.Status == entity.CompletionSubmitted {
			previousPending = previous.EarnedReward
		}
	}

	completion := &entity.TaskCompletion{
		UserID:           userID,
		TaskID:           task.ID,
		CompletedActions: progress.CompletedTypes(),
		EarnedReward:     earned,
		ScreenshotURL:    req.ScreenshotURL,
		Status:           entity.CompletionSubmitted,
		SubmittedAt:      time.Now(),
	}

	if err := d.completionRepo.Upsert(ctx, completion); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot upsert completion: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.profileRepo.AddPendingRewards(ctx, userID, earned-previousPending); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update pending rewards: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)
	return &model.SubmitCompletionResponse{
		Status:       string(entity.CompletionSubmitted),
		EarnedReward: numberutil.FormatCents(earned),
	}, nil
}

func (d *taskCompletionDomain) GetPendingList(
	ctx context.Context, req *model.GetPendingCompletionsRequest,
) (*model.GetPendingCompletionsResponse, error) {
	if err := d.globalRoleVerifier.Verify(ctx, entity.GlobalAdminRoles...); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	apiCfg := xcontext.Configs(ctx).ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}

	if req.Limit < 0 {
		return nil, errorx.New(errorx.BadRequest, "Limit must be positive")
	}

	completions, err := d.completionRepo.GetList(ctx, repository.TaskCompletionFilter{
		TaskID: req.TaskID,
		Status: []entity.TaskCompletionStatus{entity.CompletionSubmitted},
		Offset: req.Offset,
		Limit:  math.MinInt(req.Limit, apiCfg.MaxLimit),
	})
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

		user, err := d.userRepo.GetByID(ctx, completions[i].UserID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get user of completion: %v", err)
			return nil, errorx.Unknown
		}

		result = append(result, model.ConvertTaskCompletion(
			&completions[i], model.ConvertTask(task), model.ConvertUser(user, false)))
	}

	return &model.GetPendingCompletionsResponse{Completions: result}, nil
}

func (d *taskCompletionDomain) Review(
	ctx context.Context, req *model.ReviewCompletionRequest,
) (*model.ReviewCompletionResponse, error) {
	if err := d.globalRoleVerifier.Verify(ctx, entity.GlobalAdminRoles...); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	status, err := enum.ToEnum[entity.TaskCompletionStatus](req.Action)
	if err != nil || status == entity.CompletionSubmitted {
		return nil, errorx.New(errorx.BadRequest, "Invalid review action %s", req.Action)
	}

	completion, err := d.completionRepo.Get(ctx, req.UserID, req.TaskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found completion")
		}

		xcontext.Logger(ctx).Errorf("Cannot get completion: %v", err)
		return nil, errorx.Unknown
	}

	if completion.Status != entity.CompletionSubmitted {
		return nil, errorx.New(errorx.BadRequest, "This completion is already reviewed")
	}

	now := time.Now()

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	err = d.completionRepo.UpdateReview(ctx, req.UserID, req.TaskID, &entity.TaskCompletion{
		Status:     status,
		ReviewerID: sql.NullString{Valid: true, String: xcontext.RequestUserID(ctx)},
		ReviewedAt: sql.NullTime{Valid: true, Time: now},
		Comment:    req.Comment,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update review: %v", err)
		return nil, errorx.Unknown
	}

	if status == entity.CompletionApproved {
		streak, err := d.nextStreak(ctx, req.UserID, now)
		if err != nil {
			return nil, err
		}

		err = d.profileRepo.ConfirmRewards(ctx, req.UserID, completion.EarnedReward, streak, now)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot confirm rewards: %v", err)
			return nil, errorx.Unknown
		}
	} else {
		err = d.profileRepo.DrainPendingRewards(ctx, req.UserID, completion.EarnedReward)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot drain pending rewards: %v", err)
			return nil, errorx.Unknown
		}
	}

	xcontext.WithCommitDBTransaction(ctx)
	return &model.ReviewCompletionResponse{}, nil
}

// nextStreak extends the streak when the previous approval was yesterday,
// keeps it on a same-day approval, and resets it otherwise.
func (d *taskCompletionDomain) nextStreak(ctx context.Context, userID string, now time.Time) (int, error) {
	profile, err := d.profileRepo.Get(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get profile: %v", err)
		return 0, errorx.Unknown
	}

	if !profile.LastApprovedAt.Valid {
		return 1, nil
	}

	last := profile.LastApprovedAt.Time
	switch {
	case dateutil.IsSameDay(last, now):
		return profile.ActiveStreak, nil
	case dateutil.IsYesterday(last, now):
		return profile.ActiveStreak + 1, nil
	default:
		return 1, nil
	}
}
