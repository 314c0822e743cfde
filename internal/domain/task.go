package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/math"
	"github.com/watchearn/backend/internal/common"
	"github.com/watchearn/backend/internal/domain/taskreward"
	"github.com/watchearn/backend/internal/entity"
	"github.com/watchearn/backend/internal/model"
	"github.com/watchearn/backend/internal/repository"
	"github.com/watchearn/backend/pkg/enum"
	"github.com/watchearn/backend/pkg/errorx"
	"github.com/watchearn/backend/pkg/numberutil"
	"github.com/watchearn/backend/pkg/xcontext"
	"gorm.io/gorm"
)

const maxTaskKeywords = 5

type TaskDomain interface {
	Create(context.Context, *model.CreateTaskRequest) (*model.CreateTaskResponse, error)
	Get(context.Context, *model.GetTaskRequest) (*model.GetTaskResponse, error)
	GetList(context.Context, *model.GetListTaskRequest) (*model.GetListTaskResponse, error)
}

type taskDomain struct {
	taskRepo           repository.TaskRepository
	globalRoleVerifier *common.GlobalRoleVerifier
}

func NewTaskDomain(
	taskRepo repository.TaskRepository,
	userRepo repository.UserRepository,
) *taskDomain {
	return &taskDomain{
		taskRepo:           taskRepo,
		globalRoleVerifier: common.NewGlobalRoleVerifier(userRepo),
	}
}

func (d *taskDomain) Create(
	ctx context.Context, req *model.CreateTaskRequest,
) (*model.CreateTaskResponse, error) {
	if err := d.globalRoleVerifier.Verify(ctx, entity.GlobalAdminRoles...); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if req.ChannelName == "" || req.VideoTitle == "" || req.VideoURL == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty channel, title, or video url")
	}

	if req.VideoDuration <= 0 {
		return nil, errorx.New(errorx.BadRequest, "Video duration must be positive")
	}

	if len(req.Keywords) > maxTaskKeywords {
		return nil, errorx.New(errorx.BadRequest,
			"Not allow more than %d keywords", maxTaskKeywords)
	}

	expiresAt, err := time.Parse(model.DefaultTimeLayout, req.ExpiresAt)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid expiration time")
	}

	if !expiresAt.After(time.Now()) {
		return nil, errorx.New(errorx.BadRequest, "Expiration time must be in the future")
	}

	actions, err := d.parseActions(ctx, req.Actions)
	if err != nil {
		return nil, err
	}

	var pricingData map[string]any
	modelPricing := model.Pricing{Type: string(taskreward.FormulaPricing)}
	if req.Pricing != nil {
		modelPricing.Type = req.Pricing.Type
		pricingData = req.Pricing.Data
	} else if mode := xcontext.Configs(ctx).Reward.DefaultPricingMode; mode != "" {
		modelPricing.Type = mode
	}

	pricingType, err := enum.ToEnum[taskreward.PricingType](modelPricing.Type)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid pricing type %s", modelPricing.Type)
	}

	pricer, err := taskreward.NewPricer(ctx, pricingType, pricingData)
	if err != nil {
		return nil, err
	}

	pricing, err := pricer.Price(req.VideoDuration, actions)
	if err != nil {
		return nil, err
	}

	task := &entity.Task{
		Base:              entity.Base{ID: uuid.NewString()},
		ChannelName:       req.ChannelName,
		ChannelAvatarURL:  req.ChannelAvatarURL,
		VideoTitle:        req.VideoTitle,
		VideoThumbnailURL: req.VideoThumbnailURL,
		VideoURL:          req.VideoURL,
		VideoDuration:     req.VideoDuration,
		Keywords:          req.Keywords,
		Status:            entity.TaskAvailable,
		BaseReward:        pricing.BaseReward,
		TotalReward:       pricing.TotalReward,
		ExpiresAt:         expiresAt,
		CreatedBy:         xcontext.RequestUserID(ctx),
	}

	for i, action := range actions {
		task.Actions = append(task.Actions, entity.TaskAction{
			Base:      entity.Base{ID: uuid.NewString()},
			TaskID:    task.ID,
			Type:      action.Type,
			Label:     action.Label,
			Reward:    pricing.ActionRewards[i],
			Required:  action.Required,
			SortOrder: i,
		})
	}

	if err := d.taskRepo.Create(ctx, task); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create task: %v", err)
		return nil, errorx.Unknown
	}

	modelPricing.Data = pricer.Data()
	return &model.CreateTaskResponse{
		Task:    model.ConvertTask(task),
		Pricing: modelPricing,
	}, nil
}

// parseActions validates the requested actions. A task carries exactly one
// watch action and it must be required.
func (d *taskDomain) parseActions(
	ctx context.Context, reqActions []model.CreateTaskActionRequest,
) ([]taskreward.ActionSpec, error) {
	var actions []taskreward.ActionSpec
	watchCount := 0
	seen := map[entity.TaskActionType]bool{}
	for _, a := range reqActions {
		actionType, err := enum.ToEnum[entity.TaskActionType](a.Type)
		if err != nil {
			xcontext.Logger(ctx).Debugf("Invalid action type: %v", err)
			return nil, errorx.New(errorx.BadRequest, "Invalid action type %s", a.Type)
		}

		if seen[actionType] {
			return nil, errorx.New(errorx.BadRequest, "Duplicated action type %s", a.Type)
		}
		seen[actionType] = true

		if a.Label == "" {
			return nil, errorx.New(errorx.BadRequest, "Not allow an empty action label")
		}

		var reward taskreward.Cents
		if a.Reward != "" {
			reward, err = numberutil.ParseAmount(a.Reward)
			if err != nil {
				return nil, errorx.New(errorx.BadRequest, "Invalid action reward")
			}
		}

		if actionType == entity.ActionWatch {
			watchCount++
			if !a.Required {
				return nil, errorx.New(errorx.BadRequest, "The watch action must be required")
			}
		}

		actions = append(actions, taskreward.ActionSpec{
			Type:     actionType,
			Label:    a.Label,
			Reward:   reward,
			Required: a.Required,
		})
	}

	if watchCount != 1 {
		return nil, errorx.New(errorx.BadRequest, "A task needs exactly one watch action")
	}

	return actions, nil
}

func (d *taskDomain) Get(
	ctx context.Context, req *model.GetTaskRequest,
) (*model.GetTaskResponse, error) {
	if req.ID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty id")
	}

	task, err := d.taskRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found task")
		}

		xcontext.Logger(ctx).Errorf("Cannot get task: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetTaskResponse(model.ConvertTask(task))
	return &resp, nil
}

func (d *taskDomain) GetList(
	ctx context.Context, req *model.GetListTaskRequest,
) (*model.GetListTaskResponse, error) {
	apiCfg := xcontext.Configs(ctx).ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}

	if req.Limit < 0 {
		return nil, errorx.New(errorx.BadRequest, "Limit must be positive")
	}

	tasks, err := d.taskRepo.GetList(ctx, repository.TaskFilter{
		Status: []entity.TaskStatusType{entity.TaskAvailable, entity.TaskInProgress},
		Offset: req.Offset,
		Limit:  math.MinInt(req.Limit, apiCfg.MaxLimit),
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get tasks: %v", err)
		return nil, errorx.Unknown
	}

	result := []model.Task{}
	for i := range tasks {
		result = append(result, model.ConvertTask(&tasks[i]))
	}

	return &model.GetListTaskResponse{Tasks: result}, nil
}
