package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/watchearn/backend/internal/entity"
	"github.com/watchearn/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type TaskCompletionFilter struct {
	TaskID string
	Status []entity.TaskCompletionStatus

	Offset int
	Limit  int
}

type TaskCompletionRepository interface {
	Upsert(ctx context.Context, data *entity.TaskCompletion) error
	Get(ctx context.Context, userID, taskID string) (*entity.TaskCompletion, error)
	GetByUserID(ctx context.Context, userID string) ([]entity.TaskCompletion, error)
	GetList(ctx context.Context, filter TaskCompletionFilter) ([]entity.TaskCompletion, error)
	UpdateReview(ctx context.Context, userID, taskID string, data *entity.TaskCompletion) error
}

type taskCompletionRepository struct{}

func NewTaskCompletionRepository() *taskCompletionRepository {
	return &taskCompletionRepository{}
}

// Upsert inserts the completion or, if the user submitted this task before,
// replaces the previous submission. The review fields are cleared so a
// resubmission after a rejection enters the queue as a fresh row.
func (r *taskCompletionRepository) Upsert(ctx context.Context, data *entity.TaskCompletion) error {
	return xcontext.DB(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "user_id"},
				{Name: "task_id"},
			},
			DoUpdates: clause.Assignments(map[string]any{
				"completed_actions": data.CompletedActions,
				"earned_reward":     data.EarnedReward,
				"screenshot_url":    data.ScreenshotURL,
				"status":            data.Status,
				"submitted_at":      data.SubmittedAt,
				"reviewer_id":       sql.NullString{},
				"reviewed_at":       sql.NullTime{},
				"comment":           "",
				"updated_at":        time.Now(),
			}),
		}).Create(data).Error
}

func (r *taskCompletionRepository) Get(ctx context.Context, userID, taskID string) (*entity.TaskCompletion, error) {
	var record entity.TaskCompletion
	err := xcontext.DB(ctx).
		Where("user_id=? AND task_id=?", userID, taskID).
		Take(&record).Error
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *taskCompletionRepository) GetByUserID(ctx context.Context, userID string) ([]entity.TaskCompletion, error) {
	var result []entity.TaskCompletion
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("submitted_at DESC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *taskCompletionRepository) GetList(ctx context.Context, filter TaskCompletionFilter) ([]entity.TaskCompletion, error) {
	var result []entity.TaskCompletion
	tx := xcontext.DB(ctx).
		Order("submitted_at ASC").
		Offset(filter.Offset).Limit(filter.Limit)

	if filter.TaskID != "" {
		tx = tx.Where("task_id=?", filter.TaskID)
	}

	if len(filter.Status) > 0 {
		tx = tx.Where("status IN (?)", filter.Status)
	}

	if err := tx.Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *taskCompletionRepository) UpdateReview(ctx context.Context, userID, taskID string, data *entity.TaskCompletion) error {
	tx := xcontext.DB(ctx).
		Model(&entity.TaskCompletion{}).
		Where("user_id=? AND task_id=? AND status=?", userID, taskID, entity.CompletionSubmitted).
		Updates(map[string]any{
			"status":      data.Status,
			"reviewer_id": data.ReviewerID,
			"reviewed_at": data.ReviewedAt,
			"comment":     data.Comment,
		})

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return errors.New("row affected is empty")
	}

	return nil
}
