package repository

import (
	"context"
	"time"

	"github.com/watchearn/backend/internal/entity"
	"github.com/watchearn/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type TaskFilter struct {
	Status []entity.TaskStatusType

	Offset int
	Limit  int
}

type TaskRepository interface {
	Create(ctx context.Context, data *entity.Task) error
	GetByID(ctx context.Context, id string) (*entity.Task, error)
	GetList(ctx context.Context, filter TaskFilter) ([]entity.Task, error)
	ExpireBefore(ctx context.Context, deadline time.Time) (int64, error)
}

type taskRepository struct{}

func NewTaskRepository() *taskRepository {
	return &taskRepository{}
}

func (r *taskRepository) Create(ctx context.Context, data *entity.Task) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *taskRepository) GetByID(ctx context.Context, id string) (*entity.Task, error) {
	var record entity.Task
	err := xcontext.DB(ctx).
		Preload("Actions", func(db *gorm.DB) *gorm.DB {
			return db.Order("task_actions.sort_order ASC")
		}).
		Take(&record, "id=?", id).Error
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *taskRepository) GetList(ctx context.Context, filter TaskFilter) ([]entity.Task, error) {
	var result []entity.Task
	tx := xcontext.DB(ctx).
		Preload("Actions", func(db *gorm.DB) *gorm.DB {
			return db.Order("task_actions.sort_order ASC")
		}).
		Order("created_at DESC").
		Offset(filter.Offset).Limit(filter.Limit)

	if len(filter.Status) > 0 {
		tx = tx.Where("status IN (?)", filter.Status)
	}

	if err := tx.Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

// ExpireBefore marks every non-terminal task whose deadline passed as expired
// and returns the number of tasks it changed.
func (r *taskRepository) ExpireBefore(ctx context.Context, deadline time.Time) (int64, error) {
	tx := xcontext.DB(ctx).
		Model(&entity.Task{}).
		Where("expires_at <= ? AND status IN (?)",
			deadline, []entity.TaskStatusType{entity.TaskAvailable, entity.TaskInProgress}).
		Update("status", entity.TaskExpired)

	if tx.Error != nil {
		return 0, tx.Error
	}

	return tx.RowsAffected, nil
}
