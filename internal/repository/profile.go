package repository

import (
	"context"
	"errors"
	"time"

	"github.com/watchearn/backend/internal/entity"
	"github.com/watchearn/backend/pkg/xcontext"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository interface {
	Get(ctx context.Context, userID string) (*entity.Profile, error)
	AddPendingRewards(ctx context.Context, userID string, delta int64) error
	ConfirmRewards(ctx context.Context, userID string, amount int64, streak int, approvedAt time.Time) error
	DrainPendingRewards(ctx context.Context, userID string, amount int64) error
}

type profileRepository struct{}

func NewProfileRepository() *profileRepository {
	return &profileRepository{}
}

func (r *profileRepository) Get(ctx context.Context, userID string) (*entity.Profile, error) {
	var record entity.Profile
	if err := xcontext.DB(ctx).Take(&record, "user_id=?", userID).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

// AddPendingRewards creates the profile if needed and moves the pending
// balance by delta cents. Delta can be negative when a resubmission earns
// less than the previous one.
func (r *profileRepository) AddPendingRewards(ctx context.Context, userID string, delta int64) error {
	return xcontext.DB(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"pending_rewards": gorm.Expr("pending_rewards+?", delta),
				"updated_at":      time.Now(),
			}),
		}).Create(&entity.Profile{
		UserID:         userID,
		PendingRewards: delta,
	}).Error
}

// ConfirmRewards moves an approved amount from pending to total, bumps the
// completed counter, and records the new streak.
func (r *profileRepository) ConfirmRewards(
	ctx context.Context, userID string, amount int64, streak int, approvedAt time.Time,
) error {
	tx := xcontext.DB(ctx).
		Model(&entity.Profile{}).
		Where("user_id=?", userID).
		Updates(map[string]any{
			"pending_rewards":  gorm.Expr("pending_rewards-?", amount),
			"total_earnings":   gorm.Expr("total_earnings+?", amount),
			"tasks_completed":  gorm.Expr("tasks_completed+1"),
			"active_streak":    streak,
			"last_approved_at": approvedAt,
		})

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return errors.New("row affected is empty")
	}

	return nil
}

func (r *profileRepository) DrainPendingRewards(ctx context.Context, userID string, amount int64) error {
	tx := xcontext.DB(ctx).
		Model(&entity.Profile{}).
		Where("user_id=?", userID).
		Update("pending_rewards", gorm.Expr("pending_rewards-?", amount))

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return errors.New("row affected is empty")
	}

	return nil
}
