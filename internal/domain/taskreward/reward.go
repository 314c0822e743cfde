package taskreward

import (
	"fmt"

	"github.com/watchearn/backend/internal/entity"
)

// Cents is a monetary amount in minor units.
type Cents = int64

// Watching pays per minute of video length, the other actions pay a fixed
// bonus on top.
const (
	RatePerMinute  Cents = 2
	LikeBonus      Cents = 5
	SubscribeBonus Cents = 10
	CommentBonus   Cents = 15
)

func BaseReward(durationMinutes int) (Cents, error) {
	if durationMinutes < 0 {
		return 0, fmt.Errorf("invalid video duration %d", durationMinutes)
	}

	return Cents(durationMinutes) * RatePerMinute, nil
}

// ActionBonus returns the fixed bonus of a single action type. The watch
// action carries the base reward instead of a bonus, so it contributes zero.
func ActionBonus(actionType entity.TaskActionType) (Cents, error) {
	switch actionType {
	case entity.ActionWatch:
		return 0, nil
	case entity.ActionLike:
		return LikeBonus, nil
	case entity.ActionSubscribe:
		return SubscribeBonus, nil
	case entity.ActionComment:
		return CommentBonus, nil
	}

	return 0, fmt.Errorf("invalid action type %s", actionType)
}

// TotalReward is the most a user can earn from a task with the given video
// duration and enabled actions.
func TotalReward(durationMinutes int, actionTypes []entity.TaskActionType) (Cents, error) {
	total, err := BaseReward(durationMinutes)
	if err != nil {
		return 0, err
	}

	for _, t := range actionTypes {
		bonus, err := ActionBonus(t)
		if err != nil {
			return 0, err
		}

		total += bonus
	}

	return total, nil
}

// ActionState is one action of a task together with its completion flag.
type ActionState struct {
	Type      entity.TaskActionType
	Label     string
	Reward    Cents
	Required  bool
	Completed bool
}

// EarnedReward sums the rewards of the completed actions.
func EarnedReward(actions []ActionState) Cents {
	var earned Cents
	for _, a := range actions {
		if a.Completed {
			earned += a.Reward
		}
	}

	return earned
}
