package taskreward

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/watchearn/backend/internal/entity"
)

func Test_BaseReward(t *testing.T) {
	tests := []struct {
		name     string
		duration int
		want     Cents
		wantErr  bool
	}{
		{name: "ten minutes", duration: 10, want: 20},
		{name: "one minute", duration: 1, want: 2},
		{name: "zero duration", duration: 0, want: 0},
		{name: "negative duration", duration: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BaseReward(tt.duration)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				require.Equal(t, tt.want, got)
			}
		})
	}
}

func Test_ActionBonus(t *testing.T) {
	tests := []struct {
		name       string
		actionType entity.TaskActionType
		want       Cents
		wantErr    bool
	}{
		{name: "watch has no bonus", actionType: entity.ActionWatch, want: 0},
		{name: "like", actionType: entity.ActionLike, want: 5},
		{name: "subscribe", actionType: entity.ActionSubscribe, want: 10},
		{name: "comment", actionType: entity.ActionComment, want: 15},
		{name: "unknown type", actionType: entity.TaskActionType("share"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ActionBonus(tt.actionType)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				require.Equal(t, tt.want, got)
			}
		})
	}
}

func Test_TotalReward(t *testing.T) {
	allActions := []entity.TaskActionType{
		entity.ActionWatch, entity.ActionLike, entity.ActionSubscribe, entity.ActionComment,
	}

	total, err := TotalReward(10, allActions)
	require.NoError(t, err)
	require.Equal(t, Cents(50), total)

	// Total never falls below the base reward.
	base, err := BaseReward(10)
	require.NoError(t, err)
	require.GreaterOrEqual(t, total, base)

	watchOnly, err := TotalReward(10, []entity.TaskActionType{entity.ActionWatch})
	require.NoError(t, err)
	require.Equal(t, base, watchOnly)

	// Adding an action never decreases the total.
	withLike, err := TotalReward(10, []entity.TaskActionType{entity.ActionWatch, entity.ActionLike})
	require.NoError(t, err)
	require.GreaterOrEqual(t, withLike, watchOnly)

	_, err = TotalReward(10, []entity.TaskActionType{entity.TaskActionType("share")})
	require.Error(t, err)

	_, err = TotalReward(-1, allActions)
	require.Error(t, err)
}

func Test_EarnedReward(t *testing.T) {
	actions := []ActionState{
		{Type: entity.ActionWatch, Reward: 20, Required: true, Completed: true},
		{Type: entity.ActionLike, Reward: 5, Completed: false},
		{Type: entity.ActionSubscribe, Reward: 10, Completed: true},
	}

	require.Equal(t, Cents(30), EarnedReward(actions))

	none := []ActionState{
		{Type: entity.ActionWatch, Reward: 20, Required: true},
	}
	require.Equal(t, Cents(0), EarnedReward(none))
}
