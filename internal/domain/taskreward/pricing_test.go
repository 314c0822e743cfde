package taskreward

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/watchearn/backend/internal/entity"
	"github.com/watchearn/backend/pkg/testutil"
)

func Test_formulaPricer(t *testing.T) {
	ctx := testutil.MockContext()

	pricer, err := NewPricer(ctx, FormulaPricing, nil)
	require.NoError(t, err)

	actions := []ActionSpec{
		{Type: entity.ActionWatch, Label: "Watch the video", Required: true},
		{Type: entity.ActionLike, Label: "Like the video"},
		{Type: entity.ActionSubscribe, Label: "Subscribe to the channel"},
		{Type: entity.ActionComment, Label: "Leave a comment"},
	}

	pricing, err := pricer.Price(10, actions)
	require.NoError(t, err)
	require.Equal(t, Cents(20), pricing.BaseReward)
	require.Equal(t, Cents(50), pricing.TotalReward)
	require.Equal(t, []Cents{20, 5, 10, 15}, pricing.ActionRewards)

	_, err = pricer.Price(0, actions)
	require.Error(t, err)

	_, err = pricer.Price(10, []ActionSpec{{Type: entity.TaskActionType("share")}})
	require.Error(t, err)
}

func Test_formulaPricer_customRate(t *testing.T) {
	ctx := testutil.MockContext()

	pricer, err := NewPricer(ctx, FormulaPricing, map[string]any{"rate_per_minute": 3})
	require.NoError(t, err)

	pricing, err := pricer.Price(10, []ActionSpec{{Type: entity.ActionWatch, Required: true}})
	require.NoError(t, err)
	require.Equal(t, Cents(30), pricing.BaseReward)
	require.Equal(t, Cents(30), pricing.TotalReward)

	_, err = NewPricer(ctx, FormulaPricing, map[string]any{"rate_per_minute": -1})
	require.Error(t, err)
}

func Test_flatPricer(t *testing.T) {
	ctx := testutil.MockContext()

	pricer, err := NewPricer(ctx, FlatPricing, map[string]any{"amount": "1.50"})
	require.NoError(t, err)

	actions := []ActionSpec{
		{Type: entity.ActionWatch, Reward: 150, Required: true},
		{Type: entity.ActionLike, Reward: 25},
	}

	pricing, err := pricer.Price(10, actions)
	require.NoError(t, err)
	require.Equal(t, Cents(150), pricing.BaseReward)
	require.Equal(t, Cents(150), pricing.TotalReward)
	require.Equal(t, []Cents{150, 25}, pricing.ActionRewards)

	_, err = pricer.Price(10, []ActionSpec{{Type: entity.ActionWatch, Reward: -1}})
	require.Error(t, err)
}

func Test_flatPricer_invalidAmount(t *testing.T) {
	ctx := testutil.MockContext()

	for _, amount := range []string{"", "-1.50", "1.505", "abc"} {
		_, err := NewPricer(ctx, FlatPricing, map[string]any{"amount": amount})
		require.Error(t, err, "amount %q", amount)
	}
}

func Test_NewPricer_invalidType(t *testing.T) {
	_, err := NewPricer(testutil.MockContext(), PricingType("auction"), nil)
	require.Error(t, err)
}
