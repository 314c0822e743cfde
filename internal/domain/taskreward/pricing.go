package taskreward

import (
	"context"

	"github.com/fatih/structs"
	"github.com/mitchellh/mapstructure"
	"github.com/watchearn/backend/internal/entity"
	"github.com/watchearn/backend/pkg/enum"
	"github.com/watchearn/backend/pkg/errorx"
	"github.com/watchearn/backend/pkg/numberutil"
	"github.com/watchearn/backend/pkg/xcontext"
)

type PricingType string

var (
	FormulaPricing = enum.New(PricingType("formula"))
	FlatPricing    = enum.New(PricingType("flat"))
)

// ActionSpec is an action definition as requested at task creation. The
// reward is only honored by flat pricing, formula pricing assigns its own.
type ActionSpec struct {
	Type     entity.TaskActionType
	Label    string
	Reward   Cents
	Required bool
}

type Pricing struct {
	BaseReward  Cents
	TotalReward Cents

	// ActionRewards is parallel to the actions given to Price.
	ActionRewards []Cents
}

type Pricer interface {
	Price(durationMinutes int, actions []ActionSpec) (*Pricing, error)

	// Data returns the normalized pricing payload.
	Data() entity.Map
}

// Pricer factory
func NewPricer(ctx context.Context, pricingType PricingType, data map[string]any) (Pricer, error) {
	switch pricingType {
	case FormulaPricing:
		return newFormulaPricer(ctx, data)

	case FlatPricing:
		return newFlatPricer(ctx, data)
	}

	return nil, errorx.New(errorx.BadRequest, "Invalid pricing type %s", pricingType)
}

// Formula pricing
type formulaPricer struct {
	RatePerMinute Cents `mapstructure:"rate_per_minute" structs:"rate_per_minute"`
}

func newFormulaPricer(ctx context.Context, data map[string]any) (*formulaPricer, error) {
	pricer := formulaPricer{}
	if err := mapstructure.Decode(data, &pricer); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot decode map to struct: %v", err)
		return nil, errorx.Unknown
	}

	if pricer.RatePerMinute < 0 {
		return nil, errorx.New(errorx.BadRequest, "Invalid rate per minute")
	}

	if pricer.RatePerMinute == 0 {
		pricer.RatePerMinute = RatePerMinute
	}

	return &pricer, nil
}

func (p *formulaPricer) Price(durationMinutes int, actions []ActionSpec) (*Pricing, error) {
	if durationMinutes <= 0 {
		return nil, errorx.New(errorx.BadRequest, "Invalid video duration")
	}

	base := Cents(durationMinutes) * p.RatePerMinute
	pricing := Pricing{BaseReward: base, TotalReward: base}
	for _, action := range actions {
		var reward Cents
		if action.Type == entity.ActionWatch {
			reward = base
		} else {
			bonus, err := ActionBonus(action.Type)
			if err != nil {
				return nil, errorx.New(errorx.BadRequest, "Invalid action type %s", action.Type)
			}

			reward = bonus
			pricing.TotalReward += bonus
		}

		pricing.ActionRewards = append(pricing.ActionRewards, reward)
	}

	return &pricing, nil
}

func (p *formulaPricer) Data() entity.Map {
	return structs.Map(p)
}

// Flat pricing
type flatPricer struct {
	Amount string `mapstructure:"amount" structs:"amount"`

	amountCents Cents
}

func newFlatPricer(ctx context.Context, data map[string]any) (*flatPricer, error) {
	pricer := flatPricer{}
	if err := mapstructure.Decode(data, &pricer); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot decode map to struct: %v", err)
		return nil, errorx.Unknown
	}

	amount, err := numberutil.ParseAmount(pricer.Amount)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Invalid flat amount: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid amount")
	}

	pricer.amountCents = amount
	return &pricer, nil
}

// Price uses the supplied amount as both base and total. Action rewards are
// taken from the request as given.
func (p *flatPricer) Price(durationMinutes int, actions []ActionSpec) (*Pricing, error) {
	if durationMinutes <= 0 {
		return nil, errorx.New(errorx.BadRequest, "Invalid video duration")
	}

	pricing := Pricing{BaseReward: p.amountCents, TotalReward: p.amountCents}
	for _, action := range actions {
		if action.Reward < 0 {
			return nil, errorx.New(errorx.BadRequest, "Invalid action reward")
		}

		pricing.ActionRewards = append(pricing.ActionRewards, action.Reward)
	}

	return &pricing, nil
}

func (p *flatPricer) Data() entity.Map {
	return structs.Map(p)
}
