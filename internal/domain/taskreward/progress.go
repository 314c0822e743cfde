package taskreward

import (
	"github.com/watchearn/backend/internal/entity"
	"github.com/watchearn/backend/pkg/errorx"
)

// Progress is the draft of a task completion before it is submitted. It never
// touches storage, the submission flow persists its final snapshot.
type Progress struct {
	started bool
	actions []ActionState
}

func NewProgress(task *entity.Task) *Progress {
	progress := &Progress{}
	for _, action := range task.Actions {
		progress.actions = append(progress.actions, ActionState{
			Type:     action.Type,
			Label:    action.Label,
			Reward:   action.Reward,
			Required: action.Required,
		})
	}

	return progress
}

func (p *Progress) Start() {
	p.started = true
}

func (p *Progress) Started() bool {
	return p.started
}

// Toggle flips the completed flag of one action. Completing an already
// completed action twice leaves it completed, the flag never increments.
func (p *Progress) Toggle(actionType entity.TaskActionType) error {
	for i := range p.actions {
		if p.actions[i].Type == actionType {
			p.actions[i].Completed = !p.actions[i].Completed
			return nil
		}
	}

	return errorx.New(errorx.BadRequest, "Invalid action type %s", actionType)
}

// Complete marks one action as done regardless of its current flag.
func (p *Progress) Complete(actionType entity.TaskActionType) error {
	for i := range p.actions {
		if p.actions[i].Type == actionType {
			p.actions[i].Completed = true
			return nil
		}
	}

	return errorx.New(errorx.BadRequest, "Invalid action type %s", actionType)
}

func (p *Progress) Actions() []ActionState {
	return p.actions
}

func (p *Progress) EarnedReward() Cents {
	return EarnedReward(p.actions)
}

func (p *Progress) CompletedTypes() []string {
	var types []string
	for _, a := range p.actions {
		if a.Completed {
			types = append(types, string(a.Type))
		}
	}

	return types
}

// Validate gates submission. Every required action must be completed and the
// earned reward must not be zero.
func (p *Progress) Validate() error {
	for _, a := range p.actions {
		if a.Required && !a.Completed {
			return errorx.New(errorx.IncompleteRequiredActions,
				"You must complete %s before submitting", a.Label)
		}
	}

	if p.EarnedReward() == 0 {
		return errorx.New(errorx.EmptySubmission, "Complete at least one action before submitting")
	}

	return nil
}
