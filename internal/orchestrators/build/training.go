package build

import (
	"context"
	"fmt"

	"github.com/rubika-tools/planner-api/internal/engine"
	"github.com/rubika-tools/planner-api/internal/entities/rubika"
	"github.com/rubika-tools/planner-api/internal/errors"
	buildsvc "github.com/rubika-tools/planner-api/internal/services/build"
)

// TrainSkill adjusts the trained points of one stat by a signed delta.
// Raising a stat past its cap or past the available IP is allowed, the
// output carries warnings and the planner decides what to keep.
func (o *Orchestrator) TrainSkill(ctx context.Context, input *buildsvc.TrainSkillInput) (*buildsvc.TrainSkillOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("draftID", input.DraftID, vb)
	if !rubika.IsAbility(input.StatID) && !rubika.IsSkill(input.StatID) {
		vb.Fieldf("statID", "stat %d is not trainable", input.StatID)
	}
	if input.Points == 0 {
		vb.Field("points", "points cannot be zero")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	draft, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	current := draft.Character.TrainedPoints(input.StatID)
	target := current + input.Points
	if target < 0 {
		return nil, errors.InvalidArgumentf("cannot remove %d points from stat %d, only %d trained",
			-input.Points, input.StatID, current)
	}

	var (
		cost     int64
		costOut  *engine.CalculateTrainingCostOutput
		warnings []buildsvc.Warning
	)
	if input.Points > 0 {
		costOut, err = o.engine.CalculateTrainingCost(ctx, &engine.CalculateTrainingCostInput{
			Character: &draft.Character,
			StatID:    input.StatID,
			FromValue: current,
			ToValue:   target,
		})
		if err != nil {
			return nil, err
		}
		cost = costOut.Cost

		if costOut.ExceedsCap {
			warnings = append(warnings, buildsvc.Warning{
				Code:   buildsvc.WarningOverCap,
				StatID: input.StatID,
				Message: fmt.Sprintf("target %d is past the effective cap of %d",
					target, costOut.EffectiveCap),
			})
		}

		budget, budgetErr := o.engine.CalculateIPBudget(ctx, &engine.CalculateIPBudgetInput{
			Character: &draft.Character,
		})
		if budgetErr != nil {
			return nil, budgetErr
		}
		if cost > budget.AvailableIP {
			warnings = append(warnings, buildsvc.Warning{
				Code:   buildsvc.WarningOverBudget,
				StatID: input.StatID,
				Message: fmt.Sprintf("training costs %d IP but only %d is available",
					cost, budget.AvailableIP),
			})
		}
	} else {
		// The engine prices ranges low to high, so refunds are priced
		// from the target back up to the current value and negated.
		costOut, err = o.engine.CalculateTrainingCost(ctx, &engine.CalculateTrainingCostInput{
			Character: &draft.Character,
			StatID:    input.StatID,
			FromValue: target,
			ToValue:   current,
		})
		if err != nil {
			return nil, err
		}
		cost = -costOut.Cost
	}

	if target == 0 {
		delete(draft.Character.Trained, input.StatID)
	} else {
		if draft.Character.Trained == nil {
			draft.Character.Trained = make(map[rubika.StatID]int32)
		}
		draft.Character.Trained[input.StatID] = target
	}

	saved, err := o.saveDraft(ctx, draft)
	if err != nil {
		return nil, err
	}

	after, err := o.engine.CalculateIPBudget(ctx, &engine.CalculateIPBudgetInput{
		Character: &saved.Character,
	})
	if err != nil {
		return nil, err
	}

	return &buildsvc.TrainSkillOutput{
		Draft:        saved,
		Cost:         cost,
		SpentIP:      after.SpentIP,
		AvailableIP:  after.AvailableIP,
		EffectiveCap: costOut.EffectiveCap,
		Warnings:     warnings,
	}, nil
}

// ResetSkill removes every trained point from one stat and reports the
// refunded IP. Resetting an untrained stat is a no-op.
func (o *Orchestrator) ResetSkill(ctx context.Context, input *buildsvc.ResetSkillInput) (*buildsvc.ResetSkillOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("draftID", input.DraftID, vb)
	if !rubika.IsAbility(input.StatID) && !rubika.IsSkill(input.StatID) {
		vb.Fieldf("statID", "stat %d is not trainable", input.StatID)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	draft, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	current := draft.Character.TrainedPoints(input.StatID)
	if current == 0 {
		return &buildsvc.ResetSkillOutput{Draft: draft, Refunded: 0}, nil
	}

	costOut, err := o.engine.CalculateTrainingCost(ctx, &engine.CalculateTrainingCostInput{
		Character: &draft.Character,
		StatID:    input.StatID,
		FromValue: 0,
		ToValue:   current,
	})
	if err != nil {
		return nil, err
	}

	delete(draft.Character.Trained, input.StatID)

	saved, err := o.saveDraft(ctx, draft)
	if err != nil {
		return nil, err
	}

	return &buildsvc.ResetSkillOutput{Draft: saved, Refunded: costOut.Cost}, nil
}
