package build

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/rubika-tools/planner-api/internal/engine"
	"github.com/rubika-tools/planner-api/internal/entities/rubika"
	"github.com/rubika-tools/planner-api/internal/errors"
	buildsvc "github.com/rubika-tools/planner-api/internal/services/build"
)

// scoreWorkers caps concurrent requirement evaluations during batch scoring
const scoreWorkers = 8

// GetSkills resolves the draft's full stat state
func (o *Orchestrator) GetSkills(ctx context.Context, input *buildsvc.GetSkillsInput) (*buildsvc.GetSkillsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("draftID", input.DraftID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	draft, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	resolved, err := o.engine.ResolveStats(ctx, &engine.ResolveStatsInput{Character: &draft.Character})
	if err != nil {
		return nil, err
	}

	return &buildsvc.GetSkillsOutput{
		Abilities: resolved.Abilities,
		Skills:    resolved.Skills,
		Snapshot:  resolved.Snapshot,
	}, nil
}

// GetIPBudget computes the draft's IP ledger with a per-stat spend breakdown
func (o *Orchestrator) GetIPBudget(ctx context.Context, input *buildsvc.GetIPBudgetInput) (*buildsvc.GetIPBudgetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("draftID", input.DraftID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	draft, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	budget, err := o.engine.CalculateIPBudget(ctx, &engine.CalculateIPBudgetInput{Character: &draft.Character})
	if err != nil {
		return nil, err
	}

	ids := make([]rubika.StatID, 0, len(draft.Character.Trained))
	for id, points := range draft.Character.Trained {
		if points > 0 {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	perSkill := make(map[rubika.StatID]int64, len(ids))
	for _, id := range ids {
		costOut, costErr := o.engine.CalculateTrainingCost(ctx, &engine.CalculateTrainingCostInput{
			Character: &draft.Character,
			StatID:    id,
			FromValue: 0,
			ToValue:   draft.Character.Trained[id],
		})
		if costErr != nil {
			return nil, errors.Wrapf(costErr, "pricing stat %d", id)
		}
		perSkill[id] = costOut.Cost
	}

	return &buildsvc.GetIPBudgetOutput{
		TitleLevel:  budget.TitleLevel,
		TotalIP:     budget.TotalIP,
		SpentIP:     budget.SpentIP,
		AvailableIP: budget.AvailableIP,
		PerSkill:    perSkill,
	}, nil
}

// CheckRequirements evaluates one catalog entry's requirements against the
// draft. Exactly one of ItemAOID and NanoAOID selects the entry.
func (o *Orchestrator) CheckRequirements(ctx context.Context, input *buildsvc.CheckRequirementsInput) (*buildsvc.CheckRequirementsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("draftID", input.DraftID, vb)
	if (input.ItemAOID > 0) == (input.NanoAOID > 0) {
		vb.Field("aoid", "exactly one of itemAOID and nanoAOID is required")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	draft, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	resolved, err := o.engine.ResolveStats(ctx, &engine.ResolveStatsInput{Character: &draft.Character})
	if err != nil {
		return nil, err
	}

	var (
		tree rubika.CriteriaNode
		aoid int64
	)
	if input.ItemAOID > 0 {
		aoid = input.ItemAOID
		tree, err = o.catalog.GetItemRequirements(ctx, aoid)
	} else {
		aoid = input.NanoAOID
		tree, err = o.catalog.GetNanoRequirements(ctx, aoid)
	}
	if err != nil {
		return nil, err
	}

	// No requirements means anyone qualifies
	if tree == nil {
		satisfied := true
		return &buildsvc.CheckRequirementsOutput{Satisfied: &satisfied}, nil
	}

	check, err := o.engine.CheckRequirements(ctx, &engine.CheckRequirementsInput{
		Node:     tree,
		Snapshot: resolved.Snapshot,
		SourceID: aoid,
	})
	if err != nil {
		return nil, err
	}

	return &buildsvc.CheckRequirementsOutput{Satisfied: check.Result, Unmet: check.Unmet}, nil
}

// GetCombatMetrics runs the nano combat pipeline for one program against
// the draft's resolved stats
func (o *Orchestrator) GetCombatMetrics(ctx context.Context, input *buildsvc.GetCombatMetricsInput) (*buildsvc.GetCombatMetricsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("draftID", input.DraftID, vb)
	if input.NanoAOID <= 0 {
		vb.Field("nanoAOID", "nanoAOID must be positive")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	draft, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	nano, err := o.catalog.GetNano(ctx, input.NanoAOID)
	if err != nil {
		return nil, err
	}

	resolved, err := o.engine.ResolveStats(ctx, &engine.ResolveStatsInput{Character: &draft.Character})
	if err != nil {
		return nil, err
	}

	metrics, err := o.engine.CalculateCombatMetrics(ctx, &engine.CalculateCombatMetricsInput{
		Character: &draft.Character,
		Snapshot:  resolved.Snapshot,
		Nano:      nano,
		Modifiers: input.Modifiers,
	})
	if err != nil {
		return nil, err
	}

	return &buildsvc.GetCombatMetricsOutput{Nano: nano, Metrics: metrics.Metrics}, nil
}

// ScoreItems evaluates many items' requirements against the draft in one
// pass, resolving stats once and fanning the tree evaluations out. Catalog
// misses score as per-item errors instead of failing the batch.
func (o *Orchestrator) ScoreItems(ctx context.Context, input *buildsvc.ScoreItemsInput) (*buildsvc.ScoreItemsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("draftID", input.DraftID, vb)
	if len(input.AOIDs) == 0 {
		vb.Field("aoids", "at least one aoid is required")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	draft, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	resolved, err := o.engine.ResolveStats(ctx, &engine.ResolveStatsInput{Character: &draft.Character})
	if err != nil {
		return nil, err
	}

	scores := make([]*buildsvc.ItemScore, len(input.AOIDs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(scoreWorkers)
	for i, aoid := range input.AOIDs {
		g.Go(func() error {
			item, itemErr := o.catalog.GetItem(ctx, aoid)
			if itemErr != nil {
				scores[i] = &buildsvc.ItemScore{AOID: aoid, Error: errors.GetMessage(itemErr)}
				return nil
			}
			tree, treeErr := o.catalog.GetItemRequirements(ctx, aoid)
			if treeErr != nil {
				scores[i] = &buildsvc.ItemScore{AOID: aoid, Error: errors.GetMessage(treeErr)}
				return nil
			}

			score := &buildsvc.ItemScore{AOID: aoid, Name: item.Name, QL: item.QL}
			if tree == nil {
				satisfied := true
				score.Satisfied = &satisfied
			} else {
				check, checkErr := o.engine.CheckRequirements(ctx, &engine.CheckRequirementsInput{
					Node:     tree,
					Snapshot: resolved.Snapshot,
					SourceID: aoid,
				})
				if checkErr != nil {
					return checkErr
				}
				score.Satisfied = check.Result
				score.Unmet = check.Unmet
			}
			scores[i] = score
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &buildsvc.ScoreItemsOutput{Scores: scores}, nil
}
