package build

import (
	"context"
	"fmt"
	"sort"

	"github.com/rubika-tools/planner-api/internal/engine"
	"github.com/rubika-tools/planner-api/internal/entities/rubika"
	"github.com/rubika-tools/planner-api/internal/errors"
	buildsvc "github.com/rubika-tools/planner-api/internal/services/build"
)

// EquipItem places a catalog item in an equipment slot, replacing whatever
// was there. Requirements are evaluated against the pre-equip stat state;
// unmet ones come back as warnings and the item is equipped regardless.
func (o *Orchestrator) EquipItem(ctx context.Context, input *buildsvc.EquipItemInput) (*buildsvc.EquipItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("draftID", input.DraftID, vb)
	if input.AOID <= 0 {
		vb.Field("aoid", "aoid must be positive")
	}
	if input.Slot != "" && !rubika.IsValidSlot(input.Slot) {
		vb.Fieldf("slot", "unknown slot %q", input.Slot)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	draft, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	item, err := o.catalog.GetItem(ctx, input.AOID)
	if err != nil {
		return nil, err
	}

	// The item's native slot applies unless the planner overrides it,
	// one-handed weapons go in either hand.
	slot := item.Slot
	if input.Slot != "" {
		slot = input.Slot
	}

	unmet, warnings, err := o.checkLoadoutRequirements(ctx, draft, input.AOID, false)
	if err != nil {
		return nil, err
	}

	if draft.Character.Equipment == nil {
		draft.Character.Equipment = make(map[rubika.Slot]rubika.EquippedItem)
	}
	draft.Character.Equipment[slot] = rubika.EquippedItem{
		AOID:    item.AOID,
		Name:    item.Name,
		QL:      item.QL,
		Effects: item.Effects,
	}

	saved, err := o.saveDraft(ctx, draft)
	if err != nil {
		return nil, err
	}

	return &buildsvc.EquipItemOutput{Draft: saved, Unmet: unmet, Warnings: warnings}, nil
}

// UnequipItem clears an equipment slot
func (o *Orchestrator) UnequipItem(ctx context.Context, input *buildsvc.UnequipItemInput) (*buildsvc.UnequipItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("draftID", input.DraftID, vb)
	if !rubika.IsValidSlot(input.Slot) {
		vb.Fieldf("slot", "unknown slot %q", input.Slot)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	draft, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	if _, ok := draft.Character.Equipment[input.Slot]; !ok {
		return nil, errors.NotFoundf("nothing equipped in slot %q", input.Slot)
	}
	delete(draft.Character.Equipment, input.Slot)

	saved, err := o.saveDraft(ctx, draft)
	if err != nil {
		return nil, err
	}

	return &buildsvc.UnequipItemOutput{Draft: saved}, nil
}

// ApplyBuff adds a running nano program to the draft. A nano sharing a
// strain with a running buff replaces it, matching in-game stacking. Unmet
// requirements come back as warnings and the buff is applied regardless.
func (o *Orchestrator) ApplyBuff(ctx context.Context, input *buildsvc.ApplyBuffInput) (*buildsvc.ApplyBuffOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("draftID", input.DraftID, vb)
	if input.AOID <= 0 {
		vb.Field("aoid", "aoid must be positive")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	draft, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	nano, err := o.catalog.GetNano(ctx, input.AOID)
	if err != nil {
		return nil, err
	}

	unmet, warnings, err := o.checkLoadoutRequirements(ctx, draft, input.AOID, true)
	if err != nil {
		return nil, err
	}

	entry := rubika.BuffEntry{
		AOID:    nano.AOID,
		Name:    nano.Name,
		Effects: nano.Effects,
	}

	replaced := false
	for i, running := range draft.Character.Buffs {
		if running.AOID == nano.AOID {
			draft.Character.Buffs[i] = entry
			replaced = true
			break
		}
		if nano.Strain == 0 {
			continue
		}
		other, lookupErr := o.catalog.GetNano(ctx, running.AOID)
		if lookupErr != nil {
			// Stale entry from an older catalog, leave it alone
			continue
		}
		if other.Strain == nano.Strain {
			draft.Character.Buffs[i] = entry
			replaced = true
			warnings = append(warnings, buildsvc.Warning{
				Code:    buildsvc.WarningBuffReplaced,
				Message: fmt.Sprintf("%s replaces %s in strain %d", nano.Name, running.Name, nano.Strain),
			})
			break
		}
	}
	if !replaced {
		draft.Character.Buffs = append(draft.Character.Buffs, entry)
	}

	saved, err := o.saveDraft(ctx, draft)
	if err != nil {
		return nil, err
	}

	return &buildsvc.ApplyBuffOutput{Draft: saved, Unmet: unmet, Warnings: warnings}, nil
}

// RemoveBuff drops a running nano program from the draft
func (o *Orchestrator) RemoveBuff(ctx context.Context, input *buildsvc.RemoveBuffInput) (*buildsvc.RemoveBuffOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("draftID", input.DraftID, vb)
	if input.AOID <= 0 {
		vb.Field("aoid", "aoid must be positive")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	draft, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	found := -1
	for i, running := range draft.Character.Buffs {
		if running.AOID == input.AOID {
			found = i
			break
		}
	}
	if found < 0 {
		return nil, errors.NotFoundf("nano %d is not applied", input.AOID)
	}
	draft.Character.Buffs = append(draft.Character.Buffs[:found], draft.Character.Buffs[found+1:]...)

	saved, err := o.saveDraft(ctx, draft)
	if err != nil {
		return nil, err
	}

	return &buildsvc.RemoveBuffOutput{Draft: saved}, nil
}

// SetPerks replaces the draft's perk list wholesale. Perk effect data
// arrives inlined from the planning client.
func (o *Orchestrator) SetPerks(ctx context.Context, input *buildsvc.SetPerksInput) (*buildsvc.SetPerksOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("draftID", input.DraftID, vb)
	for i, perk := range input.Perks {
		if perk.ID <= 0 {
			vb.Field(fmt.Sprintf("perks[%d].id", i), "perk id must be positive")
		}
		if perk.Name == "" {
			vb.Field(fmt.Sprintf("perks[%d].name", i), "perk name is required")
		}
		if perk.Level < 1 {
			vb.Field(fmt.Sprintf("perks[%d].level", i), "perk level must be at least 1")
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	draft, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	draft.Character.Perks = input.Perks

	saved, err := o.saveDraft(ctx, draft)
	if err != nil {
		return nil, err
	}

	return &buildsvc.SetPerksOutput{Draft: saved}, nil
}

// SetBuffLines replaces the draft's assumed buff line levels wholesale.
// Zero levels drop the line.
func (o *Orchestrator) SetBuffLines(ctx context.Context, input *buildsvc.SetBuffLinesInput) (*buildsvc.SetBuffLinesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	lines := make([]rubika.BuffLine, 0, len(input.Lines))
	for line := range input.Lines {
		lines = append(lines, line)
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i] < lines[j] })

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("draftID", input.DraftID, vb)
	for _, line := range lines {
		if !rubika.IsValidBuffLine(line) {
			vb.Fieldf("lines", "unknown buff line %q", line)
		}
		if input.Lines[line] < 0 {
			vb.Fieldf("lines", "buff line %q level cannot be negative", line)
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	draft, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	draft.Character.BuffLines = nil
	for _, line := range lines {
		level := input.Lines[line]
		if level == 0 {
			continue
		}
		if draft.Character.BuffLines == nil {
			draft.Character.BuffLines = make(map[rubika.BuffLine]int32)
		}
		draft.Character.BuffLines[line] = level
	}

	saved, err := o.saveDraft(ctx, draft)
	if err != nil {
		return nil, err
	}

	return &buildsvc.SetBuffLinesOutput{Draft: saved}, nil
}

// checkLoadoutRequirements resolves the draft's current stats and evaluates
// the requirement tree of one catalog entry against them. An unsatisfied
// tree produces a warning, never a refusal.
func (o *Orchestrator) checkLoadoutRequirements(
	ctx context.Context, draft *rubika.BuildDraft, aoid int64, isNano bool,
) ([]*rubika.LeafResult, []buildsvc.Warning, error) {
	resolved, err := o.engine.ResolveStats(ctx, &engine.ResolveStatsInput{Character: &draft.Character})
	if err != nil {
		return nil, nil, err
	}

	var tree rubika.CriteriaNode
	if isNano {
		tree, err = o.catalog.GetNanoRequirements(ctx, aoid)
	} else {
		tree, err = o.catalog.GetItemRequirements(ctx, aoid)
	}
	if err != nil {
		return nil, nil, err
	}
	if tree == nil {
		return nil, nil, nil
	}

	check, err := o.engine.CheckRequirements(ctx, &engine.CheckRequirementsInput{
		Node:     tree,
		Snapshot: resolved.Snapshot,
		SourceID: aoid,
	})
	if err != nil {
		return nil, nil, err
	}

	var warnings []buildsvc.Warning
	if check.Result != nil && !*check.Result {
		kind := "item"
		if isNano {
			kind = "nano"
		}
		warnings = append(warnings, buildsvc.Warning{
			Code:    buildsvc.WarningRequirementsUnmet,
			Message: fmt.Sprintf("%s %d has %d unmet requirements", kind, aoid, len(check.Unmet)),
		})
	}
	return check.Unmet, warnings, nil
}
