package formulas

import (
	"context"
	"math"

	"github.com/rubika-tools/planner-api/internal/engine"
	"github.com/rubika-tools/planner-api/internal/entities/rubika"
	"github.com/rubika-tools/planner-api/internal/errors"
	"github.com/rubika-tools/planner-api/internal/gamedata"
)

// postBandEntry is the first level priced by the linear post-200 formula.
const postBandEntry = 200

// CalculateIPBudget totals the character's IP ledger. Available may go
// negative, a build trained past its budget is a planning state, not an
// error.
func (c *Calculator) CalculateIPBudget(
	ctx context.Context,
	input *engine.CalculateIPBudgetInput,
) (*engine.CalculateIPBudgetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateCharacter(input.Character); err != nil {
		return nil, err
	}

	char := input.Character
	total := c.tables.TotalIP(char.Level)

	var spent int64
	for id, points := range char.Trained {
		if points == 0 {
			continue
		}
		spent += cumulativeCost(points, c.costFactor(char, id))
	}

	return &engine.CalculateIPBudgetOutput{
		TitleLevel:  c.tables.TitleLevel(char.Level),
		TotalIP:     total,
		SpentIP:     spent,
		AvailableIP: total - spent,
	}, nil
}

// CalculateTrainingCost prices raising one stat between two trained point
// counts and reports the caps without enforcing them.
func (c *Calculator) CalculateTrainingCost(
	ctx context.Context,
	input *engine.CalculateTrainingCostInput,
) (*engine.CalculateTrainingCostOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateCharacter(input.Character); err != nil {
		return nil, err
	}
	isSkill := rubika.IsSkill(input.StatID)
	if !isSkill && !rubika.IsAbility(input.StatID) {
		return nil, errors.InvalidArgumentf("stat %d is not trainable", input.StatID)
	}
	if input.FromValue < 0 {
		return nil, errors.InvalidArgumentf("from value %d is negative", input.FromValue)
	}
	if input.ToValue < input.FromValue {
		return nil, errors.InvalidArgumentf("to value %d is below from value %d", input.ToValue, input.FromValue)
	}

	char := input.Character
	factor := c.costFactor(char, input.StatID)
	rule := c.tables.CapRule(factor)

	out := &engine.CalculateTrainingCostOutput{
		Cost:       cumulativeCost(input.ToValue, factor) - cumulativeCost(input.FromValue, factor),
		CostFactor: factor,
		LevelCap:   c.levelCap(rule, char.Level),
	}

	if isSkill {
		totals := c.abilityTotals(char)
		out.AbilityCap = abilityCap(c.tables.TrickleWeightsFor(input.StatID), totals)
	}

	out.EffectiveCap = out.LevelCap
	if isSkill && out.AbilityCap < out.EffectiveCap {
		out.EffectiveCap = out.AbilityCap
	}
	out.ExceedsCap = input.ToValue > out.EffectiveCap

	return out, nil
}

// costFactor resolves the multiplier for a trainable stat: profession keyed
// for skills, breed keyed for abilities.
func (c *Calculator) costFactor(char *rubika.Character, id rubika.StatID) float64 {
	if rubika.IsAbility(id) {
		return c.tables.AbilityCostFactor(id, char.Breed)
	}
	return c.tables.SkillCostFactor(id, char.Profession)
}

// abilityTotals resolves just the six ability totals, enough for cap math
// without a full stat resolution.
func (c *Calculator) abilityTotals(char *rubika.Character) [rubika.AbilityCount]int32 {
	params := c.tables.BreedParamsFor(char.Breed)
	equip := sumModifiers(equipmentEffects(char))
	perk := sumModifiers(perkEffects(char))
	buff := sumModifiers(buffEffects(char))

	var totals [rubika.AbilityCount]int32
	for i, id := range rubika.AbilityIDs {
		total := params.StartingAbilities[i] + char.Trained[id] + equip[id] + perk[id] + buff[id]
		if total < 0 {
			total = 0
		}
		totals[i] = total
	}
	return totals
}

// cumulativeCost is the IP price of the first n trained points. Point j
// costs floor(j * factor), so the unit price scales with the current value
// and the running sum is strictly increasing and convex.
func cumulativeCost(n int32, factor float64) int64 {
	var total int64
	for j := int32(1); j <= n; j++ {
		total += int64(math.Floor(float64(j) * factor))
	}
	return total
}

// bandedCap accumulates the sub-201 cap: every full band below the level
// contributes its length times the band rate, the active band contributes
// per level entered.
func (c *Calculator) bandedCap(rule gamedata.CapRateRule, level int32) int32 {
	if level < rubika.MinLevel {
		level = rubika.MinLevel
	}
	if level > postBandEntry {
		level = postBandEntry
	}

	var total int32
	for _, b := range c.tables.TitleBands {
		if b.FromLevel > level {
			break
		}
		to := b.ToLevel
		if to > postBandEntry {
			to = postBandEntry
		}
		rate := rule.PerLevel[b.Title-1]
		if level <= to {
			total += (level - b.FromLevel + 1) * rate
			break
		}
		total += (to - b.FromLevel + 1) * rate
	}
	return total
}

// levelCap resolves the trainable ceiling for a rate rule at a level.
// Levels up to 200 use the banded accumulation, later levels the linear
// post rate. A title's entry level takes the lower of the outgoing and
// incoming rates, matching the reference behavior at band boundaries.
func (c *Calculator) levelCap(rule gamedata.CapRateRule, level int32) int32 {
	bands := c.tables.TitleBands

	if level <= postBandEntry {
		capValue := c.bandedCap(rule, level)
		for _, b := range bands {
			if level == b.FromLevel && b.Title > 1 {
				alt := c.bandedCap(rule, level-1) + rule.PerLevel[b.Title-2]
				if alt < capValue {
					capValue = alt
				}
				break
			}
		}
		return capValue
	}

	base := c.bandedCap(rule, postBandEntry)
	capValue := base + (level-postBandEntry)*rule.PostRate

	last := bands[len(bands)-1]
	if level == last.FromLevel {
		alt := base + (level-1-postBandEntry)*rule.PostRate + rule.PerLevel[last.Title-1]
		if alt < capValue {
			capValue = alt
		}
	}
	return capValue
}
