// Package gamedata holds the static lookup tables the formula engine runs
// on: trickle-down weights, IP cost factors, title bands, cap rate rules,
// buff line tables, and breed parameters. Tables are plain data owned by
// whoever constructs the engine and passed in explicitly, nothing in this
// package reads ambient state at call time.
package gamedata

import (
	"github.com/rubika-tools/planner-api/internal/entities/rubika"

	"github.com/rubika-tools/planner-api/internal/errors"
)

// Tables is the full static data set consumed by the formulas. Ordered
// lookups (levels, buff levels, cost factors) clamp out-of-range keys to
// the nearest table entry instead of failing.
type Tables struct {
	TrickleWeights     [rubika.SkillCount][rubika.AbilityCount]float64
	SkillCostFactors   [rubika.SkillCount][rubika.ProfessionCount]float64
	AbilityCostFactors [rubika.AbilityCount][4]float64
	TitleBands         []TitleBand
	CapRules           []CapRateRule

	CostReductionPercent    [MaxBuffLineLevel + 1]int32
	NanoDeltaPerSecond      [MaxBuffLineLevel + 1]float64
	NotumSiphonPerSecond    [MaxBuffLineLevel + 1]float64
	DamageEfficiencyPercent [MaxBuffLineLevel + 1]int32

	BreedParams map[rubika.Breed]BreedParams
}

// Default returns the built-in data set.
func Default() *Tables {
	return &Tables{
		TrickleWeights:          defaultTrickleWeights,
		SkillCostFactors:        defaultSkillCostFactors,
		AbilityCostFactors:      defaultAbilityCostFactors,
		TitleBands:              defaultTitleBands,
		CapRules:                defaultCapRules,
		CostReductionPercent:    defaultCostReductionPercent,
		NanoDeltaPerSecond:      defaultNanoDeltaPerSecond,
		NotumSiphonPerSecond:    defaultNotumSiphonPerSecond,
		DamageEfficiencyPercent: defaultDamageEfficiencyPercent,
		BreedParams:             defaultBreedParams,
	}
}

// TrickleWeightsFor returns the ability weight row for a skill. Non-skill
// ids get the zero row.
func (t *Tables) TrickleWeightsFor(skill rubika.StatID) [rubika.AbilityCount]float64 {
	idx := rubika.SkillIndex(skill)
	if idx < 0 {
		return [rubika.AbilityCount]float64{}
	}
	return t.TrickleWeights[idx]
}

// SkillCostFactor returns the IP cost multiplier for a skill under a
// profession. Non-skill ids and unknown professions clamp to the most
// expensive factor so a bad key can never make a skill cheaper.
func (t *Tables) SkillCostFactor(skill rubika.StatID, prof rubika.Profession) float64 {
	idx := rubika.SkillIndex(skill)
	if idx < 0 || prof < rubika.ProfessionSoldier || prof > rubika.ProfessionShade {
		return t.CapRules[len(t.CapRules)-1].MaxCostFactor
	}
	return t.SkillCostFactors[idx][int(prof)-1]
}

// AbilityCostFactor returns the training cost multiplier for an ability
// under a breed. Unknown keys clamp the same way skills do.
func (t *Tables) AbilityCostFactor(ability rubika.StatID, breed rubika.Breed) float64 {
	idx := rubika.AbilityIndex(ability)
	if idx < 0 || breed < rubika.BreedSolitus || breed > rubika.BreedAtrox {
		return t.CapRules[len(t.CapRules)-1].MaxCostFactor
	}
	return t.AbilityCostFactors[idx][int(breed)-1]
}

// bandFor clamps level into the covered range and returns its title band.
func (t *Tables) bandFor(level int32) TitleBand {
	if level <= t.TitleBands[0].ToLevel {
		return t.TitleBands[0]
	}
	last := t.TitleBands[len(t.TitleBands)-1]
	if level >= last.FromLevel {
		return last
	}
	for _, b := range t.TitleBands[1 : len(t.TitleBands)-1] {
		if level >= b.FromLevel && level <= b.ToLevel {
			return b
		}
	}
	return last
}

// TitleLevel maps a character level to its title. Levels past the last band
// saturate at its title.
func (t *Tables) TitleLevel(level int32) int32 {
	return t.bandFor(level).Title
}

// TotalIP returns the cumulative improvement points available at a level.
// Levels outside the covered range clamp to the nearest band edge.
func (t *Tables) TotalIP(level int32) int64 {
	b := t.bandFor(level)
	if level < b.FromLevel {
		level = b.FromLevel
	}
	if level > b.ToLevel {
		level = b.ToLevel
	}
	return b.BaseIP + int64(level-b.FromLevel)*b.IPPerLevel
}

// CapRule resolves a cost factor to its rate rule. Factors past the last
// rule clamp to it.
func (t *Tables) CapRule(costFactor float64) CapRateRule {
	for _, r := range t.CapRules {
		if costFactor <= r.MaxCostFactor {
			return r
		}
	}
	return t.CapRules[len(t.CapRules)-1]
}

// clampBuffLevel folds any level into the valid table range.
func clampBuffLevel(level int32) int32 {
	if level < 0 {
		return 0
	}
	if level > MaxBuffLineLevel {
		return MaxBuffLineLevel
	}
	return level
}

// CostReductionAt returns the nano cost reduction percentage at a buff
// level, before the breed cap is applied.
func (t *Tables) CostReductionAt(level int32) int32 {
	return t.CostReductionPercent[clampBuffLevel(level)]
}

// DamageEfficiencyAt returns the damage efficiency percentage at a buff
// level.
func (t *Tables) DamageEfficiencyAt(level int32) int32 {
	return t.DamageEfficiencyPercent[clampBuffLevel(level)]
}

// RegenPerSecondAt resolves a regen buff line at a level. Lines without a
// regen table contribute nothing.
func (t *Tables) RegenPerSecondAt(line rubika.BuffLine, level int32) float64 {
	switch line {
	case rubika.BuffLineNanoDelta:
		return t.NanoDeltaPerSecond[clampBuffLevel(level)]
	case rubika.BuffLineNotumSiphon:
		return t.NotumSiphonPerSecond[clampBuffLevel(level)]
	default:
		return 0
	}
}

// BreedParamsFor returns the constants for a breed, falling back to Solitus
// for unknown breeds.
func (t *Tables) BreedParamsFor(breed rubika.Breed) BreedParams {
	if p, ok := t.BreedParams[breed]; ok {
		return p
	}
	return t.BreedParams[rubika.BreedSolitus]
}

// Validate checks the data set for internal consistency. It is meant to run
// once at engine construction.
func (t *Tables) Validate() error {
	const sumTolerance = 1e-9

	for i, row := range t.TrickleWeights {
		sum := 0.0
		for _, w := range row {
			if w < 0 {
				return errors.Internalf("trickle weight row %d has negative weight", i)
			}
			sum += w
		}
		if sum < 1-sumTolerance || sum > 1+sumTolerance {
			return errors.Internalf("trickle weight row %d sums to %v, want 1.0", i, sum)
		}
	}

	for i, row := range t.SkillCostFactors {
		for j, f := range row {
			if f < 1.0 || f > 5.0 {
				return errors.Internalf("skill cost factor [%d][%d] = %v out of range", i, j, f)
			}
		}
	}
	for i, row := range t.AbilityCostFactors {
		for j, f := range row {
			if f < 1.0 || f > 5.0 {
				return errors.Internalf("ability cost factor [%d][%d] = %v out of range", i, j, f)
			}
		}
	}

	if len(t.TitleBands) == 0 {
		return errors.Internal("no title bands")
	}
	for i, b := range t.TitleBands {
		if b.FromLevel > b.ToLevel {
			return errors.Internalf("title band %d has inverted range %d..%d", b.Title, b.FromLevel, b.ToLevel)
		}
		if b.IPPerLevel <= 0 {
			return errors.Internalf("title band %d has non-positive IP rate", b.Title)
		}
		if i == 0 {
			continue
		}
		prev := t.TitleBands[i-1]
		if b.FromLevel != prev.ToLevel+1 {
			return errors.Internalf("title band %d does not continue band %d", b.Title, prev.Title)
		}
		prevTotal := prev.BaseIP + int64(prev.ToLevel-prev.FromLevel)*prev.IPPerLevel
		if b.BaseIP <= prevTotal {
			return errors.Internalf("title band %d base IP %d does not grow past band %d total %d",
				b.Title, b.BaseIP, prev.Title, prevTotal)
		}
	}

	if len(t.CapRules) == 0 {
		return errors.Internal("no cap rules")
	}
	for i, r := range t.CapRules {
		if r.PostRate <= 0 {
			return errors.Internalf("cap rule %q has non-positive post rate", r.Name)
		}
		for _, pl := range r.PerLevel {
			if pl <= 0 {
				return errors.Internalf("cap rule %q has non-positive per-level rate", r.Name)
			}
		}
		if i > 0 && r.MaxCostFactor <= t.CapRules[i-1].MaxCostFactor {
			return errors.Internalf("cap rule %q breaks ascending cost factor order", r.Name)
		}
	}

	for _, breed := range rubika.Breeds {
		p, ok := t.BreedParams[breed]
		if !ok {
			return errors.Internalf("missing breed params for %s", breed)
		}
		if p.AbilityRegenDivisor <= 0 {
			return errors.Internalf("breed %s has non-positive regen divisor", breed)
		}
	}

	return nil
}
