package gamedata

import "github.com/rubika-tools/planner-api/internal/entities/rubika"

// BaseSkillValue is the value every trainable skill starts at before
// trickle-down, training, or any bonus source.
const BaseSkillValue = 5

// MaxBuffLineLevel is the highest meaningful level on any buff line. Lookups
// past it clamp to the last entry.
const MaxBuffLineLevel = 7

// Buff line tables are indexed by buff level. Index 0 is always the zero
// entry, an absent buff contributes nothing.
var (
	// defaultCostReductionPercent reduces nano cost by a percentage,
	// subject to the breed cap.
	defaultCostReductionPercent = [MaxBuffLineLevel + 1]int32{0, 7, 14, 21, 28, 35, 42, 49}

	// defaultNanoDeltaPerSecond is the flat regen contribution of the
	// nano delta line.
	defaultNanoDeltaPerSecond = [MaxBuffLineLevel + 1]float64{0, 0.4, 0.8, 1.2, 1.7, 2.2, 2.8, 3.4}

	// defaultNotumSiphonPerSecond is the flat regen contribution of the
	// notum siphon line.
	defaultNotumSiphonPerSecond = [MaxBuffLineLevel + 1]float64{0, 0.6, 1.2, 1.9, 2.7, 3.6, 4.6, 5.7}

	// defaultDamageEfficiencyPercent feeds the damage multiplier stage.
	defaultDamageEfficiencyPercent = [MaxBuffLineLevel + 1]int32{0, 3, 6, 9, 13, 17, 21, 25}
)

// BreedParams carries the per-breed constants the formulas depend on.
type BreedParams struct {
	// StartingAbilities is the creation-time value of each ability in
	// rubika.AbilityIDs order.
	StartingAbilities [rubika.AbilityCount]int32
	// CostReductionCapPercent caps the total nano cost reduction a
	// character of this breed can benefit from.
	CostReductionCapPercent int32
	// NanoRegenBase is the flat per-second nano regeneration floor.
	NanoRegenBase float64
	// AbilityRegenDivisor scales the governing ability into a per-second
	// regen tick.
	AbilityRegenDivisor float64
	// HealthPerLevel and NanoPerLevel scale the derived pools.
	HealthPerLevel int32
	NanoPerLevel   int32
}

var defaultBreedParams = map[rubika.Breed]BreedParams{
	rubika.BreedSolitus: {
		StartingAbilities:       [rubika.AbilityCount]int32{6, 6, 6, 6, 6, 6},
		CostReductionCapPercent: 45,
		NanoRegenBase:           0.55,
		AbilityRegenDivisor:     28,
		HealthPerLevel:          3,
		NanoPerLevel:            2,
	},
	rubika.BreedOpifex: {
		StartingAbilities:       [rubika.AbilityCount]int32{3, 15, 6, 6, 10, 3},
		CostReductionCapPercent: 45,
		NanoRegenBase:           0.55,
		AbilityRegenDivisor:     28,
		HealthPerLevel:          2,
		NanoPerLevel:            2,
	},
	rubika.BreedNanomage: {
		StartingAbilities:       [rubika.AbilityCount]int32{3, 6, 6, 15, 6, 10},
		CostReductionCapPercent: 50,
		NanoRegenBase:           0.85,
		AbilityRegenDivisor:     24,
		HealthPerLevel:          2,
		NanoPerLevel:            3,
	},
	rubika.BreedAtrox: {
		StartingAbilities:       [rubika.AbilityCount]int32{15, 6, 10, 3, 3, 3},
		CostReductionCapPercent: 40,
		NanoRegenBase:           0.45,
		AbilityRegenDivisor:     32,
		HealthPerLevel:          4,
		NanoPerLevel:            1,
	},
}
