package engine

import (
	"github.com/rubika-tools/planner-api/internal/entities/rubika"
)

// ResolveStatsInput contains the character to resolve
type ResolveStatsInput struct {
	Character *rubika.Character
}

// ResolveStatsOutput contains the fully aggregated stat state
type ResolveStatsOutput struct {
	// Abilities has one breakdown per ability id
	Abilities map[rubika.StatID]*rubika.Skill
	// Skills has one breakdown per trainable skill id
	Skills map[rubika.StatID]*rubika.Skill
	// Snapshot is the flat stat view used for requirement evaluation,
	// including identity stats like level, breed, and profession
	Snapshot rubika.StatSnapshot
}

// CalculateIPBudgetInput contains the character whose IP ledger to compute
type CalculateIPBudgetInput struct {
	Character *rubika.Character
}

// CalculateIPBudgetOutput contains the IP ledger
type CalculateIPBudgetOutput struct {
	TitleLevel  int32
	TotalIP     int64
	SpentIP     int64
	AvailableIP int64
}

// CalculateTrainingCostInput prices raising one stat between two trained
// point counts. StatID may name a skill or an ability.
type CalculateTrainingCostInput struct {
	Character *rubika.Character
	StatID    rubika.StatID
	FromValue int32
	ToValue   int32
}

// CalculateTrainingCostOutput contains the raw price and the caps the
// caller may choose to enforce. Results beyond the caps are still priced,
// what-if planning past reach is allowed.
type CalculateTrainingCostOutput struct {
	Cost       int64
	CostFactor float64
	// LevelCap is the trainable ceiling from character level alone
	LevelCap int32
	// AbilityCap is the trickle-derived ceiling; zero when StatID is an
	// ability
	AbilityCap int32
	// EffectiveCap is the lower of the two caps
	EffectiveCap int32
	// ExceedsCap reports whether ToValue is past EffectiveCap
	ExceedsCap bool
}

// CheckRequirementsInput evaluates a criteria tree against a stat snapshot.
// SourceID keys the memo cache, zero disables caching for this call.
type CheckRequirementsInput struct {
	Node     rubika.CriteriaNode
	Snapshot rubika.StatSnapshot
	SourceID int64
}

// CheckRequirementsOutput contains the evaluation verdict. Result is nil
// when every reachable leaf is display-only and the tree has no opinion.
type CheckRequirementsOutput struct {
	Result *bool
	Unmet  []*rubika.LeafResult
}

// Satisfied reports whether the tree evaluated to an explicit true.
func (o *CheckRequirementsOutput) Satisfied() bool {
	return o.Result != nil && *o.Result
}

// CalculateCombatMetricsInput contains everything the combat pipeline
// reads. Snapshot must already be resolved for the character.
type CalculateCombatMetricsInput struct {
	Character *rubika.Character
	Snapshot  rubika.StatSnapshot
	Nano      *rubika.NanoProgram
	Modifiers *rubika.DamageModifierSet
}

// CalculateCombatMetricsOutput contains the recomputed metrics
type CalculateCombatMetricsOutput struct {
	Metrics *rubika.CombatMetrics
}
