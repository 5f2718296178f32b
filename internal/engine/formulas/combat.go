package formulas

import (
	"context"

	"github.com/rubika-tools/planner-api/internal/engine"
	"github.com/rubika-tools/planner-api/internal/entities/rubika"
	"github.com/rubika-tools/planner-api/internal/errors"
	"github.com/rubika-tools/planner-api/internal/gamedata"
)

const (
	// centiPerSecond converts catalog timings, stored in centiseconds.
	centiPerSecond = 100.0

	// Initiative shaves one second per 200 points up to the tier break,
	// then one second per 600 points past it.
	initTierBreak = 1200.0
	initFastDiv   = 200.0
	initSlowDiv   = 600.0

	// defaultDelayCapSeconds floors timings for items that declare no cap.
	defaultDelayCapSeconds = 1.0
)

// CalculateCombatMetrics runs the full pipeline: casting, damage, regen,
// efficiency. Metrics are recomputed whole from the inputs, identical
// inputs produce bit-identical outputs.
func (c *Calculator) CalculateCombatMetrics(
	ctx context.Context,
	input *engine.CalculateCombatMetricsInput,
) (*engine.CalculateCombatMetricsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateCharacter(input.Character); err != nil {
		return nil, err
	}
	if input.Nano == nil {
		return nil, errors.InvalidArgument("nano program is required")
	}
	if input.Snapshot == nil {
		return nil, errors.InvalidArgument("snapshot is required")
	}

	nano := input.Nano
	if nano.AttackTime+nano.RechargeTime <= 0 {
		return nil, errors.InvalidArgumentf("nano %d has non-positive cast and recharge time", nano.AOID)
	}

	mods := input.Modifiers
	if mods == nil {
		mods = &rubika.DamageModifierSet{}
	}

	char := input.Character
	params := c.tables.BreedParamsFor(char.Breed)

	// stage 1: casting
	initiative := input.Snapshot.Get(rubika.SkillNanoInit)
	floorSec := float64(nano.AttackDelayCap) / centiPerSecond
	if nano.AttackDelayCap <= 0 {
		floorSec = defaultDelayCapSeconds
	}
	castTime := scaleByInitiative(float64(nano.AttackTime)/centiPerSecond, initiative, floorSec)
	rechargeTime := scaleByInitiative(float64(nano.RechargeTime)/centiPerSecond, initiative, floorSec)
	nanoCost := c.reducedNanoCost(nano.NanoCost, char.BuffLines[rubika.BuffLineCostReduction], params)

	// stage 2: damage
	ticks := nano.TickCount
	if ticks < 1 {
		ticks = 1
	}
	efficiency := mods.EfficiencyPercent + c.tables.DamageEfficiencyAt(char.BuffLines[rubika.BuffLineDamageEfficiency])
	minHit := c.mitigatedDamage(nano.MinDamage, nano, mods, efficiency)
	maxHit := c.mitigatedDamage(nano.MaxDamage, nano, mods, efficiency)
	minDamage := minHit * float64(ticks)
	maxDamage := maxHit * float64(ticks)
	midDamage := (minDamage + maxDamage) / 2

	// stage 3: regeneration
	regen := c.regenPerSecond(char, input.Snapshot, params)

	// stage 4: efficiency
	dotDuration := float64(nano.TickInterval) / centiPerSecond * float64(ticks-1)
	cycle := castTime + rechargeTime + dotDuration

	metrics := &rubika.CombatMetrics{
		CastTime:     castTime,
		RechargeTime: rechargeTime,
		NanoCost:     nanoCost,
		MinDamage:    minDamage,
		MidDamage:    midDamage,
		MaxDamage:    maxDamage,
		DPS:          midDamage / cycle,
	}
	if nanoCost > 0 {
		metrics.DamagePerResource = midDamage / nanoCost
	}

	consumption := nanoCost / cycle
	if regen >= consumption {
		metrics.Unbounded = true
	} else {
		pool := float64(input.Snapshot.Get(rubika.StatMaxNano))
		metrics.SustainTime = pool / (consumption - regen)
		metrics.UnitsToEmpty = pool / (nanoCost - regen*cycle)
	}

	return &engine.CalculateCombatMetricsOutput{Metrics: metrics}, nil
}

// scaleByInitiative applies the two-tier reduction and floors the result at
// the item's delay cap. Negative initiative lengthens the timing instead.
func scaleByInitiative(baseSec float64, initiative int32, floorSec float64) float64 {
	fast := float64(initiative)
	if fast > initTierBreak {
		fast = initTierBreak
	}
	slow := float64(initiative) - initTierBreak
	if slow < 0 {
		slow = 0
	}

	reduced := baseSec - fast/initFastDiv - slow/initSlowDiv
	if reduced < floorSec {
		return floorSec
	}
	return reduced
}

// reducedNanoCost applies the cost reduction line, capped by breed, floored
// at zero.
func (c *Calculator) reducedNanoCost(base int32, buffLevel int32, params gamedata.BreedParams) float64 {
	pct := c.tables.CostReductionAt(buffLevel)
	if pct > params.CostReductionCapPercent {
		pct = params.CostReductionCapPercent
	}
	cost := float64(base) * (1 - float64(pct)/100)
	if cost < 0 {
		return 0
	}
	return cost
}

// mitigatedDamage prices one hit figure: modifiers and efficiency first,
// then armor takes a tenth of target AC, never below the declared minimum.
func (c *Calculator) mitigatedDamage(
	base int32,
	nano *rubika.NanoProgram,
	mods *rubika.DamageModifierSet,
	efficiencyPercent int32,
) float64 {
	raw := float64(base+mods.TypeModifier(nano.DamageType)+mods.GenericModifier) *
		(1 + float64(efficiencyPercent)/100)
	mitigated := raw - float64(mods.TargetAC)/10

	floor := float64(nano.MinDamage)
	if mitigated < floor {
		return floor
	}
	return mitigated
}

// regenPerSecond sums the breed base, the psychic-scaled tick, and the two
// regen buff lines. Lines are folded in a fixed order to keep the float
// result reproducible.
func (c *Calculator) regenPerSecond(
	char *rubika.Character,
	snapshot rubika.StatSnapshot,
	params gamedata.BreedParams,
) float64 {
	regen := params.NanoRegenBase + float64(snapshot.Get(rubika.StatPsychic))/params.AbilityRegenDivisor
	regen += c.tables.RegenPerSecondAt(rubika.BuffLineNanoDelta, char.BuffLines[rubika.BuffLineNanoDelta])
	regen += c.tables.RegenPerSecondAt(rubika.BuffLineNotumSiphon, char.BuffLines[rubika.BuffLineNotumSiphon])
	return regen
}
