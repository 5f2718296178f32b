// Package formulas provides the concrete implementation of the engine interface backed by the static game data tables.
package formulas

import (
	"context"
	"math"

	"github.com/rubika-tools/planner-api/internal/engine"
	"github.com/rubika-tools/planner-api/internal/entities/rubika"
	"github.com/rubika-tools/planner-api/internal/errors"
	"github.com/rubika-tools/planner-api/internal/gamedata"
)

const defaultCacheEntries = 4096

// Calculator implements the engine.Engine interface on top of injected
// gamedata tables. It holds no mutable character state, every operation is
// a pure function of its input plus the tables, so one Calculator is safe
// for concurrent use.
type Calculator struct {
	tables *gamedata.Tables
	cache  *criteriaCache
}

// Config contains the dependencies for creating a new Calculator
type Config struct {
	Tables *gamedata.Tables
	// CacheEntries bounds the criteria memo cache. Zero means the default,
	// negative disables caching.
	CacheEntries int
}

// Validate checks that all required dependencies are provided
func (cfg *Config) Validate() error {
	if cfg.Tables == nil {
		return errors.InvalidArgument("tables are required")
	}
	if err := cfg.Tables.Validate(); err != nil {
		return errors.WrapWithCode(err, errors.CodeInternal, "game data failed validation")
	}
	return nil
}

// New creates a new Calculator
func New(cfg *Config) (*Calculator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	entries := cfg.CacheEntries
	if entries == 0 {
		entries = defaultCacheEntries
	}

	return &Calculator{
		tables: cfg.Tables,
		cache:  newCriteriaCache(entries),
	}, nil
}

var _ engine.Engine = (*Calculator)(nil)

// TitleLevel maps a character level to its title band.
func (c *Calculator) TitleLevel(level int32) int32 {
	return c.tables.TitleLevel(level)
}

// TotalIP returns the cumulative IP available at a level.
func (c *Calculator) TotalIP(level int32) int64 {
	return c.tables.TotalIP(level)
}

// InvalidateCache drops every memoized criteria evaluation. Callers invoke
// it when a new snapshot generation begins.
func (c *Calculator) InvalidateCache() {
	c.cache.flush()
}

// ResolveStats aggregates every bonus source into per-stat breakdowns and
// the flat snapshot used for requirement checks.
func (c *Calculator) ResolveStats(
	ctx context.Context,
	input *engine.ResolveStatsInput,
) (*engine.ResolveStatsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateCharacter(input.Character); err != nil {
		return nil, err
	}

	char := input.Character
	params := c.tables.BreedParamsFor(char.Breed)

	equip := sumModifiers(equipmentEffects(char))
	perk := sumModifiers(perkEffects(char))
	buff := sumModifiers(buffEffects(char))

	abilities := make(map[rubika.StatID]*rubika.Skill, rubika.AbilityCount)
	var abilityTotals [rubika.AbilityCount]int32
	for i, id := range rubika.AbilityIDs {
		sk := &rubika.Skill{
			ID:                 id,
			BaseValue:          params.StartingAbilities[i],
			PointsFromTraining: char.Trained[id],
			EquipmentBonus:     equip[id],
			PerkBonus:          perk[id],
			BuffBonus:          buff[id],
		}
		sk.Total = flooredTotal(sk)
		sk.Cap = c.levelCap(c.tables.CapRule(c.tables.AbilityCostFactor(id, char.Breed)), char.Level)
		abilities[id] = sk
		abilityTotals[i] = sk.Total
	}

	skills := make(map[rubika.StatID]*rubika.Skill, rubika.SkillCount)
	for id := rubika.FirstSkillID; id <= rubika.LastSkillID; id++ {
		weights := c.tables.TrickleWeightsFor(id)
		sk := &rubika.Skill{
			ID:                 id,
			BaseValue:          gamedata.BaseSkillValue,
			TrickleDown:        trickleDown(weights, abilityTotals),
			PointsFromTraining: char.Trained[id],
			EquipmentBonus:     equip[id],
			PerkBonus:          perk[id],
			BuffBonus:          buff[id],
		}
		sk.Total = flooredTotal(sk)

		rule := c.tables.CapRule(c.tables.SkillCostFactor(id, char.Profession))
		lvlCap := c.levelCap(rule, char.Level)
		abCap := abilityCap(weights, abilityTotals)
		sk.Cap = lvlCap
		if abCap < sk.Cap {
			sk.Cap = abCap
		}
		skills[id] = sk
	}

	snapshot := c.buildSnapshot(char, params, abilities, skills, equip, perk, buff)

	return &engine.ResolveStatsOutput{
		Abilities: abilities,
		Skills:    skills,
		Snapshot:  snapshot,
	}, nil
}

// buildSnapshot flattens the resolved state into the stat view criteria
// evaluate against. Modifier sums targeting stats outside the trainable set
// (flags, pools, misc ids) land directly so requirements on them still see
// equipment and buff contributions.
func (c *Calculator) buildSnapshot(
	char *rubika.Character,
	params gamedata.BreedParams,
	abilities map[rubika.StatID]*rubika.Skill,
	skills map[rubika.StatID]*rubika.Skill,
	mods ...map[rubika.StatID]int32,
) rubika.StatSnapshot {
	snapshot := make(rubika.StatSnapshot, rubika.SkillCount+rubika.AbilityCount+8)

	snapshot[rubika.StatLevel] = char.Level
	snapshot[rubika.StatBreedID] = int32(char.Breed)
	snapshot[rubika.StatProfession] = int32(char.Profession)

	for id, sk := range abilities {
		snapshot[id] = sk.Total
	}
	for id, sk := range skills {
		snapshot[id] = sk.Total
	}

	for _, m := range mods {
		for id, delta := range m {
			if id == rubika.StatLevel || id == rubika.StatBreedID || id == rubika.StatProfession {
				continue
			}
			if _, ok := abilities[id]; ok {
				continue
			}
			if _, ok := skills[id]; ok {
				continue
			}
			snapshot[id] += delta
		}
	}

	bodyDev := skills[rubika.SkillBodyDevelopment].Total
	nanoPool := skills[rubika.SkillNanoPool].Total
	snapshot[rubika.StatMaxHealth] += 10 + char.Level*params.HealthPerLevel + bodyDev*3
	snapshot[rubika.StatMaxNano] += 10 + char.Level*params.NanoPerLevel + nanoPool*3

	return snapshot
}

// flooredTotal sums a breakdown and floors the result at zero. Penalties
// may drag individual sources negative but never the total.
func flooredTotal(sk *rubika.Skill) int32 {
	total := sk.BaseValue + sk.TrickleDown + sk.PointsFromTraining +
		sk.EquipmentBonus + sk.PerkBonus + sk.BuffBonus
	if total < 0 {
		return 0
	}
	return total
}

// trickleDown computes floor(Σ ability·weight / 4) for one skill row.
func trickleDown(weights [rubika.AbilityCount]float64, totals [rubika.AbilityCount]int32) int32 {
	sum := 0.0
	for i, w := range weights {
		sum += float64(totals[i]) * w
	}
	return int32(math.Floor(sum / 4))
}

// abilityCap converts the weighted ability sum into the trickle-derived
// training ceiling, rounding half up.
func abilityCap(weights [rubika.AbilityCount]float64, totals [rubika.AbilityCount]int32) int32 {
	sum := 0.0
	for i, w := range weights {
		sum += float64(totals[i]) * w
	}
	return int32(math.Floor((sum-5)*2 + 5 + 0.5))
}

// sumModifiers folds wear-triggered stat modifiers into per-stat deltas.
// Unrelated effect kinds are skipped. Summation is plain integer addition,
// commutative and idempotent per snapshot.
func sumModifiers(effects []rubika.Effect) map[rubika.StatID]int32 {
	sums := make(map[rubika.StatID]int32)
	for _, e := range effects {
		if e.Kind != rubika.EffectModifyStat {
			continue
		}
		sums[e.StatID] += e.Delta
	}
	return sums
}

func equipmentEffects(char *rubika.Character) []rubika.Effect {
	var all []rubika.Effect
	for _, slot := range rubika.Slots {
		worn, ok := char.Equipment[slot]
		if !ok {
			continue
		}
		for _, e := range worn.Effects {
			if e.Trigger == rubika.TriggerWear {
				all = append(all, e)
			}
		}
	}
	return all
}

func perkEffects(char *rubika.Character) []rubika.Effect {
	var all []rubika.Effect
	for _, p := range char.Perks {
		all = append(all, p.Effects...)
	}
	return all
}

func buffEffects(char *rubika.Character) []rubika.Effect {
	var all []rubika.Effect
	for _, b := range char.Buffs {
		all = append(all, b.Effects...)
	}
	return all
}

// validateCharacter rejects malformed planner input before any table math.
func validateCharacter(char *rubika.Character) error {
	if char == nil {
		return errors.InvalidArgument("character is required")
	}
	if char.Level < rubika.MinLevel || char.Level > rubika.MaxLevel {
		return errors.InvalidArgumentf("level %d is outside %d..%d", char.Level, rubika.MinLevel, rubika.MaxLevel)
	}
	if char.Breed < rubika.BreedSolitus || char.Breed > rubika.BreedAtrox {
		return errors.InvalidArgumentf("unknown breed %d", char.Breed)
	}
	if char.Profession < rubika.ProfessionSoldier || char.Profession > rubika.ProfessionShade {
		return errors.InvalidArgumentf("unknown profession %d", char.Profession)
	}
	for id, points := range char.Trained {
		if points < 0 {
			return errors.InvalidArgumentf("trained points for stat %d are negative", id)
		}
		if !rubika.IsSkill(id) && !rubika.IsAbility(id) {
			return errors.InvalidArgumentf("stat %d is not trainable", id)
		}
	}
	return nil
}
