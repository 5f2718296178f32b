package catalog

import (
	"github.com/rubika-tools/planner-api/internal/entities/rubika"
	"github.com/rubika-tools/planner-api/internal/errors"
)

// catalogFile is the on-disk layout of one catalog data file. Items and
// nanos may live in the same file or in separate ones; the loader merges
// whatever it finds.
type catalogFile struct {
	Items []itemDef `json:"items,omitempty"`
	Nanos []nanoDef `json:"nanos,omitempty"`
}

type itemDef struct {
	AOID     int64          `json:"aoid"`
	Name     string         `json:"name"`
	QL       int32          `json:"ql"`
	Slot     string         `json:"slot"`
	Criteria []criterionDef `json:"criteria,omitempty"`
	Effects  []effectDef    `json:"effects,omitempty"`
	Weapon   *weaponDef     `json:"weapon,omitempty"`
}

type nanoDef struct {
	AOID           int64          `json:"aoid"`
	Name           string         `json:"name"`
	School         int32          `json:"school"`
	Strain         int32          `json:"strain"`
	QL             int32          `json:"ql"`
	NanoCost       int32          `json:"nano_cost"`
	AttackTime     int32          `json:"attack_time"`
	RechargeTime   int32          `json:"recharge_time"`
	MinDamage      int32          `json:"min_damage"`
	MaxDamage      int32          `json:"max_damage"`
	DamageType     int32          `json:"damage_type"`
	TickCount      int32          `json:"tick_count"`
	TickInterval   int32          `json:"tick_interval"`
	AttackDelayCap int32          `json:"attack_delay_cap"`
	Criteria       []criterionDef `json:"criteria,omitempty"`
	Effects        []effectDef    `json:"effects,omitempty"`
}

type criterionDef struct {
	Stat  int32 `json:"stat"`
	Op    int32 `json:"op"`
	Value int32 `json:"value"`
}

type effectDef struct {
	Kind    int32 `json:"kind"`
	Trigger int32 `json:"trigger"`
	Stat    int32 `json:"stat"`
	Delta   int32 `json:"delta"`
}

type weaponDef struct {
	AttackSkill    int32 `json:"attack_skill"`
	AttackTime     int32 `json:"attack_time"`
	RechargeTime   int32 `json:"recharge_time"`
	MinDamage      int32 `json:"min_damage"`
	MaxDamage      int32 `json:"max_damage"`
	DamageType     int32 `json:"damage_type"`
	AttackDelayCap int32 `json:"attack_delay_cap"`
}

func (d itemDef) toEntity() (*rubika.Item, error) {
	if d.AOID <= 0 {
		return nil, errors.Internalf("item %q has invalid aoid %d", d.Name, d.AOID)
	}
	if d.Name == "" {
		return nil, errors.Internalf("item %d has no name", d.AOID)
	}
	slot := rubika.Slot(d.Slot)
	if !rubika.IsValidSlot(slot) {
		return nil, errors.Internalf("item %d has unknown slot %q", d.AOID, d.Slot)
	}

	item := &rubika.Item{
		AOID:         d.AOID,
		Name:         d.Name,
		QL:           d.QL,
		Slot:         slot,
		Requirements: toCriteria(d.Criteria),
		Effects:      toEffects(d.Effects),
	}
	if d.Weapon != nil {
		if !rubika.IsValidDamageType(rubika.DamageType(d.Weapon.DamageType)) {
			return nil, errors.Internalf("item %d has unknown damage type %d", d.AOID, d.Weapon.DamageType)
		}
		item.Weapon = &rubika.WeaponData{
			AttackSkill:    rubika.StatID(d.Weapon.AttackSkill),
			AttackTime:     d.Weapon.AttackTime,
			RechargeTime:   d.Weapon.RechargeTime,
			MinDamage:      d.Weapon.MinDamage,
			MaxDamage:      d.Weapon.MaxDamage,
			DamageType:     rubika.DamageType(d.Weapon.DamageType),
			AttackDelayCap: d.Weapon.AttackDelayCap,
		}
	}
	return item, nil
}

func (d nanoDef) toEntity() (*rubika.NanoProgram, error) {
	if d.AOID <= 0 {
		return nil, errors.Internalf("nano %q has invalid aoid %d", d.Name, d.AOID)
	}
	if d.Name == "" {
		return nil, errors.Internalf("nano %d has no name", d.AOID)
	}
	if d.AttackTime < 0 || d.RechargeTime < 0 || d.TickInterval < 0 {
		return nil, errors.Internalf("nano %d has negative timings", d.AOID)
	}
	if d.DamageType != 0 && !rubika.IsValidDamageType(rubika.DamageType(d.DamageType)) {
		return nil, errors.Internalf("nano %d has unknown damage type %d", d.AOID, d.DamageType)
	}

	return &rubika.NanoProgram{
		AOID:           d.AOID,
		Name:           d.Name,
		School:         rubika.NanoSchool(d.School),
		Strain:         d.Strain,
		QL:             d.QL,
		NanoCost:       d.NanoCost,
		AttackTime:     d.AttackTime,
		RechargeTime:   d.RechargeTime,
		MinDamage:      d.MinDamage,
		MaxDamage:      d.MaxDamage,
		DamageType:     rubika.DamageType(d.DamageType),
		TickCount:      d.TickCount,
		TickInterval:   d.TickInterval,
		AttackDelayCap: d.AttackDelayCap,
		Requirements:   toCriteria(d.Criteria),
		Effects:        toEffects(d.Effects),
	}, nil
}

func toCriteria(defs []criterionDef) []rubika.RawCriterion {
	if len(defs) == 0 {
		return nil
	}
	out := make([]rubika.RawCriterion, len(defs))
	for i, d := range defs {
		out[i] = rubika.RawCriterion{
			StatID: rubika.StatID(d.Stat),
			Op:     rubika.CriterionOp(d.Op),
			Value:  d.Value,
		}
	}
	return out
}

func toEffects(defs []effectDef) []rubika.Effect {
	if len(defs) == 0 {
		return nil
	}
	out := make([]rubika.Effect, len(defs))
	for i, d := range defs {
		out[i] = rubika.Effect{
			Kind:    rubika.EffectKind(d.Kind),
			Trigger: rubika.Trigger(d.Trigger),
			StatID:  rubika.StatID(d.Stat),
			Delta:   d.Delta,
		}
	}
	return out
}
