package v1

import (
	"github.com/rubika-tools/planner-api/internal/entities/rubika"
	"github.com/rubika-tools/planner-api/internal/errors"
	buildsvc "github.com/rubika-tools/planner-api/internal/services/build"
)

// Wire types. Entities stay internal; everything crossing the HTTP boundary
// goes through these payload structs and their converters. Breed and
// profession travel as strings, numeric game-data enums stay numeric.

type draftResponse struct {
	ID        string           `json:"id"`
	PlayerID  string           `json:"player_id"`
	Notes     string           `json:"notes,omitempty"`
	Character characterPayload `json:"character"`
	Progress  progressPayload  `json:"progress"`
	CreatedAt int64            `json:"created_at"`
	UpdatedAt int64            `json:"updated_at"`
}

type characterPayload struct {
	Name       string                              `json:"name,omitempty"`
	Breed      string                              `json:"breed,omitempty"`
	Profession string                              `json:"profession,omitempty"`
	Level      int32                               `json:"level,omitempty"`
	Trained    map[rubika.StatID]int32             `json:"trained,omitempty"`
	Equipment  map[rubika.Slot]equippedItemPayload `json:"equipment,omitempty"`
	Perks      []perkPayload                       `json:"perks,omitempty"`
	Buffs      []buffPayload                       `json:"buffs,omitempty"`
	BuffLines  map[rubika.BuffLine]int32           `json:"buff_lines,omitempty"`
}

type progressPayload struct {
	CompletionPercentage int32  `json:"completion_percentage"`
	CurrentStep          string `json:"current_step"`
	HasIdentity          bool   `json:"has_identity"`
	HasAbilities         bool   `json:"has_abilities"`
	HasSkills            bool   `json:"has_skills"`
	HasEquipment         bool   `json:"has_equipment"`
	HasBuffs             bool   `json:"has_buffs"`
}

type equippedItemPayload struct {
	AOID    int64           `json:"aoid"`
	Name    string          `json:"name"`
	QL      int32           `json:"ql"`
	Effects []effectPayload `json:"effects,omitempty"`
}

type perkPayload struct {
	ID      int32           `json:"id"`
	Name    string          `json:"name"`
	Level   int32           `json:"level"`
	Effects []effectPayload `json:"effects,omitempty"`
}

type buffPayload struct {
	AOID    int64           `json:"aoid"`
	Name    string          `json:"name"`
	Effects []effectPayload `json:"effects,omitempty"`
}

type effectPayload struct {
	Kind    rubika.EffectKind `json:"kind"`
	Trigger rubika.Trigger    `json:"trigger"`
	Stat    rubika.StatID     `json:"stat"`
	Delta   int32             `json:"delta"`
}

type warningPayload struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Stat    rubika.StatID `json:"stat,omitempty"`
}

type criterionPayload struct {
	Stat        rubika.StatID      `json:"stat"`
	Op          rubika.CriterionOp `json:"op"`
	Value       int32              `json:"value"`
	DisplayOnly bool               `json:"display_only,omitempty"`
}

type leafResultPayload struct {
	Criterion criterionPayload `json:"criterion"`
	Current   int32            `json:"current"`
	Met       bool             `json:"met"`
}

type skillPayload struct {
	ID          rubika.StatID `json:"id"`
	BaseValue   int32         `json:"base_value"`
	TrickleDown int32         `json:"trickle_down"`
	Trained     int32         `json:"trained"`
	Equipment   int32         `json:"equipment_bonus"`
	Perks       int32         `json:"perk_bonus"`
	Buffs       int32         `json:"buff_bonus"`
	Total       int32         `json:"total"`
	Cap         int32         `json:"cap"`
}

type metricsPayload struct {
	CastTime          float64 `json:"cast_time"`
	RechargeTime      float64 `json:"recharge_time"`
	NanoCost          float64 `json:"nano_cost"`
	MinDamage         float64 `json:"min_damage"`
	MidDamage         float64 `json:"mid_damage"`
	MaxDamage         float64 `json:"max_damage"`
	DPS               float64 `json:"dps"`
	DamagePerResource float64 `json:"damage_per_resource"`
	SustainTime       float64 `json:"sustain_time"`
	UnitsToEmpty      float64 `json:"units_to_empty"`
	Unbounded         bool    `json:"unbounded,omitempty"`
}

type weaponPayload struct {
	AttackSkill    rubika.StatID     `json:"attack_skill"`
	AttackTime     int32             `json:"attack_time"`
	RechargeTime   int32             `json:"recharge_time"`
	MinDamage      int32             `json:"min_damage"`
	MaxDamage      int32             `json:"max_damage"`
	DamageType     rubika.DamageType `json:"damage_type"`
	AttackDelayCap int32             `json:"attack_delay_cap,omitempty"`
}

type itemPayload struct {
	AOID         int64              `json:"aoid"`
	Name         string             `json:"name"`
	QL           int32              `json:"ql"`
	Slot         rubika.Slot        `json:"slot,omitempty"`
	Requirements []criterionPayload `json:"requirements,omitempty"`
	Effects      []effectPayload    `json:"effects,omitempty"`
	Weapon       *weaponPayload     `json:"weapon,omitempty"`
}

type nanoPayload struct {
	AOID           int64              `json:"aoid"`
	Name           string             `json:"name"`
	School         rubika.NanoSchool  `json:"school"`
	Strain         int32              `json:"strain,omitempty"`
	QL             int32              `json:"ql"`
	NanoCost       int32              `json:"nano_cost"`
	AttackTime     int32              `json:"attack_time"`
	RechargeTime   int32              `json:"recharge_time"`
	MinDamage      int32              `json:"min_damage,omitempty"`
	MaxDamage      int32              `json:"max_damage,omitempty"`
	DamageType     rubika.DamageType  `json:"damage_type,omitempty"`
	TickCount      int32              `json:"tick_count,omitempty"`
	TickInterval   int32              `json:"tick_interval,omitempty"`
	AttackDelayCap int32              `json:"attack_delay_cap,omitempty"`
	Requirements   []criterionPayload `json:"requirements,omitempty"`
	Effects        []effectPayload    `json:"effects,omitempty"`
}

type itemScorePayload struct {
	AOID      int64               `json:"aoid"`
	Name      string              `json:"name,omitempty"`
	QL        int32               `json:"ql,omitempty"`
	Satisfied *bool               `json:"satisfied,omitempty"`
	Unmet     []leafResultPayload `json:"unmet,omitempty"`
	Error     string              `json:"error,omitempty"`
}

type searchResultPayload struct {
	Kind string `json:"kind"`
	AOID int64  `json:"aoid"`
	Name string `json:"name"`
	QL   int32  `json:"ql"`
}

// Request bodies

// identityPayload carries the identity fields on create and update. Absent
// fields stay zero and leave the stored value unchanged.
type identityPayload struct {
	Name       string `json:"name"`
	Breed      string `json:"breed"`
	Profession string `json:"profession"`
	Level      int32  `json:"level"`
}

type createBuildRequest struct {
	PlayerID  string           `json:"player_id"`
	Notes     string           `json:"notes"`
	Character *identityPayload `json:"character"`
}

type trainRequest struct {
	Stat   rubika.StatID `json:"stat"`
	Points int32         `json:"points"`
}

type equipRequest struct {
	AOID int64  `json:"aoid"`
	Slot string `json:"slot"`
}

type buffRequest struct {
	AOID int64 `json:"aoid"`
}

type perksRequest struct {
	Perks []perkPayload `json:"perks"`
}

type buffLinesRequest struct {
	Lines map[rubika.BuffLine]int32 `json:"lines"`
}

type scoreRequest struct {
	AOIDs []int64 `json:"aoids"`
}

// Converters

func parseBreed(s string) (rubika.Breed, error) {
	if s == "" {
		return rubika.BreedUnknown, nil
	}
	b := rubika.ParseBreed(s)
	if b == rubika.BreedUnknown {
		return 0, errors.InvalidArgumentf("unknown breed %q", s)
	}
	return b, nil
}

func parseProfession(s string) (rubika.Profession, error) {
	if s == "" {
		return rubika.ProfessionUnknown, nil
	}
	p := rubika.ParseProfession(s)
	if p == rubika.ProfessionUnknown {
		return 0, errors.InvalidArgumentf("unknown profession %q", s)
	}
	return p, nil
}

func toDraftResponse(d *rubika.BuildDraft) draftResponse {
	return draftResponse{
		ID:        d.ID,
		PlayerID:  d.PlayerID,
		Notes:     d.Notes,
		Character: toCharacterPayload(&d.Character),
		Progress:  toProgressPayload(d.Progress),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func toDraftResponses(drafts []*rubika.BuildDraft) []draftResponse {
	out := make([]draftResponse, 0, len(drafts))
	for _, d := range drafts {
		out = append(out, toDraftResponse(d))
	}
	return out
}

func toCharacterPayload(c *rubika.Character) characterPayload {
	p := characterPayload{
		Name:      c.Name,
		Level:     c.Level,
		Trained:   c.Trained,
		BuffLines: c.BuffLines,
	}
	if c.Breed != rubika.BreedUnknown {
		p.Breed = c.Breed.String()
	}
	if c.Profession != rubika.ProfessionUnknown {
		p.Profession = c.Profession.String()
	}
	if len(c.Equipment) > 0 {
		p.Equipment = make(map[rubika.Slot]equippedItemPayload, len(c.Equipment))
		for slot, item := range c.Equipment {
			p.Equipment[slot] = equippedItemPayload{
				AOID:    item.AOID,
				Name:    item.Name,
				QL:      item.QL,
				Effects: toEffectPayloads(item.Effects),
			}
		}
	}
	for _, perk := range c.Perks {
		p.Perks = append(p.Perks, perkPayload{
			ID:      perk.ID,
			Name:    perk.Name,
			Level:   perk.Level,
			Effects: toEffectPayloads(perk.Effects),
		})
	}
	for _, buff := range c.Buffs {
		p.Buffs = append(p.Buffs, buffPayload{
			AOID:    buff.AOID,
			Name:    buff.Name,
			Effects: toEffectPayloads(buff.Effects),
		})
	}
	return p
}

func toProgressPayload(p rubika.PlanningProgress) progressPayload {
	return progressPayload{
		CompletionPercentage: p.CompletionPercentage,
		CurrentStep:          p.CurrentStep,
		HasIdentity:          p.HasIdentity(),
		HasAbilities:         p.HasAbilities(),
		HasSkills:            p.HasSkills(),
		HasEquipment:         p.HasEquipment(),
		HasBuffs:             p.HasBuffs(),
	}
}

func toEffectPayloads(effects []rubika.Effect) []effectPayload {
	if len(effects) == 0 {
		return nil
	}
	out := make([]effectPayload, 0, len(effects))
	for _, e := range effects {
		out = append(out, effectPayload{Kind: e.Kind, Trigger: e.Trigger, Stat: e.StatID, Delta: e.Delta})
	}
	return out
}

func toEffects(payloads []effectPayload) []rubika.Effect {
	if len(payloads) == 0 {
		return nil
	}
	out := make([]rubika.Effect, 0, len(payloads))
	for _, p := range payloads {
		out = append(out, rubika.Effect{Kind: p.Kind, Trigger: p.Trigger, StatID: p.Stat, Delta: p.Delta})
	}
	return out
}

func toWarningPayloads(warnings []buildsvc.Warning) []warningPayload {
	if len(warnings) == 0 {
		return nil
	}
	out := make([]warningPayload, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, warningPayload{Code: string(w.Code), Message: w.Message, Stat: w.StatID})
	}
	return out
}

func toLeafResultPayloads(unmet []*rubika.LeafResult) []leafResultPayload {
	if len(unmet) == 0 {
		return nil
	}
	out := make([]leafResultPayload, 0, len(unmet))
	for _, leaf := range unmet {
		out = append(out, leafResultPayload{
			Criterion: criterionPayload{
				Stat:        leaf.Criterion.StatID,
				Op:          leaf.Criterion.Op,
				Value:       leaf.Criterion.Value,
				DisplayOnly: leaf.Criterion.DisplayOnly,
			},
			Current: leaf.Current,
			Met:     leaf.Met,
		})
	}
	return out
}

func toSkillPayloads(skills map[rubika.StatID]*rubika.Skill) map[rubika.StatID]skillPayload {
	out := make(map[rubika.StatID]skillPayload, len(skills))
	for id, s := range skills {
		out[id] = skillPayload{
			ID:          s.ID,
			BaseValue:   s.BaseValue,
			TrickleDown: s.TrickleDown,
			Trained:     s.PointsFromTraining,
			Equipment:   s.EquipmentBonus,
			Perks:       s.PerkBonus,
			Buffs:       s.BuffBonus,
			Total:       s.Total,
			Cap:         s.Cap,
		}
	}
	return out
}

func toItemScorePayloads(scores []*buildsvc.ItemScore) []itemScorePayload {
	out := make([]itemScorePayload, 0, len(scores))
	for _, s := range scores {
		out = append(out, itemScorePayload{
			AOID:      s.AOID,
			Name:      s.Name,
			QL:        s.QL,
			Satisfied: s.Satisfied,
			Unmet:     toLeafResultPayloads(s.Unmet),
			Error:     s.Error,
		})
	}
	return out
}

func toMetricsPayload(m *rubika.CombatMetrics) metricsPayload {
	return metricsPayload{
		CastTime:          m.CastTime,
		RechargeTime:      m.RechargeTime,
		NanoCost:          m.NanoCost,
		MinDamage:         m.MinDamage,
		MidDamage:         m.MidDamage,
		MaxDamage:         m.MaxDamage,
		DPS:               m.DPS,
		DamagePerResource: m.DamagePerResource,
		SustainTime:       m.SustainTime,
		UnitsToEmpty:      m.UnitsToEmpty,
		Unbounded:         m.Unbounded,
	}
}

func toRawCriterionPayloads(criteria []rubika.RawCriterion) []criterionPayload {
	if len(criteria) == 0 {
		return nil
	}
	out := make([]criterionPayload, 0, len(criteria))
	for _, c := range criteria {
		out = append(out, criterionPayload{Stat: c.StatID, Op: c.Op, Value: c.Value})
	}
	return out
}

func toItemPayload(item *rubika.Item) itemPayload {
	p := itemPayload{
		AOID:         item.AOID,
		Name:         item.Name,
		QL:           item.QL,
		Slot:         item.Slot,
		Requirements: toRawCriterionPayloads(item.Requirements),
		Effects:      toEffectPayloads(item.Effects),
	}
	if item.Weapon != nil {
		p.Weapon = &weaponPayload{
			AttackSkill:    item.Weapon.AttackSkill,
			AttackTime:     item.Weapon.AttackTime,
			RechargeTime:   item.Weapon.RechargeTime,
			MinDamage:      item.Weapon.MinDamage,
			MaxDamage:      item.Weapon.MaxDamage,
			DamageType:     item.Weapon.DamageType,
			AttackDelayCap: item.Weapon.AttackDelayCap,
		}
	}
	return p
}

func toNanoPayload(nano *rubika.NanoProgram) nanoPayload {
	return nanoPayload{
		AOID:           nano.AOID,
		Name:           nano.Name,
		School:         nano.School,
		Strain:         nano.Strain,
		QL:             nano.QL,
		NanoCost:       nano.NanoCost,
		AttackTime:     nano.AttackTime,
		RechargeTime:   nano.RechargeTime,
		MinDamage:      nano.MinDamage,
		MaxDamage:      nano.MaxDamage,
		DamageType:     nano.DamageType,
		TickCount:      nano.TickCount,
		TickInterval:   nano.TickInterval,
		AttackDelayCap: nano.AttackDelayCap,
		Requirements:   toRawCriterionPayloads(nano.Requirements),
		Effects:        toEffectPayloads(nano.Effects),
	}
}
