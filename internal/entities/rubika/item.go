package rubika

// EffectKind identifies what an effect descriptor does. The engine only
// consumes modify-stat effects; all other kinds pass through untouched.
type EffectKind int32

// Effect kind constants follow the game-data numbering.
const (
	EffectUnknown    EffectKind = 0
	EffectModifyStat EffectKind = 1
	EffectCastNano   EffectKind = 2
	EffectTeleport   EffectKind = 3
	EffectText       EffectKind = 4
	EffectAnimation  EffectKind = 5
)

// Trigger identifies when an effect fires.
type Trigger int32

// Trigger constants follow the game-data numbering.
const (
	TriggerNone Trigger = 0
	TriggerWear Trigger = 2
	TriggerUse  Trigger = 3
	TriggerCast Trigger = 5
)

// Effect is one raw effect descriptor from item/nano game data.
type Effect struct {
	Kind    EffectKind
	Trigger Trigger
	StatID  StatID
	Delta   int32
}

// CriterionOp is a requirement comparison operator. Logical operators appear
// inline in the flat game-data encoding and are lifted into tree nodes at
// parse time.
type CriterionOp int32

// Criterion operator constants follow the game-data numbering.
const (
	OpEqual          CriterionOp = 0
	OpLessOrEqual    CriterionOp = 1
	OpGreaterOrEqual CriterionOp = 2
	OpNotEqual       CriterionOp = 24
	OpHasFlag        CriterionOp = 22
	OpLacksFlag      CriterionOp = 107
	OpOr             CriterionOp = 3
	OpAnd            CriterionOp = 4
	OpDisplay        CriterionOp = 42
)

// RawCriterion is one entry of the flat requirement encoding: either a stat
// comparison leaf, a logical operator, or a display-only separator.
type RawCriterion struct {
	StatID StatID
	Op     CriterionOp
	Value  int32
}

// Criterion is a single stat requirement.
type Criterion struct {
	StatID StatID
	Op     CriterionOp
	Value  int32

	// DisplayOnly marks informational leaves with no requirement semantics.
	// They evaluate to unknown, not to failure.
	DisplayOnly bool
}

// CriteriaNode is a node of a parsed requirement tree. Trees are built once
// per item/nano definition and evaluated statelessly against many snapshots.
type CriteriaNode interface {
	isCriteriaNode()
}

// LeafNode wraps a single criterion.
type LeafNode struct {
	Criterion Criterion
}

func (*LeafNode) isCriteriaNode() {}

// AndNode is satisfied when every child is satisfied.
type AndNode struct {
	Children []CriteriaNode
}

func (*AndNode) isCriteriaNode() {}

// OrNode is satisfied when at least one child is satisfied.
type OrNode struct {
	Children []CriteriaNode
}

func (*OrNode) isCriteriaNode() {}

// LeafResult reports one evaluated requirement leaf.
type LeafResult struct {
	Criterion Criterion
	Current   int32
	Met       bool
}

// Item is a catalog equipment definition.
type Item struct {
	AOID         int64
	Name         string
	QL           int32
	Slot         Slot
	Requirements []RawCriterion
	Effects      []Effect
	Weapon       *WeaponData
}

// WeaponData carries the combat-relevant numbers of a weapon item. Timings
// are centiseconds, as stored in the game data.
type WeaponData struct {
	AttackSkill  StatID
	AttackTime   int32
	RechargeTime int32
	MinDamage    int32
	MaxDamage    int32
	DamageType   DamageType

	// AttackDelayCap is the floor cast/attack time cannot be reduced below.
	AttackDelayCap int32
}

// NanoProgram is a catalog nano program definition. Timings are centiseconds,
// as stored in the game data.
type NanoProgram struct {
	AOID         int64
	Name         string
	School       NanoSchool
	Strain       int32
	QL           int32
	NanoCost     int32
	AttackTime   int32
	RechargeTime int32

	MinDamage  int32
	MaxDamage  int32
	DamageType DamageType

	// TickCount/TickInterval describe damage-over-time pulses. Single-hit
	// programs have TickCount 1 and interval 0.
	TickCount    int32
	TickInterval int32

	// AttackDelayCap is the floor the initiative reduction cannot pass.
	AttackDelayCap int32

	Requirements []RawCriterion
	Effects      []Effect
}

// NanoSchool identifies the nano program school.
type NanoSchool int32

// Nano school constants follow the game-data numbering.
const (
	SchoolUnknown            NanoSchool = 0
	SchoolMaterialMeta       NanoSchool = 1
	SchoolBiologicalMeta     NanoSchool = 2
	SchoolPsychologicalMods  NanoSchool = 3
	SchoolMaterialCreation   NanoSchool = 4
	SchoolSpaceTime          NanoSchool = 5
	SchoolSensoryImprovement NanoSchool = 6
)
