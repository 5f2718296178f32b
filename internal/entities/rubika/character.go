// Package rubika implements the planner's domain entities.
package rubika

// Character is a planned character loadout.
// NOTE: This is a data-only struct. All derived numbers (skill totals, caps,
// IP budgets, combat metrics) come from the engine, not from here.
type Character struct {
	Name       string
	Breed      Breed
	Profession Profession
	Level      int32

	// Trained holds the improvement points spent per ability/skill id,
	// expressed as trained points on top of the breed/profession base.
	Trained map[StatID]int32

	Equipment map[Slot]EquippedItem
	Perks     []PerkEntry
	Buffs     []BuffEntry

	// BuffLines holds the planner's assumed running buff levels per line
	// (cost reduction, nano delta, damage efficiency), level 0 = none.
	BuffLines map[BuffLine]int32
}

// TrainedPoints returns the trained points for a stat, 0 if never trained
func (c *Character) TrainedPoints(id StatID) int32 {
	if c.Trained == nil {
		return 0
	}
	return c.Trained[id]
}

// Slot identifies an equipment slot.
type Slot string

// Equipment slot constants
const (
	SlotHead        Slot = "head"
	SlotEyes        Slot = "eyes"
	SlotNeck        Slot = "neck"
	SlotChest       Slot = "chest"
	SlotBack        Slot = "back"
	SlotShoulders   Slot = "shoulders"
	SlotArms        Slot = "arms"
	SlotRightWrist  Slot = "right_wrist"
	SlotLeftWrist   Slot = "left_wrist"
	SlotHands       Slot = "hands"
	SlotWaist       Slot = "waist"
	SlotLegs        Slot = "legs"
	SlotFeet        Slot = "feet"
	SlotRightFinger Slot = "right_finger"
	SlotLeftFinger  Slot = "left_finger"
	SlotRightHand   Slot = "right_hand"
	SlotLeftHand    Slot = "left_hand"
	SlotDeck        Slot = "deck"
)

// Slots lists every equipment slot.
var Slots = []Slot{
	SlotHead, SlotEyes, SlotNeck, SlotChest, SlotBack, SlotShoulders,
	SlotArms, SlotRightWrist, SlotLeftWrist, SlotHands, SlotWaist,
	SlotLegs, SlotFeet, SlotRightFinger, SlotLeftFinger,
	SlotRightHand, SlotLeftHand, SlotDeck,
}

// IsValidSlot reports whether s names a known equipment slot
func IsValidSlot(s Slot) bool {
	for _, slot := range Slots {
		if slot == s {
			return true
		}
	}
	return false
}

// EquippedItem references a catalog item worn in a slot.
// Name and effects are denormalized at equip time so a stored build resolves
// without a catalog round trip.
type EquippedItem struct {
	AOID    int64
	Name    string
	QL      int32
	Effects []Effect
}

// PerkEntry is a trained perk with its stat effects inlined.
// Perk effect data arrives from the planning client, not the item catalog.
type PerkEntry struct {
	ID      int32
	Name    string
	Level   int32
	Effects []Effect
}

// BuffEntry references a running nano program. Effects are denormalized at
// apply time the same way equipment effects are.
type BuffEntry struct {
	AOID    int64
	Name    string
	Effects []Effect
}

// BuffLine identifies a stacking buff family resolved through its own
// level-indexed effect table.
type BuffLine string

// Buff line constants
const (
	BuffLineCostReduction    BuffLine = "cost_reduction"
	BuffLineNanoDelta        BuffLine = "nano_delta"
	BuffLineNotumSiphon      BuffLine = "notum_siphon"
	BuffLineDamageEfficiency BuffLine = "damage_efficiency"
)

// KnownBuffLines lists every buff line the planner models.
var KnownBuffLines = []BuffLine{
	BuffLineCostReduction, BuffLineNanoDelta,
	BuffLineNotumSiphon, BuffLineDamageEfficiency,
}

// IsValidBuffLine reports whether l names a known buff line
func IsValidBuffLine(l BuffLine) bool {
	for _, line := range KnownBuffLines {
		if line == l {
			return true
		}
	}
	return false
}

// BuildDraft is a saved planning session for one character.
type BuildDraft struct {
	ID        string
	PlayerID  string
	Character Character
	Notes     string
	Progress  PlanningProgress
	CreatedAt int64
	UpdatedAt int64
}

// PlanningProgress tracks which planning steps have content, using bitflags
type PlanningProgress struct {
	StepsCompleted       uint8
	CompletionPercentage int32
	CurrentStep          string
}

// Planning step bitflags
const (
	ProgressStepIdentity  uint8 = 1 << iota // 1: name, breed, profession, level
	ProgressStepAbilities                   // 2
	ProgressStepSkills                      // 4
	ProgressStepEquipment                   // 8
	ProgressStepBuffs                       // 16
)

// Planning step names reported in PlanningProgress.CurrentStep
const (
	PlanningStepIdentity  = "identity"
	PlanningStepAbilities = "abilities"
	PlanningStepSkills    = "skills"
	PlanningStepEquipment = "equipment"
	PlanningStepBuffs     = "buffs"
	PlanningStepComplete  = "complete"
)

// HasStep checks if a specific step is completed
func (p PlanningProgress) HasStep(step uint8) bool {
	return p.StepsCompleted&step != 0
}

// SetStep marks a step as completed
func (p *PlanningProgress) SetStep(step uint8, completed bool) {
	if completed {
		p.StepsCompleted |= step
	} else {
		p.StepsCompleted &^= step
	}
}

// HasIdentity checks if the identity step is completed
func (p PlanningProgress) HasIdentity() bool { return p.HasStep(ProgressStepIdentity) }

// HasAbilities checks if the abilities step is completed
func (p PlanningProgress) HasAbilities() bool { return p.HasStep(ProgressStepAbilities) }

// HasSkills checks if the skills step is completed
func (p PlanningProgress) HasSkills() bool { return p.HasStep(ProgressStepSkills) }

// HasEquipment checks if the equipment step is completed
func (p PlanningProgress) HasEquipment() bool { return p.HasStep(ProgressStepEquipment) }

// HasBuffs checks if the buffs step is completed
func (p PlanningProgress) HasBuffs() bool { return p.HasStep(ProgressStepBuffs) }
