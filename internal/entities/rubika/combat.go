package rubika

// DamageType identifies one of the nine damage lines.
type DamageType int32

// Damage type constants follow the game-data numbering.
const (
	DamageProjectile DamageType = 1
	DamageMelee      DamageType = 2
	DamageEnergy     DamageType = 3
	DamageChemical   DamageType = 4
	DamageRadiation  DamageType = 5
	DamageCold       DamageType = 6
	DamagePoison     DamageType = 7
	DamageFire       DamageType = 8
	DamageNano       DamageType = 9
)

// DamageTypeCount is the number of damage lines.
const DamageTypeCount = 9

// DamageTypes lists the damage lines in game-data order.
var DamageTypes = [DamageTypeCount]DamageType{
	DamageProjectile, DamageMelee, DamageEnergy, DamageChemical,
	DamageRadiation, DamageCold, DamagePoison, DamageFire, DamageNano,
}

// IsValidDamageType checks if a damage type is one of the known lines.
func IsValidDamageType(d DamageType) bool {
	for _, t := range DamageTypes {
		if t == d {
			return true
		}
	}
	return false
}

// DamageModifierSet carries the attacker-side damage bonuses and the
// target-side mitigation input for one metrics computation.
type DamageModifierSet struct {
	// TypeModifiers holds the flat bonus per damage line.
	TypeModifiers map[DamageType]int32

	// GenericModifier applies to every damage line.
	GenericModifier int32

	// EfficiencyPercent multiplies the modified damage, e.g. 21 for +21%.
	EfficiencyPercent int32

	// TargetAC is the target's armor class against the relevant line.
	TargetAC int32
}

// TypeModifier returns the flat bonus for a damage line, 0 when absent
func (m DamageModifierSet) TypeModifier(t DamageType) int32 {
	if m.TypeModifiers == nil {
		return 0
	}
	return m.TypeModifiers[t]
}

// CombatMetrics is the fully derived per-weapon/nano result row. It is always
// recomputed from inputs as a whole, never incrementally patched.
type CombatMetrics struct {
	CastTime     float64
	RechargeTime float64
	NanoCost     float64

	MinDamage float64
	MidDamage float64
	MaxDamage float64

	DPS               float64
	DamagePerResource float64

	// SustainTime and UnitsToEmpty are meaningless when Unbounded is set:
	// regeneration covers consumption and the pool never runs out.
	SustainTime  float64
	UnitsToEmpty float64
	Unbounded    bool
}
