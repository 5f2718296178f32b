package gamedata

// CapRateRule maps a cost-factor range to the per-level trainable gain for
// each title. Rules are evaluated in order, first rule whose MaxCostFactor
// is at or above the skill's cost factor wins. PerLevel is indexed by title
// minus one and drives the banded cap formula for levels up to 200. PostRate
// drives the linear formula above 200. PerLevel[6] only participates in the
// boundary check at the title 7 entry level.
type CapRateRule struct {
	Name          string
	MaxCostFactor float64
	PerLevel      [7]int32
	PostRate      int32
}

// defaultCapRules is ordered by ascending MaxCostFactor. Cost factors past
// the last rule clamp to it.
var defaultCapRules = []CapRateRule{
	{Name: "native", MaxCostFactor: 1.0, PerLevel: [7]int32{5, 6, 7, 8, 9, 10, 12}, PostRate: 15},
	{Name: "adept", MaxCostFactor: 1.6, PerLevel: [7]int32{5, 6, 6, 7, 8, 9, 11}, PostRate: 14},
	{Name: "trained", MaxCostFactor: 2.2, PerLevel: [7]int32{4, 5, 6, 6, 7, 8, 10}, PostRate: 12},
	{Name: "versed", MaxCostFactor: 2.8, PerLevel: [7]int32{4, 5, 5, 6, 6, 7, 9}, PostRate: 11},
	{Name: "learned", MaxCostFactor: 3.4, PerLevel: [7]int32{3, 4, 5, 5, 6, 6, 8}, PostRate: 9},
	{Name: "foreign", MaxCostFactor: 4.2, PerLevel: [7]int32{3, 4, 4, 4, 5, 5, 7}, PostRate: 8},
	{Name: "alien", MaxCostFactor: 5.0, PerLevel: [7]int32{2, 3, 3, 4, 4, 4, 6}, PostRate: 6},
}
