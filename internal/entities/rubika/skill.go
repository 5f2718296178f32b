package rubika

// Skill is the canonical per-skill value breakdown. Total is the sum of the
// six bonus columns floored at 0; Cap is min(level cap, ability cap) for the
// trained portion only. Bonus sources may push Total past Cap.
type Skill struct {
	ID                 StatID
	BaseValue          int32
	TrickleDown        int32
	PointsFromTraining int32
	EquipmentBonus     int32
	PerkBonus          int32
	BuffBonus          int32
	Total              int32
	Cap                int32
}

// StatSnapshot maps stat id to its resolved current value. Snapshots are
// immutable once built; evaluation never writes through them.
type StatSnapshot map[StatID]int32

// Get returns the snapshot value for a stat, 0 when absent
func (s StatSnapshot) Get(id StatID) int32 {
	return s[id]
}
