package rubika

// Breed is one of the four playable breeds.
type Breed int32

// Breed constants follow the game-data numbering.
const (
	BreedUnknown  Breed = 0
	BreedSolitus  Breed = 1
	BreedOpifex   Breed = 2
	BreedNanomage Breed = 3
	BreedAtrox    Breed = 4
)

// Breeds lists the playable breeds in game-data order.
var Breeds = []Breed{BreedSolitus, BreedOpifex, BreedNanomage, BreedAtrox}

// String returns the lowercase breed name used on the wire
func (b Breed) String() string {
	switch b {
	case BreedSolitus:
		return "solitus"
	case BreedOpifex:
		return "opifex"
	case BreedNanomage:
		return "nanomage"
	case BreedAtrox:
		return "atrox"
	default:
		return "unknown"
	}
}

// ParseBreed converts a wire name to a Breed, BreedUnknown if unrecognized
func ParseBreed(s string) Breed {
	switch s {
	case "solitus":
		return BreedSolitus
	case "opifex":
		return BreedOpifex
	case "nanomage":
		return BreedNanomage
	case "atrox":
		return BreedAtrox
	default:
		return BreedUnknown
	}
}

// Profession is one of the playable professions.
type Profession int32

// Profession constants follow the game-data numbering.
const (
	ProfessionUnknown        Profession = 0
	ProfessionSoldier        Profession = 1
	ProfessionMartialArtist  Profession = 2
	ProfessionEngineer       Profession = 3
	ProfessionFixer          Profession = 4
	ProfessionAgent          Profession = 5
	ProfessionAdventurer     Profession = 6
	ProfessionTrader         Profession = 7
	ProfessionBureaucrat     Profession = 8
	ProfessionEnforcer       Profession = 9
	ProfessionDoctor         Profession = 10
	ProfessionNanoTechnician Profession = 11
	ProfessionMetaPhysicist  Profession = 12
	ProfessionKeeper         Profession = 13
	ProfessionShade          Profession = 14
)

// ProfessionCount is the number of playable professions.
const ProfessionCount = 14

// Professions lists the playable professions in game-data order.
var Professions = []Profession{
	ProfessionSoldier, ProfessionMartialArtist, ProfessionEngineer,
	ProfessionFixer, ProfessionAgent, ProfessionAdventurer,
	ProfessionTrader, ProfessionBureaucrat, ProfessionEnforcer,
	ProfessionDoctor, ProfessionNanoTechnician, ProfessionMetaPhysicist,
	ProfessionKeeper, ProfessionShade,
}

// String returns the snake_case profession name used on the wire
func (p Profession) String() string {
	switch p {
	case ProfessionSoldier:
		return "soldier"
	case ProfessionMartialArtist:
		return "martial_artist"
	case ProfessionEngineer:
		return "engineer"
	case ProfessionFixer:
		return "fixer"
	case ProfessionAgent:
		return "agent"
	case ProfessionAdventurer:
		return "adventurer"
	case ProfessionTrader:
		return "trader"
	case ProfessionBureaucrat:
		return "bureaucrat"
	case ProfessionEnforcer:
		return "enforcer"
	case ProfessionDoctor:
		return "doctor"
	case ProfessionNanoTechnician:
		return "nano_technician"
	case ProfessionMetaPhysicist:
		return "meta_physicist"
	case ProfessionKeeper:
		return "keeper"
	case ProfessionShade:
		return "shade"
	default:
		return "unknown"
	}
}

// ParseProfession converts a wire name to a Profession, ProfessionUnknown if unrecognized
func ParseProfession(s string) Profession {
	for _, p := range Professions {
		if p.String() == s {
			return p
		}
	}
	return ProfessionUnknown
}

// Level bounds
const (
	MinLevel int32 = 1
	MaxLevel int32 = 220
)

// StatID identifies a character stat, ability, or skill in game data.
type StatID int32

// Character stats
const (
	StatNone       StatID = 0
	StatMaxHealth  StatID = 1
	StatBreedID    StatID = 4
	StatLevel      StatID = 54
	StatProfession StatID = 60
	StatMaxNano    StatID = 221

	// Bitflag-carrying stats used by hasFlag/lacksFlag criteria
	StatSpecialization StatID = 289
	StatExpansion      StatID = 389
)

// Abilities
const (
	StatStrength     StatID = 16
	StatAgility      StatID = 17
	StatStamina      StatID = 18
	StatIntelligence StatID = 19
	StatSense        StatID = 20
	StatPsychic      StatID = 21
)

// AbilityCount is the number of abilities feeding trickle-down.
const AbilityCount = 6

// AbilityIDs lists the six abilities in canonical trickle order.
var AbilityIDs = [AbilityCount]StatID{
	StatStrength, StatAgility, StatStamina,
	StatIntelligence, StatSense, StatPsychic,
}

// AbilityIndex returns the canonical index of an ability stat, -1 for non-abilities
func AbilityIndex(id StatID) int {
	for i, a := range AbilityIDs {
		if a == id {
			return i
		}
	}
	return -1
}

// Trainable skills. IDs are contiguous so skill tables index by SkillIndex.
const (
	SkillMartialArts                StatID = 100
	SkillMultiMelee                 StatID = 101
	SkillOneHandBlunt               StatID = 102
	SkillOneHandEdged               StatID = 103
	SkillMeleeEnergy                StatID = 104
	SkillTwoHandEdged               StatID = 105
	SkillPiercing                   StatID = 106
	SkillTwoHandBlunt               StatID = 107
	SkillSharpObjects               StatID = 108
	SkillGrenade                    StatID = 109
	SkillHeavyWeapons               StatID = 110
	SkillBow                        StatID = 111
	SkillPistol                     StatID = 112
	SkillRifle                      StatID = 113
	SkillSubmachineGun              StatID = 114
	SkillShotgun                    StatID = 115
	SkillAssaultRifle               StatID = 116
	SkillVehicleWater               StatID = 117
	SkillMeleeInit                  StatID = 118
	SkillRangedInit                 StatID = 119
	SkillPhysicalInit               StatID = 120
	SkillBowSpecialAttack           StatID = 121
	SkillSensoryImprovement         StatID = 122
	SkillFirstAid                   StatID = 123
	SkillTreatment                  StatID = 124
	SkillMechanicalEngineering      StatID = 125
	SkillElectricalEngineering      StatID = 126
	SkillMaterialMetamorphosis      StatID = 127
	SkillBiologicalMetamorphosis    StatID = 128
	SkillPsychologicalModifications StatID = 129
	SkillMaterialCreation           StatID = 130
	SkillSpaceTime                  StatID = 131
	SkillNanoPool                   StatID = 132
	SkillRangedEnergy               StatID = 133
	SkillMultiRanged                StatID = 134
	SkillWeaponSmithing             StatID = 135
	SkillPharmaceuticals            StatID = 136
	SkillNanoProgramming            StatID = 137
	SkillComputerLiteracy           StatID = 138
	SkillPsychology                 StatID = 139
	SkillChemistry                  StatID = 140
	SkillTutoring                   StatID = 141
	SkillBrawl                      StatID = 142
	SkillRiposte                    StatID = 143
	SkillDimach                     StatID = 144
	SkillParry                      StatID = 145
	SkillSneakAttack                StatID = 146
	SkillFastAttack                 StatID = 147
	SkillBurst                      StatID = 148
	SkillNanoInit                   StatID = 149
	SkillFlingShot                  StatID = 150
	SkillAimedShot                  StatID = 151
	SkillBodyDevelopment            StatID = 152
	SkillDuckExplosions             StatID = 153
	SkillDodgeRanged                StatID = 154
	SkillEvadeClose                 StatID = 155
	SkillRunSpeed                   StatID = 156
	SkillQuantumPhysics             StatID = 157
	SkillFullAuto                   StatID = 158
	SkillNanoResist                 StatID = 159
	SkillVehicleAir                 StatID = 160
	SkillVehicleGround              StatID = 161
	SkillMapNavigation              StatID = 162
	SkillConcealment                StatID = 163
	SkillBreakingAndEntry           StatID = 164
	SkillTrapDisarm                 StatID = 165
	SkillPerception                 StatID = 166
	SkillAdventuring                StatID = 167
	SkillSwimming                   StatID = 168
	SkillShieldProjectile           StatID = 169
	SkillShieldMelee                StatID = 170
	SkillShieldEnergy               StatID = 171
	SkillShieldChemical             StatID = 172
	SkillShieldRadiation            StatID = 173
	SkillShieldCold                 StatID = 174
	SkillShieldNano                 StatID = 175
	SkillShieldFire                 StatID = 176
	SkillShieldPoison               StatID = 177
	SkillReflectProjectile          StatID = 178
	SkillReflectMelee               StatID = 179
	SkillReflectEnergy              StatID = 180
	SkillReflectChemical            StatID = 181
	SkillReflectRadiation           StatID = 182
	SkillReflectCold                StatID = 183
	SkillReflectNano                StatID = 184
	SkillReflectFire                StatID = 185
	SkillReflectPoison              StatID = 186
	SkillAbsorbProjectile           StatID = 187
	SkillAbsorbMelee                StatID = 188
	SkillAbsorbEnergy               StatID = 189
	SkillAbsorbChemical             StatID = 190
	SkillAbsorbRadiation            StatID = 191
	SkillAbsorbCold                 StatID = 192
	SkillAbsorbNano                 StatID = 193
	SkillAbsorbFire                 StatID = 194
	SkillAbsorbPoison               StatID = 195
	SkillOffenseModifier            StatID = 196
)

// Skill ID range. All trainable skills fall in [FirstSkillID, LastSkillID].
const (
	FirstSkillID StatID = SkillMartialArts
	LastSkillID  StatID = SkillOffenseModifier
	SkillCount          = int(LastSkillID-FirstSkillID) + 1
)

// IsSkill reports whether the id is a trainable skill
func IsSkill(id StatID) bool {
	return id >= FirstSkillID && id <= LastSkillID
}

// IsAbility reports whether the id is one of the six abilities
func IsAbility(id StatID) bool {
	return AbilityIndex(id) >= 0
}

// SkillIndex returns the table row index for a skill id, -1 if out of range
func SkillIndex(id StatID) int {
	if !IsSkill(id) {
		return -1
	}
	return int(id - FirstSkillID)
}
