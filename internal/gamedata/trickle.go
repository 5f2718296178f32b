package gamedata

import "github.com/rubika-tools/planner-api/internal/entities/rubika"

// defaultTrickleWeights is the trickle-down weight matrix, one row per
// trainable skill indexed by rubika.SkillIndex, columns in canonical ability
// order (Strength, Agility, Stamina, Intelligence, Sense, Psychic).
// Every row sums to 1.0.
var defaultTrickleWeights = [rubika.SkillCount][rubika.AbilityCount]float64{
	{0.20, 0.50, 0.00, 0.00, 0.00, 0.30}, // 100 MartialArts
	{0.30, 0.60, 0.10, 0.00, 0.00, 0.00}, // 101 MultiMelee
	{0.50, 0.40, 0.10, 0.00, 0.00, 0.00}, // 102 OneHandBlunt
	{0.45, 0.45, 0.10, 0.00, 0.00, 0.00}, // 103 OneHandEdged
	{0.30, 0.30, 0.40, 0.00, 0.00, 0.00}, // 104 MeleeEnergy
	{0.60, 0.30, 0.10, 0.00, 0.00, 0.00}, // 105 TwoHandEdged
	{0.40, 0.50, 0.10, 0.00, 0.00, 0.00}, // 106 Piercing
	{0.50, 0.25, 0.25, 0.00, 0.00, 0.00}, // 107 TwoHandBlunt
	{0.30, 0.60, 0.00, 0.00, 0.10, 0.00}, // 108 SharpObjects
	{0.20, 0.40, 0.00, 0.00, 0.40, 0.00}, // 109 Grenade
	{0.60, 0.40, 0.00, 0.00, 0.00, 0.00}, // 110 HeavyWeapons
	{0.40, 0.40, 0.00, 0.00, 0.20, 0.00}, // 111 Bow
	{0.00, 0.60, 0.00, 0.00, 0.40, 0.00}, // 112 Pistol
	{0.00, 0.60, 0.00, 0.00, 0.40, 0.00}, // 113 Rifle
	{0.30, 0.30, 0.10, 0.00, 0.30, 0.00}, // 114 SubmachineGun
	{0.40, 0.60, 0.00, 0.00, 0.00, 0.00}, // 115 Shotgun
	{0.40, 0.30, 0.20, 0.00, 0.10, 0.00}, // 116 AssaultRifle
	{0.00, 0.40, 0.00, 0.30, 0.30, 0.00}, // 117 VehicleWater
	{0.00, 0.60, 0.00, 0.00, 0.40, 0.00}, // 118 MeleeInit
	{0.00, 0.60, 0.00, 0.00, 0.40, 0.00}, // 119 RangedInit
	{0.00, 0.60, 0.00, 0.00, 0.40, 0.00}, // 120 PhysicalInit
	{0.30, 0.50, 0.00, 0.00, 0.20, 0.00}, // 121 BowSpecialAttack
	{0.00, 0.20, 0.00, 0.80, 0.00, 0.00}, // 122 SensoryImprovement
	{0.00, 0.30, 0.00, 0.30, 0.40, 0.00}, // 123 FirstAid
	{0.00, 0.30, 0.00, 0.50, 0.20, 0.00}, // 124 Treatment
	{0.00, 0.30, 0.20, 0.50, 0.00, 0.00}, // 125 MechanicalEngineering
	{0.00, 0.30, 0.20, 0.50, 0.00, 0.00}, // 126 ElectricalEngineering
	{0.00, 0.00, 0.00, 0.80, 0.00, 0.20}, // 127 MaterialMetamorphosis
	{0.00, 0.00, 0.00, 0.80, 0.00, 0.20}, // 128 BiologicalMetamorphosis
	{0.00, 0.00, 0.00, 0.80, 0.20, 0.00}, // 129 PsychologicalModifications
	{0.00, 0.00, 0.00, 0.80, 0.00, 0.20}, // 130 MaterialCreation
	{0.00, 0.20, 0.00, 0.80, 0.00, 0.00}, // 131 SpaceTime
	{0.00, 0.00, 0.10, 0.10, 0.10, 0.70}, // 132 NanoPool
	{0.00, 0.20, 0.00, 0.40, 0.40, 0.00}, // 133 RangedEnergy
	{0.00, 0.60, 0.00, 0.20, 0.20, 0.00}, // 134 MultiRanged
	{0.50, 0.00, 0.00, 0.50, 0.00, 0.00}, // 135 WeaponSmithing
	{0.00, 0.20, 0.00, 0.80, 0.00, 0.00}, // 136 Pharmaceuticals
	{0.00, 0.00, 0.00, 1.00, 0.00, 0.00}, // 137 NanoProgramming
	{0.00, 0.00, 0.00, 1.00, 0.00, 0.00}, // 138 ComputerLiteracy
	{0.00, 0.00, 0.00, 0.50, 0.50, 0.00}, // 139 Psychology
	{0.00, 0.00, 0.50, 0.50, 0.00, 0.00}, // 140 Chemistry
	{0.00, 0.00, 0.00, 0.70, 0.20, 0.10}, // 141 Tutoring
	{0.60, 0.00, 0.40, 0.00, 0.00, 0.00}, // 142 Brawl
	{0.00, 0.50, 0.00, 0.00, 0.50, 0.00}, // 143 Riposte
	{0.00, 0.00, 0.00, 0.00, 0.80, 0.20}, // 144 Dimach
	{0.50, 0.30, 0.00, 0.00, 0.20, 0.00}, // 145 Parry
	{0.00, 0.30, 0.00, 0.00, 0.30, 0.40}, // 146 SneakAttack
	{0.00, 0.60, 0.00, 0.00, 0.40, 0.00}, // 147 FastAttack
	{0.50, 0.30, 0.00, 0.00, 0.20, 0.00}, // 148 Burst
	{0.00, 0.20, 0.00, 0.00, 0.20, 0.60}, // 149 NanoInit
	{0.00, 0.60, 0.00, 0.00, 0.40, 0.00}, // 150 FlingShot
	{0.00, 0.10, 0.00, 0.00, 0.90, 0.00}, // 151 AimedShot
	{0.00, 0.00, 1.00, 0.00, 0.00, 0.00}, // 152 BodyDevelopment
	{0.00, 0.50, 0.00, 0.00, 0.50, 0.00}, // 153 DuckExplosions
	{0.00, 0.50, 0.00, 0.00, 0.50, 0.00}, // 154 DodgeRanged
	{0.00, 0.50, 0.00, 0.00, 0.50, 0.00}, // 155 EvadeClose
	{0.00, 0.40, 0.40, 0.00, 0.20, 0.00}, // 156 RunSpeed
	{0.00, 0.00, 0.00, 0.50, 0.30, 0.20}, // 157 QuantumPhysics
	{0.60, 0.20, 0.20, 0.00, 0.00, 0.00}, // 158 FullAuto
	{0.00, 0.00, 0.00, 0.00, 0.20, 0.80}, // 159 NanoResist
	{0.00, 0.40, 0.00, 0.30, 0.30, 0.00}, // 160 VehicleAir
	{0.00, 0.40, 0.00, 0.30, 0.30, 0.00}, // 161 VehicleGround
	{0.00, 0.00, 0.00, 0.40, 0.50, 0.10}, // 162 MapNavigation
	{0.00, 0.30, 0.00, 0.00, 0.70, 0.00}, // 163 Concealment
	{0.30, 0.40, 0.00, 0.00, 0.30, 0.00}, // 164 BreakingAndEntry
	{0.00, 0.20, 0.00, 0.40, 0.40, 0.00}, // 165 TrapDisarm
	{0.00, 0.00, 0.00, 0.30, 0.70, 0.00}, // 166 Perception
	{0.20, 0.20, 0.50, 0.00, 0.10, 0.00}, // 167 Adventuring
	{0.20, 0.20, 0.60, 0.00, 0.00, 0.00}, // 168 Swimming
	{0.00, 0.00, 0.60, 0.00, 0.00, 0.40}, // 169 ShieldProjectile
	{0.00, 0.00, 0.60, 0.00, 0.00, 0.40}, // 170 ShieldMelee
	{0.00, 0.00, 0.60, 0.00, 0.00, 0.40}, // 171 ShieldEnergy
	{0.00, 0.00, 0.60, 0.00, 0.00, 0.40}, // 172 ShieldChemical
	{0.00, 0.00, 0.60, 0.00, 0.00, 0.40}, // 173 ShieldRadiation
	{0.00, 0.00, 0.60, 0.00, 0.00, 0.40}, // 174 ShieldCold
	{0.00, 0.00, 0.60, 0.00, 0.00, 0.40}, // 175 ShieldNano
	{0.00, 0.00, 0.60, 0.00, 0.00, 0.40}, // 176 ShieldFire
	{0.00, 0.00, 0.60, 0.00, 0.00, 0.40}, // 177 ShieldPoison
	{0.00, 0.00, 0.00, 0.00, 0.50, 0.50}, // 178 ReflectProjectile
	{0.00, 0.00, 0.00, 0.00, 0.50, 0.50}, // 179 ReflectMelee
	{0.00, 0.00, 0.00, 0.00, 0.50, 0.50}, // 180 ReflectEnergy
	{0.00, 0.00, 0.00, 0.00, 0.50, 0.50}, // 181 ReflectChemical
	{0.00, 0.00, 0.00, 0.00, 0.50, 0.50}, // 182 ReflectRadiation
	{0.00, 0.00, 0.00, 0.00, 0.50, 0.50}, // 183 ReflectCold
	{0.00, 0.00, 0.00, 0.00, 0.50, 0.50}, // 184 ReflectNano
	{0.00, 0.00, 0.00, 0.00, 0.50, 0.50}, // 185 ReflectFire
	{0.00, 0.00, 0.00, 0.00, 0.50, 0.50}, // 186 ReflectPoison
	{0.00, 0.00, 0.50, 0.00, 0.00, 0.50}, // 187 AbsorbProjectile
	{0.00, 0.00, 0.50, 0.00, 0.00, 0.50}, // 188 AbsorbMelee
	{0.00, 0.00, 0.50, 0.00, 0.00, 0.50}, // 189 AbsorbEnergy
	{0.00, 0.00, 0.50, 0.00, 0.00, 0.50}, // 190 AbsorbChemical
	{0.00, 0.00, 0.50, 0.00, 0.00, 0.50}, // 191 AbsorbRadiation
	{0.00, 0.00, 0.50, 0.00, 0.00, 0.50}, // 192 AbsorbCold
	{0.00, 0.00, 0.50, 0.00, 0.00, 0.50}, // 193 AbsorbNano
	{0.00, 0.00, 0.50, 0.00, 0.00, 0.50}, // 194 AbsorbFire
	{0.00, 0.00, 0.50, 0.00, 0.00, 0.50}, // 195 AbsorbPoison
	{0.30, 0.30, 0.00, 0.00, 0.40, 0.00}, // 196 OffenseModifier
}
