package gamedata

import "github.com/rubika-tools/planner-api/internal/entities/rubika"

// defaultSkillCostFactors is the IP cost multiplier matrix, one row per
// trainable skill indexed by rubika.SkillIndex. Columns follow game-data
// profession order: Soldier, MartialArtist, Engineer, Fixer, Agent,
// Adventurer, Trader, Bureaucrat, Enforcer, Doctor, NanoTechnician,
// MetaPhysicist, Keeper, Shade. Factors range 1.0 (native) to 5.0 (alien).
var defaultSkillCostFactors = [rubika.SkillCount][rubika.ProfessionCount]float64{
	{4.0, 1.0, 4.5, 3.6, 3.2, 2.4, 4.0, 4.0, 2.8, 3.2, 4.0, 2.4, 3.2, 1.5}, // 100 MartialArts
	{2.5, 2.4, 4.0, 3.2, 3.2, 1.6, 3.6, 4.0, 1.0, 3.6, 4.5, 4.0, 1.2, 1.2}, // 101 MultiMelee
	{2.5, 2.0, 4.0, 3.2, 3.2, 1.6, 2.4, 4.0, 1.0, 3.6, 4.5, 4.0, 1.2, 1.6}, // 102 OneHandBlunt
	{2.5, 2.0, 4.0, 3.2, 3.2, 1.2, 3.6, 4.0, 1.0, 3.6, 4.5, 4.0, 1.2, 1.6}, // 103 OneHandEdged
	{2.5, 2.0, 4.0, 3.2, 3.2, 1.6, 3.6, 4.0, 1.0, 3.6, 4.5, 4.0, 1.2, 1.6}, // 104 MeleeEnergy
	{2.5, 2.0, 4.0, 3.2, 3.2, 1.6, 3.6, 4.0, 1.0, 3.6, 4.5, 4.0, 1.0, 1.6}, // 105 TwoHandEdged
	{2.5, 2.0, 4.0, 3.2, 3.2, 1.6, 3.6, 4.0, 1.0, 3.6, 4.5, 4.0, 1.2, 1.0}, // 106 Piercing
	{2.5, 2.0, 4.0, 3.2, 3.2, 1.6, 3.6, 4.0, 1.0, 3.6, 4.5, 4.0, 1.2, 1.6}, // 107 TwoHandBlunt
	{1.2, 4.0, 2.4, 2.8, 3.2, 2.4, 3.2, 3.6, 2.0, 3.6, 4.0, 4.0, 3.6, 4.5}, // 108 SharpObjects
	{1.2, 4.0, 2.4, 2.8, 3.2, 2.0, 2.0, 3.6, 2.0, 3.6, 4.0, 4.0, 3.6, 4.5}, // 109 Grenade
	{1.0, 4.0, 2.4, 2.8, 3.2, 2.4, 3.2, 3.6, 2.0, 3.6, 4.0, 4.0, 3.6, 4.5}, // 110 HeavyWeapons
	{1.0, 1.6, 2.8, 1.6, 2.4, 1.8, 2.4, 2.8, 3.2, 2.8, 3.6, 3.6, 4.0, 4.5}, // 111 Bow
	{1.0, 3.6, 2.0, 1.6, 1.6, 1.5, 2.4, 2.0, 3.2, 1.6, 3.6, 3.6, 4.0, 4.5}, // 112 Pistol
	{1.6, 3.6, 2.8, 1.6, 1.0, 1.8, 2.4, 2.8, 3.2, 2.8, 3.6, 3.6, 4.0, 4.5}, // 113 Rifle
	{1.2, 3.6, 2.8, 1.0, 1.6, 1.8, 2.4, 2.8, 3.2, 2.8, 3.6, 3.6, 4.0, 4.5}, // 114 SubmachineGun
	{1.0, 3.6, 2.8, 1.6, 1.6, 1.8, 1.5, 2.4, 3.2, 2.8, 3.6, 3.6, 4.0, 4.5}, // 115 Shotgun
	{1.0, 3.6, 2.8, 1.6, 1.6, 1.8, 2.4, 2.8, 3.2, 2.8, 3.6, 3.6, 4.0, 4.5}, // 116 AssaultRifle
	{2.4, 2.8, 2.0, 1.6, 2.4, 1.6, 2.4, 2.4, 2.8, 2.8, 2.8, 2.8, 3.2, 3.2}, // 117 VehicleWater
	{2.0, 1.2, 3.6, 2.8, 2.4, 1.6, 3.2, 3.6, 1.2, 3.2, 4.0, 3.2, 1.5, 1.2}, // 118 MeleeInit
	{1.2, 3.2, 2.8, 1.6, 1.5, 2.0, 2.8, 3.2, 3.2, 2.8, 3.6, 3.6, 3.6, 4.0}, // 119 RangedInit
	{2.0, 1.2, 3.6, 2.8, 2.4, 1.6, 3.2, 3.6, 1.2, 3.2, 4.0, 3.2, 1.5, 1.2}, // 120 PhysicalInit
	{1.0, 2.0, 2.8, 1.6, 1.6, 1.8, 2.4, 2.8, 3.2, 2.8, 3.6, 3.6, 4.0, 4.5}, // 121 BowSpecialAttack
	{4.5, 4.0, 2.4, 2.8, 2.4, 2.0, 1.6, 1.6, 4.5, 1.4, 1.0, 1.0, 2.4, 3.2}, // 122 SensoryImprovement
	{2.4, 2.4, 2.8, 2.4, 2.0, 1.6, 2.8, 2.8, 2.8, 1.0, 2.4, 2.4, 2.4, 2.8}, // 123 FirstAid
	{2.4, 2.4, 2.8, 2.4, 1.6, 1.6, 2.8, 2.8, 2.8, 1.0, 2.4, 2.4, 2.4, 2.8}, // 124 Treatment
	{3.2, 3.6, 1.0, 1.8, 2.8, 2.8, 1.5, 2.4, 3.6, 2.4, 2.0, 2.4, 3.6, 3.6}, // 125 MechanicalEngineering
	{3.2, 3.6, 1.0, 1.8, 2.8, 2.8, 1.5, 2.4, 3.6, 2.4, 2.0, 2.4, 3.6, 3.6}, // 126 ElectricalEngineering
	{4.5, 4.0, 2.4, 2.8, 2.4, 2.8, 1.6, 1.6, 4.5, 1.4, 1.0, 1.0, 2.8, 3.2}, // 127 MaterialMetamorphosis
	{4.5, 4.0, 2.4, 2.8, 2.4, 2.0, 1.6, 1.6, 4.5, 1.0, 1.0, 1.0, 2.8, 3.2}, // 128 BiologicalMetamorphosis
	{4.5, 4.0, 2.4, 2.8, 2.0, 2.8, 1.6, 1.2, 4.5, 1.4, 1.0, 1.0, 2.8, 3.2}, // 129 PsychologicalModifications
	{4.5, 4.0, 2.0, 2.8, 2.4, 2.8, 1.6, 1.6, 4.5, 1.4, 1.0, 1.0, 2.8, 3.2}, // 130 MaterialCreation
	{4.5, 4.0, 2.4, 2.0, 2.4, 2.8, 1.6, 1.6, 4.5, 1.4, 1.0, 1.0, 2.8, 3.2}, // 131 SpaceTime
	{3.2, 2.8, 2.4, 2.4, 2.4, 2.4, 1.8, 1.8, 3.2, 1.5, 1.0, 1.0, 2.4, 2.8}, // 132 NanoPool
	{1.0, 3.6, 2.8, 1.6, 1.6, 1.8, 2.4, 2.8, 3.2, 2.8, 3.6, 3.6, 4.0, 4.5}, // 133 RangedEnergy
	{1.0, 3.6, 2.8, 1.8, 1.6, 1.8, 2.4, 2.8, 3.2, 2.8, 3.6, 3.6, 4.0, 4.5}, // 134 MultiRanged
	{3.2, 3.6, 1.2, 1.8, 2.8, 2.8, 1.8, 2.4, 3.6, 2.4, 2.0, 2.4, 3.6, 3.6}, // 135 WeaponSmithing
	{3.2, 3.6, 1.0, 1.8, 2.8, 2.8, 1.5, 2.4, 3.6, 2.4, 2.0, 2.4, 3.6, 3.6}, // 136 Pharmaceuticals
	{3.2, 3.6, 1.2, 1.8, 2.8, 2.8, 1.5, 2.4, 3.6, 2.4, 1.0, 1.5, 3.6, 3.6}, // 137 NanoProgramming
	{3.2, 3.6, 1.0, 1.5, 2.8, 2.8, 1.5, 2.0, 3.6, 2.4, 1.6, 2.4, 3.6, 3.6}, // 138 ComputerLiteracy
	{3.2, 2.8, 2.4, 2.4, 2.0, 2.8, 1.6, 1.2, 3.6, 2.0, 2.4, 1.6, 3.2, 3.2}, // 139 Psychology
	{3.2, 3.6, 1.0, 1.8, 2.8, 2.8, 2.0, 2.4, 3.6, 2.4, 2.0, 2.4, 3.6, 3.6}, // 140 Chemistry
	{3.2, 2.8, 2.4, 2.4, 2.0, 2.8, 1.6, 1.2, 3.6, 2.0, 2.4, 1.6, 3.2, 3.2}, // 141 Tutoring
	{2.5, 2.0, 4.0, 3.2, 3.2, 1.6, 3.6, 4.0, 1.0, 3.6, 4.5, 4.0, 1.2, 1.6}, // 142 Brawl
	{2.5, 2.0, 4.0, 3.2, 3.2, 1.6, 3.6, 4.0, 1.0, 3.6, 4.5, 4.0, 1.2, 1.6}, // 143 Riposte
	{4.0, 1.2, 4.5, 3.6, 3.2, 2.4, 4.0, 4.0, 2.8, 3.2, 4.0, 2.4, 3.2, 1.4}, // 144 Dimach
	{2.5, 2.0, 4.0, 3.2, 3.2, 1.6, 3.6, 4.0, 1.0, 3.6, 4.5, 4.0, 1.2, 1.6}, // 145 Parry
	{3.2, 2.4, 2.8, 1.5, 1.0, 2.4, 2.8, 2.8, 3.6, 3.2, 3.2, 2.8, 3.6, 1.2}, // 146 SneakAttack
	{2.5, 2.0, 4.0, 3.2, 3.2, 1.6, 3.6, 4.0, 1.0, 3.6, 4.5, 4.0, 1.2, 1.6}, // 147 FastAttack
	{1.2, 3.6, 2.8, 1.8, 1.6, 1.8, 2.4, 2.8, 3.2, 2.8, 3.6, 3.6, 4.0, 4.5}, // 148 Burst
	{3.6, 2.8, 2.4, 2.4, 2.0, 2.4, 1.8, 1.6, 3.6, 1.2, 1.0, 1.0, 2.4, 2.8}, // 149 NanoInit
	{1.0, 3.6, 2.8, 1.6, 1.6, 1.8, 2.4, 2.8, 3.2, 2.8, 3.6, 3.6, 4.0, 4.5}, // 150 FlingShot
	{2.8, 3.6, 2.8, 1.6, 1.0, 1.8, 2.4, 2.8, 3.2, 2.8, 3.6, 3.6, 4.0, 4.5}, // 151 AimedShot
	{1.2, 1.6, 3.2, 2.4, 2.8, 2.0, 2.8, 3.2, 1.0, 2.4, 3.6, 3.2, 1.2, 2.0}, // 152 BodyDevelopment
	{2.4, 1.2, 3.6, 1.6, 2.0, 2.0, 3.2, 3.2, 2.5, 3.2, 3.6, 3.0, 2.0, 1.0}, // 153 DuckExplosions
	{2.4, 1.2, 3.6, 1.6, 2.0, 2.0, 3.2, 3.2, 2.5, 3.2, 3.6, 3.0, 2.0, 1.0}, // 154 DodgeRanged
	{2.4, 1.2, 3.6, 1.6, 2.0, 2.0, 3.2, 3.2, 2.5, 3.2, 3.6, 3.0, 2.0, 1.0}, // 155 EvadeClose
	{2.4, 1.2, 3.6, 1.0, 2.0, 1.5, 3.2, 3.2, 2.5, 3.2, 3.6, 3.0, 2.0, 1.0}, // 156 RunSpeed
	{3.2, 3.6, 1.0, 1.8, 2.8, 2.8, 1.5, 2.4, 3.6, 2.4, 2.0, 2.4, 3.6, 3.6}, // 157 QuantumPhysics
	{1.0, 4.0, 2.4, 2.0, 3.2, 2.4, 3.2, 3.6, 2.0, 3.6, 4.0, 4.0, 3.6, 4.5}, // 158 FullAuto
	{2.8, 2.4, 2.8, 2.8, 2.4, 2.4, 2.4, 2.4, 2.8, 2.0, 2.0, 1.6, 2.0, 2.4}, // 159 NanoResist
	{2.4, 2.8, 2.0, 1.6, 2.4, 1.6, 2.4, 2.4, 2.8, 2.8, 2.8, 2.8, 3.2, 3.2}, // 160 VehicleAir
	{2.4, 2.8, 2.0, 1.6, 2.4, 1.6, 2.4, 2.4, 2.8, 2.8, 2.8, 2.8, 3.2, 3.2}, // 161 VehicleGround
	{2.4, 2.8, 2.0, 1.6, 2.4, 1.6, 2.4, 2.4, 2.8, 2.8, 2.8, 2.8, 3.2, 3.2}, // 162 MapNavigation
	{3.2, 2.4, 2.8, 1.5, 1.0, 2.4, 2.8, 2.8, 3.6, 3.2, 3.2, 2.8, 3.6, 1.0}, // 163 Concealment
	{3.2, 2.4, 2.8, 1.5, 1.0, 2.4, 2.8, 2.8, 3.6, 3.2, 3.2, 2.8, 3.6, 1.2}, // 164 BreakingAndEntry
	{3.2, 2.4, 2.8, 1.5, 1.0, 2.4, 2.8, 2.8, 3.6, 3.2, 3.2, 2.8, 3.6, 1.2}, // 165 TrapDisarm
	{3.2, 2.4, 2.8, 1.5, 1.0, 2.4, 2.8, 2.8, 3.6, 3.2, 3.2, 2.8, 3.6, 1.2}, // 166 Perception
	{1.2, 1.6, 3.2, 2.4, 2.8, 2.0, 2.8, 3.2, 1.0, 2.4, 3.6, 3.2, 1.5, 2.0}, // 167 Adventuring
	{1.2, 1.6, 3.2, 2.4, 2.8, 2.0, 2.8, 3.2, 1.0, 2.4, 3.6, 3.2, 1.5, 2.0}, // 168 Swimming
	{2.8, 2.8, 2.8, 2.8, 2.8, 2.8, 2.5, 2.8, 2.5, 2.8, 2.8, 2.5, 2.5, 2.8}, // 169 ShieldProjectile
	{2.8, 2.8, 2.8, 2.8, 2.8, 2.8, 2.5, 2.8, 2.5, 2.8, 2.8, 2.5, 2.5, 2.8}, // 170 ShieldMelee
	{2.8, 2.8, 2.8, 2.8, 2.8, 2.8, 2.5, 2.8, 2.5, 2.8, 2.8, 2.5, 2.5, 2.8}, // 171 ShieldEnergy
	{2.8, 2.8, 2.8, 2.8, 2.8, 2.8, 2.5, 2.8, 2.5, 2.8, 2.8, 2.5, 2.5, 2.8}, // 172 ShieldChemical
	{2.8, 2.8, 2.8, 2.8, 2.8, 2.8, 2.5, 2.8, 2.5, 2.8, 2.8, 2.5, 2.5, 2.8}, // 173 ShieldRadiation
	{2.8, 2.8, 2.8, 2.8, 2.8, 2.8, 2.5, 2.8, 2.5, 2.8, 2.8, 2.5, 2.5, 2.8}, // 174 ShieldCold
	{2.8, 2.8, 2.8, 2.8, 2.8, 2.8, 2.5, 2.8, 2.5, 2.8, 2.8, 2.5, 2.5, 2.8}, // 175 ShieldNano
	{2.8, 2.8, 2.8, 2.8, 2.8, 2.8, 2.5, 2.8, 2.5, 2.8, 2.8, 2.5, 2.5, 2.8}, // 176 ShieldFire
	{2.8, 2.8, 2.8, 2.8, 2.8, 2.8, 2.5, 2.8, 2.5, 2.8, 2.8, 2.5, 2.5, 2.8}, // 177 ShieldPoison
	{2.8, 2.8, 2.8, 2.8, 2.8, 2.8, 2.5, 2.8, 2.5, 2.8, 2.8, 2.5, 2.5, 2.8}, // 178 ReflectProjectile
	{2.8, 2.8, 2.8, 2.8, 2.8, 2.8, 2.5, 2.8, 2.5, 2.8, 2.8, 2.5, 2.5, 2.8}, // 179 ReflectMelee
	{2.8, 2.8, 2.8, 2.8, 2.8, 2.8, 2.5, 2.8, 2.5, 2.8, 2.8, 2.5, 2.5, 2.8}, // 180 ReflectEnergy
	{2.8, 2.8, 2.8, 2.8, 2.8, 2.8, 2.5, 2.8, 2.5, 2.8, 2.8, 2.5, 2.5, 2.8}, // 181 ReflectChemical
	{2.8, 2.8, 2.8, 2.8, 2.8, 2.8, 2.5, 2.8, 2.5, 2.8, 2.8, 2.5, 2.5, 2.8}, // 182 ReflectRadiation
	{2.8, 2.8, 2.8, 2.8, 2.8, 2.8, 2.5, 2.8, 2.5, 2.8, 2.8, 2.5, 2.5, 2.8}, // 183 ReflectCold
	{2.8, 2.8, 2.8, 2.8, 2.8, 2.8, 2.5, 2.8, 2.5, 2.8, 2.8, 2.5, 2.5, 2.8}, // 184 ReflectNano
	{2.8, 2.8, 2.8, 2.8, 2.8, 2.8, 2.5, 2.8, 2.5, 2.8, 2.8, 2.5, 2.5, 2.8}, // 185 ReflectFire
	{2.8, 2.8, 2.8, 2.8, 2.8, 2.8, 2.5, 2.8, 2.5, 2.8, 2.8, 2.5, 2.5, 2.8}, // 186 ReflectPoison
	{2.8, 2.8, 2.8, 2.8, 2.8, 2.8, 2.5, 2.8, 2.5, 2.8, 2.8, 2.5, 2.5, 2.8}, // 187 AbsorbProjectile
	{2.8, 2.8, 2.8, 2.8, 2.8, 2.8, 2.5, 2.8, 2.5, 2.8, 2.8, 2.5, 2.5, 2.8}, // 188 AbsorbMelee
	{2.8, 2.8, 2.8, 2.8, 2.8, 2.8, 2.5, 2.8, 2.5, 2.8, 2.8, 2.5, 2.5, 2.8}, // 189 AbsorbEnergy
	{2.8, 2.8, 2.8, 2.8, 2.8, 2.8, 2.5, 2.8, 2.5, 2.8, 2.8, 2.5, 2.5, 2.8}, // 190 AbsorbChemical
	{2.8, 2.8, 2.8, 2.8, 2.8, 2.8, 2.5, 2.8, 2.5, 2.8, 2.8, 2.5, 2.5, 2.8}, // 191 AbsorbRadiation
	{2.8, 2.8, 2.8, 2.8, 2.8, 2.8, 2.5, 2.8, 2.5, 2.8, 2.8, 2.5, 2.5, 2.8}, // 192 AbsorbCold
	{2.8, 2.8, 2.8, 2.8, 2.8, 2.8, 2.5, 2.8, 2.5, 2.8, 2.8, 2.5, 2.5, 2.8}, // 193 AbsorbNano
	{2.8, 2.8, 2.8, 2.8, 2.8, 2.8, 2.5, 2.8, 2.5, 2.8, 2.8, 2.5, 2.5, 2.8}, // 194 AbsorbFire
	{2.8, 2.8, 2.8, 2.8, 2.8, 2.8, 2.5, 2.8, 2.5, 2.8, 2.8, 2.5, 2.5, 2.8}, // 195 AbsorbPoison
	{2.4, 2.8, 2.8, 2.8, 2.8, 2.8, 2.5, 2.8, 2.4, 2.8, 2.8, 2.5, 2.5, 2.8}, // 196 OffenseModifier
}

// defaultAbilityCostFactors is the ability training cost matrix, one row per
// ability in rubika.AbilityIDs order, columns by breed: Solitus, Opifex,
// Nanomage, Atrox.
var defaultAbilityCostFactors = [rubika.AbilityCount][4]float64{
	{2.0, 2.4, 2.8, 1.6}, // 16 Strength
	{2.0, 1.6, 2.4, 2.0}, // 17 Agility
	{2.0, 2.4, 2.4, 1.6}, // 18 Stamina
	{2.0, 2.0, 1.6, 2.8}, // 19 Intelligence
	{2.0, 1.6, 2.0, 2.4}, // 20 Sense
	{2.0, 2.4, 1.6, 2.8}, // 21 Psychic
}
