package formulas

import (
	"math"

	"github.com/rubika-tools/planner-api/internal/engine"
	"github.com/rubika-tools/planner-api/internal/entities/rubika"
	"github.com/rubika-tools/planner-api/internal/errors"
)

func (s *CalculatorTestSuite) newTestNano() *rubika.NanoProgram {
	return &rubika.NanoProgram{
		AOID:           301100,
		Name:           "Crispy Chitin",
		School:         rubika.SchoolMaterialCreation,
		Strain:         99,
		QL:             125,
		NanoCost:       200,
		AttackTime:     300,
		RechargeTime:   200,
		MinDamage:      100,
		MaxDamage:      300,
		DamageType:     rubika.DamageEnergy,
		TickCount:      1,
		TickInterval:   0,
		AttackDelayCap: 100,
	}
}

func (s *CalculatorTestSuite) newCombatSnapshot() rubika.StatSnapshot {
	return rubika.StatSnapshot{
		rubika.SkillNanoInit: 400,
		rubika.StatPsychic:   280,
		rubika.StatMaxNano:   1000,
	}
}

func (s *CalculatorTestSuite) TestCalculateCombatMetricsPipeline() {
	char := s.newTestCharacter()
	char.BuffLines = map[rubika.BuffLine]int32{
		rubika.BuffLineCostReduction:    2, // 14%
		rubika.BuffLineDamageEfficiency: 1, // 3%
	}

	out, err := s.calc.CalculateCombatMetrics(s.ctx, &engine.CalculateCombatMetricsInput{
		Character: char,
		Snapshot:  s.newCombatSnapshot(),
		Nano:      s.newTestNano(),
		Modifiers: &rubika.DamageModifierSet{
			TypeModifiers:     map[rubika.DamageType]int32{rubika.DamageEnergy: 50},
			GenericModifier:   25,
			EfficiencyPercent: 10,
			TargetAC:          300,
		},
	})
	s.Require().NoError(err)
	m := out.Metrics
	s.Require().NotNil(m)

	// 400 initiative shaves 2s, recharge bottoms out on the 1s delay cap
	s.InDelta(1.0, m.CastTime, 1e-9)
	s.InDelta(1.0, m.RechargeTime, 1e-9)
	s.InDelta(172.0, m.NanoCost, 1e-9)

	// (base + 50 + 25) * 1.13 minus 30 armor
	s.InDelta(167.75, m.MinDamage, 1e-6)
	s.InDelta(393.75, m.MaxDamage, 1e-6)
	s.InDelta(280.75, m.MidDamage, 1e-6)

	s.InDelta(140.375, m.DPS, 1e-6)
	s.InDelta(280.75/172.0, m.DamagePerResource, 1e-6)

	// psychic tick 10 plus breed base 0.55 against 86/s consumption
	s.False(m.Unbounded)
	s.InDelta(1000.0/(86.0-10.55), m.SustainTime, 1e-6)
	s.InDelta(1000.0/(172.0-10.55*2), m.UnitsToEmpty, 1e-6)
}

func (s *CalculatorTestSuite) TestCalculateCombatMetricsIsIdempotent() {
	char := s.newTestCharacter()
	char.BuffLines = map[rubika.BuffLine]int32{rubika.BuffLineNanoDelta: 3}
	input := &engine.CalculateCombatMetricsInput{
		Character: char,
		Snapshot:  s.newCombatSnapshot(),
		Nano:      s.newTestNano(),
		Modifiers: &rubika.DamageModifierSet{TargetAC: 100},
	}

	first, err := s.calc.CalculateCombatMetrics(s.ctx, input)
	s.Require().NoError(err)
	second, err := s.calc.CalculateCombatMetrics(s.ctx, input)
	s.Require().NoError(err)

	s.Equal(first.Metrics, second.Metrics)
}

func (s *CalculatorTestSuite) TestCalculateCombatMetricsArmorFloor() {
	char := s.newTestCharacter()

	out, err := s.calc.CalculateCombatMetrics(s.ctx, &engine.CalculateCombatMetricsInput{
		Character: char,
		Snapshot:  s.newCombatSnapshot(),
		Nano:      s.newTestNano(),
		Modifiers: &rubika.DamageModifierSet{TargetAC: 100000},
	})
	s.Require().NoError(err)

	// mitigation never drags a hit below the declared minimum
	s.InDelta(100.0, out.Metrics.MinDamage, 1e-9)
	s.InDelta(100.0, out.Metrics.MaxDamage, 1e-9)
}

func (s *CalculatorTestSuite) TestCalculateCombatMetricsTicksMultiply() {
	char := s.newTestCharacter()
	nano := s.newTestNano()
	nano.TickCount = 4
	nano.TickInterval = 100

	out, err := s.calc.CalculateCombatMetrics(s.ctx, &engine.CalculateCombatMetricsInput{
		Character: char,
		Snapshot:  s.newCombatSnapshot(),
		Nano:      nano,
	})
	s.Require().NoError(err)
	m := out.Metrics

	s.InDelta(400.0, m.MinDamage, 1e-6)
	s.InDelta(1200.0, m.MaxDamage, 1e-6)
	// three second dot tail joins the cycle
	s.InDelta(800.0/(1.0+1.0+3.0), m.DPS, 1e-6)
}

func (s *CalculatorTestSuite) TestCalculateCombatMetricsSustainSentinel() {
	char := s.newTestCharacter()
	nano := s.newTestNano()
	nano.NanoCost = 10
	nano.AttackTime = 200
	nano.RechargeTime = 200

	snapshot := s.newCombatSnapshot()
	snapshot[rubika.SkillNanoInit] = 0

	out, err := s.calc.CalculateCombatMetrics(s.ctx, &engine.CalculateCombatMetricsInput{
		Character: char,
		Snapshot:  snapshot,
		Nano:      nano,
	})
	s.Require().NoError(err)
	m := out.Metrics

	// 10.55/s regen beats 2.5/s consumption: explicit sentinel, no numbers
	s.True(m.Unbounded)
	s.Zero(m.SustainTime)
	s.Zero(m.UnitsToEmpty)
	s.False(math.IsNaN(m.SustainTime))
	s.False(math.IsInf(m.SustainTime, 0))
}

func (s *CalculatorTestSuite) TestCalculateCombatMetricsFreeCast() {
	char := s.newTestCharacter()
	nano := s.newTestNano()
	nano.NanoCost = 0

	out, err := s.calc.CalculateCombatMetrics(s.ctx, &engine.CalculateCombatMetricsInput{
		Character: char,
		Snapshot:  s.newCombatSnapshot(),
		Nano:      nano,
	})
	s.Require().NoError(err)

	s.True(out.Metrics.Unbounded)
	s.Zero(out.Metrics.DamagePerResource)
}

func (s *CalculatorTestSuite) TestCalculateCombatMetricsBreedCapsCostReduction() {
	char := s.newTestCharacter()
	char.Breed = rubika.BreedAtrox // 40% reduction ceiling
	char.BuffLines = map[rubika.BuffLine]int32{rubika.BuffLineCostReduction: 7}

	out, err := s.calc.CalculateCombatMetrics(s.ctx, &engine.CalculateCombatMetricsInput{
		Character: char,
		Snapshot:  s.newCombatSnapshot(),
		Nano:      s.newTestNano(),
	})
	s.Require().NoError(err)

	// the level 7 table entry reads 49 but the breed cap wins
	s.InDelta(120.0, out.Metrics.NanoCost, 1e-9)
}

func (s *CalculatorTestSuite) TestCalculateCombatMetricsValidation() {
	char := s.newTestCharacter()
	nano := s.newTestNano()
	nano.AttackTime = 0
	nano.RechargeTime = 0

	_, err := s.calc.CalculateCombatMetrics(s.ctx, &engine.CalculateCombatMetricsInput{
		Character: char,
		Snapshot:  s.newCombatSnapshot(),
		Nano:      nano,
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "non-positive")

	_, err = s.calc.CalculateCombatMetrics(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.calc.CalculateCombatMetrics(s.ctx, &engine.CalculateCombatMetricsInput{
		Character: char,
		Snapshot:  s.newCombatSnapshot(),
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *CalculatorTestSuite) TestScaleByInitiativeTwoTier() {
	// the first 1200 points count at 1s per 200, the rest at 1s per 600
	s.InDelta(4.0, scaleByInitiative(10, 1200, 0.1), 1e-9)
	s.InDelta(3.0, scaleByInitiative(10, 1800, 0.1), 1e-9)
	// floor holds
	s.InDelta(1.0, scaleByInitiative(3, 1800, 1.0), 1e-9)
	// negative initiative slows the cast down
	s.InDelta(11.0, scaleByInitiative(10, -200, 1.0), 1e-9)
}

func (s *CalculatorTestSuite) TestCalculateCombatMetricsOnResolvedSnapshot() {
	char := s.newTestCharacter()
	char.Trained[rubika.StatPsychic] = 50
	char.Trained[rubika.SkillNanoInit] = 200

	resolved := s.resolve(char)

	out, err := s.calc.CalculateCombatMetrics(s.ctx, &engine.CalculateCombatMetricsInput{
		Character: char,
		Snapshot:  resolved.Snapshot,
		Nano:      s.newTestNano(),
	})
	s.Require().NoError(err)
	s.Positive(out.Metrics.DPS)
	s.Positive(out.Metrics.NanoCost)
}
