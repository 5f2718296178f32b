package formulas

import (
	"github.com/rubika-tools/planner-api/internal/engine"
	"github.com/rubika-tools/planner-api/internal/entities/rubika"
	"github.com/rubika-tools/planner-api/internal/errors"
)

func (s *CalculatorTestSuite) TestCumulativeCostFixtures() {
	// factor 1.0 degenerates to the triangle numbers
	s.Equal(int64(55), cumulativeCost(10, 1.0))
	s.Equal(int64(820), cumulativeCost(40, 1.0))

	// factor 2.5 floors per point: 2+5+7+10
	s.Equal(int64(24), cumulativeCost(4, 2.5))

	s.Zero(cumulativeCost(0, 3.0))
}

func (s *CalculatorTestSuite) TestCumulativeCostStrictlyIncreasingAndConvex() {
	factors := []float64{1.0, 1.6, 2.5, 4.0, 5.0}
	for _, factor := range factors {
		prev := cumulativeCost(0, factor)
		prevStep := int64(0)
		for n := int32(1); n <= 300; n++ {
			cur := cumulativeCost(n, factor)
			step := cur - prev
			s.Greater(cur, prev, "factor %v n %d", factor, n)
			s.GreaterOrEqual(step, prevStep, "factor %v n %d", factor, n)
			prev = cur
			prevStep = step
		}
	}
}

func (s *CalculatorTestSuite) TestLevelCapBandedValues() {
	native := s.calc.tables.CapRule(1.0)

	tests := []struct {
		level int32
		want  int32
	}{
		{level: 1, want: 5},
		{level: 14, want: 70},
		// entry levels take the lower of the adjoining rates
		{level: 15, want: 75},
		{level: 16, want: 82},
		{level: 99, want: 630},
		{level: 100, want: 637},
		{level: 190, want: 1399},
		{level: 200, want: 1500},
		{level: 201, want: 1515},
		{level: 204, want: 1560},
		{level: 205, want: 1572},
		{level: 206, want: 1590},
		{level: 220, want: 1800},
	}

	for _, tt := range tests {
		s.Equal(tt.want, s.calc.levelCap(native, tt.level), "level %d", tt.level)
	}
}

func (s *CalculatorTestSuite) TestLevelCapMonotonicPerRule() {
	for _, rule := range s.calc.tables.CapRules {
		prev := s.calc.levelCap(rule, rubika.MinLevel)
		for level := int32(rubika.MinLevel + 1); level <= rubika.MaxLevel; level++ {
			cur := s.calc.levelCap(rule, level)
			s.GreaterOrEqual(cur, prev, "rule %s level %d", rule.Name, level)
			prev = cur
		}
	}
}

func (s *CalculatorTestSuite) TestAbilityCapRoundsHalfUp() {
	weights := [rubika.AbilityCount]float64{0.25, 0.75, 0, 0, 0, 0}
	totals := [rubika.AbilityCount]int32{8, 9, 0, 0, 0, 0}
	// weighted sum 8.75 gives 12.5, half rounds up
	s.Equal(int32(13), abilityCap(weights, totals))
}

func (s *CalculatorTestSuite) TestAbilityCapFixture() {
	weights := [rubika.AbilityCount]float64{0, 0, 1.0, 0, 0, 0}
	totals := [rubika.AbilityCount]int32{0, 0, 25, 0, 0, 0}
	s.Equal(int32(45), abilityCap(weights, totals))
}

func (s *CalculatorTestSuite) TestCalculateIPBudget() {
	char := s.newTestCharacter()
	char.Trained[rubika.SkillPistol] = 40 // soldier factor 1.0: 820 IP
	char.Trained[rubika.StatAgility] = 10 // solitus factor 2.0: 110 IP

	out, err := s.calc.CalculateIPBudget(s.ctx, &engine.CalculateIPBudgetInput{Character: char})
	s.Require().NoError(err)

	s.Equal(int32(4), out.TitleLevel)
	s.Equal(int64(1823500), out.TotalIP)
	s.Equal(int64(930), out.SpentIP)
	s.Equal(int64(1823500-930), out.AvailableIP)
}

func (s *CalculatorTestSuite) TestCalculateIPBudgetCanGoNegative() {
	char := s.newTestCharacter()
	char.Level = 1
	char.Trained[rubika.SkillPistol] = 100 // 5050 IP against a 1500 budget

	out, err := s.calc.CalculateIPBudget(s.ctx, &engine.CalculateIPBudgetInput{Character: char})
	s.Require().NoError(err)

	s.Equal(int64(1500), out.TotalIP)
	s.Equal(int64(5050), out.SpentIP)
	s.Equal(int64(-3550), out.AvailableIP)
}

func (s *CalculatorTestSuite) TestCalculateTrainingCost() {
	char := s.newTestCharacter()
	char.Trained[rubika.StatAgility] = 94
	char.Trained[rubika.StatSense] = 94

	out, err := s.calc.CalculateTrainingCost(s.ctx, &engine.CalculateTrainingCostInput{
		Character: char,
		StatID:    rubika.SkillPistol,
		FromValue: 10,
		ToValue:   40,
	})
	s.Require().NoError(err)

	s.Equal(1.0, out.CostFactor)
	s.Equal(int64(820-55), out.Cost)
	// level 100 sits on a band entry, the lower adjoining rate wins
	s.Equal(int32(637), out.LevelCap)
	// agility and sense both at 100 put the weighted sum at 100
	s.Equal(int32(195), out.AbilityCap)
	s.Equal(int32(195), out.EffectiveCap)
	s.False(out.ExceedsCap)
}

func (s *CalculatorTestSuite) TestCalculateTrainingCostOverCapStillPriced() {
	char := s.newTestCharacter()
	char.Level = 5 // native level cap 25

	out, err := s.calc.CalculateTrainingCost(s.ctx, &engine.CalculateTrainingCostInput{
		Character: char,
		StatID:    rubika.SkillBodyDevelopment,
		FromValue: 0,
		ToValue:   30,
	})
	s.Require().NoError(err)

	// stamina 6 keeps the trickle ceiling at 7, well under the request
	s.Equal(int32(7), out.AbilityCap)
	s.Equal(int32(7), out.EffectiveCap)
	s.True(out.ExceedsCap)
	s.Positive(out.Cost)
}

func (s *CalculatorTestSuite) TestCalculateTrainingCostForAbility() {
	char := s.newTestCharacter()

	out, err := s.calc.CalculateTrainingCost(s.ctx, &engine.CalculateTrainingCostInput{
		Character: char,
		StatID:    rubika.StatAgility,
		FromValue: 0,
		ToValue:   10,
	})
	s.Require().NoError(err)

	s.Equal(2.0, out.CostFactor)
	s.Equal(int64(110), out.Cost)
	s.Zero(out.AbilityCap)
	s.Equal(out.LevelCap, out.EffectiveCap)
}

func (s *CalculatorTestSuite) TestCalculateTrainingCostValidation() {
	char := s.newTestCharacter()

	_, err := s.calc.CalculateTrainingCost(s.ctx, &engine.CalculateTrainingCostInput{
		Character: char,
		StatID:    rubika.StatLevel,
		ToValue:   5,
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.calc.CalculateTrainingCost(s.ctx, &engine.CalculateTrainingCostInput{
		Character: char,
		StatID:    rubika.SkillPistol,
		FromValue: -1,
		ToValue:   5,
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.calc.CalculateTrainingCost(s.ctx, &engine.CalculateTrainingCostInput{
		Character: char,
		StatID:    rubika.SkillPistol,
		FromValue: 10,
		ToValue:   5,
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.calc.CalculateTrainingCost(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *CalculatorTestSuite) TestTitleLevelAndTotalIPPassThrough() {
	s.Equal(int32(7), s.calc.TitleLevel(220))
	s.Equal(int64(57500), s.calc.TotalIP(15))
}
