package formulas

import (
	"github.com/rubika-tools/planner-api/internal/engine"
	"github.com/rubika-tools/planner-api/internal/entities/rubika"
	"github.com/rubika-tools/planner-api/internal/errors"
)

func leaf(stat rubika.StatID, op rubika.CriterionOp, value int32) *rubika.LeafNode {
	return &rubika.LeafNode{Criterion: rubika.Criterion{StatID: stat, Op: op, Value: value}}
}

func displayLeaf(stat rubika.StatID, value int32) *rubika.LeafNode {
	return &rubika.LeafNode{Criterion: rubika.Criterion{
		StatID: stat, Op: rubika.OpDisplay, Value: value, DisplayOnly: true,
	}}
}

func (s *CalculatorTestSuite) check(node rubika.CriteriaNode, snapshot rubika.StatSnapshot) *engine.CheckRequirementsOutput {
	out, err := s.calc.CheckRequirements(s.ctx, &engine.CheckRequirementsInput{
		Node:     node,
		Snapshot: snapshot,
	})
	s.Require().NoError(err)
	s.Require().NotNil(out)
	return out
}

func (s *CalculatorTestSuite) TestCheckRequirementsComparisons() {
	tests := []struct {
		name     string
		op       rubika.CriterionOp
		value    int32
		current  int32
		expected bool
	}{
		{name: "at least met", op: rubika.OpGreaterOrEqual, value: 357, current: 400, expected: true},
		{name: "at least unmet", op: rubika.OpGreaterOrEqual, value: 357, current: 300, expected: false},
		{name: "at most met", op: rubika.OpLessOrEqual, value: 100, current: 80, expected: true},
		{name: "at most unmet", op: rubika.OpLessOrEqual, value: 100, current: 101, expected: false},
		{name: "equal met", op: rubika.OpEqual, value: 4, current: 4, expected: true},
		{name: "equal unmet", op: rubika.OpEqual, value: 4, current: 5, expected: false},
		{name: "not equal met", op: rubika.OpNotEqual, value: 4, current: 5, expected: true},
		{name: "not equal unmet", op: rubika.OpNotEqual, value: 4, current: 4, expected: false},
		{name: "has flag met", op: rubika.OpHasFlag, value: 256, current: 384, expected: true},
		{name: "has flag unmet", op: rubika.OpHasFlag, value: 256, current: 128, expected: false},
		{name: "lacks flag unmet", op: rubika.OpLacksFlag, value: 256, current: 384, expected: false},
		{name: "lacks flag met", op: rubika.OpLacksFlag, value: 256, current: 128, expected: true},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			snapshot := rubika.StatSnapshot{rubika.SkillPistol: tt.current}
			out := s.check(leaf(rubika.SkillPistol, tt.op, tt.value), snapshot)

			s.Require().NotNil(out.Result)
			s.Equal(tt.expected, *out.Result)
			if tt.expected {
				s.Empty(out.Unmet)
			} else {
				s.Require().Len(out.Unmet, 1)
				s.Equal(tt.current, out.Unmet[0].Current)
				s.False(out.Unmet[0].Met)
			}
		})
	}
}

func (s *CalculatorTestSuite) TestCheckRequirementsDisplayOnlyIsUnknown() {
	snapshot := rubika.StatSnapshot{rubika.SkillPistol: 400}

	out := s.check(displayLeaf(rubika.SkillPistol, 357), snapshot)
	s.Nil(out.Result)
	s.Empty(out.Unmet)
}

func (s *CalculatorTestSuite) TestCheckRequirementsUnknownPropagatesThroughAnd() {
	snapshot := rubika.StatSnapshot{rubika.SkillPistol: 400, rubika.SkillRifle: 10}

	// a passing leaf alongside an unknown leaf stays unknown
	node := &rubika.AndNode{Children: []rubika.CriteriaNode{
		leaf(rubika.SkillPistol, rubika.OpGreaterOrEqual, 300),
		displayLeaf(rubika.SkillRifle, 50),
	}}
	out := s.check(node, snapshot)
	s.Nil(out.Result)

	// a failing leaf still dominates the unknown
	node = &rubika.AndNode{Children: []rubika.CriteriaNode{
		leaf(rubika.SkillRifle, rubika.OpGreaterOrEqual, 300),
		displayLeaf(rubika.SkillPistol, 50),
	}}
	out = s.check(node, snapshot)
	s.Require().NotNil(out.Result)
	s.False(*out.Result)
	s.Len(out.Unmet, 1)
}

func (s *CalculatorTestSuite) TestCheckRequirementsOrSemantics() {
	snapshot := rubika.StatSnapshot{rubika.SkillPistol: 400, rubika.SkillRifle: 10}

	met := &rubika.OrNode{Children: []rubika.CriteriaNode{
		leaf(rubika.SkillRifle, rubika.OpGreaterOrEqual, 300),
		leaf(rubika.SkillPistol, rubika.OpGreaterOrEqual, 300),
	}}
	out := s.check(met, snapshot)
	s.Require().NotNil(out.Result)
	s.True(*out.Result)
	s.Empty(out.Unmet)

	unmet := &rubika.OrNode{Children: []rubika.CriteriaNode{
		leaf(rubika.SkillRifle, rubika.OpGreaterOrEqual, 300),
		leaf(rubika.SkillPistol, rubika.OpGreaterOrEqual, 500),
	}}
	out = s.check(unmet, snapshot)
	s.Require().NotNil(out.Result)
	s.False(*out.Result)
	s.Len(out.Unmet, 2)

	unknown := &rubika.OrNode{Children: []rubika.CriteriaNode{
		leaf(rubika.SkillRifle, rubika.OpGreaterOrEqual, 300),
		displayLeaf(rubika.SkillPistol, 1),
	}}
	out = s.check(unknown, snapshot)
	s.Nil(out.Result)
}

func (s *CalculatorTestSuite) TestCheckRequirementsBindingTieBreak() {
	snapshot := rubika.StatSnapshot{rubika.SkillPistol: 100}

	node := &rubika.AndNode{Children: []rubika.CriteriaNode{
		leaf(rubika.SkillPistol, rubika.OpGreaterOrEqual, 200),
		leaf(rubika.SkillPistol, rubika.OpGreaterOrEqual, 357),
		leaf(rubika.SkillPistol, rubika.OpGreaterOrEqual, 250),
	}}
	out := s.check(node, snapshot)

	s.Require().Len(out.Unmet, 1)
	s.Equal(int32(357), out.Unmet[0].Criterion.Value)
}

func (s *CalculatorTestSuite) TestCheckRequirementsNilTreeIsSatisfied() {
	out := s.check(nil, rubika.StatSnapshot{})
	s.Require().NotNil(out.Result)
	s.True(*out.Result)
	s.True(out.Satisfied())
}

func (s *CalculatorTestSuite) TestCheckRequirementsGuards() {
	_, err := s.calc.CheckRequirements(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.calc.CheckRequirements(s.ctx, &engine.CheckRequirementsInput{Node: leaf(1, rubika.OpEqual, 1)})
	s.True(errors.IsInvalidArgument(err))
}

func (s *CalculatorTestSuite) TestCheckRequirementsMemoization() {
	snapshot := rubika.StatSnapshot{rubika.SkillPistol: 400}
	input := &engine.CheckRequirementsInput{
		Node:     leaf(rubika.SkillPistol, rubika.OpGreaterOrEqual, 357),
		Snapshot: snapshot,
		SourceID: 201001,
	}

	first, err := s.calc.CheckRequirements(s.ctx, input)
	s.Require().NoError(err)
	second, err := s.calc.CheckRequirements(s.ctx, input)
	s.Require().NoError(err)
	s.Same(first, second)

	// a different snapshot misses the cache
	other, err := s.calc.CheckRequirements(s.ctx, &engine.CheckRequirementsInput{
		Node:     input.Node,
		Snapshot: rubika.StatSnapshot{rubika.SkillPistol: 300},
		SourceID: 201001,
	})
	s.Require().NoError(err)
	s.NotSame(first, other)
	s.False(*other.Result)

	// wholesale invalidation drops the memoized entry
	s.calc.InvalidateCache()
	third, err := s.calc.CheckRequirements(s.ctx, input)
	s.Require().NoError(err)
	s.NotSame(first, third)
	s.Equal(*first.Result, *third.Result)
}

func (s *CalculatorTestSuite) TestSnapshotHashIsOrderIndependent() {
	a := rubika.StatSnapshot{1: 10, 2: 20, 3: 30}
	b := rubika.StatSnapshot{3: 30, 1: 10, 2: 20}
	s.Equal(SnapshotHash(a), SnapshotHash(b))

	b[3] = 31
	s.NotEqual(SnapshotHash(a), SnapshotHash(b))
}

func (s *CalculatorTestSuite) TestBuildCriteriaTreePostfix() {
	raw := []rubika.RawCriterion{
		{StatID: rubika.SkillPistol, Op: rubika.OpGreaterOrEqual, Value: 357},
		{StatID: rubika.StatLevel, Op: rubika.OpGreaterOrEqual, Value: 100},
		{Op: rubika.OpAnd},
	}

	node, err := BuildCriteriaTree(raw)
	s.Require().NoError(err)

	and, ok := node.(*rubika.AndNode)
	s.Require().True(ok)
	s.Require().Len(and.Children, 2)

	left, ok := and.Children[0].(*rubika.LeafNode)
	s.Require().True(ok)
	s.Equal(rubika.SkillPistol, left.Criterion.StatID)
	s.False(left.Criterion.DisplayOnly)
}

func (s *CalculatorTestSuite) TestBuildCriteriaTreeOrOperator() {
	raw := []rubika.RawCriterion{
		{StatID: rubika.SkillRifle, Op: rubika.OpGreaterOrEqual, Value: 500},
		{StatID: rubika.SkillPistol, Op: rubika.OpGreaterOrEqual, Value: 500},
		{Op: rubika.OpOr},
	}

	node, err := BuildCriteriaTree(raw)
	s.Require().NoError(err)
	_, ok := node.(*rubika.OrNode)
	s.True(ok)
}

func (s *CalculatorTestSuite) TestBuildCriteriaTreeImplicitAnd() {
	raw := []rubika.RawCriterion{
		{StatID: rubika.SkillPistol, Op: rubika.OpGreaterOrEqual, Value: 100},
		{StatID: rubika.StatLevel, Op: rubika.OpGreaterOrEqual, Value: 25},
		{StatID: rubika.StatProfession, Op: rubika.OpEqual, Value: int32(rubika.ProfessionSoldier)},
	}

	node, err := BuildCriteriaTree(raw)
	s.Require().NoError(err)

	and, ok := node.(*rubika.AndNode)
	s.Require().True(ok)
	s.Len(and.Children, 3)
}

func (s *CalculatorTestSuite) TestBuildCriteriaTreeDisplayAndUnknownOps() {
	raw := []rubika.RawCriterion{
		{StatID: rubika.SkillPistol, Op: rubika.OpDisplay, Value: 1},
		{StatID: rubika.SkillRifle, Op: rubika.CriterionOp(86), Value: 1},
	}

	node, err := BuildCriteriaTree(raw)
	s.Require().NoError(err)

	and, ok := node.(*rubika.AndNode)
	s.Require().True(ok)
	for _, child := range and.Children {
		l, ok := child.(*rubika.LeafNode)
		s.Require().True(ok)
		s.True(l.Criterion.DisplayOnly)
	}
}

func (s *CalculatorTestSuite) TestBuildCriteriaTreeErrors() {
	_, err := BuildCriteriaTree([]rubika.RawCriterion{{Op: rubika.OpAnd}})
	s.True(errors.IsInvalidArgument(err))

	node, err := BuildCriteriaTree(nil)
	s.NoError(err)
	s.Nil(node)
}
