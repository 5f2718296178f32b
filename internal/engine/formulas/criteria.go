package formulas

import (
	"context"

	"github.com/rubika-tools/planner-api/internal/engine"
	"github.com/rubika-tools/planner-api/internal/entities/rubika"
	"github.com/rubika-tools/planner-api/internal/errors"
)

// BuildCriteriaTree reconstructs the tagged criteria tree from the flat
// postfix encoding catalog definitions use: leaf entries push, And/Or
// operator entries pop two. Whatever remains on the stack joins under an
// implicit And, matching how multi-requirement items behave. Built once per
// definition at load time, evaluated statelessly afterwards.
func BuildCriteriaTree(raw []rubika.RawCriterion) (rubika.CriteriaNode, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var stack []rubika.CriteriaNode
	for i, rc := range raw {
		switch rc.Op {
		case rubika.OpAnd, rubika.OpOr:
			if len(stack) < 2 {
				return nil, errors.InvalidArgumentf("criterion %d: operator needs two operands", i)
			}
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			if rc.Op == rubika.OpAnd {
				stack = append(stack, &rubika.AndNode{Children: []rubika.CriteriaNode{left, right}})
			} else {
				stack = append(stack, &rubika.OrNode{Children: []rubika.CriteriaNode{left, right}})
			}
		default:
			stack = append(stack, &rubika.LeafNode{Criterion: rubika.Criterion{
				StatID:      rc.StatID,
				Op:          rc.Op,
				Value:       rc.Value,
				DisplayOnly: isDisplayOnly(rc.Op),
			}})
		}
	}

	if len(stack) == 1 {
		return stack[0], nil
	}
	return &rubika.AndNode{Children: stack}, nil
}

// isDisplayOnly covers the explicit display marker and any op outside the
// comparison set. Unknown ops degrade to informational leaves instead of
// failing requirement checks.
func isDisplayOnly(op rubika.CriterionOp) bool {
	switch op {
	case rubika.OpEqual, rubika.OpLessOrEqual, rubika.OpGreaterOrEqual,
		rubika.OpNotEqual, rubika.OpHasFlag, rubika.OpLacksFlag:
		return false
	default:
		return true
	}
}

// CheckRequirements evaluates a criteria tree against a snapshot. A nil
// tree is trivially satisfied. Unsatisfied requirements are a normal
// outcome, never an error.
func (c *Calculator) CheckRequirements(
	ctx context.Context,
	input *engine.CheckRequirementsInput,
) (*engine.CheckRequirementsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Snapshot == nil {
		return nil, errors.InvalidArgument("snapshot is required")
	}
	if input.Node == nil {
		satisfied := true
		return &engine.CheckRequirementsOutput{Result: &satisfied}, nil
	}

	key := cacheKey{source: input.SourceID, snapshot: SnapshotHash(input.Snapshot)}
	if input.SourceID != 0 {
		if out, ok := c.cache.get(key); ok {
			return out, nil
		}
	}

	result, unmet := evalNode(input.Node, input.Snapshot)
	out := &engine.CheckRequirementsOutput{
		Result: result,
		Unmet:  bindingConstraints(unmet),
	}

	if input.SourceID != 0 {
		c.cache.put(key, out)
	}
	return out, nil
}

// evalNode walks the tree bottom up. Display-only leaves yield nil and
// propagate as unknown through the combinators rather than as failure.
// Unmet leaves are only surfaced from paths that actually failed.
func evalNode(node rubika.CriteriaNode, stats rubika.StatSnapshot) (*bool, []*rubika.LeafResult) {
	switch n := node.(type) {
	case *rubika.LeafNode:
		if n.Criterion.DisplayOnly {
			return nil, nil
		}
		current := stats.Get(n.Criterion.StatID)
		met := compareCriterion(n.Criterion.Op, current, n.Criterion.Value)
		if met == nil {
			return nil, nil
		}
		if !*met {
			return met, []*rubika.LeafResult{{Criterion: n.Criterion, Current: current}}
		}
		return met, nil

	case *rubika.AndNode:
		passed := true
		unknown := false
		var unmet []*rubika.LeafResult
		for _, child := range n.Children {
			r, u := evalNode(child, stats)
			if r == nil {
				unknown = true
				continue
			}
			if !*r {
				passed = false
				unmet = append(unmet, u...)
			}
		}
		if !passed {
			failed := false
			return &failed, unmet
		}
		if unknown {
			return nil, nil
		}
		ok := true
		return &ok, nil

	case *rubika.OrNode:
		unknown := false
		var unmet []*rubika.LeafResult
		for _, child := range n.Children {
			r, u := evalNode(child, stats)
			if r == nil {
				unknown = true
				continue
			}
			if *r {
				ok := true
				return &ok, nil
			}
			unmet = append(unmet, u...)
		}
		if unknown {
			return nil, nil
		}
		failed := false
		return &failed, unmet

	default:
		return nil, nil
	}
}

// compareCriterion applies one comparison. Flag ops test the mask against
// the current value, numeric ops compare directly. Unknown ops return nil.
func compareCriterion(op rubika.CriterionOp, current, value int32) *bool {
	var met bool
	switch op {
	case rubika.OpEqual:
		met = current == value
	case rubika.OpLessOrEqual:
		met = current <= value
	case rubika.OpGreaterOrEqual:
		met = current >= value
	case rubika.OpNotEqual:
		met = current != value
	case rubika.OpHasFlag:
		met = current&value == value
	case rubika.OpLacksFlag:
		met = current&value == 0
	default:
		return nil
	}
	return &met
}

// bindingConstraints dedupes unmet leaves per (stat, op): the highest
// requirement wins for at-least checks, the lowest for at-most checks,
// everything else keeps its first occurrence. Order follows first
// appearance so output is deterministic.
func bindingConstraints(unmet []*rubika.LeafResult) []*rubika.LeafResult {
	if len(unmet) < 2 {
		return unmet
	}

	type constraintKey struct {
		stat rubika.StatID
		op   rubika.CriterionOp
	}
	best := make(map[constraintKey]*rubika.LeafResult, len(unmet))
	order := make([]constraintKey, 0, len(unmet))

	for _, lr := range unmet {
		k := constraintKey{stat: lr.Criterion.StatID, op: lr.Criterion.Op}
		cur, seen := best[k]
		if !seen {
			best[k] = lr
			order = append(order, k)
			continue
		}
		switch lr.Criterion.Op {
		case rubika.OpGreaterOrEqual:
			if lr.Criterion.Value > cur.Criterion.Value {
				best[k] = lr
			}
		case rubika.OpLessOrEqual:
			if lr.Criterion.Value < cur.Criterion.Value {
				best[k] = lr
			}
		}
	}

	out := make([]*rubika.LeafResult, 0, len(order))
	for _, k := range order {
		out = append(out, best[k])
	}
	return out
}
