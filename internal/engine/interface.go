// Package engine defines the calculation boundary of the planner
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/rubika-tools/planner-api/internal/engine Engine

import (
	"context"
)

// Engine provides the stat, cost, requirement, and combat calculations
type Engine interface {
	// Stat resolution
	ResolveStats(ctx context.Context, input *ResolveStatsInput) (*ResolveStatsOutput, error)

	// IP accounting
	CalculateIPBudget(ctx context.Context, input *CalculateIPBudgetInput) (*CalculateIPBudgetOutput, error)
	CalculateTrainingCost(
		ctx context.Context,
		input *CalculateTrainingCostInput,
	) (*CalculateTrainingCostOutput, error)

	// Requirement evaluation
	CheckRequirements(ctx context.Context, input *CheckRequirementsInput) (*CheckRequirementsOutput, error)

	// Combat pipeline
	CalculateCombatMetrics(
		ctx context.Context,
		input *CalculateCombatMetricsInput,
	) (*CalculateCombatMetricsOutput, error)

	// Utility methods
	TitleLevel(level int32) int32
	TotalIP(level int32) int64

	// InvalidateCache drops memoized requirement evaluations when a new
	// snapshot generation begins
	InvalidateCache()
}
