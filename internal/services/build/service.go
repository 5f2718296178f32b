// Package build defines the interface for build planning operations
package build

//go:generate mockgen -destination=mock/mock_service.go -package=buildmock github.com/rubika-tools/planner-api/internal/services/build Service

import (
	"context"

	"github.com/rubika-tools/planner-api/internal/entities/rubika"
)

// Service defines the interface for build planning operations
type Service interface {
	// Draft lifecycle
	CreateDraft(ctx context.Context, input *CreateDraftInput) (*CreateDraftOutput, error)
	GetDraft(ctx context.Context, input *GetDraftInput) (*GetDraftOutput, error)
	ListDrafts(ctx context.Context, input *ListDraftsInput) (*ListDraftsOutput, error)
	DeleteDraft(ctx context.Context, input *DeleteDraftInput) (*DeleteDraftOutput, error)

	// Identity
	SetIdentity(ctx context.Context, input *SetIdentityInput) (*SetIdentityOutput, error)

	// Training
	TrainSkill(ctx context.Context, input *TrainSkillInput) (*TrainSkillOutput, error)
	ResetSkill(ctx context.Context, input *ResetSkillInput) (*ResetSkillOutput, error)

	// Loadout
	EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error)
	UnequipItem(ctx context.Context, input *UnequipItemInput) (*UnequipItemOutput, error)
	ApplyBuff(ctx context.Context, input *ApplyBuffInput) (*ApplyBuffOutput, error)
	RemoveBuff(ctx context.Context, input *RemoveBuffInput) (*RemoveBuffOutput, error)
	SetPerks(ctx context.Context, input *SetPerksInput) (*SetPerksOutput, error)
	SetBuffLines(ctx context.Context, input *SetBuffLinesInput) (*SetBuffLinesOutput, error)

	// Resolution
	GetSkills(ctx context.Context, input *GetSkillsInput) (*GetSkillsOutput, error)
	GetIPBudget(ctx context.Context, input *GetIPBudgetInput) (*GetIPBudgetOutput, error)
	CheckRequirements(ctx context.Context, input *CheckRequirementsInput) (*CheckRequirementsOutput, error)
	GetCombatMetrics(ctx context.Context, input *GetCombatMetricsInput) (*GetCombatMetricsOutput, error)
	ScoreItems(ctx context.Context, input *ScoreItemsInput) (*ScoreItemsOutput, error)
}

// WarningCode classifies a planning warning
type WarningCode string

// Warning codes
const (
	// WarningOverCap flags trained points past the effective cap
	WarningOverCap WarningCode = "over_cap"
	// WarningOverBudget flags a spend past the available IP
	WarningOverBudget WarningCode = "over_budget"
	// WarningRequirementsUnmet flags an equip or cast the character cannot use
	WarningRequirementsUnmet WarningCode = "requirements_unmet"
	// WarningBuffReplaced flags a running buff pushed off by a same-strain nano
	WarningBuffReplaced WarningCode = "buff_replaced"
)

// Warning flags a planning concern without blocking the operation. Planning
// is what-if by nature, so infeasible states persist and carry warnings
// instead of failing.
type Warning struct {
	Code    WarningCode
	Message string
	// StatID names the stat involved, 0 when the warning is not stat-scoped
	StatID rubika.StatID
}

// Draft lifecycle types

// CreateDraftInput defines the request for creating a draft
type CreateDraftInput struct {
	PlayerID string
	// InitialData optionally seeds the identity fields
	InitialData *rubika.Character
	Notes       string
}

// CreateDraftOutput defines the response for creating a draft
type CreateDraftOutput struct {
	Draft *rubika.BuildDraft
}

// GetDraftInput defines the request for getting a draft
type GetDraftInput struct {
	DraftID string
}

// GetDraftOutput defines the response for getting a draft
type GetDraftOutput struct {
	Draft *rubika.BuildDraft
}

// ListDraftsInput defines the request for listing a player's drafts
type ListDraftsInput struct {
	PlayerID string
}

// ListDraftsOutput defines the response for listing a player's drafts
type ListDraftsOutput struct {
	Drafts []*rubika.BuildDraft
}

// DeleteDraftInput defines the request for deleting a draft
type DeleteDraftInput struct {
	DraftID string
}

// DeleteDraftOutput defines the response for deleting a draft
type DeleteDraftOutput struct{}

// Identity types

// SetIdentityInput defines the request for updating identity fields. Zero
// values leave the corresponding field unchanged.
type SetIdentityInput struct {
	DraftID    string
	Name       string
	Breed      rubika.Breed
	Profession rubika.Profession
	Level      int32
}

// SetIdentityOutput defines the response for updating identity fields.
// Warnings report trained points left stranded past their caps after a
// level change; values are never clamped.
type SetIdentityOutput struct {
	Draft    *rubika.BuildDraft
	Warnings []Warning
}

// Training types

// TrainSkillInput defines the request for spending trained points.
// Points is a delta; negative values untrain.
type TrainSkillInput struct {
	DraftID string
	StatID  rubika.StatID
	Points  int32
}

// TrainSkillOutput defines the response for spending trained points.
// Cost is the IP price of the delta, negative when points were refunded.
type TrainSkillOutput struct {
	Draft        *rubika.BuildDraft
	Cost         int64
	SpentIP      int64
	AvailableIP  int64
	EffectiveCap int32
	Warnings     []Warning
}

// ResetSkillInput defines the request for clearing a stat's trained points
type ResetSkillInput struct {
	DraftID string
	StatID  rubika.StatID
}

// ResetSkillOutput defines the response for clearing a stat's trained points
type ResetSkillOutput struct {
	Draft    *rubika.BuildDraft
	Refunded int64
}

// Loadout types

// EquipItemInput defines the request for equipping a catalog item.
// Slot overrides the item's native slot when set, for off-hand copies.
type EquipItemInput struct {
	DraftID string
	AOID    int64
	Slot    rubika.Slot
}

// EquipItemOutput defines the response for equipping a catalog item
type EquipItemOutput struct {
	Draft    *rubika.BuildDraft
	Unmet    []*rubika.LeafResult
	Warnings []Warning
}

// UnequipItemInput defines the request for clearing an equipment slot
type UnequipItemInput struct {
	DraftID string
	Slot    rubika.Slot
}

// UnequipItemOutput defines the response for clearing an equipment slot
type UnequipItemOutput struct {
	Draft *rubika.BuildDraft
}

// ApplyBuffInput defines the request for adding a running nano program
type ApplyBuffInput struct {
	DraftID string
	AOID    int64
}

// ApplyBuffOutput defines the response for adding a running nano program
type ApplyBuffOutput struct {
	Draft    *rubika.BuildDraft
	Unmet    []*rubika.LeafResult
	Warnings []Warning
}

// RemoveBuffInput defines the request for dropping a running nano program
type RemoveBuffInput struct {
	DraftID string
	AOID    int64
}

// RemoveBuffOutput defines the response for dropping a running nano program
type RemoveBuffOutput struct {
	Draft *rubika.BuildDraft
}

// SetPerksInput defines the request for replacing the trained perk list.
// Perk effect data arrives inline from the planning client.
type SetPerksInput struct {
	DraftID string
	Perks   []rubika.PerkEntry
}

// SetPerksOutput defines the response for replacing the trained perk list
type SetPerksOutput struct {
	Draft *rubika.BuildDraft
}

// SetBuffLinesInput defines the request for setting assumed buff-line levels
type SetBuffLinesInput struct {
	DraftID string
	Lines   map[rubika.BuffLine]int32
}

// SetBuffLinesOutput defines the response for setting assumed buff-line levels
type SetBuffLinesOutput struct {
	Draft *rubika.BuildDraft
}

// Resolution types

// GetSkillsInput defines the request for the resolved stat breakdown
type GetSkillsInput struct {
	DraftID string
}

// GetSkillsOutput defines the response for the resolved stat breakdown
type GetSkillsOutput struct {
	Abilities map[rubika.StatID]*rubika.Skill
	Skills    map[rubika.StatID]*rubika.Skill
	Snapshot  rubika.StatSnapshot
}

// GetIPBudgetInput defines the request for the IP ledger
type GetIPBudgetInput struct {
	DraftID string
}

// GetIPBudgetOutput defines the response for the IP ledger
type GetIPBudgetOutput struct {
	TitleLevel  int32
	TotalIP     int64
	SpentIP     int64
	AvailableIP int64
	// PerSkill itemizes the spend per trained stat
	PerSkill map[rubika.StatID]int64
}

// CheckRequirementsInput defines the request for a requirement evaluation.
// Exactly one of ItemAOID and NanoAOID must be set.
type CheckRequirementsInput struct {
	DraftID  string
	ItemAOID int64
	NanoAOID int64
}

// CheckRequirementsOutput defines the response for a requirement evaluation.
// Satisfied is nil when the definition's criteria are all display-only.
type CheckRequirementsOutput struct {
	Satisfied *bool
	Unmet     []*rubika.LeafResult
}

// GetCombatMetricsInput defines the request for the nano combat pipeline
type GetCombatMetricsInput struct {
	DraftID  string
	NanoAOID int64
	// Modifiers optionally describes the assumed target and damage bonuses
	Modifiers *rubika.DamageModifierSet
}

// GetCombatMetricsOutput defines the response for the nano combat pipeline
type GetCombatMetricsOutput struct {
	Nano    *rubika.NanoProgram
	Metrics *rubika.CombatMetrics
}

// ScoreItemsInput defines the request for batch item scoring
type ScoreItemsInput struct {
	DraftID string
	AOIDs   []int64
}

// ItemScore is the requirement verdict for one scored item. Error carries
// a per-item lookup failure; the batch itself still succeeds.
type ItemScore struct {
	AOID      int64
	Name      string
	QL        int32
	Satisfied *bool
	Unmet     []*rubika.LeafResult
	Error     string
}

// ScoreItemsOutput defines the response for batch item scoring
type ScoreItemsOutput struct {
	Scores []*ItemScore
}
