// Package build implements the build planning orchestrator
package build

import (
	"context"
	"fmt"
	"sort"

	"github.com/rubika-tools/planner-api/internal/clients/catalog"
	"github.com/rubika-tools/planner-api/internal/engine"
	"github.com/rubika-tools/planner-api/internal/entities/rubika"
	"github.com/rubika-tools/planner-api/internal/errors"
	"github.com/rubika-tools/planner-api/internal/pkg/idgen"
	buildrepo "github.com/rubika-tools/planner-api/internal/repositories/build"
	buildsvc "github.com/rubika-tools/planner-api/internal/services/build"
)

const totalPlanningSteps = 5

// Config holds the dependencies for the build orchestrator
type Config struct {
	BuildRepo   buildrepo.Repository
	Engine      engine.Engine
	Catalog     catalog.Client
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.BuildRepo == nil {
		vb.RequiredField("BuildRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Orchestrator implements the build.Service interface
type Orchestrator struct {
	buildRepo   buildrepo.Repository
	engine      engine.Engine
	catalog     catalog.Client
	idGenerator idgen.Generator
}

// New creates a new build orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		buildRepo:   cfg.BuildRepo,
		engine:      cfg.Engine,
		catalog:     cfg.Catalog,
		idGenerator: cfg.IDGenerator,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ buildsvc.Service = (*Orchestrator)(nil)

// Draft lifecycle methods

// CreateDraft creates a new build draft
func (o *Orchestrator) CreateDraft(ctx context.Context, input *buildsvc.CreateDraftInput) (*buildsvc.CreateDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("playerID", input.PlayerID, vb)
	if init := input.InitialData; init != nil {
		validateIdentityFields(init.Breed, init.Profession, init.Level, vb)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	draft := &rubika.BuildDraft{
		ID:       o.idGenerator.Generate(),
		PlayerID: input.PlayerID,
		Notes:    input.Notes,
	}

	// Seed identity fields if provided. Everything else starts empty;
	// engine-backed operations stay unavailable until identity completes.
	if init := input.InitialData; init != nil {
		draft.Character.Name = init.Name
		draft.Character.Breed = init.Breed
		draft.Character.Profession = init.Profession
		draft.Character.Level = init.Level
	}
	draft.Progress = o.calculateProgress(draft)

	created, err := o.buildRepo.Create(ctx, buildrepo.CreateInput{Draft: draft})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create draft")
	}

	return &buildsvc.CreateDraftOutput{Draft: created.Draft}, nil
}

// GetDraft retrieves a build draft by ID
func (o *Orchestrator) GetDraft(ctx context.Context, input *buildsvc.GetDraftInput) (*buildsvc.GetDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("draftID", input.DraftID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	draft, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	return &buildsvc.GetDraftOutput{Draft: draft}, nil
}

// ListDrafts retrieves all of a player's build drafts
func (o *Orchestrator) ListDrafts(ctx context.Context, input *buildsvc.ListDraftsInput) (*buildsvc.ListDraftsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("playerID", input.PlayerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	listed, err := o.buildRepo.ListByPlayerID(ctx, buildrepo.ListByPlayerIDInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list drafts")
	}

	return &buildsvc.ListDraftsOutput{Drafts: listed.Drafts}, nil
}

// DeleteDraft removes a build draft
func (o *Orchestrator) DeleteDraft(ctx context.Context, input *buildsvc.DeleteDraftInput) (*buildsvc.DeleteDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("draftID", input.DraftID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if _, err := o.buildRepo.Delete(ctx, buildrepo.DeleteInput{ID: input.DraftID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete draft")
	}

	return &buildsvc.DeleteDraftOutput{}, nil
}

// SetIdentity updates the identity fields of a draft. Breed and profession
// are immutable once set; a level change revalidates trained points against
// the caps at the new level and reports what no longer fits.
func (o *Orchestrator) SetIdentity(ctx context.Context, input *buildsvc.SetIdentityInput) (*buildsvc.SetIdentityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("draftID", input.DraftID, vb)
	validateIdentityFields(input.Breed, input.Profession, input.Level, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	draft, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}
	char := &draft.Character

	if input.Name != "" {
		char.Name = input.Name
	}
	if input.Breed != rubika.BreedUnknown {
		if char.Breed != rubika.BreedUnknown && char.Breed != input.Breed {
			return nil, errors.FailedPrecondition("breed is immutable once set")
		}
		char.Breed = input.Breed
	}
	if input.Profession != rubika.ProfessionUnknown {
		if char.Profession != rubika.ProfessionUnknown && char.Profession != input.Profession {
			return nil, errors.FailedPrecondition("profession is immutable once set")
		}
		char.Profession = input.Profession
	}

	var warnings []buildsvc.Warning
	if input.Level != 0 && input.Level != char.Level {
		char.Level = input.Level
		warnings, err = o.capWarnings(ctx, char)
		if err != nil {
			return nil, err
		}
	}

	saved, err := o.saveDraft(ctx, draft)
	if err != nil {
		return nil, err
	}

	return &buildsvc.SetIdentityOutput{Draft: saved, Warnings: warnings}, nil
}

// capWarnings reports every trained stat whose points no longer fit under
// the caps. Values are left as they are, the planner decides what to cut.
func (o *Orchestrator) capWarnings(ctx context.Context, char *rubika.Character) ([]buildsvc.Warning, error) {
	ids := make([]rubika.StatID, 0, len(char.Trained))
	for id, points := range char.Trained {
		if points > 0 {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var warnings []buildsvc.Warning
	for _, id := range ids {
		points := char.Trained[id]
		out, err := o.engine.CalculateTrainingCost(ctx, &engine.CalculateTrainingCostInput{
			Character: char,
			StatID:    id,
			FromValue: 0,
			ToValue:   points,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "revalidating stat %d", id)
		}
		if out.ExceedsCap {
			warnings = append(warnings, buildsvc.Warning{
				Code:   buildsvc.WarningOverCap,
				StatID: id,
				Message: fmt.Sprintf("stat %d has %d trained points but the cap at level %d is %d",
					id, points, char.Level, out.EffectiveCap),
			})
		}
	}
	return warnings, nil
}

// getDraft loads a draft through the repository. Wrap keeps the repo's
// error code, a missing draft still reads as not found.
func (o *Orchestrator) getDraft(ctx context.Context, draftID string) (*rubika.BuildDraft, error) {
	got, err := o.buildRepo.Get(ctx, buildrepo.GetInput{ID: draftID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get draft").
			WithMeta("draft_id", draftID)
	}
	return got.Draft, nil
}

// saveDraft recomputes planning progress, persists the draft, and drops the
// engine's requirement memos. Every mutation funnels through here.
func (o *Orchestrator) saveDraft(ctx context.Context, draft *rubika.BuildDraft) (*rubika.BuildDraft, error) {
	draft.Progress = o.calculateProgress(draft)

	updated, err := o.buildRepo.Update(ctx, buildrepo.UpdateInput{Draft: draft})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update draft")
	}

	o.engine.InvalidateCache()
	return updated.Draft, nil
}

func (o *Orchestrator) calculateProgress(draft *rubika.BuildDraft) rubika.PlanningProgress {
	progress := draft.Progress
	char := &draft.Character

	hasIdentity := char.Name != "" && char.Breed != rubika.BreedUnknown &&
		char.Profession != rubika.ProfessionUnknown && char.Level > 0
	hasAbilities := false
	hasSkills := false
	for id, points := range char.Trained {
		if points <= 0 {
			continue
		}
		if rubika.IsAbility(id) {
			hasAbilities = true
		} else {
			hasSkills = true
		}
	}

	progress.SetStep(rubika.ProgressStepIdentity, hasIdentity)
	progress.SetStep(rubika.ProgressStepAbilities, hasAbilities)
	progress.SetStep(rubika.ProgressStepSkills, hasSkills)
	progress.SetStep(rubika.ProgressStepEquipment, len(char.Equipment) > 0)
	progress.SetStep(rubika.ProgressStepBuffs, len(char.Buffs) > 0 || len(char.BuffLines) > 0)

	// Count set bits in StepsCompleted
	completed := 0
	steps := progress.StepsCompleted
	for steps > 0 {
		if steps&1 == 1 {
			completed++
		}
		steps >>= 1
	}
	progress.CompletionPercentage = int32((completed * 100) / totalPlanningSteps) // #nosec G115

	// Determine the next step by checking each flag in order
	switch {
	case !progress.HasIdentity():
		progress.CurrentStep = rubika.PlanningStepIdentity
	case !progress.HasAbilities():
		progress.CurrentStep = rubika.PlanningStepAbilities
	case !progress.HasSkills():
		progress.CurrentStep = rubika.PlanningStepSkills
	case !progress.HasEquipment():
		progress.CurrentStep = rubika.PlanningStepEquipment
	case !progress.HasBuffs():
		progress.CurrentStep = rubika.PlanningStepBuffs
	default:
		progress.CurrentStep = rubika.PlanningStepComplete
	}

	return progress
}

// validateIdentityFields range-checks optional identity values, zero means
// unset and passes.
func validateIdentityFields(breed rubika.Breed, profession rubika.Profession, level int32, vb *errors.ValidationBuilder) {
	if breed != rubika.BreedUnknown && (breed < rubika.BreedSolitus || breed > rubika.BreedAtrox) {
		vb.Fieldf("breed", "unknown breed %d", breed)
	}
	if profession != rubika.ProfessionUnknown &&
		(profession < rubika.ProfessionSoldier || profession > rubika.ProfessionShade) {
		vb.Fieldf("profession", "unknown profession %d", profession)
	}
	if level != 0 && (level < rubika.MinLevel || level > rubika.MaxLevel) {
		vb.Fieldf("level", "level %d is outside %d..%d", level, rubika.MinLevel, rubika.MaxLevel)
	}
}
