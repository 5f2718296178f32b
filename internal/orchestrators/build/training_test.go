package build_test

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/rubika-tools/planner-api/internal/engine"
	"github.com/rubika-tools/planner-api/internal/entities/rubika"
	"github.com/rubika-tools/planner-api/internal/errors"
	buildrepo "github.com/rubika-tools/planner-api/internal/repositories/build"
	buildsvc "github.com/rubika-tools/planner-api/internal/services/build"
)

func (s *OrchestratorTestSuite) TestTrainSkill_Success() {
	draft := s.completeDraft()
	s.expectGet(draft)

	s.mockEngine.EXPECT().
		CalculateTrainingCost(s.ctx, &engine.CalculateTrainingCostInput{
			Character: &draft.Character,
			StatID:    rubika.SkillMaterialCreation,
			FromValue: 200,
			ToValue:   250,
		}).
		Return(&engine.CalculateTrainingCostOutput{Cost: 3200, EffectiveCap: 300}, nil)

	// Budget before the mutation for the over-budget check, after for
	// the reported ledger
	s.mockEngine.EXPECT().
		CalculateIPBudget(s.ctx, gomock.Any()).
		Return(&engine.CalculateIPBudgetOutput{AvailableIP: 50000}, nil)
	s.expectSave()
	s.mockEngine.EXPECT().
		CalculateIPBudget(s.ctx, gomock.Any()).
		Return(&engine.CalculateIPBudgetOutput{TitleLevel: 3, TotalIP: 100000, SpentIP: 53200, AvailableIP: 46800}, nil)

	output, err := s.orchestrator.TrainSkill(s.ctx, &buildsvc.TrainSkillInput{
		DraftID: draft.ID,
		StatID:  rubika.SkillMaterialCreation,
		Points:  50,
	})

	s.Require().NoError(err)
	s.Empty(output.Warnings)
	s.Equal(int64(3200), output.Cost)
	s.Equal(int64(53200), output.SpentIP)
	s.Equal(int64(46800), output.AvailableIP)
	s.Equal(int32(300), output.EffectiveCap)
	s.Equal(int32(250), output.Draft.Character.Trained[rubika.SkillMaterialCreation])
}

func (s *OrchestratorTestSuite) TestTrainSkill_WarnsButStillTrains() {
	draft := s.completeDraft()
	s.expectGet(draft)

	s.mockEngine.EXPECT().
		CalculateTrainingCost(s.ctx, gomock.Any()).
		Return(&engine.CalculateTrainingCostOutput{Cost: 8000, EffectiveCap: 220, ExceedsCap: true}, nil)
	s.mockEngine.EXPECT().
		CalculateIPBudget(s.ctx, gomock.Any()).
		Return(&engine.CalculateIPBudgetOutput{AvailableIP: 5000}, nil)
	s.expectSave()
	s.mockEngine.EXPECT().
		CalculateIPBudget(s.ctx, gomock.Any()).
		Return(&engine.CalculateIPBudgetOutput{SpentIP: 60000, AvailableIP: -3000}, nil)

	output, err := s.orchestrator.TrainSkill(s.ctx, &buildsvc.TrainSkillInput{
		DraftID: draft.ID,
		StatID:  rubika.SkillMaterialCreation,
		Points:  100,
	})

	s.Require().NoError(err)
	s.Require().Len(output.Warnings, 2)
	s.Equal(buildsvc.WarningOverCap, output.Warnings[0].Code)
	s.Contains(output.Warnings[0].Message, "past the effective cap of 220")
	s.Equal(buildsvc.WarningOverBudget, output.Warnings[1].Code)
	s.Contains(output.Warnings[1].Message, "8000 IP but only 5000")

	// What-if planning keeps the points anyway
	s.Equal(int32(300), output.Draft.Character.Trained[rubika.SkillMaterialCreation])
}

func (s *OrchestratorTestSuite) TestTrainSkill_Refund() {
	draft := s.completeDraft()
	s.expectGet(draft)

	// Refunds are priced over the range being given back
	s.mockEngine.EXPECT().
		CalculateTrainingCost(s.ctx, &engine.CalculateTrainingCostInput{
			Character: &draft.Character,
			StatID:    rubika.SkillMaterialCreation,
			FromValue: 150,
			ToValue:   200,
		}).
		Return(&engine.CalculateTrainingCostOutput{Cost: 2800, EffectiveCap: 300}, nil)
	s.expectSave()
	s.mockEngine.EXPECT().
		CalculateIPBudget(s.ctx, gomock.Any()).
		Return(&engine.CalculateIPBudgetOutput{SpentIP: 40000, AvailableIP: 60000}, nil)

	output, err := s.orchestrator.TrainSkill(s.ctx, &buildsvc.TrainSkillInput{
		DraftID: draft.ID,
		StatID:  rubika.SkillMaterialCreation,
		Points:  -50,
	})

	s.Require().NoError(err)
	s.Empty(output.Warnings)
	s.Equal(int64(-2800), output.Cost)
	s.Equal(int32(150), output.Draft.Character.Trained[rubika.SkillMaterialCreation])
}

func (s *OrchestratorTestSuite) TestTrainSkill_RemoveAllClearsEntry() {
	draft := s.completeDraft()
	s.expectGet(draft)

	s.mockEngine.EXPECT().
		CalculateTrainingCost(s.ctx, gomock.Any()).
		Return(&engine.CalculateTrainingCostOutput{Cost: 5000, EffectiveCap: 300}, nil)

	s.mockBuildRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input buildrepo.UpdateInput) (*buildrepo.UpdateOutput, error) {
			_, ok := input.Draft.Character.Trained[rubika.SkillMaterialCreation]
			s.False(ok)

			// The only skill is gone, abilities remain
			s.True(input.Draft.Progress.HasAbilities())
			s.False(input.Draft.Progress.HasSkills())
			s.Equal(rubika.PlanningStepSkills, input.Draft.Progress.CurrentStep)
			return &buildrepo.UpdateOutput{Draft: input.Draft}, nil
		})
	s.mockEngine.EXPECT().InvalidateCache()
	s.mockEngine.EXPECT().
		CalculateIPBudget(s.ctx, gomock.Any()).
		Return(&engine.CalculateIPBudgetOutput{SpentIP: 10000, AvailableIP: 90000}, nil)

	output, err := s.orchestrator.TrainSkill(s.ctx, &buildsvc.TrainSkillInput{
		DraftID: draft.ID,
		StatID:  rubika.SkillMaterialCreation,
		Points:  -200,
	})

	s.Require().NoError(err)
	s.Equal(int64(-5000), output.Cost)
}

func (s *OrchestratorTestSuite) TestTrainSkill_TooManyRemoved() {
	draft := s.completeDraft()
	s.expectGet(draft)

	output, err := s.orchestrator.TrainSkill(s.ctx, &buildsvc.TrainSkillInput{
		DraftID: draft.ID,
		StatID:  rubika.SkillMaterialCreation,
		Points:  -300,
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "only 200 trained")
}

func (s *OrchestratorTestSuite) TestTrainSkill_UntrainableStat() {
	output, err := s.orchestrator.TrainSkill(s.ctx, &buildsvc.TrainSkillInput{
		DraftID: "build_abc123",
		StatID:  rubika.StatLevel,
		Points:  10,
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "not trainable")
}

func (s *OrchestratorTestSuite) TestTrainSkill_ZeroPoints() {
	output, err := s.orchestrator.TrainSkill(s.ctx, &buildsvc.TrainSkillInput{
		DraftID: "build_abc123",
		StatID:  rubika.SkillMaterialCreation,
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "points")
}

func (s *OrchestratorTestSuite) TestTrainSkill_IncompleteIdentity() {
	draft := &rubika.BuildDraft{ID: "build_fresh1", PlayerID: "player-456"}
	s.expectGet(draft)

	s.mockEngine.EXPECT().
		CalculateTrainingCost(s.ctx, gomock.Any()).
		Return(nil, errors.InvalidArgument("breed is not set"))

	output, err := s.orchestrator.TrainSkill(s.ctx, &buildsvc.TrainSkillInput{
		DraftID: draft.ID,
		StatID:  rubika.SkillMaterialCreation,
		Points:  50,
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestResetSkill_Success() {
	draft := s.completeDraft()
	s.expectGet(draft)

	s.mockEngine.EXPECT().
		CalculateTrainingCost(s.ctx, &engine.CalculateTrainingCostInput{
			Character: &draft.Character,
			StatID:    rubika.SkillMaterialCreation,
			FromValue: 0,
			ToValue:   200,
		}).
		Return(&engine.CalculateTrainingCostOutput{Cost: 5000, EffectiveCap: 300}, nil)
	s.expectSave()

	output, err := s.orchestrator.ResetSkill(s.ctx, &buildsvc.ResetSkillInput{
		DraftID: draft.ID,
		StatID:  rubika.SkillMaterialCreation,
	})

	s.Require().NoError(err)
	s.Equal(int64(5000), output.Refunded)
	_, ok := output.Draft.Character.Trained[rubika.SkillMaterialCreation]
	s.False(ok)
}

func (s *OrchestratorTestSuite) TestResetSkill_NothingTrained() {
	draft := s.completeDraft()
	s.expectGet(draft)

	// No engine call and no save for an untrained stat
	output, err := s.orchestrator.ResetSkill(s.ctx, &buildsvc.ResetSkillInput{
		DraftID: draft.ID,
		StatID:  rubika.SkillPistol,
	})

	s.Require().NoError(err)
	s.Equal(int64(0), output.Refunded)
	s.Equal(draft, output.Draft)
}
