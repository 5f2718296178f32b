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

func (s *OrchestratorTestSuite) pistolItem() *rubika.Item {
	return &rubika.Item{
		AOID: 204103,
		Name: "Customized Desert Reet",
		QL:   125,
		Slot: rubika.SlotRightHand,
		Effects: []rubika.Effect{
			{Kind: rubika.EffectModifyStat, Trigger: rubika.TriggerWear, StatID: rubika.SkillPistol, Delta: 12},
		},
	}
}

func (s *OrchestratorTestSuite) pistolTree() rubika.CriteriaNode {
	return &rubika.LeafNode{
		Criterion: rubika.Criterion{StatID: rubika.SkillPistol, Op: rubika.OpGreaterOrEqual, Value: 551},
	}
}

func (s *OrchestratorTestSuite) TestEquipItem_Success() {
	draft := s.completeDraft()
	snapshot := rubika.StatSnapshot{rubika.SkillPistol: 560}
	tree := s.pistolTree()

	s.expectGet(draft)
	s.mockCatalog.EXPECT().GetItem(s.ctx, int64(204103)).Return(s.pistolItem(), nil)
	s.expectResolve(draft, snapshot)
	s.mockCatalog.EXPECT().GetItemRequirements(s.ctx, int64(204103)).Return(tree, nil)

	satisfied := true
	s.mockEngine.EXPECT().
		CheckRequirements(s.ctx, &engine.CheckRequirementsInput{
			Node:     tree,
			Snapshot: snapshot,
			SourceID: 204103,
		}).
		Return(&engine.CheckRequirementsOutput{Result: &satisfied}, nil)

	s.mockBuildRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input buildrepo.UpdateInput) (*buildrepo.UpdateOutput, error) {
			equipped := input.Draft.Character.Equipment[rubika.SlotRightHand]
			s.Equal(int64(204103), equipped.AOID)
			s.Equal("Customized Desert Reet", equipped.Name)
			s.Equal(int32(125), equipped.QL)

			// Effects ride along so stored builds resolve offline
			s.Require().Len(equipped.Effects, 1)
			s.Equal(rubika.SkillPistol, equipped.Effects[0].StatID)
			s.True(input.Draft.Progress.HasEquipment())
			return &buildrepo.UpdateOutput{Draft: input.Draft}, nil
		})
	s.mockEngine.EXPECT().InvalidateCache()

	output, err := s.orchestrator.EquipItem(s.ctx, &buildsvc.EquipItemInput{
		DraftID: draft.ID,
		AOID:    204103,
	})

	s.Require().NoError(err)
	s.Empty(output.Unmet)
	s.Empty(output.Warnings)
}

func (s *OrchestratorTestSuite) TestEquipItem_SlotOverride() {
	draft := s.completeDraft()
	s.expectGet(draft)
	s.mockCatalog.EXPECT().GetItem(s.ctx, int64(204103)).Return(s.pistolItem(), nil)
	s.expectResolve(draft, rubika.StatSnapshot{})
	s.mockCatalog.EXPECT().GetItemRequirements(s.ctx, int64(204103)).Return(nil, nil)
	s.expectSave()

	output, err := s.orchestrator.EquipItem(s.ctx, &buildsvc.EquipItemInput{
		DraftID: draft.ID,
		AOID:    204103,
		Slot:    rubika.SlotLeftHand,
	})

	s.Require().NoError(err)
	_, rightHand := output.Draft.Character.Equipment[rubika.SlotRightHand]
	s.False(rightHand)
	s.Equal(int64(204103), output.Draft.Character.Equipment[rubika.SlotLeftHand].AOID)
}

func (s *OrchestratorTestSuite) TestEquipItem_UnmetStillEquips() {
	draft := s.completeDraft()
	snapshot := rubika.StatSnapshot{rubika.SkillPistol: 320}
	tree := s.pistolTree()
	unmet := []*rubika.LeafResult{
		{
			Criterion: rubika.Criterion{StatID: rubika.SkillPistol, Op: rubika.OpGreaterOrEqual, Value: 551},
			Current:   320,
			Met:       false,
		},
	}

	s.expectGet(draft)
	s.mockCatalog.EXPECT().GetItem(s.ctx, int64(204103)).Return(s.pistolItem(), nil)
	s.expectResolve(draft, snapshot)
	s.mockCatalog.EXPECT().GetItemRequirements(s.ctx, int64(204103)).Return(tree, nil)

	failed := false
	s.mockEngine.EXPECT().
		CheckRequirements(s.ctx, gomock.Any()).
		Return(&engine.CheckRequirementsOutput{Result: &failed, Unmet: unmet}, nil)
	s.expectSave()

	output, err := s.orchestrator.EquipItem(s.ctx, &buildsvc.EquipItemInput{
		DraftID: draft.ID,
		AOID:    204103,
	})

	s.Require().NoError(err)
	s.Require().Len(output.Warnings, 1)
	s.Equal(buildsvc.WarningRequirementsUnmet, output.Warnings[0].Code)
	s.Contains(output.Warnings[0].Message, "item 204103")
	s.Require().Len(output.Unmet, 1)
	s.Equal(int32(320), output.Unmet[0].Current)

	// Planning is permissive, the item is worn regardless
	s.Equal(int64(204103), output.Draft.Character.Equipment[rubika.SlotRightHand].AOID)
}

func (s *OrchestratorTestSuite) TestEquipItem_ItemNotFound() {
	draft := s.completeDraft()
	s.expectGet(draft)
	s.mockCatalog.EXPECT().
		GetItem(s.ctx, int64(999999)).
		Return(nil, errors.NotFoundf("item %d not found in catalog", 999999))

	output, err := s.orchestrator.EquipItem(s.ctx, &buildsvc.EquipItemInput{
		DraftID: draft.ID,
		AOID:    999999,
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestEquipItem_BadSlot() {
	output, err := s.orchestrator.EquipItem(s.ctx, &buildsvc.EquipItemInput{
		DraftID: "build_abc123",
		AOID:    204103,
		Slot:    "backpack",
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "backpack")
}

func (s *OrchestratorTestSuite) TestUnequipItem_Success() {
	draft := s.completeDraft()
	draft.Character.Equipment = map[rubika.Slot]rubika.EquippedItem{
		rubika.SlotRightHand: {AOID: 204103, Name: "Customized Desert Reet", QL: 125},
	}
	s.expectGet(draft)

	s.mockBuildRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input buildrepo.UpdateInput) (*buildrepo.UpdateOutput, error) {
			s.Empty(input.Draft.Character.Equipment)
			s.False(input.Draft.Progress.HasEquipment())
			return &buildrepo.UpdateOutput{Draft: input.Draft}, nil
		})
	s.mockEngine.EXPECT().InvalidateCache()

	output, err := s.orchestrator.UnequipItem(s.ctx, &buildsvc.UnequipItemInput{
		DraftID: draft.ID,
		Slot:    rubika.SlotRightHand,
	})

	s.Require().NoError(err)
	s.Empty(output.Draft.Character.Equipment)
}

func (s *OrchestratorTestSuite) TestUnequipItem_EmptySlot() {
	draft := s.completeDraft()
	s.expectGet(draft)

	output, err := s.orchestrator.UnequipItem(s.ctx, &buildsvc.UnequipItemInput{
		DraftID: draft.ID,
		Slot:    rubika.SlotRightHand,
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsNotFound(err))
	s.Contains(err.Error(), "nothing equipped")
}

func (s *OrchestratorTestSuite) TestApplyBuff_Append() {
	draft := s.completeDraft()
	nano := &rubika.NanoProgram{
		AOID:   301130,
		Name:   "Matrix of Clarity",
		School: rubika.SchoolPsychologicalMods,
		Strain: 110,
		Effects: []rubika.Effect{
			{Kind: rubika.EffectModifyStat, Trigger: rubika.TriggerCast, StatID: rubika.StatPsychic, Delta: 25},
		},
	}

	s.expectGet(draft)
	s.mockCatalog.EXPECT().GetNano(s.ctx, int64(301130)).Return(nano, nil)
	s.expectResolve(draft, rubika.StatSnapshot{})
	s.mockCatalog.EXPECT().GetNanoRequirements(s.ctx, int64(301130)).Return(nil, nil)

	s.mockBuildRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input buildrepo.UpdateInput) (*buildrepo.UpdateOutput, error) {
			s.Require().Len(input.Draft.Character.Buffs, 1)
			s.Equal(int64(301130), input.Draft.Character.Buffs[0].AOID)
			s.Len(input.Draft.Character.Buffs[0].Effects, 1)
			s.True(input.Draft.Progress.HasBuffs())
			return &buildrepo.UpdateOutput{Draft: input.Draft}, nil
		})
	s.mockEngine.EXPECT().InvalidateCache()

	output, err := s.orchestrator.ApplyBuff(s.ctx, &buildsvc.ApplyBuffInput{
		DraftID: draft.ID,
		AOID:    301130,
	})

	s.Require().NoError(err)
	s.Empty(output.Warnings)
}

func (s *OrchestratorTestSuite) TestApplyBuff_SameStrainReplaces() {
	draft := s.completeDraft()
	draft.Character.Buffs = []rubika.BuffEntry{
		{AOID: 301120, Name: "Superior Iron Circle"},
	}
	incoming := &rubika.NanoProgram{AOID: 301121, Name: "Supreme Iron Circle", Strain: 42}

	s.expectGet(draft)
	s.mockCatalog.EXPECT().GetNano(s.ctx, int64(301121)).Return(incoming, nil)
	s.expectResolve(draft, rubika.StatSnapshot{})
	s.mockCatalog.EXPECT().GetNanoRequirements(s.ctx, int64(301121)).Return(nil, nil)
	s.mockCatalog.EXPECT().
		GetNano(s.ctx, int64(301120)).
		Return(&rubika.NanoProgram{AOID: 301120, Name: "Superior Iron Circle", Strain: 42}, nil)
	s.expectSave()

	output, err := s.orchestrator.ApplyBuff(s.ctx, &buildsvc.ApplyBuffInput{
		DraftID: draft.ID,
		AOID:    301121,
	})

	s.Require().NoError(err)
	s.Require().Len(output.Draft.Character.Buffs, 1)
	s.Equal(int64(301121), output.Draft.Character.Buffs[0].AOID)
	s.Require().Len(output.Warnings, 1)
	s.Equal(buildsvc.WarningBuffReplaced, output.Warnings[0].Code)
	s.Contains(output.Warnings[0].Message, "Superior Iron Circle")
}

func (s *OrchestratorTestSuite) TestApplyBuff_ReapplySameNano() {
	draft := s.completeDraft()
	draft.Character.Buffs = []rubika.BuffEntry{
		{AOID: 301120, Name: "Superior Iron Circle"},
	}
	nano := &rubika.NanoProgram{AOID: 301120, Name: "Superior Iron Circle", Strain: 42}

	s.expectGet(draft)
	s.mockCatalog.EXPECT().GetNano(s.ctx, int64(301120)).Return(nano, nil)
	s.expectResolve(draft, rubika.StatSnapshot{})
	s.mockCatalog.EXPECT().GetNanoRequirements(s.ctx, int64(301120)).Return(nil, nil)
	s.expectSave()

	output, err := s.orchestrator.ApplyBuff(s.ctx, &buildsvc.ApplyBuffInput{
		DraftID: draft.ID,
		AOID:    301120,
	})

	s.Require().NoError(err)
	s.Len(output.Draft.Character.Buffs, 1)
	s.Empty(output.Warnings)
}

func (s *OrchestratorTestSuite) TestApplyBuff_StaleEntrySkipped() {
	draft := s.completeDraft()
	draft.Character.Buffs = []rubika.BuffEntry{
		{AOID: 999, Name: "Removed From Catalog"},
	}
	incoming := &rubika.NanoProgram{AOID: 301121, Name: "Supreme Iron Circle", Strain: 42}

	s.expectGet(draft)
	s.mockCatalog.EXPECT().GetNano(s.ctx, int64(301121)).Return(incoming, nil)
	s.expectResolve(draft, rubika.StatSnapshot{})
	s.mockCatalog.EXPECT().GetNanoRequirements(s.ctx, int64(301121)).Return(nil, nil)
	s.mockCatalog.EXPECT().
		GetNano(s.ctx, int64(999)).
		Return(nil, errors.NotFoundf("nano %d not found in catalog", 999))
	s.expectSave()

	output, err := s.orchestrator.ApplyBuff(s.ctx, &buildsvc.ApplyBuffInput{
		DraftID: draft.ID,
		AOID:    301121,
	})

	s.Require().NoError(err)
	s.Len(output.Draft.Character.Buffs, 2)
}

func (s *OrchestratorTestSuite) TestRemoveBuff_Success() {
	draft := s.completeDraft()
	draft.Character.Buffs = []rubika.BuffEntry{
		{AOID: 301120, Name: "Superior Iron Circle"},
		{AOID: 301130, Name: "Matrix of Clarity"},
	}
	s.expectGet(draft)
	s.expectSave()

	output, err := s.orchestrator.RemoveBuff(s.ctx, &buildsvc.RemoveBuffInput{
		DraftID: draft.ID,
		AOID:    301120,
	})

	s.Require().NoError(err)
	s.Require().Len(output.Draft.Character.Buffs, 1)
	s.Equal(int64(301130), output.Draft.Character.Buffs[0].AOID)
}

func (s *OrchestratorTestSuite) TestRemoveBuff_NotApplied() {
	draft := s.completeDraft()
	s.expectGet(draft)

	output, err := s.orchestrator.RemoveBuff(s.ctx, &buildsvc.RemoveBuffInput{
		DraftID: draft.ID,
		AOID:    301120,
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsNotFound(err))
	s.Contains(err.Error(), "not applied")
}

func (s *OrchestratorTestSuite) TestSetPerks_Success() {
	draft := s.completeDraft()
	s.expectGet(draft)
	s.expectSave()

	perks := []rubika.PerkEntry{
		{
			ID:    1001,
			Name:  "Champion of Nano Combat",
			Level: 3,
			Effects: []rubika.Effect{
				{Kind: rubika.EffectModifyStat, StatID: rubika.SkillNanoInit, Delta: 30},
			},
		},
	}

	output, err := s.orchestrator.SetPerks(s.ctx, &buildsvc.SetPerksInput{
		DraftID: draft.ID,
		Perks:   perks,
	})

	s.Require().NoError(err)
	s.Require().Len(output.Draft.Character.Perks, 1)
	s.Equal("Champion of Nano Combat", output.Draft.Character.Perks[0].Name)
}

func (s *OrchestratorTestSuite) TestSetPerks_Invalid() {
	output, err := s.orchestrator.SetPerks(s.ctx, &buildsvc.SetPerksInput{
		DraftID: "build_abc123",
		Perks: []rubika.PerkEntry{
			{ID: 0, Name: "", Level: 0},
		},
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "perks[0].id")
	s.Contains(err.Error(), "perks[0].name")
	s.Contains(err.Error(), "perks[0].level")
}

func (s *OrchestratorTestSuite) TestSetBuffLines_Success() {
	draft := s.completeDraft()
	s.expectGet(draft)
	s.expectSave()

	output, err := s.orchestrator.SetBuffLines(s.ctx, &buildsvc.SetBuffLinesInput{
		DraftID: draft.ID,
		Lines: map[rubika.BuffLine]int32{
			rubika.BuffLineCostReduction: 4,
			rubika.BuffLineNanoDelta:     0,
		},
	})

	s.Require().NoError(err)

	// Zero levels drop out of the stored map
	s.Equal(map[rubika.BuffLine]int32{rubika.BuffLineCostReduction: 4}, output.Draft.Character.BuffLines)
	s.True(output.Draft.Progress.HasBuffs())
}

func (s *OrchestratorTestSuite) TestSetBuffLines_ClearAll() {
	draft := s.completeDraft()
	draft.Character.BuffLines = map[rubika.BuffLine]int32{rubika.BuffLineCostReduction: 4}
	s.expectGet(draft)
	s.expectSave()

	output, err := s.orchestrator.SetBuffLines(s.ctx, &buildsvc.SetBuffLinesInput{
		DraftID: draft.ID,
		Lines:   map[rubika.BuffLine]int32{},
	})

	s.Require().NoError(err)
	s.Nil(output.Draft.Character.BuffLines)
	s.False(output.Draft.Progress.HasBuffs())
}

func (s *OrchestratorTestSuite) TestSetBuffLines_UnknownLine() {
	output, err := s.orchestrator.SetBuffLines(s.ctx, &buildsvc.SetBuffLinesInput{
		DraftID: "build_abc123",
		Lines:   map[rubika.BuffLine]int32{"hot_line": 2},
	})

	s.Error(err)
	s.Nil(output)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "unknown buff line")
}
