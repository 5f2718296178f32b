package v1_test

import (
	"net/http"

	"go.uber.org/mock/gomock"

	"github.com/rubika-tools/planner-api/internal/entities/rubika"
	"github.com/rubika-tools/planner-api/internal/errors"
	buildsvc "github.com/rubika-tools/planner-api/internal/services/build"
)

type leafResultJSON struct {
	Criterion struct {
		Stat  int32 `json:"stat"`
		Op    int32 `json:"op"`
		Value int32 `json:"value"`
	} `json:"criterion"`
	Current int32 `json:"current"`
	Met     bool  `json:"met"`
}

func (s *HandlerTestSuite) TestTrainSkill_Success() {
	draft := sampleDraft()
	draft.Character.Trained[rubika.SkillMaterialCreation] = 250

	s.mockBuildService.EXPECT().
		TrainSkill(gomock.Any(), &buildsvc.TrainSkillInput{
			DraftID: "build_abc123",
			StatID:  rubika.SkillMaterialCreation,
			Points:  50,
		}).
		Return(&buildsvc.TrainSkillOutput{
			Draft:        draft,
			Cost:         3200,
			SpentIP:      53200,
			AvailableIP:  46800,
			EffectiveCap: 300,
		}, nil)

	rec := s.do(http.MethodPost, "/api/v1/builds/build_abc123/train", map[string]any{
		"stat":   130,
		"points": 50,
	})

	s.Equal(http.StatusOK, rec.Code)
	var body struct {
		Draft        draftJSON     `json:"draft"`
		Cost         int64         `json:"cost"`
		SpentIP      int64         `json:"spent_ip"`
		AvailableIP  int64         `json:"available_ip"`
		EffectiveCap int32         `json:"effective_cap"`
		Warnings     []warningJSON `json:"warnings"`
	}
	s.decode(rec, &body)
	s.Equal(int64(3200), body.Cost)
	s.Equal(int64(53200), body.SpentIP)
	s.Equal(int64(46800), body.AvailableIP)
	s.Equal(int32(300), body.EffectiveCap)
	s.Equal(int32(250), body.Draft.Character.Trained["130"])
	s.Empty(body.Warnings)
}

func (s *HandlerTestSuite) TestTrainSkill_WarnsOverBudget() {
	s.mockBuildService.EXPECT().
		TrainSkill(gomock.Any(), &buildsvc.TrainSkillInput{
			DraftID: "build_abc123",
			StatID:  rubika.SkillMaterialCreation,
			Points:  100,
		}).
		Return(&buildsvc.TrainSkillOutput{
			Draft:        sampleDraft(),
			Cost:         8000,
			SpentIP:      58000,
			AvailableIP:  -3000,
			EffectiveCap: 300,
			Warnings: []buildsvc.Warning{{
				Code:    buildsvc.WarningOverBudget,
				Message: "training costs 8000 IP but only 5000 is available",
				StatID:  rubika.SkillMaterialCreation,
			}},
		}, nil)

	rec := s.do(http.MethodPost, "/api/v1/builds/build_abc123/train", map[string]any{
		"stat":   130,
		"points": 100,
	})

	s.Equal(http.StatusOK, rec.Code)
	var body struct {
		Warnings []warningJSON `json:"warnings"`
	}
	s.decode(rec, &body)
	s.Require().Len(body.Warnings, 1)
	s.Equal("over_budget", body.Warnings[0].Code)
}

func (s *HandlerTestSuite) TestResetSkill_Success() {
	draft := sampleDraft()
	delete(draft.Character.Trained, rubika.SkillMaterialCreation)

	s.mockBuildService.EXPECT().
		ResetSkill(gomock.Any(), &buildsvc.ResetSkillInput{
			DraftID: "build_abc123",
			StatID:  rubika.SkillMaterialCreation,
		}).
		Return(&buildsvc.ResetSkillOutput{Draft: draft, Refunded: 5000}, nil)

	rec := s.do(http.MethodDelete, "/api/v1/builds/build_abc123/train/130", nil)

	s.Equal(http.StatusOK, rec.Code)
	var body struct {
		Draft    draftJSON `json:"draft"`
		Refunded int64     `json:"refunded"`
	}
	s.decode(rec, &body)
	s.Equal(int64(5000), body.Refunded)
	s.NotContains(body.Draft.Character.Trained, "130")
}

func (s *HandlerTestSuite) TestResetSkill_BadStatSegment() {
	rec := s.do(http.MethodDelete, "/api/v1/builds/build_abc123/train/pistol", nil)

	s.Equal(http.StatusBadRequest, rec.Code)
	body := s.decodeError(rec)
	s.Equal("INVALID_ARGUMENT", body.Code)
	s.Contains(body.Message, "pistol")
}

func (s *HandlerTestSuite) TestEquipItem_Success() {
	draft := sampleDraft()
	draft.Character.Equipment = map[rubika.Slot]rubika.EquippedItem{
		rubika.SlotRightHand: {AOID: 204103, Name: "Customized Desert Reet", QL: 125},
	}

	s.mockBuildService.EXPECT().
		EquipItem(gomock.Any(), &buildsvc.EquipItemInput{
			DraftID: "build_abc123",
			AOID:    204103,
		}).
		Return(&buildsvc.EquipItemOutput{Draft: draft}, nil)

	rec := s.do(http.MethodPost, "/api/v1/builds/build_abc123/equip", map[string]any{
		"aoid": 204103,
	})

	s.Equal(http.StatusOK, rec.Code)
	var body struct {
		Draft struct {
			Character struct {
				Equipment map[string]struct {
					AOID int64  `json:"aoid"`
					Name string `json:"name"`
					QL   int32  `json:"ql"`
				} `json:"equipment"`
			} `json:"character"`
		} `json:"draft"`
		Unmet    []leafResultJSON `json:"unmet"`
		Warnings []warningJSON    `json:"warnings"`
	}
	s.decode(rec, &body)
	worn, ok := body.Draft.Character.Equipment["right_hand"]
	s.Require().True(ok)
	s.Equal(int64(204103), worn.AOID)
	s.Equal("Customized Desert Reet", worn.Name)
	s.Empty(body.Unmet)
	s.Empty(body.Warnings)
}

func (s *HandlerTestSuite) TestEquipItem_SlotOverride() {
	s.mockBuildService.EXPECT().
		EquipItem(gomock.Any(), &buildsvc.EquipItemInput{
			DraftID: "build_abc123",
			AOID:    204103,
			Slot:    rubika.SlotLeftHand,
		}).
		Return(&buildsvc.EquipItemOutput{Draft: sampleDraft()}, nil)

	rec := s.do(http.MethodPost, "/api/v1/builds/build_abc123/equip", map[string]any{
		"aoid": 204103,
		"slot": "left_hand",
	})

	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestEquipItem_UnmetWarns() {
	unmet := []*rubika.LeafResult{{
		Criterion: rubika.Criterion{
			StatID: rubika.SkillPistol,
			Op:     rubika.OpGreaterOrEqual,
			Value:  551,
		},
		Current: 320,
	}}

	s.mockBuildService.EXPECT().
		EquipItem(gomock.Any(), &buildsvc.EquipItemInput{
			DraftID: "build_abc123",
			AOID:    204103,
		}).
		Return(&buildsvc.EquipItemOutput{
			Draft: sampleDraft(),
			Unmet: unmet,
			Warnings: []buildsvc.Warning{{
				Code:    buildsvc.WarningRequirementsUnmet,
				Message: "item 204103 has 1 unmet requirements",
			}},
		}, nil)

	rec := s.do(http.MethodPost, "/api/v1/builds/build_abc123/equip", map[string]any{
		"aoid": 204103,
	})

	s.Equal(http.StatusOK, rec.Code)
	var body struct {
		Unmet    []leafResultJSON `json:"unmet"`
		Warnings []warningJSON    `json:"warnings"`
	}
	s.decode(rec, &body)
	s.Require().Len(body.Unmet, 1)
	s.Equal(int32(rubika.SkillPistol), body.Unmet[0].Criterion.Stat)
	s.Equal(int32(551), body.Unmet[0].Criterion.Value)
	s.Equal(int32(320), body.Unmet[0].Current)
	s.False(body.Unmet[0].Met)
	s.Require().Len(body.Warnings, 1)
	s.Equal("requirements_unmet", body.Warnings[0].Code)
}

func (s *HandlerTestSuite) TestUnequipItem_Success() {
	s.mockBuildService.EXPECT().
		UnequipItem(gomock.Any(), &buildsvc.UnequipItemInput{
			DraftID: "build_abc123",
			Slot:    rubika.SlotRightHand,
		}).
		Return(&buildsvc.UnequipItemOutput{Draft: sampleDraft()}, nil)

	rec := s.do(http.MethodDelete, "/api/v1/builds/build_abc123/equip/right_hand", nil)

	s.Equal(http.StatusOK, rec.Code)
	var body draftJSON
	s.decode(rec, &body)
	s.Equal("build_abc123", body.ID)
}

func (s *HandlerTestSuite) TestUnequipItem_EmptySlot() {
	s.mockBuildService.EXPECT().
		UnequipItem(gomock.Any(), &buildsvc.UnequipItemInput{
			DraftID: "build_abc123",
			Slot:    rubika.SlotHead,
		}).
		Return(nil, errors.NotFoundf("nothing equipped in slot %q", rubika.SlotHead))

	rec := s.do(http.MethodDelete, "/api/v1/builds/build_abc123/equip/head", nil)

	s.Equal(http.StatusNotFound, rec.Code)
	body := s.decodeError(rec)
	s.Equal("NOT_FOUND", body.Code)
}

func (s *HandlerTestSuite) TestApplyBuff_Success() {
	draft := sampleDraft()
	draft.Character.Buffs = []rubika.BuffEntry{{AOID: 301130, Name: "Matrix of Clarity"}}

	s.mockBuildService.EXPECT().
		ApplyBuff(gomock.Any(), &buildsvc.ApplyBuffInput{
			DraftID: "build_abc123",
			AOID:    301130,
		}).
		Return(&buildsvc.ApplyBuffOutput{Draft: draft}, nil)

	rec := s.do(http.MethodPost, "/api/v1/builds/build_abc123/buffs", map[string]any{
		"aoid": 301130,
	})

	s.Equal(http.StatusOK, rec.Code)
	var body struct {
		Draft struct {
			Character struct {
				Buffs []struct {
					AOID int64  `json:"aoid"`
					Name string `json:"name"`
				} `json:"buffs"`
			} `json:"character"`
		} `json:"draft"`
		Warnings []warningJSON `json:"warnings"`
	}
	s.decode(rec, &body)
	s.Require().Len(body.Draft.Character.Buffs, 1)
	s.Equal("Matrix of Clarity", body.Draft.Character.Buffs[0].Name)
}

func (s *HandlerTestSuite) TestApplyBuff_StrainReplaceWarns() {
	s.mockBuildService.EXPECT().
		ApplyBuff(gomock.Any(), &buildsvc.ApplyBuffInput{
			DraftID: "build_abc123",
			AOID:    301121,
		}).
		Return(&buildsvc.ApplyBuffOutput{
			Draft: sampleDraft(),
			Warnings: []buildsvc.Warning{{
				Code:    buildsvc.WarningBuffReplaced,
				Message: "Superior Iron Circle replaces Iron Circle in strain 42",
			}},
		}, nil)

	rec := s.do(http.MethodPost, "/api/v1/builds/build_abc123/buffs", map[string]any{
		"aoid": 301121,
	})

	s.Equal(http.StatusOK, rec.Code)
	var body struct {
		Warnings []warningJSON `json:"warnings"`
	}
	s.decode(rec, &body)
	s.Require().Len(body.Warnings, 1)
	s.Equal("buff_replaced", body.Warnings[0].Code)
}

func (s *HandlerTestSuite) TestRemoveBuff_Success() {
	s.mockBuildService.EXPECT().
		RemoveBuff(gomock.Any(), &buildsvc.RemoveBuffInput{
			DraftID: "build_abc123",
			AOID:    301130,
		}).
		Return(&buildsvc.RemoveBuffOutput{Draft: sampleDraft()}, nil)

	rec := s.do(http.MethodDelete, "/api/v1/builds/build_abc123/buffs/301130", nil)

	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestRemoveBuff_BadAOID() {
	rec := s.do(http.MethodDelete, "/api/v1/builds/build_abc123/buffs/clarity", nil)

	s.Equal(http.StatusBadRequest, rec.Code)
	body := s.decodeError(rec)
	s.Contains(body.Message, "clarity")
}

func (s *HandlerTestSuite) TestSetPerks_Success() {
	draft := sampleDraft()
	draft.Character.Perks = []rubika.PerkEntry{{ID: 12, Name: "Champion of Nano Combat", Level: 3}}

	s.mockBuildService.EXPECT().
		SetPerks(gomock.Any(), &buildsvc.SetPerksInput{
			DraftID: "build_abc123",
			Perks: []rubika.PerkEntry{{
				ID:    12,
				Name:  "Champion of Nano Combat",
				Level: 3,
				Effects: []rubika.Effect{{
					Kind:    rubika.EffectModifyStat,
					Trigger: rubika.TriggerWear,
					StatID:  rubika.SkillNanoInit,
					Delta:   40,
				}},
			}},
		}).
		Return(&buildsvc.SetPerksOutput{Draft: draft}, nil)

	rec := s.do(http.MethodPut, "/api/v1/builds/build_abc123/perks", map[string]any{
		"perks": []map[string]any{{
			"id":    12,
			"name":  "Champion of Nano Combat",
			"level": 3,
			"effects": []map[string]any{{
				"kind":    1,
				"trigger": 2,
				"stat":    149,
				"delta":   40,
			}},
		}},
	})

	s.Equal(http.StatusOK, rec.Code)
	var body draftJSON
	s.decode(rec, &body)
	s.Equal("build_abc123", body.ID)
}

func (s *HandlerTestSuite) TestSetBuffLines_Success() {
	draft := sampleDraft()
	draft.Character.BuffLines = map[rubika.BuffLine]int32{rubika.BuffLineCostReduction: 4}

	s.mockBuildService.EXPECT().
		SetBuffLines(gomock.Any(), &buildsvc.SetBuffLinesInput{
			DraftID: "build_abc123",
			Lines:   map[rubika.BuffLine]int32{rubika.BuffLineCostReduction: 4},
		}).
		Return(&buildsvc.SetBuffLinesOutput{Draft: draft}, nil)

	rec := s.do(http.MethodPut, "/api/v1/builds/build_abc123/buff-lines", map[string]any{
		"lines": map[string]int32{"cost_reduction": 4},
	})

	s.Equal(http.StatusOK, rec.Code)
	var body draftJSON
	s.decode(rec, &body)
	s.Equal(int32(4), body.Character.BuffLines["cost_reduction"])
}

func (s *HandlerTestSuite) TestSetBuffLines_UnknownLine() {
	s.mockBuildService.EXPECT().
		SetBuffLines(gomock.Any(), gomock.Any()).
		Return(nil, errors.InvalidArgument(`validation failed: lines: unknown buff line "hot_line"`))

	rec := s.do(http.MethodPut, "/api/v1/builds/build_abc123/buff-lines", map[string]any{
		"lines": map[string]int32{"hot_line": 6},
	})

	s.Equal(http.StatusBadRequest, rec.Code)
	body := s.decodeError(rec)
	s.Contains(body.Message, "hot_line")
}
