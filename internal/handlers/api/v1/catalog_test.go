package v1_test

import (
	"net/http"

	"go.uber.org/mock/gomock"

	"github.com/rubika-tools/planner-api/internal/clients/catalog"
	"github.com/rubika-tools/planner-api/internal/entities/rubika"
	"github.com/rubika-tools/planner-api/internal/errors"
)

type itemJSON struct {
	AOID         int64  `json:"aoid"`
	Name         string `json:"name"`
	QL           int32  `json:"ql"`
	Slot         string `json:"slot"`
	Requirements []struct {
		Stat  int32 `json:"stat"`
		Op    int32 `json:"op"`
		Value int32 `json:"value"`
	} `json:"requirements"`
	Weapon *struct {
		AttackSkill int32 `json:"attack_skill"`
		AttackTime  int32 `json:"attack_time"`
		MinDamage   int32 `json:"min_damage"`
		MaxDamage   int32 `json:"max_damage"`
	} `json:"weapon"`
}

func sampleItem() *rubika.Item {
	return &rubika.Item{
		AOID: 204103,
		Name: "Customized Desert Reet",
		QL:   125,
		Slot: rubika.SlotRightHand,
		Requirements: []rubika.RawCriterion{
			{StatID: rubika.SkillPistol, Op: rubika.OpGreaterOrEqual, Value: 551},
		},
		Effects: []rubika.Effect{
			{Kind: rubika.EffectModifyStat, Trigger: rubika.TriggerWear, StatID: rubika.SkillPistol, Delta: 12},
		},
		Weapon: &rubika.WeaponData{
			AttackSkill:  rubika.SkillPistol,
			AttackTime:   120,
			RechargeTime: 100,
			MinDamage:    90,
			MaxDamage:    330,
			DamageType:   rubika.DamageEnergy,
		},
	}
}

func (s *HandlerTestSuite) TestSearchCatalog_Success() {
	s.mockCatalog.EXPECT().
		SearchByName(gomock.Any(), "reet").
		Return([]catalog.SearchResult{
			{Kind: catalog.KindItem, AOID: 204103, Name: "Customized Desert Reet", QL: 125},
			{Kind: catalog.KindNano, AOID: 301100, Name: "Crispy Chitin", QL: 125},
		}, nil)

	rec := s.do(http.MethodGet, "/api/v1/search?q=reet", nil)

	s.Equal(http.StatusOK, rec.Code)
	var body struct {
		Results []struct {
			Kind string `json:"kind"`
			AOID int64  `json:"aoid"`
			Name string `json:"name"`
			QL   int32  `json:"ql"`
		} `json:"results"`
	}
	s.decode(rec, &body)
	s.Require().Len(body.Results, 2)
	s.Equal("item", body.Results[0].Kind)
	s.Equal(int64(204103), body.Results[0].AOID)
	s.Equal("nano", body.Results[1].Kind)
}

func (s *HandlerTestSuite) TestSearchCatalog_Limit() {
	s.mockCatalog.EXPECT().
		SearchByName(gomock.Any(), "circle").
		Return([]catalog.SearchResult{
			{Kind: catalog.KindNano, AOID: 301120, Name: "Iron Circle", QL: 80},
			{Kind: catalog.KindNano, AOID: 301121, Name: "Superior Iron Circle", QL: 120},
		}, nil)

	rec := s.do(http.MethodGet, "/api/v1/search?q=circle&limit=1", nil)

	s.Equal(http.StatusOK, rec.Code)
	var body struct {
		Results []struct {
			AOID int64 `json:"aoid"`
		} `json:"results"`
	}
	s.decode(rec, &body)
	s.Require().Len(body.Results, 1)
	s.Equal(int64(301120), body.Results[0].AOID)
}

func (s *HandlerTestSuite) TestSearchCatalog_EmptyQuery() {
	s.mockCatalog.EXPECT().
		SearchByName(gomock.Any(), "").
		Return(nil, errors.InvalidArgument("query is required"))

	rec := s.do(http.MethodGet, "/api/v1/search", nil)

	s.Equal(http.StatusBadRequest, rec.Code)
	body := s.decodeError(rec)
	s.Contains(body.Message, "query")
}

func (s *HandlerTestSuite) TestListItems_All() {
	s.mockCatalog.EXPECT().
		ListItems(gomock.Any()).
		Return([]*rubika.Item{sampleItem()}, nil)

	rec := s.do(http.MethodGet, "/api/v1/items", nil)

	s.Equal(http.StatusOK, rec.Code)
	var body struct {
		Items []itemJSON `json:"items"`
	}
	s.decode(rec, &body)
	s.Require().Len(body.Items, 1)
	s.Equal("Customized Desert Reet", body.Items[0].Name)
	s.Equal("right_hand", body.Items[0].Slot)
}

func (s *HandlerTestSuite) TestListItems_BySlot() {
	s.mockCatalog.EXPECT().
		ListItemsBySlot(gomock.Any(), rubika.SlotRightHand).
		Return([]*rubika.Item{sampleItem()}, nil)

	rec := s.do(http.MethodGet, "/api/v1/items?slot=right_hand", nil)

	s.Equal(http.StatusOK, rec.Code)
	var body struct {
		Items []itemJSON `json:"items"`
	}
	s.decode(rec, &body)
	s.Require().Len(body.Items, 1)
	s.Equal(int64(204103), body.Items[0].AOID)
}

func (s *HandlerTestSuite) TestListItems_UnknownSlot() {
	s.mockCatalog.EXPECT().
		ListItemsBySlot(gomock.Any(), rubika.Slot("backpack")).
		Return(nil, errors.InvalidArgumentf("unknown slot %q", "backpack"))

	rec := s.do(http.MethodGet, "/api/v1/items?slot=backpack", nil)

	s.Equal(http.StatusBadRequest, rec.Code)
	body := s.decodeError(rec)
	s.Contains(body.Message, "backpack")
}

func (s *HandlerTestSuite) TestGetItem_Success() {
	s.mockCatalog.EXPECT().
		GetItem(gomock.Any(), int64(204103)).
		Return(sampleItem(), nil)

	rec := s.do(http.MethodGet, "/api/v1/items/204103", nil)

	s.Equal(http.StatusOK, rec.Code)
	var body itemJSON
	s.decode(rec, &body)
	s.Equal(int64(204103), body.AOID)
	s.Require().Len(body.Requirements, 1)
	s.Equal(int32(rubika.SkillPistol), body.Requirements[0].Stat)
	s.Equal(int32(551), body.Requirements[0].Value)
	s.Require().NotNil(body.Weapon)
	s.Equal(int32(rubika.SkillPistol), body.Weapon.AttackSkill)
	s.Equal(int32(330), body.Weapon.MaxDamage)
}

func (s *HandlerTestSuite) TestGetItem_NotFound() {
	s.mockCatalog.EXPECT().
		GetItem(gomock.Any(), int64(999999)).
		Return(nil, errors.NotFoundf("item %d not found", 999999))

	rec := s.do(http.MethodGet, "/api/v1/items/999999", nil)

	s.Equal(http.StatusNotFound, rec.Code)
	body := s.decodeError(rec)
	s.Equal("NOT_FOUND", body.Code)
}

func (s *HandlerTestSuite) TestGetItem_BadAOID() {
	rec := s.do(http.MethodGet, "/api/v1/items/reet", nil)

	s.Equal(http.StatusBadRequest, rec.Code)
	body := s.decodeError(rec)
	s.Contains(body.Message, "reet")
}

func (s *HandlerTestSuite) TestListNanos_Success() {
	s.mockCatalog.EXPECT().
		ListNanos(gomock.Any()).
		Return([]*rubika.NanoProgram{sampleNano()}, nil)

	rec := s.do(http.MethodGet, "/api/v1/nanos", nil)

	s.Equal(http.StatusOK, rec.Code)
	var body struct {
		Nanos []struct {
			AOID   int64  `json:"aoid"`
			Name   string `json:"name"`
			School int32  `json:"school"`
		} `json:"nanos"`
	}
	s.decode(rec, &body)
	s.Require().Len(body.Nanos, 1)
	s.Equal("Crispy Chitin", body.Nanos[0].Name)
	s.Equal(int32(rubika.SchoolMaterialCreation), body.Nanos[0].School)
}

func (s *HandlerTestSuite) TestGetNano_Success() {
	s.mockCatalog.EXPECT().
		GetNano(gomock.Any(), int64(301100)).
		Return(sampleNano(), nil)

	rec := s.do(http.MethodGet, "/api/v1/nanos/301100", nil)

	s.Equal(http.StatusOK, rec.Code)
	var body struct {
		AOID     int64 `json:"aoid"`
		NanoCost int32 `json:"nano_cost"`
	}
	s.decode(rec, &body)
	s.Equal(int64(301100), body.AOID)
	s.Equal(int32(200), body.NanoCost)
}
