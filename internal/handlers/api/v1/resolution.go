package v1

import (
	"net/http"

	"github.com/rubika-tools/planner-api/internal/entities/rubika"
	buildsvc "github.com/rubika-tools/planner-api/internal/services/build"
)

type skillsResponse struct {
	Abilities map[rubika.StatID]skillPayload `json:"abilities"`
	Skills    map[rubika.StatID]skillPayload `json:"skills"`
	// Snapshot carries every resolved stat total, including derived stats
	// absent from the ability and skill maps.
	Snapshot rubika.StatSnapshot `json:"snapshot"`
}

type ipBudgetResponse struct {
	TitleLevel  int32                   `json:"title_level"`
	TotalIP     int64                   `json:"total_ip"`
	SpentIP     int64                   `json:"spent_ip"`
	AvailableIP int64                   `json:"available_ip"`
	PerSkill    map[rubika.StatID]int64 `json:"per_skill,omitempty"`
}

// checkResponse reports a requirement verdict. Satisfied is null when the
// definition carries only display criteria.
type checkResponse struct {
	Satisfied *bool               `json:"satisfied"`
	Unmet     []leafResultPayload `json:"unmet,omitempty"`
}

type metricsResponse struct {
	Nano    nanoPayload    `json:"nano"`
	Metrics metricsPayload `json:"metrics"`
}

type scoreResponse struct {
	Scores []itemScorePayload `json:"scores"`
}

func (h *Handler) getSkills(w http.ResponseWriter, r *http.Request) {
	out, err := h.buildService.GetSkills(r.Context(), &buildsvc.GetSkillsInput{
		DraftID: r.PathValue("id"),
	})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, skillsResponse{
		Abilities: toSkillPayloads(out.Abilities),
		Skills:    toSkillPayloads(out.Skills),
		Snapshot:  out.Snapshot,
	})
}

func (h *Handler) getIPBudget(w http.ResponseWriter, r *http.Request) {
	out, err := h.buildService.GetIPBudget(r.Context(), &buildsvc.GetIPBudgetInput{
		DraftID: r.PathValue("id"),
	})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, ipBudgetResponse{
		TitleLevel:  out.TitleLevel,
		TotalIP:     out.TotalIP,
		SpentIP:     out.SpentIP,
		AvailableIP: out.AvailableIP,
		PerSkill:    out.PerSkill,
	})
}

func (h *Handler) checkRequirements(w http.ResponseWriter, r *http.Request) {
	itemAOID, err := queryInt64(r, "item")
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	nanoAOID, err := queryInt64(r, "nano")
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	out, err := h.buildService.CheckRequirements(r.Context(), &buildsvc.CheckRequirementsInput{
		DraftID:  r.PathValue("id"),
		ItemAOID: itemAOID,
		NanoAOID: nanoAOID,
	})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, checkResponse{
		Satisfied: out.Satisfied,
		Unmet:     toLeafResultPayloads(out.Unmet),
	})
}

func (h *Handler) getCombatMetrics(w http.ResponseWriter, r *http.Request) {
	nanoAOID, err := queryInt64(r, "nano")
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	generic, err := queryInt32(r, "generic_modifier")
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	efficiency, err := queryInt32(r, "efficiency_percent")
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	targetAC, err := queryInt32(r, "target_ac")
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	input := &buildsvc.GetCombatMetricsInput{
		DraftID:  r.PathValue("id"),
		NanoAOID: nanoAOID,
	}
	if generic != 0 || efficiency != 0 || targetAC != 0 {
		input.Modifiers = &rubika.DamageModifierSet{
			GenericModifier:   generic,
			EfficiencyPercent: efficiency,
			TargetAC:          targetAC,
		}
	}

	out, err := h.buildService.GetCombatMetrics(r.Context(), input)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, metricsResponse{
		Nano:    toNanoPayload(out.Nano),
		Metrics: toMetricsPayload(out.Metrics),
	})
}

func (h *Handler) scoreItems(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(r.Context(), w, err)
		return
	}

	out, err := h.buildService.ScoreItems(r.Context(), &buildsvc.ScoreItemsInput{
		DraftID: r.PathValue("id"),
		AOIDs:   req.AOIDs,
	})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, scoreResponse{Scores: toItemScorePayloads(out.Scores)})
}
