package v1

import (
	"net/http"

	"github.com/rubika-tools/planner-api/internal/entities/rubika"
	buildsvc "github.com/rubika-tools/planner-api/internal/services/build"
)

type trainResponse struct {
	Draft        draftResponse    `json:"draft"`
	Cost         int64            `json:"cost"`
	SpentIP      int64            `json:"spent_ip"`
	AvailableIP  int64            `json:"available_ip"`
	EffectiveCap int32            `json:"effective_cap"`
	Warnings     []warningPayload `json:"warnings,omitempty"`
}

type resetResponse struct {
	Draft    draftResponse `json:"draft"`
	Refunded int64         `json:"refunded"`
}

// loadoutResponse is shared by equip and buff application, both of which
// report unmet requirements without blocking the change.
type loadoutResponse struct {
	Draft    draftResponse       `json:"draft"`
	Unmet    []leafResultPayload `json:"unmet,omitempty"`
	Warnings []warningPayload    `json:"warnings,omitempty"`
}

func (h *Handler) trainSkill(w http.ResponseWriter, r *http.Request) {
	var req trainRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(r.Context(), w, err)
		return
	}

	out, err := h.buildService.TrainSkill(r.Context(), &buildsvc.TrainSkillInput{
		DraftID: r.PathValue("id"),
		StatID:  req.Stat,
		Points:  req.Points,
	})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, trainResponse{
		Draft:        toDraftResponse(out.Draft),
		Cost:         out.Cost,
		SpentIP:      out.SpentIP,
		AvailableIP:  out.AvailableIP,
		EffectiveCap: out.EffectiveCap,
		Warnings:     toWarningPayloads(out.Warnings),
	})
}

func (h *Handler) resetSkill(w http.ResponseWriter, r *http.Request) {
	stat, err := pathInt32(r, "stat")
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	out, err := h.buildService.ResetSkill(r.Context(), &buildsvc.ResetSkillInput{
		DraftID: r.PathValue("id"),
		StatID:  rubika.StatID(stat),
	})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, resetResponse{
		Draft:    toDraftResponse(out.Draft),
		Refunded: out.Refunded,
	})
}

func (h *Handler) equipItem(w http.ResponseWriter, r *http.Request) {
	var req equipRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(r.Context(), w, err)
		return
	}

	out, err := h.buildService.EquipItem(r.Context(), &buildsvc.EquipItemInput{
		DraftID: r.PathValue("id"),
		AOID:    req.AOID,
		Slot:    rubika.Slot(req.Slot),
	})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, loadoutResponse{
		Draft:    toDraftResponse(out.Draft),
		Unmet:    toLeafResultPayloads(out.Unmet),
		Warnings: toWarningPayloads(out.Warnings),
	})
}

func (h *Handler) unequipItem(w http.ResponseWriter, r *http.Request) {
	out, err := h.buildService.UnequipItem(r.Context(), &buildsvc.UnequipItemInput{
		DraftID: r.PathValue("id"),
		Slot:    rubika.Slot(r.PathValue("slot")),
	})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, toDraftResponse(out.Draft))
}

func (h *Handler) applyBuff(w http.ResponseWriter, r *http.Request) {
	var req buffRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(r.Context(), w, err)
		return
	}

	out, err := h.buildService.ApplyBuff(r.Context(), &buildsvc.ApplyBuffInput{
		DraftID: r.PathValue("id"),
		AOID:    req.AOID,
	})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, loadoutResponse{
		Draft:    toDraftResponse(out.Draft),
		Unmet:    toLeafResultPayloads(out.Unmet),
		Warnings: toWarningPayloads(out.Warnings),
	})
}

func (h *Handler) removeBuff(w http.ResponseWriter, r *http.Request) {
	aoid, err := pathInt64(r, "aoid")
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	out, err := h.buildService.RemoveBuff(r.Context(), &buildsvc.RemoveBuffInput{
		DraftID: r.PathValue("id"),
		AOID:    aoid,
	})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, toDraftResponse(out.Draft))
}

func (h *Handler) setPerks(w http.ResponseWriter, r *http.Request) {
	var req perksRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(r.Context(), w, err)
		return
	}

	var perks []rubika.PerkEntry
	for _, p := range req.Perks {
		perks = append(perks, rubika.PerkEntry{
			ID:      p.ID,
			Name:    p.Name,
			Level:   p.Level,
			Effects: toEffects(p.Effects),
		})
	}

	out, err := h.buildService.SetPerks(r.Context(), &buildsvc.SetPerksInput{
		DraftID: r.PathValue("id"),
		Perks:   perks,
	})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, toDraftResponse(out.Draft))
}

func (h *Handler) setBuffLines(w http.ResponseWriter, r *http.Request) {
	var req buffLinesRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(r.Context(), w, err)
		return
	}

	out, err := h.buildService.SetBuffLines(r.Context(), &buildsvc.SetBuffLinesInput{
		DraftID: r.PathValue("id"),
		Lines:   req.Lines,
	})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, toDraftResponse(out.Draft))
}
