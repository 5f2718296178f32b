package v1

import (
	"net/http"

	"github.com/rubika-tools/planner-api/internal/entities/rubika"
	buildsvc "github.com/rubika-tools/planner-api/internal/services/build"
)

type listBuildsResponse struct {
	Builds []draftResponse `json:"builds"`
}

type identityResponse struct {
	Draft    draftResponse    `json:"draft"`
	Warnings []warningPayload `json:"warnings,omitempty"`
}

func (h *Handler) createBuild(w http.ResponseWriter, r *http.Request) {
	var req createBuildRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(r.Context(), w, err)
		return
	}

	input := &buildsvc.CreateDraftInput{
		PlayerID: req.PlayerID,
		Notes:    req.Notes,
	}
	if req.Character != nil {
		breed, err := parseBreed(req.Character.Breed)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}
		profession, err := parseProfession(req.Character.Profession)
		if err != nil {
			writeError(r.Context(), w, err)
			return
		}
		input.InitialData = &rubika.Character{
			Name:       req.Character.Name,
			Breed:      breed,
			Profession: profession,
			Level:      req.Character.Level,
		}
	}

	out, err := h.buildService.CreateDraft(r.Context(), input)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDraftResponse(out.Draft))
}

func (h *Handler) getBuild(w http.ResponseWriter, r *http.Request) {
	out, err := h.buildService.GetDraft(r.Context(), &buildsvc.GetDraftInput{
		DraftID: r.PathValue("id"),
	})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, toDraftResponse(out.Draft))
}

func (h *Handler) listBuilds(w http.ResponseWriter, r *http.Request) {
	out, err := h.buildService.ListDrafts(r.Context(), &buildsvc.ListDraftsInput{
		PlayerID: r.URL.Query().Get("player"),
	})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, listBuildsResponse{Builds: toDraftResponses(out.Drafts)})
}

func (h *Handler) deleteBuild(w http.ResponseWriter, r *http.Request) {
	_, err := h.buildService.DeleteDraft(r.Context(), &buildsvc.DeleteDraftInput{
		DraftID: r.PathValue("id"),
	})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setIdentity(w http.ResponseWriter, r *http.Request) {
	var req identityPayload
	if err := decodeJSON(r, &req); err != nil {
		writeError(r.Context(), w, err)
		return
	}

	breed, err := parseBreed(req.Breed)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	profession, err := parseProfession(req.Profession)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	out, err := h.buildService.SetIdentity(r.Context(), &buildsvc.SetIdentityInput{
		DraftID:    r.PathValue("id"),
		Name:       req.Name,
		Breed:      breed,
		Profession: profession,
		Level:      req.Level,
	})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, identityResponse{
		Draft:    toDraftResponse(out.Draft),
		Warnings: toWarningPayloads(out.Warnings),
	})
}
