package v1

import (
	"net/http"

	"github.com/rubika-tools/planner-api/internal/entities/rubika"
)

type searchResponse struct {
	Results []searchResultPayload `json:"results"`
}

type listItemsResponse struct {
	Items []itemPayload `json:"items"`
}

type listNanosResponse struct {
	Nanos []nanoPayload `json:"nanos"`
}

func (h *Handler) searchCatalog(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt32(r, "limit")
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	results, err := h.catalog.SearchByName(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	if limit > 0 && int(limit) < len(results) {
		results = results[:limit]
	}

	payloads := make([]searchResultPayload, 0, len(results))
	for _, res := range results {
		payloads = append(payloads, searchResultPayload{
			Kind: string(res.Kind),
			AOID: res.AOID,
			Name: res.Name,
			QL:   res.QL,
		})
	}

	writeJSON(w, http.StatusOK, searchResponse{Results: payloads})
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	var (
		items []*rubika.Item
		err   error
	)
	if slot := r.URL.Query().Get("slot"); slot != "" {
		items, err = h.catalog.ListItemsBySlot(r.Context(), rubika.Slot(slot))
	} else {
		items, err = h.catalog.ListItems(r.Context())
	}
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	payloads := make([]itemPayload, 0, len(items))
	for _, item := range items {
		payloads = append(payloads, toItemPayload(item))
	}

	writeJSON(w, http.StatusOK, listItemsResponse{Items: payloads})
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	aoid, err := pathInt64(r, "aoid")
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	item, err := h.catalog.GetItem(r.Context(), aoid)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemPayload(item))
}

func (h *Handler) listNanos(w http.ResponseWriter, r *http.Request) {
	nanos, err := h.catalog.ListNanos(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	payloads := make([]nanoPayload, 0, len(nanos))
	for _, nano := range nanos {
		payloads = append(payloads, toNanoPayload(nano))
	}

	writeJSON(w, http.StatusOK, listNanosResponse{Nanos: payloads})
}

func (h *Handler) getNano(w http.ResponseWriter, r *http.Request) {
	aoid, err := pathInt64(r, "aoid")
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	nano, err := h.catalog.GetNano(r.Context(), aoid)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, toNanoPayload(nano))
}
