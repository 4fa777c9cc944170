package httpadapter

import "net/http"

// handleLineItemDetail serves a line item with its parent campaign and
// invoice when one exists.
func (h *Handler) handleLineItemDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	detail, err := h.svc.GetLineItem(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	dto := toLineItemDTO(detail.LineItem)
	campaign := toCampaignDTO(detail.Campaign)
	dto.Campaign = &campaign
	h.writeData(w, dto, nil)
}
