package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// handleCampaignsList serves one page of campaign summaries. The
// optional `page` query parameter is 1-indexed and defaults to 1; a
// non-numeric value produces HTTP 400.
func (h *Handler) handleCampaignsList(w http.ResponseWriter, r *http.Request) {
	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid page")
			return
		}
		page = n
	}

	result, err := h.svc.ListCampaigns(r.Context(), page)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	items := make([]campaignSummaryDTO, 0, len(result.Items))
	for _, s := range result.Items {
		items = append(items, campaignSummaryDTO{
			ID:              s.ID,
			Name:            s.Name,
			LineItemCount:   s.LineItemCount,
			TotalBooked:     s.TotalBooked,
			TotalActual:     s.TotalActual,
			TotalAdjustment: s.TotalAdjustment,
		})
	}
	p := result.Pagination
	h.writeData(w, items, &paginationDTO{
		CurrentPage:     p.CurrentPage,
		TotalPages:      p.TotalPages,
		TotalItems:      p.TotalItems,
		ItemsPerPage:    p.ItemsPerPage,
		HasNextPage:     p.HasNextPage,
		HasPreviousPage: p.HasPreviousPage,
	})
}

// handleCampaignDetail serves a campaign with its line items and their
// invoices. Unknown ids produce HTTP 404.
func (h *Handler) handleCampaignDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	detail, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	dto := campaignDetailDTO{
		ID:        detail.Campaign.ID,
		Name:      detail.Campaign.Name,
		CreatedAt: detail.Campaign.CreatedAt,
		UpdatedAt: detail.Campaign.UpdatedAt,
		LineItems: make([]lineItemDTO, 0, len(detail.LineItems)),
	}
	for _, li := range detail.LineItems {
		dto.LineItems = append(dto.LineItems, toLineItemDTO(li))
	}
	h.writeData(w, dto, nil)
}

// pathID parses the {id} route parameter, answering HTTP 400 itself
// when the value is not a positive integer.
func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		writeJSONError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
