package httpadapter

import (
	"encoding/json"
	"net/http"
)

// adjustmentRequest is the PATCH body for an invoice adjustment. A
// pointer keeps zero a valid, present value.
type adjustmentRequest struct {
	Adjustment *float64 `json:"adjustment" validate:"required"`
}

// handleInvoiceDetail serves an invoice with its line item and
// campaign.
func (h *Handler) handleInvoiceDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	detail, err := h.svc.GetInvoice(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	item := toLineItemDTO(detail.LineItem)
	campaign := toCampaignDTO(detail.Campaign)
	item.Campaign = &campaign
	item.Invoice = nil // the invoice is the payload itself
	h.writeData(w, invoiceDetailDTO{
		invoiceDTO: toInvoiceDTO(detail.Invoice),
		LineItem:   item,
	}, nil)
}

// handleUpdateAdjustment sets an invoice's adjustment value. The body
// must be `{"adjustment": <number>}`; the response carries the record
// as stored, which clients must adopt over the value they sent.
func (h *Handler) handleUpdateAdjustment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var req adjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "adjustment is required")
		return
	}

	inv, err := h.svc.UpdateInvoiceAdjustment(r.Context(), id, *req.Adjustment)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeData(w, toInvoiceDTO(*inv), nil)
}
