package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"adboard/internal/core/domain"
	"adboard/internal/core/port"
)

// Wire types. Field names follow the backend contract the original
// frontend consumed: summary and pagination blocks are camelCase, item
// records keep their snake_case columns, nested records are keyed by
// their type name.

type campaignSummaryDTO struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	LineItemCount   int     `json:"lineItemCount"`
	TotalBooked     float64 `json:"totalBooked"`
	TotalActual     float64 `json:"totalActual"`
	TotalAdjustment float64 `json:"totalAdjustment"`
}

type paginationDTO struct {
	CurrentPage     int  `json:"currentPage"`
	TotalPages      int  `json:"totalPages"`
	TotalItems      int  `json:"totalItems"`
	ItemsPerPage    int  `json:"itemsPerPage"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

type invoiceDTO struct {
	ID          int64     `json:"id"`
	LineItemID  int64     `json:"line_item_id"`
	Adjustments float64   `json:"adjustments"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type campaignDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type lineItemDTO struct {
	ID           int64        `json:"id"`
	CampaignID   int64        `json:"campaign_id"`
	Name         string       `json:"name"`
	BookedAmount float64      `json:"booked_amount"`
	ActualAmount float64      `json:"actual_amount"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
	Invoice      *invoiceDTO  `json:"Invoice,omitempty"`
	Campaign     *campaignDTO `json:"Campaign,omitempty"`
}

type campaignDetailDTO struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
	LineItems []lineItemDTO `json:"LineItems"`
}

type invoiceDetailDTO struct {
	invoiceDTO
	LineItem lineItemDTO `json:"LineItem"`
}

func toInvoiceDTO(inv domain.Invoice) invoiceDTO {
	return invoiceDTO{
		ID:          inv.ID,
		LineItemID:  inv.LineItemID,
		Adjustments: inv.Adjustments,
		CreatedAt:   inv.CreatedAt,
		UpdatedAt:   inv.UpdatedAt,
	}
}

func toCampaignDTO(c domain.Campaign) campaignDTO {
	return campaignDTO{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
}

func toLineItemDTO(li domain.LineItem) lineItemDTO {
	dto := lineItemDTO{
		ID:           li.ID,
		CampaignID:   li.CampaignID,
		Name:         li.Name,
		BookedAmount: li.BookedAmount,
		ActualAmount: li.ActualAmount,
		CreatedAt:    li.CreatedAt,
		UpdatedAt:    li.UpdatedAt,
	}
	if li.Invoice != nil {
		inv := toInvoiceDTO(*li.Invoice)
		dto.Invoice = &inv
	}
	return dto
}

// dataEnvelope wraps every response payload; lists add pagination.
type dataEnvelope struct {
	Data       any            `json:"data"`
	Pagination *paginationDTO `json:"pagination,omitempty"`
}

func (h *Handler) writeData(w http.ResponseWriter, data any, p *paginationDTO) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(dataEnvelope{Data: data, Pagination: p}); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps usecase failures onto status codes: ErrNotFound
// becomes 404, anything else a logged 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, port.ErrNotFound) {
		writeJSONError(w, http.StatusNotFound, "not found")
		return
	}
	h.logger.Error("request failed",
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)
	writeJSONError(w, http.StatusInternalServerError, "internal error")
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
