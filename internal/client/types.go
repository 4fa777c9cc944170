package client

import (
	"time"

	"adboard/internal/core/domain"
)

// Wire shapes as the backend serializes them, with validation tags
// enforced after decoding. Anything that fails validation is reported
// as a ParseError rather than leaking a half-populated struct into
// rendering code.

type wirePagination struct {
	CurrentPage     int  `json:"currentPage" validate:"min=1"`
	TotalPages      int  `json:"totalPages" validate:"min=0"`
	TotalItems      int  `json:"totalItems" validate:"min=0"`
	ItemsPerPage    int  `json:"itemsPerPage" validate:"min=1"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

type wireCampaignSummary struct {
	ID              int64   `json:"id" validate:"min=1"`
	Name            string  `json:"name" validate:"required"`
	LineItemCount   int     `json:"lineItemCount" validate:"min=0"`
	TotalBooked     float64 `json:"totalBooked"`
	TotalActual     float64 `json:"totalActual"`
	TotalAdjustment float64 `json:"totalAdjustment"`
}

type wireInvoice struct {
	ID          int64     `json:"id" validate:"min=1"`
	LineItemID  int64     `json:"line_item_id" validate:"min=1"`
	Adjustments float64   `json:"adjustments"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type wireCampaign struct {
	ID        int64     `json:"id" validate:"min=1"`
	Name      string    `json:"name" validate:"required"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type wireLineItem struct {
	ID           int64         `json:"id" validate:"min=1"`
	CampaignID   int64         `json:"campaign_id" validate:"min=1"`
	Name         string        `json:"name" validate:"required"`
	BookedAmount float64       `json:"booked_amount"`
	ActualAmount float64       `json:"actual_amount"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
	Invoice      *wireInvoice  `json:"Invoice"`
	Campaign     *wireCampaign `json:"Campaign"`
}

type wireCampaignDetail struct {
	ID        int64          `json:"id" validate:"min=1"`
	Name      string         `json:"name" validate:"required"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	LineItems []wireLineItem `json:"LineItems" validate:"dive"`
}

type wireInvoiceDetail struct {
	wireInvoice
	LineItem *wireLineItem `json:"LineItem" validate:"required"`
}

type campaignListResponse struct {
	// an empty page is valid, so no required on Data; the pagination
	// block is the shape witness for list responses
	Data       []wireCampaignSummary `json:"data" validate:"dive"`
	Pagination *wirePagination       `json:"pagination" validate:"required"`
}

type campaignDetailResponse struct {
	Data *wireCampaignDetail `json:"data" validate:"required"`
}

type lineItemDetailResponse struct {
	Data *wireLineItem `json:"data" validate:"required"`
}

type invoiceDetailResponse struct {
	Data *wireInvoiceDetail `json:"data" validate:"required"`
}

type invoiceResponse struct {
	Data *wireInvoice `json:"data" validate:"required"`
}

// Typed results handed to views.

// CampaignList is one page of campaign summaries with the
// backend-computed pagination block, which callers treat as
// authoritative.
type CampaignList struct {
	Items      []domain.CampaignSummary
	Pagination domain.Pagination
}

// CampaignDetail is a campaign with its owned line items.
type CampaignDetail struct {
	Campaign  domain.Campaign
	LineItems []domain.LineItem
}

// LineItemDetail is a line item with its parent campaign; the invoice
// rides on the line item when one exists.
type LineItemDetail struct {
	LineItem domain.LineItem
	Campaign domain.Campaign
}

// InvoiceDetail is an invoice with its line item and campaign.
type InvoiceDetail struct {
	Invoice  domain.Invoice
	LineItem domain.LineItem
	Campaign domain.Campaign
}

func (w wireInvoice) toDomain() domain.Invoice {
	return domain.Invoice{
		ID:          w.ID,
		LineItemID:  w.LineItemID,
		Adjustments: w.Adjustments,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

func (w wireCampaign) toDomain() domain.Campaign {
	return domain.Campaign{ID: w.ID, Name: w.Name, CreatedAt: w.CreatedAt, UpdatedAt: w.UpdatedAt}
}

func (w wireLineItem) toDomain() domain.LineItem {
	li := domain.LineItem{
		ID:           w.ID,
		CampaignID:   w.CampaignID,
		Name:         w.Name,
		BookedAmount: w.BookedAmount,
		ActualAmount: w.ActualAmount,
		CreatedAt:    w.CreatedAt,
		UpdatedAt:    w.UpdatedAt,
	}
	if w.Invoice != nil {
		inv := w.Invoice.toDomain()
		li.Invoice = &inv
	}
	return li
}

func (w wirePagination) toDomain() domain.Pagination {
	return domain.Pagination{
		CurrentPage:     w.CurrentPage,
		TotalPages:      w.TotalPages,
		TotalItems:      w.TotalItems,
		ItemsPerPage:    w.ItemsPerPage,
		HasNextPage:     w.HasNextPage,
		HasPreviousPage: w.HasPreviousPage,
	}
}
