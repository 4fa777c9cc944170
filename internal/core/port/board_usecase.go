package port

import (
	"context"

	"adboard/internal/core/domain"
)

// BoardUseCase defines the business operations behind the order board.
// This interface is the primary port into the application domain; the
// HTTP adapter and tests program against it.
type BoardUseCase interface {
	// ListCampaigns returns one page of campaign summaries together
	// with the authoritative pagination block. Pages are 1-indexed;
	// values below 1 are clamped to the first page.
	ListCampaigns(ctx context.Context, page int) (*CampaignPage, error)

	// GetCampaign returns a campaign with its owned line items, each
	// carrying its invoice when one exists. Returns ErrNotFound when
	// no campaign has the given id.
	GetCampaign(ctx context.Context, id int64) (*CampaignDetail, error)

	// GetLineItem returns a line item with its parent campaign and
	// invoice, or ErrNotFound.
	GetLineItem(ctx context.Context, id int64) (*LineItemDetail, error)

	// GetInvoice returns an invoice with its line item and campaign,
	// or ErrNotFound.
	GetInvoice(ctx context.Context, id int64) (*InvoiceDetail, error)

	// UpdateInvoiceAdjustment sets the adjustment value of an invoice
	// and returns the stored record. Idempotent for equal values; the
	// returned record, not the submitted value, is the source of truth.
	UpdateInvoiceAdjustment(ctx context.Context, id int64, adjustment float64) (*domain.Invoice, error)

	// CampaignInvoiceRows returns the invoiced line items of a
	// campaign flattened for spreadsheet export.
	CampaignInvoiceRows(ctx context.Context, campaignID int64) ([]InvoiceRow, error)
}

// CampaignPage is one page of the campaign listing.
type CampaignPage struct {
	Items      []domain.CampaignSummary
	Pagination domain.Pagination
}

// CampaignDetail is a campaign with its owned line items.
type CampaignDetail struct {
	Campaign  domain.Campaign
	LineItems []domain.LineItem
}

// LineItemDetail is a line item joined with its parent campaign. The
// invoice, when present, rides on the line item itself.
type LineItemDetail struct {
	LineItem domain.LineItem
	Campaign domain.Campaign
}

// InvoiceDetail is an invoice joined with its line item and campaign.
type InvoiceDetail struct {
	Invoice  domain.Invoice
	LineItem domain.LineItem
	Campaign domain.Campaign
}

// InvoiceRow is one export row: a line item that carries an invoice,
// flattened with its campaign context.
type InvoiceRow struct {
	CampaignID   int64
	CampaignName string
	LineItemName string
	LineItemID   int64
	BookedAmount float64
	ActualAmount float64
	Adjustments  float64
	InvoiceID    int64
}
