package port

import (
	"context"
	"errors"

	"adboard/internal/core/domain"
)

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("not found")

// BoardRepository defines the persistence layer for the order board. It
// is an outbound port in hexagonal architecture. Implementations return
// ErrNotFound for missing single records and never partially populated
// structs.
type BoardRepository interface {
	// CountCampaigns returns the total number of campaigns.
	CountCampaigns(ctx context.Context) (int, error)
	// ListCampaignSummaries returns campaign rows with precomputed
	// totals, ordered by id, limited to the given window.
	ListCampaignSummaries(ctx context.Context, limit, offset int) ([]domain.CampaignSummary, error)
	// GetCampaign returns a campaign by id.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// ListLineItems returns the line items of a campaign ordered by
	// id, each with its invoice joined when one exists.
	ListLineItems(ctx context.Context, campaignID int64) ([]domain.LineItem, error)
	// GetLineItem returns a line item by id with its invoice joined.
	GetLineItem(ctx context.Context, id int64) (*domain.LineItem, error)
	// GetInvoice returns an invoice by id.
	GetInvoice(ctx context.Context, id int64) (*domain.Invoice, error)
	// UpdateInvoiceAdjustment stores a new adjustment value and
	// returns the updated record.
	UpdateInvoiceAdjustment(ctx context.Context, id int64, adjustment float64) (*domain.Invoice, error)
}
