package domain

import "time"

// Campaign is a named grouping of line items. Amounts are stored as
// decimal currency values in US dollars.
type Campaign struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CampaignSummary is a campaign row from the paginated listing. The
// totals are precomputed by the backend store; TotalAdjustment sums the
// adjustments of line items that carry an invoice.
type CampaignSummary struct {
	ID              int64
	Name            string
	LineItemCount   int
	TotalBooked     float64
	TotalActual     float64
	TotalAdjustment float64
}
