package domain

import "time"

// LineItem is a bookable unit within a campaign. BookedAmount is the
// planned spend, ActualAmount the realized spend. A line item has at
// most one invoice; Invoice is nil when none has been issued.
type LineItem struct {
	ID           int64
	CampaignID   int64
	Name         string
	BookedAmount float64
	ActualAmount float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Invoice      *Invoice
}

// FinalAmount is the billed amount: actual plus the invoice adjustment,
// or actual alone when no invoice exists. It is never stored.
func (li LineItem) FinalAmount() float64 {
	if li.Invoice == nil {
		return li.ActualAmount
	}
	return li.ActualAmount + li.Invoice.Adjustments
}
