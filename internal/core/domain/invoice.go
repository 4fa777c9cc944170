package domain

import "time"

// Invoice is the billing record for a line item. Adjustments is a
// signed correction applied to the line item's actual amount; it may be
// negative to reduce the final billed amount.
type Invoice struct {
	ID          int64
	LineItemID  int64
	Adjustments float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
