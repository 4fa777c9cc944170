// Package agg computes per-campaign totals over line items.
package agg

import (
	"github.com/shopspring/decimal"

	"adboard/internal/core/domain"
)

// Summary holds the totals for a collection of line items. TotalFinal
// includes invoice adjustments; items without an invoice contribute
// their actual amount unchanged.
type Summary struct {
	Count           int
	TotalBooked     float64
	TotalActual     float64
	TotalAdjustment float64
	TotalFinal      float64
}

// Aggregate folds the line items left to right into a Summary. The
// accumulation runs on decimals so that repeated cents never drift; the
// result converts back to float64 for rendering. Empty input yields the
// zero Summary.
func Aggregate(items []domain.LineItem) Summary {
	var booked, actual, adjustment decimal.Decimal
	for _, li := range items {
		booked = booked.Add(decimal.NewFromFloat(li.BookedAmount))
		actual = actual.Add(decimal.NewFromFloat(li.ActualAmount))
		if li.Invoice != nil {
			adjustment = adjustment.Add(decimal.NewFromFloat(li.Invoice.Adjustments))
		}
	}
	return Summary{
		Count:           len(items),
		TotalBooked:     booked.InexactFloat64(),
		TotalActual:     actual.InexactFloat64(),
		TotalAdjustment: adjustment.InexactFloat64(),
		TotalFinal:      actual.Add(adjustment).InexactFloat64(),
	}
}
