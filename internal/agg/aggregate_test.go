package agg

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"adboard/internal/core/domain"
)

func TestAggregateEmpty(t *testing.T) {
	s := Aggregate(nil)
	assert.Equal(t, Summary{}, s)

	s = Aggregate([]domain.LineItem{})
	assert.Zero(t, s.Count)
	assert.Zero(t, s.TotalBooked)
	assert.Zero(t, s.TotalActual)
	assert.Zero(t, s.TotalFinal)
}

func TestAggregateMixedInvoices(t *testing.T) {
	items := []domain.LineItem{
		{BookedAmount: 100, ActualAmount: 90, Invoice: &domain.Invoice{Adjustments: 5.5}},
		{BookedAmount: 200, ActualAmount: 210},
		{BookedAmount: 50, ActualAmount: 40, Invoice: &domain.Invoice{Adjustments: -10}},
	}

	s := Aggregate(items)
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, 350.0, s.TotalBooked)
	assert.Equal(t, 340.0, s.TotalActual)
	assert.Equal(t, -4.5, s.TotalAdjustment)
	assert.Equal(t, 335.5, s.TotalFinal)
}

// TotalFinal must equal TotalActual plus the adjustments of invoiced
// items only; items without an invoice contribute zero adjustment.
// The totals convert to float64 independently, so the identity holds
// in decimal space and is compared with a tolerance here: adding the
// converted floats (60.6 + -0.3) drifts off the exact 60.3.
func TestAggregateFinalIdentity(t *testing.T) {
	items := []domain.LineItem{
		{ActualAmount: 10.10, Invoice: &domain.Invoice{Adjustments: 0.30}},
		{ActualAmount: 20.20},
		{ActualAmount: 30.30, Invoice: &domain.Invoice{Adjustments: -0.60}},
	}

	s := Aggregate(items)
	assert.Equal(t, 60.3, s.TotalFinal)
	assert.InDelta(t, s.TotalActual+s.TotalAdjustment, s.TotalFinal, 1e-9)
}

// Decimal accumulation keeps repeated cents exact where a float64 fold
// would drift.
func TestAggregateCentsExact(t *testing.T) {
	items := make([]domain.LineItem, 100)
	for i := range items {
		items[i] = domain.LineItem{BookedAmount: 0.1, ActualAmount: 0.1}
	}

	s := Aggregate(items)
	assert.Equal(t, 10.0, s.TotalBooked)
	assert.Equal(t, 10.0, s.TotalActual)
	assert.Equal(t, 10.0, s.TotalFinal)
}
