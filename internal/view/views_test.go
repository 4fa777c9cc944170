package view

import (
	"bytes"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"adboard/internal/client"
	"adboard/internal/core/domain"
	"adboard/internal/paging"
)

func TestFormatWindow(t *testing.T) {
	assert.Equal(t, "", FormatWindow(nil))

	got := FormatWindow(paging.DefaultWindow(2, 5, true, true))
	assert.Equal(t, "« 1 [2] 3 4 5 »", got)

	got = FormatWindow(paging.DefaultWindow(10, 20, true, true))
	assert.Equal(t, "« 1 … 8 9 [10] 11 12 … 20 »", got)

	got = FormatWindow(paging.DefaultWindow(1, 10, false, true))
	assert.Equal(t, "(«) [1] 2 3 … 10 »", got)
}

func TestRenderCampaignListHidesWindowForSinglePage(t *testing.T) {
	var buf bytes.Buffer
	RenderCampaignList(&buf, &client.CampaignList{
		Items: []domain.CampaignSummary{{ID: 1, Name: "Solo", TotalBooked: 1234.5}},
		Pagination: domain.Pagination{
			CurrentPage: 1, TotalPages: 1, TotalItems: 1, ItemsPerPage: 10,
		},
	})
	out := buf.String()
	assert.Contains(t, out, "Solo")
	assert.Contains(t, out, "$1,234.50")
	assert.Contains(t, out, "Showing 1 to 1 of 1 campaigns")
	assert.NotContains(t, out, "«")
}

func TestRenderCampaignListEmpty(t *testing.T) {
	var buf bytes.Buffer
	RenderCampaignList(&buf, &client.CampaignList{
		Pagination: domain.Pagination{CurrentPage: 1, TotalPages: 0, ItemsPerPage: 10},
	})
	assert.Contains(t, buf.String(), "No campaigns found")
}

func TestRenderCampaignDetailTotals(t *testing.T) {
	var buf bytes.Buffer
	RenderCampaignDetail(&buf, &client.CampaignDetail{
		Campaign: domain.Campaign{ID: 1, Name: "Spring"},
		LineItems: []domain.LineItem{
			{ID: 10, Name: "Banner", BookedAmount: 100, ActualAmount: 95,
				Invoice: &domain.Invoice{ID: 7, Adjustments: 2.5}},
			{ID: 11, Name: "Sidebar", BookedAmount: 50, ActualAmount: 60},
		},
	})
	out := buf.String()
	assert.Contains(t, out, "Campaign 1: Spring")
	assert.Contains(t, out, "Totals (2 items)")
	assert.Contains(t, out, "$150.00") // booked
	assert.Contains(t, out, "$155.00") // actual
	assert.Contains(t, out, "$157.50") // final = actual + adjustments
}

func TestRenderInvoiceDetailFinalAmount(t *testing.T) {
	var buf bytes.Buffer
	RenderInvoiceDetail(&buf, &client.InvoiceDetail{
		Invoice:  domain.Invoice{ID: 7, Adjustments: -5},
		LineItem: domain.LineItem{ID: 10, Name: "Banner", ActualAmount: 95},
		Campaign: domain.Campaign{ID: 1, Name: "Spring"},
	})
	out := buf.String()
	assert.Contains(t, out, "Adjustments:   -$5.00")
	assert.Contains(t, out, "Final Amount:  $90.00")
}

func TestRenderErrorDistinguishesNotFound(t *testing.T) {
	var buf bytes.Buffer
	RenderError(&buf, "invoice", &client.HTTPError{Status: http.StatusNotFound})
	assert.Contains(t, buf.String(), "Not Found")
	assert.NotContains(t, buf.String(), "Error:")

	buf.Reset()
	RenderError(&buf, "invoice", errors.New("connection refused"))
	assert.Contains(t, buf.String(), "Error: connection refused")
}
