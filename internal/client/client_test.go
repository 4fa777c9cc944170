package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listBody = `{
  "data": [
    {"id": 1, "name": "Spring", "lineItemCount": 2,
     "totalBooked": 300, "totalActual": 290, "totalAdjustment": -4.5}
  ],
  "pagination": {"currentPage": 2, "totalPages": 5, "totalItems": 45,
                 "itemsPerPage": 10, "hasNextPage": true, "hasPreviousPage": true}
}`

func newClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/api/", srv.Client())
}

func TestListCampaigns(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/campaigns", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		fmt.Fprint(w, listBody)
	})

	got, err := c.ListCampaigns(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Spring", got.Items[0].Name)
	assert.Equal(t, -4.5, got.Items[0].TotalAdjustment)
	assert.Equal(t, 5, got.Pagination.TotalPages)
	assert.True(t, got.Pagination.HasNextPage)
}

func TestListCampaignsEmptyPage(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data": [], "pagination": {"currentPage": 9, "totalPages": 5,
            "totalItems": 45, "itemsPerPage": 10, "hasNextPage": false, "hasPreviousPage": true}}`)
	})

	got, err := c.ListCampaigns(context.Background(), 9)
	require.NoError(t, err)
	assert.Empty(t, got.Items)
	assert.Equal(t, 5, got.Pagination.TotalPages)
}

func TestHTTPError(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := c.ListCampaigns(context.Background(), 1)
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.False(t, httpErr.IsNotFound())
}

func TestNotFoundIsDistinct(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	_, err := c.GetCampaign(context.Background(), 42)
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.True(t, httpErr.IsNotFound())
}

func TestParseErrorOnGarbage(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html>not json</html>`)
	})

	_, err := c.ListCampaigns(context.Background(), 1)
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestParseErrorOnShapeViolation(t *testing.T) {
	// valid JSON but no pagination block
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data": []}`)
	})

	_, err := c.ListCampaigns(context.Background(), 1)
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := New(srv.URL+"/api", nil)

	_, err := c.ListCampaigns(context.Background(), 1)
	var netErr *NetworkError
	assert.ErrorAs(t, err, &netErr)
}

func TestGetInvoiceDetail(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/invoices/7", r.URL.Path)
		fmt.Fprint(w, `{"data": {
            "id": 7, "line_item_id": 10, "adjustments": 2.5,
            "LineItem": {"id": 10, "campaign_id": 1, "name": "Banner",
                "booked_amount": 100, "actual_amount": 95,
                "Campaign": {"id": 1, "name": "Spring"}}}}`)
	})

	got, err := c.GetInvoice(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 2.5, got.Invoice.Adjustments)
	assert.Equal(t, "Banner", got.LineItem.Name)
	assert.Equal(t, "Spring", got.Campaign.Name)
}

func TestUpdateInvoiceAdjustmentServerValueWins(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/api/invoices/7/adjustment", r.URL.Path)

		var body map[string]float64
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 10.5, body["adjustment"])

		// server rounds to its own liking; the client must adopt it
		fmt.Fprint(w, `{"data": {"id": 7, "line_item_id": 10, "adjustments": 10.0}}`)
	})

	inv, err := c.UpdateInvoiceAdjustment(context.Background(), 7, 10.5)
	require.NoError(t, err)
	assert.Equal(t, 10.0, inv.Adjustments)
}

func TestUpdateInvoiceAdjustmentRejectsNonFinite(t *testing.T) {
	c := New("http://unused", nil)

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := c.UpdateInvoiceAdjustment(context.Background(), 7, v)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
	}
}

func TestParseAdjustment(t *testing.T) {
	v, err := ParseAdjustment(" -12.50 ")
	require.NoError(t, err)
	assert.Equal(t, -12.5, v)

	for _, bad := range []string{"", "ten", "1.2.3", "NaN", "Inf"} {
		_, err := ParseAdjustment(bad)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr, "input %q", bad)
	}
}

func TestFenceDropsStale(t *testing.T) {
	var f Fence

	g1 := f.Next()
	assert.True(t, g1.Live())

	g2 := f.Next()
	assert.False(t, g1.Live(), "superseded generation must be stale")
	assert.True(t, g2.Live())
}

func TestInvoiceRowsFanOut(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		var id int64
		_, err := fmt.Sscanf(r.URL.Path, "/api/campaigns/%d", &id)
		require.NoError(t, err)
		fmt.Fprintf(w, `{"data": {"id": %d, "name": "Campaign %d", "LineItems": [
            {"id": %d, "campaign_id": %d, "name": "Invoiced",
             "booked_amount": 10, "actual_amount": 9,
             "Invoice": {"id": %d, "line_item_id": %d, "adjustments": 1}},
            {"id": %d, "campaign_id": %d, "name": "Bare",
             "booked_amount": 5, "actual_amount": 5}
        ]}}`, id, id, id*10, id, id*100, id*10, id*10+1, id)
	})

	rows, err := c.InvoiceRows(context.Background(), []int64{1, 2, 3})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	// grouped in request order, uninvoiced items skipped
	for i, row := range rows {
		assert.Equal(t, int64(i+1), row.CampaignID)
		assert.Equal(t, "Invoiced", row.LineItemName)
	}
}

func TestInvoiceRowsPropagatesFailure(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	_, err := c.InvoiceRows(context.Background(), []int64{1})
	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.True(t, httpErr.IsNotFound())
}
