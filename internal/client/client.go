// Package client is the typed consumer of the order-board REST API.
// It owns the base URL, normalizes failures into a small error
// taxonomy and validates every decoded payload at the boundary.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"adboard/internal/core/domain"
)

// Client calls the order-board API. Construct with New; the zero value
// is not usable.
type Client struct {
	baseURL  string
	http     *http.Client
	validate *validator.Validate
}

// New returns a client rooted at baseURL (without a trailing slash).
// A nil httpClient falls back to http.DefaultClient; per the consumed
// contract there are no retries and no client-side timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     httpClient,
		validate: validator.New(),
	}
}

// ListCampaigns fetches one page of campaign summaries.
func (c *Client) ListCampaigns(ctx context.Context, page int) (*CampaignList, error) {
	var resp campaignListResponse
	if err := c.get(ctx, "/campaigns?page="+strconv.Itoa(page), &resp); err != nil {
		return nil, err
	}
	items := make([]domain.CampaignSummary, 0, len(resp.Data))
	for _, w := range resp.Data {
		items = append(items, domain.CampaignSummary{
			ID:              w.ID,
			Name:            w.Name,
			LineItemCount:   w.LineItemCount,
			TotalBooked:     w.TotalBooked,
			TotalActual:     w.TotalActual,
			TotalAdjustment: w.TotalAdjustment,
		})
	}
	return &CampaignList{Items: items, Pagination: resp.Pagination.toDomain()}, nil
}

// GetCampaign fetches a campaign with its line items and invoices.
func (c *Client) GetCampaign(ctx context.Context, id int64) (*CampaignDetail, error) {
	var resp campaignDetailResponse
	if err := c.get(ctx, fmt.Sprintf("/campaigns/%d", id), &resp); err != nil {
		return nil, err
	}
	d := resp.Data
	detail := &CampaignDetail{
		Campaign:  domain.Campaign{ID: d.ID, Name: d.Name, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt},
		LineItems: make([]domain.LineItem, 0, len(d.LineItems)),
	}
	for _, w := range d.LineItems {
		detail.LineItems = append(detail.LineItems, w.toDomain())
	}
	return detail, nil
}

// GetLineItem fetches a line item with its campaign and invoice.
func (c *Client) GetLineItem(ctx context.Context, id int64) (*LineItemDetail, error) {
	var resp lineItemDetailResponse
	if err := c.get(ctx, fmt.Sprintf("/lineitems/%d", id), &resp); err != nil {
		return nil, err
	}
	if resp.Data.Campaign == nil {
		return nil, &ParseError{URL: c.baseURL, Err: fmt.Errorf("line item %d without campaign", id)}
	}
	return &LineItemDetail{
		LineItem: resp.Data.toDomain(),
		Campaign: resp.Data.Campaign.toDomain(),
	}, nil
}

// GetInvoice fetches an invoice with its line item and campaign.
func (c *Client) GetInvoice(ctx context.Context, id int64) (*InvoiceDetail, error) {
	var resp invoiceDetailResponse
	if err := c.get(ctx, fmt.Sprintf("/invoices/%d", id), &resp); err != nil {
		return nil, err
	}
	if resp.Data.LineItem.Campaign == nil {
		return nil, &ParseError{URL: c.baseURL, Err: fmt.Errorf("invoice %d without campaign", id)}
	}
	return &InvoiceDetail{
		Invoice:  resp.Data.wireInvoice.toDomain(),
		LineItem: resp.Data.LineItem.toDomain(),
		Campaign: resp.Data.LineItem.Campaign.toDomain(),
	}, nil
}

// UpdateInvoiceAdjustment submits a new adjustment value and returns
// the record as the server stored it. Callers must adopt the returned
// adjustments value, not the one they sent, in case the server rounds
// or normalizes it.
func (c *Client) UpdateInvoiceAdjustment(ctx context.Context, id int64, adjustment float64) (*domain.Invoice, error) {
	if math.IsNaN(adjustment) || math.IsInf(adjustment, 0) {
		return nil, &ValidationError{Field: "adjustment", Reason: "must be a finite number"}
	}

	body, err := json.Marshal(map[string]float64{"adjustment": adjustment})
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/invoices/%d/adjustment", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var resp invoiceResponse
	if err = c.do(req, &resp); err != nil {
		return nil, err
	}
	inv := resp.Data.toDomain()
	return &inv, nil
}

// ParseAdjustment converts raw user input into an adjustment value,
// reporting a ValidationError before anything is submitted.
func ParseAdjustment(input string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ValidationError{Field: "adjustment", Reason: "must be a number"}
	}
	return v, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// do executes the request and decodes the response into out, mapping
// failures onto the error taxonomy: transport → NetworkError, non-2xx
// → HTTPError, undecodable or shape-violating body → ParseError.
func (c *Client) do(req *http.Request, out any) error {
	url := req.URL.String()
	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{URL: url, Err: err}
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPError{Status: resp.StatusCode, URL: url}
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ParseError{URL: url, Err: err}
	}
	if err = c.validate.Struct(out); err != nil {
		return &ParseError{URL: url, Err: err}
	}
	return nil
}
