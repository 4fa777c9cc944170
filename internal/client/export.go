package client

import (
	"context"

	"golang.org/x/sync/errgroup"

	"adboard/internal/core/port"
)

// InvoiceRows collects the invoiced line items of the given campaigns
// for spreadsheet export. Details are fetched concurrently with a small
// bound; rows come back grouped in the order the ids were given.
func (c *Client) InvoiceRows(ctx context.Context, campaignIDs []int64) ([]port.InvoiceRow, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	perCampaign := make([][]port.InvoiceRow, len(campaignIDs))
	for i, id := range campaignIDs {
		g.Go(func() error {
			detail, err := c.GetCampaign(ctx, id)
			if err != nil {
				return err
			}
			for _, li := range detail.LineItems {
				if li.Invoice == nil {
					continue
				}
				perCampaign[i] = append(perCampaign[i], port.InvoiceRow{
					CampaignID:   detail.Campaign.ID,
					CampaignName: detail.Campaign.Name,
					LineItemName: li.Name,
					LineItemID:   li.ID,
					BookedAmount: li.BookedAmount,
					ActualAmount: li.ActualAmount,
					Adjustments:  li.Invoice.Adjustments,
					InvoiceID:    li.Invoice.ID,
				})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var rows []port.InvoiceRow
	for _, group := range perCampaign {
		rows = append(rows, group...)
	}
	return rows, nil
}
