// Package view renders the order-board screens as plain text. Each
// renderer is a pure function of fetched data; state handling (loading,
// staleness, navigation) lives with the caller.
package view

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"adboard/internal/agg"
	"adboard/internal/client"
	"adboard/internal/money"
	"adboard/internal/paging"
)

// RenderCampaignList writes the paginated campaigns table with the
// page-control line underneath.
func RenderCampaignList(w io.Writer, list *client.CampaignList) {
	p := list.Pagination
	fmt.Fprintln(w, "Campaigns List")
	if len(list.Items) == 0 {
		fmt.Fprintln(w, "No campaigns found")
	} else {
		from := (p.CurrentPage-1)*p.ItemsPerPage + 1
		to := min(p.CurrentPage*p.ItemsPerPage, p.TotalItems)
		fmt.Fprintf(w, "Showing %d to %d of %d campaigns\n\n", from, to, p.TotalItems)

		tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tCampaign Name\tLine Items\tTotal Booked\tTotal Actual\tTotal Adjustment")
		for _, c := range list.Items {
			fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\t%s\n",
				c.ID, c.Name, c.LineItemCount,
				money.Format(c.TotalBooked),
				money.Format(c.TotalActual),
				money.Format(c.TotalAdjustment),
			)
		}
		tw.Flush()
	}

	if window := FormatWindow(paging.DefaultWindow(
		p.CurrentPage, p.TotalPages, p.HasPreviousPage, p.HasNextPage)); window != "" {
		fmt.Fprintf(w, "\n%s\n", window)
	}
}

// FormatWindow renders page-control entries on one line: "« 1 … 4 [5]
// 6 … 9 »", with disabled prev/next controls parenthesized. An empty
// window (single page) yields "" and the caller hides the controls.
func FormatWindow(entries []paging.Entry) string {
	if len(entries) == 0 {
		return ""
	}
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		switch e.Kind {
		case paging.Prev:
			if e.Enabled {
				parts = append(parts, "«")
			} else {
				parts = append(parts, "(«)")
			}
		case paging.Next:
			if e.Enabled {
				parts = append(parts, "»")
			} else {
				parts = append(parts, "(»)")
			}
		case paging.Ellipsis:
			parts = append(parts, "…")
		case paging.Page:
			if e.Active {
				parts = append(parts, fmt.Sprintf("[%d]", e.Number))
			} else {
				parts = append(parts, fmt.Sprintf("%d", e.Number))
			}
		}
	}
	return strings.Join(parts, " ")
}

// RenderCampaignDetail writes a campaign's line items with per-item
// final amounts and the client-side totals row.
func RenderCampaignDetail(w io.Writer, d *client.CampaignDetail) {
	fmt.Fprintf(w, "Campaign %d: %s\n\n", d.Campaign.ID, d.Campaign.Name)
	if len(d.LineItems) == 0 {
		fmt.Fprintln(w, "No line items")
		return
	}

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tLine Item\tBooked\tActual\tAdjustment\tFinal\tInvoice")
	for _, li := range d.LineItems {
		adjustment, invoice := "—", "—"
		if li.Invoice != nil {
			adjustment = money.Format(li.Invoice.Adjustments)
			invoice = fmt.Sprintf("#%d", li.Invoice.ID)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			li.ID, li.Name,
			money.Format(li.BookedAmount),
			money.Format(li.ActualAmount),
			adjustment,
			money.Format(li.FinalAmount()),
			invoice,
		)
	}
	totals := agg.Aggregate(d.LineItems)
	fmt.Fprintf(tw, "\tTotals (%d items)\t%s\t%s\t%s\t%s\t\n",
		totals.Count,
		money.Format(totals.TotalBooked),
		money.Format(totals.TotalActual),
		money.Format(totals.TotalAdjustment),
		money.Format(totals.TotalFinal),
	)
	tw.Flush()
}

// RenderLineItemDetail writes one line item with its campaign context.
func RenderLineItemDetail(w io.Writer, d *client.LineItemDetail) {
	li := d.LineItem
	fmt.Fprintf(w, "Line Item %d: %s\n", li.ID, li.Name)
	fmt.Fprintf(w, "Campaign %d: %s\n\n", d.Campaign.ID, d.Campaign.Name)
	fmt.Fprintf(w, "Booked Amount: %s\n", money.Format(li.BookedAmount))
	fmt.Fprintf(w, "Actual Amount: %s\n", money.Format(li.ActualAmount))
	if li.Invoice != nil {
		fmt.Fprintf(w, "Adjustments:   %s (invoice #%d)\n", money.Format(li.Invoice.Adjustments), li.Invoice.ID)
	} else {
		fmt.Fprintln(w, "Adjustments:   no invoice")
	}
	fmt.Fprintf(w, "Final Amount:  %s\n", money.Format(li.FinalAmount()))
}

// RenderInvoiceDetail writes the financial summary of an invoice.
func RenderInvoiceDetail(w io.Writer, d *client.InvoiceDetail) {
	fmt.Fprintf(w, "Invoice %d\n", d.Invoice.ID)
	fmt.Fprintf(w, "Line Item %d: %s\n", d.LineItem.ID, d.LineItem.Name)
	fmt.Fprintf(w, "Campaign %d: %s\n\n", d.Campaign.ID, d.Campaign.Name)
	fmt.Fprintf(w, "Booked Amount: %s\n", money.Format(d.LineItem.BookedAmount))
	fmt.Fprintf(w, "Actual Amount: %s\n", money.Format(d.LineItem.ActualAmount))
	fmt.Fprintf(w, "Adjustments:   %s\n", money.Format(d.Invoice.Adjustments))
	fmt.Fprintf(w, "Final Amount:  %s\n", money.Format(d.LineItem.ActualAmount+d.Invoice.Adjustments))
}

// RenderError writes a human-readable failure message in place of
// content. A 404 reads as a distinct not-found state; everything else
// offers the way back to the list.
func RenderError(w io.Writer, what string, err error) {
	var httpErr *client.HTTPError
	if errors.As(err, &httpErr) && httpErr.IsNotFound() {
		fmt.Fprintf(w, "Not Found\nThe requested %s could not be found.\n", what)
		return
	}
	fmt.Fprintf(w, "Error: %v\nBack to campaigns list with 'list'.\n", err)
}
