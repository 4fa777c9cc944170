package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"adboard/internal/client"
	"adboard/internal/config"
	"adboard/internal/export"
	"adboard/internal/view"
)

const usage = `commands:
  list [page]            paginated campaigns table
  campaign <id>          campaign detail with line items
  lineitem <id>          line item detail
  invoice <id>           invoice detail
  adjust <id> <value>    set an invoice's adjustment
  export <id> [id ...]   write campaign invoices to an xlsx file
  quit`

// board is the terminal rendition of the order-management dashboard: a
// read loop over the API client, one view at a time.
type board struct {
	client *client.Client
	// fence drops responses superseded by a newer navigation. The read
	// loop dispatches one command at a time, so a fetch can only be
	// superseded once the show methods are driven concurrently; the
	// guard is armed here so that move needs no restructuring.
	fence client.Fence
	out   *os.File
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	b := &board{
		client: client.New(cfg.API.BaseURL, nil),
		out:    os.Stdout,
	}

	fmt.Fprintln(b.out, usage)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(b.out, "> ")
		if !scanner.Scan() {
			return
		}
		if quit := b.dispatch(strings.Fields(scanner.Text())); quit {
			return
		}
	}
}

func (b *board) dispatch(args []string) (quit bool) {
	if len(args) == 0 {
		return false
	}
	ctx := context.Background()

	switch args[0] {
	case "list":
		page := 1
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				fmt.Fprintln(b.out, "page must be a number")
				return false
			}
			page = n
		}
		b.showList(ctx, page)
	case "campaign":
		if id, ok := b.idArg(args); ok {
			b.showCampaign(ctx, id)
		}
	case "lineitem":
		if id, ok := b.idArg(args); ok {
			b.showLineItem(ctx, id)
		}
	case "invoice":
		if id, ok := b.idArg(args); ok {
			b.showInvoice(ctx, id)
		}
	case "adjust":
		if len(args) < 3 {
			fmt.Fprintln(b.out, "usage: adjust <invoice-id> <value>")
			return false
		}
		if id, ok := b.idArg(args); ok {
			b.adjust(ctx, id, args[2])
		}
	case "export":
		if len(args) < 2 {
			fmt.Fprintln(b.out, "usage: export <campaign-id> [id ...]")
			return false
		}
		b.export(ctx, args[1:])
	case "quit", "exit":
		return true
	default:
		fmt.Fprintln(b.out, usage)
	}
	return false
}

func (b *board) idArg(args []string) (int64, bool) {
	if len(args) < 2 {
		fmt.Fprintln(b.out, "missing id")
		return 0, false
	}
	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil || id < 1 {
		fmt.Fprintln(b.out, "id must be a positive number")
		return 0, false
	}
	return id, true
}

func (b *board) showList(ctx context.Context, page int) {
	gen := b.fence.Next()
	list, err := b.client.ListCampaigns(ctx, page)
	if !gen.Live() {
		return
	}
	if err != nil {
		view.RenderError(b.out, "campaign list", err)
		return
	}
	view.RenderCampaignList(b.out, list)
}

func (b *board) showCampaign(ctx context.Context, id int64) {
	gen := b.fence.Next()
	detail, err := b.client.GetCampaign(ctx, id)
	if !gen.Live() {
		return
	}
	if err != nil {
		view.RenderError(b.out, "campaign", err)
		return
	}
	view.RenderCampaignDetail(b.out, detail)
}

func (b *board) showLineItem(ctx context.Context, id int64) {
	gen := b.fence.Next()
	detail, err := b.client.GetLineItem(ctx, id)
	if !gen.Live() {
		return
	}
	if err != nil {
		view.RenderError(b.out, "line item", err)
		return
	}
	view.RenderLineItemDetail(b.out, detail)
}

func (b *board) showInvoice(ctx context.Context, id int64) {
	gen := b.fence.Next()
	detail, err := b.client.GetInvoice(ctx, id)
	if !gen.Live() {
		return
	}
	if err != nil {
		view.RenderError(b.out, "invoice", err)
		return
	}
	view.RenderInvoiceDetail(b.out, detail)
}

// adjust submits a new adjustment value. On failure the entered value
// is echoed back so it can be retried; on success the view adopts the
// value the server stored.
func (b *board) adjust(ctx context.Context, id int64, raw string) {
	value, err := client.ParseAdjustment(raw)
	if err != nil {
		fmt.Fprintf(b.out, "%v (your input %q was kept, fix and retry)\n", err, raw)
		return
	}
	inv, err := b.client.UpdateInvoiceAdjustment(ctx, id, value)
	if err != nil {
		fmt.Fprintf(b.out, "save failed: %v (your input %q was kept, retry with 'adjust %d %s')\n",
			err, raw, id, raw)
		return
	}
	fmt.Fprintf(b.out, "invoice %d adjustment saved as %v\n", inv.ID, inv.Adjustments)
	b.showInvoice(ctx, id)
}

func (b *board) export(ctx context.Context, rawIDs []string) {
	ids := make([]int64, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id < 1 {
			fmt.Fprintf(b.out, "bad campaign id %q\n", raw)
			return
		}
		ids = append(ids, id)
	}

	rows, err := b.client.InvoiceRows(ctx, ids)
	if err != nil {
		view.RenderError(b.out, "export", err)
		return
	}
	if len(rows) == 0 {
		fmt.Fprintln(b.out, "no invoices to export")
		return
	}

	// one workbook per campaign, each named for the campaign it holds
	paths, err := export.WriteCampaignFiles(".", rows, time.Now())
	if err != nil {
		fmt.Fprintf(b.out, "export failed: %v\n", err)
		return
	}
	fmt.Fprintf(b.out, "wrote %d rows to %s\n", len(rows), strings.Join(paths, ", "))
}
