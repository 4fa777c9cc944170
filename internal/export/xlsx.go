// Package export writes campaign invoice listings as xlsx workbooks.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"adboard/internal/core/port"
)

var headers = []string{
	"Campaign ID",
	"Campaign Name",
	"Line Item Name",
	"Line Item ID",
	"Booked Amount",
	"Actual Amount",
	"Adjustments",
	"Invoice ID",
}

// ContentType is the MIME type of an xlsx workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Filename composes the download name for a campaign's invoice export,
// e.g. "campaign_3_invoices_2026-08-31.xlsx".
func Filename(campaignID int64, now time.Time) string {
	return fmt.Sprintf("campaign_%d_invoices_%s.xlsx", campaignID, now.Format("2006-01-02"))
}

// WriteInvoices writes one worksheet named after the campaign with a
// header row followed by one row per invoiced line item.
func WriteInvoices(w io.Writer, campaignID int64, rows []port.InvoiceRow) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := fmt.Sprintf("Campaign %d Invoices", campaignID)
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err = f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("drop default sheet: %w", err)
	}

	for col, name := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err = f.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
	}
	for i, row := range rows {
		values := []interface{}{
			row.CampaignID,
			row.CampaignName,
			row.LineItemName,
			row.LineItemID,
			row.BookedAmount,
			row.ActualAmount,
			row.Adjustments,
			row.InvoiceID,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err = f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	if err = f.SetColWidth(sheet, "A", "H", 20); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}
	return f.Write(w)
}

// WriteCampaignFiles writes the rows into dir as one workbook per
// campaign, so no file ever carries another campaign's rows under its
// name. Files are created in order of each campaign's first appearance
// and the written paths are returned.
func WriteCampaignFiles(dir string, rows []port.InvoiceRow, now time.Time) ([]string, error) {
	var order []int64
	grouped := make(map[int64][]port.InvoiceRow)
	for _, row := range rows {
		if _, seen := grouped[row.CampaignID]; !seen {
			order = append(order, row.CampaignID)
		}
		grouped[row.CampaignID] = append(grouped[row.CampaignID], row)
	}

	paths := make([]string, 0, len(order))
	for _, id := range order {
		path := filepath.Join(dir, Filename(id, now))
		f, err := os.Create(path)
		if err != nil {
			return paths, err
		}
		err = WriteInvoices(f, id, grouped[id])
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
