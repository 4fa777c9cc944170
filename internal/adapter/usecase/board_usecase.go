package usecase

import (
	"context"
	"fmt"

	"adboard/internal/core/domain"
	"adboard/internal/core/port"
	"adboard/internal/paging"
)

// PageSize is the fixed campaign listing page size.
const PageSize = 10

// BoardUseCase provides the order-board operations on top of a
// repository. It implements port.BoardUseCase.
type BoardUseCase struct {
	repo port.BoardRepository
}

// NewBoardUseCase creates a new usecase with the provided repository.
func NewBoardUseCase(repo port.BoardRepository) *BoardUseCase {
	return &BoardUseCase{repo: repo}
}

// ListCampaigns returns one page of campaign summaries with the
// pagination block. Pages below 1 are clamped to 1; a page past the end
// yields an empty item list with truthful metadata.
func (u *BoardUseCase) ListCampaigns(ctx context.Context, page int) (*port.CampaignPage, error) {
	if page < 1 {
		page = 1
	}
	total, err := u.repo.CountCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("count campaigns: %w", err)
	}
	items, err := u.repo.ListCampaignSummaries(ctx, PageSize, (page-1)*PageSize)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	return &port.CampaignPage{
		Items:      items,
		Pagination: paging.Meta(page, PageSize, total),
	}, nil
}

// GetCampaign returns a campaign with its line items and their
// invoices.
func (u *BoardUseCase) GetCampaign(ctx context.Context, id int64) (*port.CampaignDetail, error) {
	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := u.repo.ListLineItems(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list line items: %w", err)
	}
	return &port.CampaignDetail{Campaign: *c, LineItems: items}, nil
}

// GetLineItem returns a line item with its parent campaign.
func (u *BoardUseCase) GetLineItem(ctx context.Context, id int64) (*port.LineItemDetail, error) {
	li, err := u.repo.GetLineItem(ctx, id)
	if err != nil {
		return nil, err
	}
	c, err := u.repo.GetCampaign(ctx, li.CampaignID)
	if err != nil {
		return nil, fmt.Errorf("campaign %d: %w", li.CampaignID, err)
	}
	return &port.LineItemDetail{LineItem: *li, Campaign: *c}, nil
}

// GetInvoice returns an invoice with its line item and campaign.
func (u *BoardUseCase) GetInvoice(ctx context.Context, id int64) (*port.InvoiceDetail, error) {
	inv, err := u.repo.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}
	li, err := u.repo.GetLineItem(ctx, inv.LineItemID)
	if err != nil {
		return nil, fmt.Errorf("line item %d: %w", inv.LineItemID, err)
	}
	c, err := u.repo.GetCampaign(ctx, li.CampaignID)
	if err != nil {
		return nil, fmt.Errorf("campaign %d: %w", li.CampaignID, err)
	}
	return &port.InvoiceDetail{Invoice: *inv, LineItem: *li, Campaign: *c}, nil
}

// UpdateInvoiceAdjustment stores the new adjustment and returns the
// record as written, which callers must adopt over the value they sent.
func (u *BoardUseCase) UpdateInvoiceAdjustment(ctx context.Context, id int64, adjustment float64) (*domain.Invoice, error) {
	return u.repo.UpdateInvoiceAdjustment(ctx, id, adjustment)
}

// CampaignInvoiceRows flattens a campaign's invoiced line items for
// spreadsheet export. Line items without an invoice are skipped.
func (u *BoardUseCase) CampaignInvoiceRows(ctx context.Context, campaignID int64) ([]port.InvoiceRow, error) {
	detail, err := u.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	rows := make([]port.InvoiceRow, 0, len(detail.LineItems))
	for _, li := range detail.LineItems {
		if li.Invoice == nil {
			continue
		}
		rows = append(rows, port.InvoiceRow{
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
	return rows, nil
}
