package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adboard/internal/core/domain"
	"adboard/internal/core/port"
)

// fakeRepo is an in-memory port.BoardRepository.
type fakeRepo struct {
	campaigns map[int64]domain.Campaign
	items     map[int64]domain.LineItem
	invoices  map[int64]domain.Invoice
	summaries []domain.CampaignSummary
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		campaigns: map[int64]domain.Campaign{},
		items:     map[int64]domain.LineItem{},
		invoices:  map[int64]domain.Invoice{},
	}
}

func (f *fakeRepo) CountCampaigns(context.Context) (int, error) {
	return len(f.summaries), nil
}

func (f *fakeRepo) ListCampaignSummaries(_ context.Context, limit, offset int) ([]domain.CampaignSummary, error) {
	if offset >= len(f.summaries) {
		return nil, nil
	}
	end := min(offset+limit, len(f.summaries))
	return f.summaries[offset:end], nil
}

func (f *fakeRepo) GetCampaign(_ context.Context, id int64) (*domain.Campaign, error) {
	c, ok := f.campaigns[id]
	if !ok {
		return nil, port.ErrNotFound
	}
	return &c, nil
}

func (f *fakeRepo) ListLineItems(_ context.Context, campaignID int64) ([]domain.LineItem, error) {
	var out []domain.LineItem
	for _, li := range f.items {
		if li.CampaignID == campaignID {
			out = append(out, li)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetLineItem(_ context.Context, id int64) (*domain.LineItem, error) {
	li, ok := f.items[id]
	if !ok {
		return nil, port.ErrNotFound
	}
	return &li, nil
}

func (f *fakeRepo) GetInvoice(_ context.Context, id int64) (*domain.Invoice, error) {
	inv, ok := f.invoices[id]
	if !ok {
		return nil, port.ErrNotFound
	}
	return &inv, nil
}

func (f *fakeRepo) UpdateInvoiceAdjustment(_ context.Context, id int64, adjustment float64) (*domain.Invoice, error) {
	inv, ok := f.invoices[id]
	if !ok {
		return nil, port.ErrNotFound
	}
	inv.Adjustments = adjustment
	inv.UpdatedAt = time.Now().UTC()
	f.invoices[id] = inv
	return &inv, nil
}

func seedRepo() *fakeRepo {
	f := newFakeRepo()
	f.campaigns[1] = domain.Campaign{ID: 1, Name: "Spring Launch"}
	inv := domain.Invoice{ID: 7, LineItemID: 10, Adjustments: 2.5}
	f.invoices[7] = inv
	f.items[10] = domain.LineItem{
		ID: 10, CampaignID: 1, Name: "Homepage banner",
		BookedAmount: 100, ActualAmount: 95, Invoice: &inv,
	}
	f.items[11] = domain.LineItem{
		ID: 11, CampaignID: 1, Name: "Sidebar", BookedAmount: 50, ActualAmount: 60,
	}
	return f
}

func TestListCampaignsPagination(t *testing.T) {
	f := newFakeRepo()
	for i := 0; i < 25; i++ {
		f.summaries = append(f.summaries, domain.CampaignSummary{ID: int64(i + 1)})
	}
	u := NewBoardUseCase(f)

	page, err := u.ListCampaigns(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, page.Items, 5)
	assert.Equal(t, 3, page.Pagination.CurrentPage)
	assert.Equal(t, 3, page.Pagination.TotalPages)
	assert.Equal(t, 25, page.Pagination.TotalItems)
	assert.Equal(t, PageSize, page.Pagination.ItemsPerPage)
	assert.False(t, page.Pagination.HasNextPage)
	assert.True(t, page.Pagination.HasPreviousPage)
}

func TestListCampaignsClampsPage(t *testing.T) {
	f := newFakeRepo()
	f.summaries = []domain.CampaignSummary{{ID: 1}}
	u := NewBoardUseCase(f)

	page, err := u.ListCampaigns(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Pagination.CurrentPage)
	assert.Len(t, page.Items, 1)
}

func TestGetCampaignNotFound(t *testing.T) {
	u := NewBoardUseCase(newFakeRepo())

	_, err := u.GetCampaign(context.Background(), 42)
	assert.ErrorIs(t, err, port.ErrNotFound)
}

func TestGetInvoiceJoinsContext(t *testing.T) {
	u := NewBoardUseCase(seedRepo())

	d, err := u.GetInvoice(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), d.Invoice.ID)
	assert.Equal(t, int64(10), d.LineItem.ID)
	assert.Equal(t, "Spring Launch", d.Campaign.Name)
}

func TestUpdateInvoiceAdjustmentReturnsStored(t *testing.T) {
	f := seedRepo()
	u := NewBoardUseCase(f)

	inv, err := u.UpdateInvoiceAdjustment(context.Background(), 7, 10.5)
	require.NoError(t, err)
	assert.Equal(t, 10.5, inv.Adjustments)

	// round-trip: a subsequent read observes the written value
	got, err := u.GetInvoice(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 10.5, got.Invoice.Adjustments)

	_, err = u.UpdateInvoiceAdjustment(context.Background(), 999, 1)
	assert.ErrorIs(t, err, port.ErrNotFound)
}

func TestCampaignInvoiceRowsSkipsUninvoiced(t *testing.T) {
	u := NewBoardUseCase(seedRepo())

	rows, err := u.CampaignInvoiceRows(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, port.InvoiceRow{
		CampaignID:   1,
		CampaignName: "Spring Launch",
		LineItemName: "Homepage banner",
		LineItemID:   10,
		BookedAmount: 100,
		ActualAmount: 95,
		Adjustments:  2.5,
		InvoiceID:    7,
	}, rows[0])
}
