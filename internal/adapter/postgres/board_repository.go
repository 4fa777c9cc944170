package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adboard/internal/core/domain"
	"adboard/internal/core/port"
)

// BoardRepository implements port.BoardRepository using pgxpool for
// PostgreSQL.
type BoardRepository struct {
	pool *pgxpool.Pool
}

// NewBoardRepository returns a new repository instance.
func NewBoardRepository(pool *pgxpool.Pool) *BoardRepository {
	return &BoardRepository{pool: pool}
}

// CountCampaigns returns the total number of campaigns.
func (r *BoardRepository) CountCampaigns(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM campaigns`).Scan(&n)
	return n, err
}

// ListCampaignSummaries returns campaign rows with totals folded in
// SQL. Adjustments sum only over line items that carry an invoice; the
// LEFT JOINs make items and invoices optional so empty campaigns come
// back with zero totals.
func (r *BoardRepository) ListCampaignSummaries(ctx context.Context, limit, offset int) ([]domain.CampaignSummary, error) {
	const query = `
        SELECT
            c.id,
            c.name,
            COUNT(li.id),
            COALESCE(SUM(li.booked_amount), 0),
            COALESCE(SUM(li.actual_amount), 0),
            COALESCE(SUM(inv.adjustments), 0)
        FROM campaigns c
        LEFT JOIN line_items li ON li.campaign_id = c.id
        LEFT JOIN invoices inv ON inv.line_item_id = li.id
        GROUP BY c.id, c.name
        ORDER BY c.id
        LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampaignSummary, error) {
		var s domain.CampaignSummary
		err := row.Scan(
			&s.ID,
			&s.Name,
			&s.LineItemCount,
			&s.TotalBooked,
			&s.TotalActual,
			&s.TotalAdjustment,
		)
		return s, err
	})
}

// GetCampaign returns a campaign by id.
func (r *BoardRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	var c domain.Campaign
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, created_at, updated_at FROM campaigns WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// lineItemRow carries one joined line-item row before the nullable
// invoice columns are folded into a domain.Invoice.
type lineItemRow struct {
	item           domain.LineItem
	invID          *int64
	invLineItemID  *int64
	invAdjustments *float64
	invCreatedAt   *time.Time
	invUpdatedAt   *time.Time
}

const lineItemColumns = `
        li.id, li.campaign_id, li.name, li.booked_amount, li.actual_amount,
        li.created_at, li.updated_at,
        inv.id, inv.line_item_id, inv.adjustments, inv.created_at, inv.updated_at`

func scanLineItem(row pgx.CollectableRow) (lineItemRow, error) {
	var rc lineItemRow
	err := row.Scan(
		&rc.item.ID,
		&rc.item.CampaignID,
		&rc.item.Name,
		&rc.item.BookedAmount,
		&rc.item.ActualAmount,
		&rc.item.CreatedAt,
		&rc.item.UpdatedAt,
		&rc.invID,
		&rc.invLineItemID,
		&rc.invAdjustments,
		&rc.invCreatedAt,
		&rc.invUpdatedAt,
	)
	return rc, err
}

func (rc lineItemRow) toDomain() domain.LineItem {
	li := rc.item
	if rc.invID != nil {
		li.Invoice = &domain.Invoice{
			ID:          *rc.invID,
			LineItemID:  *rc.invLineItemID,
			Adjustments: *rc.invAdjustments,
			CreatedAt:   *rc.invCreatedAt,
			UpdatedAt:   *rc.invUpdatedAt,
		}
	}
	return li
}

// ListLineItems returns the line items of a campaign ordered by id,
// each with its invoice when one exists.
func (r *BoardRepository) ListLineItems(ctx context.Context, campaignID int64) ([]domain.LineItem, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT`+lineItemColumns+`
        FROM line_items li
        LEFT JOIN invoices inv ON inv.line_item_id = li.id
        WHERE li.campaign_id = $1
        ORDER BY li.id`, campaignID)
	if err != nil {
		return nil, err
	}
	raw, err := pgx.CollectRows(rows, scanLineItem)
	if err != nil {
		return nil, err
	}
	items := make([]domain.LineItem, 0, len(raw))
	for _, rc := range raw {
		items = append(items, rc.toDomain())
	}
	return items, nil
}

// GetLineItem returns a line item by id with its invoice joined.
func (r *BoardRepository) GetLineItem(ctx context.Context, id int64) (*domain.LineItem, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT`+lineItemColumns+`
        FROM line_items li
        LEFT JOIN invoices inv ON inv.line_item_id = li.id
        WHERE li.id = $1`, id)
	if err != nil {
		return nil, err
	}
	rc, err := pgx.CollectOneRow(rows, scanLineItem)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	li := rc.toDomain()
	return &li, nil
}

// GetInvoice returns an invoice by id.
func (r *BoardRepository) GetInvoice(ctx context.Context, id int64) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := r.pool.QueryRow(ctx,
		`SELECT id, line_item_id, adjustments, created_at, updated_at FROM invoices WHERE id = $1`, id,
	).Scan(&inv.ID, &inv.LineItemID, &inv.Adjustments, &inv.CreatedAt, &inv.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// UpdateInvoiceAdjustment stores a new adjustment value and returns the
// updated record. The write is a single statement, so equal values are
// naturally idempotent.
func (r *BoardRepository) UpdateInvoiceAdjustment(ctx context.Context, id int64, adjustment float64) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := r.pool.QueryRow(ctx, `
        UPDATE invoices
        SET adjustments = $2, updated_at = now()
        WHERE id = $1
        RETURNING id, line_item_id, adjustments, created_at, updated_at`,
		id, adjustment,
	).Scan(&inv.ID, &inv.LineItemID, &inv.Adjustments, &inv.CreatedAt, &inv.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
