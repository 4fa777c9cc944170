package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var seedCampaignNames = []string{
	"Satterfield-Turcotte : Multi-channelled next generation analyzer",
	"Haley-Bernier : Streamlined zero tolerance emulation",
	"Beier-Smitham : Balanced bandwidth-monitored circuit",
	"Kub-Bartell : Profit-focused local capability",
	"Ryan-Treutel : Open-source dedicated data-warehouse",
}

// Seed inserts demo campaigns with line items and invoices. Roughly
// two thirds of the line items receive an invoice with a small signed
// adjustment, so listings exercise both branches of the final-amount
// computation. Inserts are conflict-free reruns.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for i, name := range seedCampaignNames {
		campaignID := int64(i + 1)
		_, err := db.Exec(ctx, `INSERT INTO campaigns (id, name, created_at, updated_at)
VALUES ($1, $2, now(), now()) ON CONFLICT DO NOTHING`, campaignID, name)
		if err != nil {
			return err
		}

		itemCount := 5 + r.Intn(10)
		for j := 1; j <= itemCount; j++ {
			itemID := campaignID*100 + int64(j)
			itemName := fmt.Sprintf("Display ad unit %d", j)
			booked := float64(r.Intn(500000)) / 100 // up to 5000.00
			actual := booked * (0.8 + r.Float64()*0.4)
			_, err = db.Exec(ctx, `INSERT INTO line_items
    (id, campaign_id, name, booked_amount, actual_amount, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, now(), now()) ON CONFLICT DO NOTHING`,
				itemID, campaignID, itemName, booked, actual)
			if err != nil {
				return err
			}

			if r.Intn(3) == 0 {
				continue // no invoice for this item
			}
			adjustment := float64(r.Intn(20001)-10000) / 100 // -100.00 .. 100.00
			_, err = db.Exec(ctx, `INSERT INTO invoices
    (line_item_id, adjustments, created_at, updated_at)
VALUES ($1, $2, now(), now()) ON CONFLICT DO NOTHING`,
				itemID, adjustment)
			if err != nil {
				return err
			}
		}
	}

	// keep the id sequences ahead of the fixed seed ids
	if _, err := db.Exec(ctx,
		`SELECT setval('campaigns_id_seq', (SELECT max(id) FROM campaigns))`); err != nil {
		return err
	}
	if _, err := db.Exec(ctx,
		`SELECT setval('line_items_id_seq', (SELECT max(id) FROM line_items))`); err != nil {
		return err
	}
	return nil
}
