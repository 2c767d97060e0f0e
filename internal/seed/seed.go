package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type menuSeed struct {
	Name       string
	PriceCents int64
}

// Apply inserts the sample menu. Idempotent via ON CONFLICT on the name.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	items := []menuSeed{
		{Name: "Margherita", PriceCents: 29900},
		{Name: "Pepperoni", PriceCents: 39900},
		{Name: "Vegetarian", PriceCents: 34900},
		{Name: "BBQ Chicken", PriceCents: 44900},
		{Name: "Hawaiian", PriceCents: 37900},
		{Name: "Four Cheese", PriceCents: 42900},
	}

	for _, item := range items {
		if _, err := pool.Exec(ctx, `
INSERT INTO menu_items (name, price_cents)
VALUES ($1, $2)
ON CONFLICT (name) DO UPDATE SET price_cents = EXCLUDED.price_cents
`, item.Name, item.PriceCents); err != nil {
			return fmt.Errorf("seed menu item %q: %w", item.Name, err)
		}
	}
	return nil
}
