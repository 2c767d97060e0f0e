package menu

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"pizzashop/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *zap.Logger) Repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.MenuItem, error) {
	const q = `
SELECT id, name, price_cents
FROM menu_items
ORDER BY id ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Error("menu repo: list", zap.Error(err))
		return nil, domain.NewPersistenceError("list menu items", err)
	}
	defer rows.Close()

	var result []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.PriceCents); err != nil {
			return nil, domain.NewPersistenceError("scan menu item", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("menu repo: list rows", zap.Error(err))
		return nil, domain.NewPersistenceError("list menu items", err)
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.MenuItem, error) {
	const q = `
SELECT id, name, price_cents
FROM menu_items
WHERE id = $1
`
	var item domain.MenuItem
	err := r.pool.QueryRow(ctx, q, id).Scan(&item.ID, &item.Name, &item.PriceCents)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error("menu repo: get", zap.Int64("id", id), zap.Error(err))
		return nil, domain.NewPersistenceError("get menu item", err)
	}
	return &item, nil
}
