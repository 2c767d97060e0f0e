package order

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

// Create inserts the order row and all its line items in a single
// transaction. Either every row becomes visible or none does.
func (r *postgresRepo) Create(ctx context.Context, in CreateOrderInput) (int64, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, domain.NewPersistenceError("begin order tx", err)
	}
	defer tx.Rollback(ctx)

	var orderID int64
	err = tx.QueryRow(ctx, `
INSERT INTO orders (customer_name, phone, address, total_cents)
VALUES ($1, $2, $3, $4)
RETURNING id
`, in.CustomerName, in.Phone, in.Address, in.TotalCents).Scan(&orderID)
	if err != nil {
		r.logger.Error("order repo: insert order", zap.Error(err))
		return 0, domain.NewPersistenceError("insert order", err)
	}

	for _, line := range in.Lines {
		if _, err := tx.Exec(ctx, `
INSERT INTO order_items (order_id, item_id, name, unit_price_cents, quantity)
VALUES ($1, $2, $3, $4, $5)
`, orderID, line.ItemID, line.Name, line.UnitPriceCents, line.Quantity); err != nil {
			r.logger.Error("order repo: insert order item",
				zap.Int64("order_id", orderID),
				zap.Int64("item_id", line.ItemID),
				zap.Error(err))
			return 0, domain.NewPersistenceError("insert order item", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, domain.NewPersistenceError("commit order tx", err)
	}

	r.logger.Info("order repo: created",
		zap.Int64("order_id", orderID),
		zap.Int("lines", len(in.Lines)))
	return orderID, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	const orderQuery = `
SELECT id, customer_name, phone, address, total_cents, created_at
FROM orders
WHERE id = $1
`
	var order domain.Order
	err := r.pool.QueryRow(ctx, orderQuery, id).Scan(
		&order.ID,
		&order.CustomerName,
		&order.Phone,
		&order.Address,
		&order.TotalCents,
		&order.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error("order repo: get", zap.Int64("id", id), zap.Error(err))
		return nil, domain.NewPersistenceError("get order", err)
	}

	const linesQuery = `
SELECT id, order_id, item_id, name, unit_price_cents, quantity
FROM order_items
WHERE order_id = $1
ORDER BY id ASC
`
	rows, err := r.pool.Query(ctx, linesQuery, id)
	if err != nil {
		return nil, domain.NewPersistenceError("list order items", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line domain.OrderLine
		if err := rows.Scan(
			&line.ID,
			&line.OrderID,
			&line.ItemID,
			&line.Name,
			&line.UnitPriceCents,
			&line.Quantity,
		); err != nil {
			return nil, domain.NewPersistenceError("scan order item", err)
		}
		order.Lines = append(order.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewPersistenceError("list order items", err)
	}

	return &order, nil
}

// List returns orders newest first. Ties in created_at are broken by id so
// page boundaries stay stable across repeated queries.
func (r *postgresRepo) List(ctx context.Context, limit, offset int) ([]domain.Order, error) {
	const q = `
SELECT id, customer_name, phone, address, total_cents, created_at
FROM orders
ORDER BY created_at DESC, id DESC
LIMIT $1 OFFSET $2
`
	rows, err := r.pool.Query(ctx, q, limit, offset)
	if err != nil {
		r.logger.Error("order repo: list", zap.Error(err))
		return nil, domain.NewPersistenceError("list orders", err)
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(
			&order.ID,
			&order.CustomerName,
			&order.Phone,
			&order.Address,
			&order.TotalCents,
			&order.CreatedAt,
		); err != nil {
			return nil, domain.NewPersistenceError("scan order", err)
		}
		result = append(result, order)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewPersistenceError("list orders", err)
	}
	return result, nil
}

func (r *postgresRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count); err != nil {
		r.logger.Error("order repo: count", zap.Error(err))
		return 0, domain.NewPersistenceError("count orders", err)
	}
	return count, nil
}
