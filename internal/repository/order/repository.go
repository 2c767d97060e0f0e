package order

import (
	"context"

	"pizzashop/internal/domain"
)

type CreateOrderInput struct {
	CustomerName string
	Phone        string
	Address      string
	TotalCents   int64
	Lines        []domain.OrderLine
}

type Repository interface {
	Create(ctx context.Context, in CreateOrderInput) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context, limit, offset int) ([]domain.Order, error)
	Count(ctx context.Context) (int, error)
}
