package order

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"pizzashop/internal/domain"
	orderrepo "pizzashop/internal/repository/order"
)

// DefaultPageSize bounds List calls with a non-positive limit.
const DefaultPageSize = 20

type Service struct {
	repo   repo
	logger *zap.Logger
}

type repo interface {
	Create(ctx context.Context, in orderrepo.CreateOrderInput) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context, limit, offset int) ([]domain.Order, error)
	Count(ctx context.Context) (int, error)
}

func New(r repo, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: r, logger: logger}
}

type CreateInput struct {
	CustomerName string
	Phone        string
	Address      string
	TotalCents   int64
	Lines        []domain.OrderLine
}

// Create validates the checkout fields and persists the order with its line
// items in one transaction. The total is taken from the caller, not
// recomputed from the menu: the order records the price at checkout time.
func (s *Service) Create(ctx context.Context, in CreateInput) (int64, error) {
	var missing []string
	if strings.TrimSpace(in.CustomerName) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(in.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(in.Address) == "" {
		missing = append(missing, "address")
	}
	if len(missing) > 0 {
		return 0, domain.NewValidationError("all fields are required", missing...)
	}
	if len(in.Lines) == 0 {
		return 0, domain.NewValidationError("cart is empty")
	}
	for _, line := range in.Lines {
		if line.Quantity < 1 {
			return 0, domain.NewValidationError("line quantity must be at least 1")
		}
	}

	id, err := s.repo.Create(ctx, orderrepo.CreateOrderInput{
		CustomerName: strings.TrimSpace(in.CustomerName),
		Phone:        strings.TrimSpace(in.Phone),
		Address:      strings.TrimSpace(in.Address),
		TotalCents:   in.TotalCents,
		Lines:        in.Lines,
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("order created",
		zap.Int64("order_id", id),
		zap.Int("lines", len(in.Lines)),
		zap.Int64("total_cents", in.TotalCents))
	return id, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns orders newest first. Non-positive limits fall back to
// DefaultPageSize and negative offsets clamp to zero, so a caller can never
// request an unbounded result set.
func (s *Service) List(ctx context.Context, limit, offset int) ([]domain.Order, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
