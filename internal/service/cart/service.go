package cart

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"
	"pizzashop/internal/domain"
	"pizzashop/internal/session"
)

// Service manages one cart per visitor token. All operations take the token
// explicitly; the cart is serialized as JSON into the session store.
type Service struct {
	store  session.Store
	menu   menuRepo
	logger *zap.Logger
}

type menuRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.MenuItem, error)
}

func New(store session.Store, menu menuRepo, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, menu: menu, logger: logger}
}

// AddItem looks the item up in the menu and merges it into the cart: a new
// line starts at quantity 1, an existing one is incremented by 1. Returns
// domain.ErrNotFound when the menu has no such item; the cart is untouched
// in that case.
func (s *Service) AddItem(ctx context.Context, token string, itemID int64) error {
	item, err := s.menu.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return err
	}

	cart := s.load(ctx, token)
	if line, ok := cart.Lines[itemID]; ok {
		line.Quantity++
		cart.Lines[itemID] = line
	} else {
		cart.Lines[itemID] = domain.CartLine{
			ItemID:     itemID,
			Name:       item.Name,
			PriceCents: item.PriceCents,
			Quantity:   1,
		}
	}
	return s.save(ctx, token, cart)
}

// RemoveItem deletes the whole line for itemID. Removing an absent item is a
// no-op, not an error.
func (s *Service) RemoveItem(ctx context.Context, token string, itemID int64) error {
	cart := s.load(ctx, token)
	if _, ok := cart.Lines[itemID]; !ok {
		return nil
	}
	delete(cart.Lines, itemID)
	return s.save(ctx, token, cart)
}

func (s *Service) Get(ctx context.Context, token string) domain.Cart {
	return s.load(ctx, token)
}

func (s *Service) Total(ctx context.Context, token string) int64 {
	return s.load(ctx, token).TotalCents()
}

func (s *Service) IsEmpty(ctx context.Context, token string) bool {
	return s.load(ctx, token).IsEmpty()
}

// Clear empties the cart. Idempotent.
func (s *Service) Clear(ctx context.Context, token string) error {
	return s.save(ctx, token, domain.NewCart())
}

// load reads the stored cart for token. Anything that fails to decode into a
// valid cart is discarded and replaced with an empty one: a cart is cheap,
// ephemeral state and a fresh start beats a failed request.
func (s *Service) load(ctx context.Context, token string) domain.Cart {
	data, ok, err := s.store.Get(ctx, token)
	if err != nil || !ok {
		if err != nil {
			s.logger.Warn("cart: session read failed, starting empty",
				zap.String("token", token), zap.Error(err))
		}
		return domain.NewCart()
	}

	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil || !cart.Valid() {
		s.logger.Warn("cart: corrupted session payload, resetting",
			zap.String("token", token), zap.Error(err))
		if err := s.save(ctx, token, domain.NewCart()); err != nil {
			s.logger.Warn("cart: reset failed", zap.String("token", token), zap.Error(err))
		}
		return domain.NewCart()
	}
	if cart.Lines == nil {
		cart.Lines = make(map[int64]domain.CartLine)
	}
	return cart
}

func (s *Service) save(ctx context.Context, token string, cart domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, token, data)
}
