package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pizzashop/internal/domain"
)

func TestAddToCartSuccess(t *testing.T) {
	carts := &stubCartService{}
	router := testRouter(Deps{
		MenuRepo: &stubMenuRepo{},
		CartSvc:  carts,
		OrderSvc: &stubOrderService{},
	})

	req := httptest.NewRequest(http.MethodPost, "/cart/items/3", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if carts.lastItemID != 3 {
		t.Fatalf("expected item id 3, got %d", carts.lastItemID)
	}
}

func TestAddToCartUnknownItem(t *testing.T) {
	carts := &stubCartService{addErr: domain.ErrNotFound}
	router := testRouter(Deps{
		MenuRepo: &stubMenuRepo{},
		CartSvc:  carts,
		OrderSvc: &stubOrderService{},
	})

	req := httptest.NewRequest(http.MethodPost, "/cart/items/99", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAddToCartInvalidID(t *testing.T) {
	router := testRouter(Deps{
		MenuRepo: &stubMenuRepo{},
		CartSvc:  &stubCartService{},
		OrderSvc: &stubOrderService{},
	})

	req := httptest.NewRequest(http.MethodPost, "/cart/items/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetCartReturnsLinesAndTotal(t *testing.T) {
	cart := domain.NewCart()
	cart.Lines[1] = domain.CartLine{ItemID: 1, Name: "Margherita", PriceCents: 299, Quantity: 2}
	cart.Lines[2] = domain.CartLine{ItemID: 2, Name: "Pepperoni", PriceCents: 399, Quantity: 1}
	router := testRouter(Deps{
		MenuRepo: &stubMenuRepo{},
		CartSvc:  &stubCartService{cart: cart},
		OrderSvc: &stubOrderService{},
	})

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp cartResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(resp.Lines))
	}
	if resp.TotalCents != 997 {
		t.Fatalf("expected total 997, got %d", resp.TotalCents)
	}
}

func TestRemoveFromCart(t *testing.T) {
	carts := &stubCartService{}
	router := testRouter(Deps{
		MenuRepo: &stubMenuRepo{},
		CartSvc:  carts,
		OrderSvc: &stubOrderService{},
	})

	req := httptest.NewRequest(http.MethodDelete, "/cart/items/5", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if carts.lastItemID != 5 {
		t.Fatalf("expected item id 5, got %d", carts.lastItemID)
	}
}

func TestMenuHandler(t *testing.T) {
	router := testRouter(Deps{
		MenuRepo: &stubMenuRepo{items: []domain.MenuItem{
			{ID: 1, Name: "Margherita", PriceCents: 29900},
		}},
		CartSvc:  &stubCartService{},
		OrderSvc: &stubOrderService{},
	})

	req := httptest.NewRequest(http.MethodGet, "/menu", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Items []domain.MenuItem `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].Name != "Margherita" {
		t.Fatalf("unexpected items %+v", resp.Items)
	}
}
