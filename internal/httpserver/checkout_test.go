package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pizzashop/internal/domain"
)

func filledCart() domain.Cart {
	cart := domain.NewCart()
	cart.Lines[1] = domain.CartLine{ItemID: 1, Name: "Margherita", PriceCents: 299, Quantity: 2}
	cart.Lines[2] = domain.CartLine{ItemID: 2, Name: "Pepperoni", PriceCents: 399, Quantity: 1}
	return cart
}

func postCheckout(router http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCheckoutHappyPath(t *testing.T) {
	carts := &stubCartService{cart: filledCart()}
	orders := &stubOrderService{createID: 42}
	router := testRouter(Deps{MenuRepo: &stubMenuRepo{}, CartSvc: carts, OrderSvc: orders})

	rec := postCheckout(router, `{"name":"Asha Rao","phone":"9876543210","address":"12 MG Road"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		OrderID int64 `json:"orderId"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.OrderID != 42 {
		t.Fatalf("expected order id 42, got %d", resp.OrderID)
	}
	if orders.lastCreate.TotalCents != 997 {
		t.Fatalf("expected cart total 997 in create input, got %d", orders.lastCreate.TotalCents)
	}
	if len(orders.lastCreate.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(orders.lastCreate.Lines))
	}
	if carts.clearCalls != 1 {
		t.Fatalf("expected cart cleared once, got %d", carts.clearCalls)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	orders := &stubOrderService{}
	router := testRouter(Deps{MenuRepo: &stubMenuRepo{}, CartSvc: &stubCartService{}, OrderSvc: orders})

	rec := postCheckout(router, `{"name":"Asha","phone":"123","address":"addr"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if orders.createCalls != 0 {
		t.Fatalf("order service must not be called for an empty cart")
	}
}

func TestCheckoutValidationError(t *testing.T) {
	carts := &stubCartService{cart: filledCart()}
	orders := &stubOrderService{createErr: domain.NewValidationError("all fields are required", "phone")}
	router := testRouter(Deps{MenuRepo: &stubMenuRepo{}, CartSvc: carts, OrderSvc: orders})

	rec := postCheckout(router, `{"name":"Asha","phone":"","address":"addr"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if carts.clearCalls != 0 {
		t.Fatalf("cart must stay intact on validation failure")
	}
}

func TestCheckoutPersistenceErrorKeepsCart(t *testing.T) {
	carts := &stubCartService{cart: filledCart()}
	orders := &stubOrderService{createErr: domain.NewPersistenceError("insert order", errors.New("db down"))}
	router := testRouter(Deps{MenuRepo: &stubMenuRepo{}, CartSvc: carts, OrderSvc: orders})

	rec := postCheckout(router, `{"name":"Asha","phone":"123","address":"addr"}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if carts.clearCalls != 0 {
		t.Fatalf("cart must stay intact on persistence failure")
	}
}

func TestOrderDetail(t *testing.T) {
	orders := &stubOrderService{order: &domain.Order{
		ID: 42, CustomerName: "Asha Rao", TotalCents: 997,
		Lines: []domain.OrderLine{{ItemID: 1, Name: "Margherita", UnitPriceCents: 299, Quantity: 2}},
	}}
	router := testRouter(Deps{MenuRepo: &stubMenuRepo{}, CartSvc: &stubCartService{}, OrderSvc: orders})

	req := httptest.NewRequest(http.MethodGet, "/orders/42", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got domain.Order
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.ID != 42 || got.CustomerName != "Asha Rao" || len(got.Lines) != 1 {
		t.Fatalf("unexpected order %+v", got)
	}
}

func TestOrderDetailNotFound(t *testing.T) {
	orders := &stubOrderService{getErr: domain.ErrNotFound}
	router := testRouter(Deps{MenuRepo: &stubMenuRepo{}, CartSvc: &stubCartService{}, OrderSvc: orders})

	req := httptest.NewRequest(http.MethodGet, "/orders/12345", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
