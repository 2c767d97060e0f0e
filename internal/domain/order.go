package domain

import "time"

// Order is immutable once created. Line items carry a snapshot of the menu
// name and price at checkout time so later menu edits never rewrite history.
type Order struct {
	ID           int64       `json:"id"`
	CustomerName string      `json:"customerName"`
	Phone        string      `json:"phone"`
	Address      string      `json:"address"`
	TotalCents   int64       `json:"totalCents"`
	CreatedAt    time.Time   `json:"createdAt"`
	Lines        []OrderLine `json:"items,omitempty"`
}

type OrderLine struct {
	ID             int64  `json:"id"`
	OrderID        int64  `json:"orderId"`
	ItemID         int64  `json:"itemId"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Quantity       int    `json:"quantity"`
}
