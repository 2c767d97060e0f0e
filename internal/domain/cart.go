package domain

// Cart is the per-visitor selection, keyed by menu item id. It lives in the
// session store only and is never written to the relational store.
type Cart struct {
	Lines map[int64]CartLine `json:"lines"`
}

type CartLine struct {
	ItemID     int64  `json:"itemId"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
	Quantity   int    `json:"quantity"`
}

func NewCart() Cart {
	return Cart{Lines: make(map[int64]CartLine)}
}

// TotalCents recomputes the cart total from its lines on every call.
func (c Cart) TotalCents() int64 {
	var total int64
	for _, line := range c.Lines {
		total += line.PriceCents * int64(line.Quantity)
	}
	return total
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Valid reports whether every line is structurally sound. A cart that fails
// this check is treated as corrupted and discarded.
func (c Cart) Valid() bool {
	for id, line := range c.Lines {
		if line.ItemID != id || line.Quantity < 1 || line.PriceCents < 0 || line.Name == "" {
			return false
		}
	}
	return true
}
