package models

import (
	"github.com/shopspring/decimal"
)

// Cart is a session-scoped mapping from product id to requested quantity.
// An entry with quantity <= 0 never exists; Set removes it instead.
type Cart map[ProductID]int

// NewCart returns an empty cart.
func NewCart() Cart {
	return Cart{}
}

// Add increments the quantity for id, creating the entry if absent.
func (c Cart) Add(id ProductID, qty int) {
	c[id] = c[id] + qty
}

// Set overwrites the quantity for id. A quantity of zero or less removes
// the entry entirely.
func (c Cart) Set(id ProductID, qty int) {
	if qty <= 0 {
		delete(c, id)
		return
	}
	c[id] = qty
}

func (c Cart) Quantity(id ProductID) int {
	return c[id]
}

func (c Cart) IsEmpty() bool {
	return len(c) == 0
}

// Clear removes every entry.
func (c Cart) Clear() {
	for id := range c {
		delete(c, id)
	}
}

// QuoteLine is one cart entry joined with its resolved product.
type QuoteLine struct {
	Product   Product
	Quantity  int
	LineTotal decimal.Decimal
}

// Quote is the priced view of a cart.
type Quote struct {
	Lines []QuoteLine
	Total decimal.Decimal
}

// Quote prices the cart against the given catalog snapshot. Entries whose
// product does not appear in the snapshot are excluded from the lines and
// contribute nothing to the total; they stay in the cart itself.
func (c Cart) Quote(catalog []Product) Quote {
	q := Quote{Total: decimal.Zero}
	for _, p := range catalog {
		qty, ok := c[p.ID]
		if !ok {
			continue
		}
		line := QuoteLine{
			Product:   p,
			Quantity:  qty,
			LineTotal: p.Price.Mul(decimal.NewFromInt(int64(qty))),
		}
		q.Lines = append(q.Lines, line)
		q.Total = q.Total.Add(line.LineTotal)
	}
	return q
}
