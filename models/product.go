package models

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// ProductID is the single identifier type used everywhere a product is
// referenced: catalog lookups, cart entries and session payloads.
type ProductID uint

// ParseProductID parses a product id from its route or form representation.
func ParseProductID(s string) (ProductID, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return ProductID(n), nil
}

// Product represents a product in the catalog.
// Rows are created at seed time and treated as immutable afterwards.
type Product struct {
	ID          ProductID       `gorm:"primaryKey"`
	Name        string          `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Description string
	// Image is a path under the static file root, e.g. "images/shirt.png".
	Image string
	// Stock is nil when the product's inventory is not tracked.
	Stock *int
}

// InStock reports whether qty units can be taken at once. Untracked stock
// never limits an order.
func (p *Product) InStock(qty int) bool {
	return p.Stock == nil || qty <= *p.Stock
}

func (p *Product) TableName() string {
	return "products"
}
