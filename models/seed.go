package models

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Migrate creates the catalog schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Product{})
}

// Seed inserts the sample catalog. It is idempotent: if any product row
// already exists the seed is skipped entirely.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	sample := []Product{
		{Name: "Red Shirt", Price: decimal.NewFromFloat(299.0), Description: "Comfortable red shirt", Image: "images/shirt.png", Stock: intPtr(10)},
		{Name: "Blue Jeans", Price: decimal.NewFromFloat(899.0), Description: "Stylish blue jeans", Image: "images/jean.png", Stock: intPtr(5)},
		{Name: "Sneakers", Price: decimal.NewFromFloat(1499.0), Description: "Sporty sneakers", Image: "images/shoes1.png", Stock: intPtr(7)},
		{Name: "Classic Watch", Price: decimal.NewFromFloat(1999.0), Description: "Classic wrist watch", Image: "images/watch.jpg", Stock: intPtr(3)},
	}
	if err := db.Create(&sample).Error; err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	return nil
}

func intPtr(n int) *int {
	return &n
}
