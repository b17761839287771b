package models

import (
	"errors"

	"gorm.io/gorm"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

type ProductsRepository struct {
	db *gorm.DB
}

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

// GetAll returns every product in the catalog, ordered by id.
func (r *ProductsRepository) GetAll() ([]Product, error) {
	var products []Product
	if err := r.db.
		Order("id").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductsRepository) GetByID(id ProductID) (*Product, error) {
	var product Product
	if err := r.db.
		Where("id = ?", id).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err // Other DB error
	}
	return &product, nil
}
