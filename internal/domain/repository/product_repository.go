package repository

import "github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/entity"

// ProductRepository defines the persistence port for Product.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	// AdjustStock adds delta (may be negative) to the product's stock and
	// fails with domain.ErrInsufficientStock if it would go below zero.
	AdjustStock(productID string, delta int64) error
	List(filter ProductFilter) ([]*entity.Product, error)
	Delete(id string) error
}

// ProductFilter narrows product listings. Search matches name and SKU after
// diacritic folding.
type ProductFilter struct {
	CategoryID string
	Search     string
	OnlyActive bool
	Limit      int
	Offset     int
}
