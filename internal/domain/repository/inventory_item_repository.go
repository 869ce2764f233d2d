package repository

import "github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/entity"

// InventoryItemRepository defines the persistence port for InventoryItem.
type InventoryItemRepository interface {
	Create(item *entity.InventoryItem) error
	GetByID(id string) (*entity.InventoryItem, error)
	GetByCode(code string) (*entity.InventoryItem, error)
	Update(item *entity.InventoryItem) error
	AdjustQuantity(itemID string, delta int64) error
	List(limit, offset int) ([]*entity.InventoryItem, error)
	Delete(id string) error
}
