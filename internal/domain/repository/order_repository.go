package repository

import "github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/entity"

// OrderRepository defines the persistence port for Order and its items.
type OrderRepository interface {
	Create(order *entity.Order) error
	CreateItem(item *entity.OrderItem) error
	// GetByID returns the order with its items loaded.
	GetByID(id string) (*entity.Order, error)
	UpdateStatus(id, status string) error
	List(limit, offset int) ([]*entity.Order, error)
	ListByCustomer(customerID string, limit, offset int) ([]*entity.Order, error)
}
