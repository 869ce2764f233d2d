package repository

import "github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/entity"

// CustomerRepository defines the persistence port for Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByUserID(userID string) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	List(limit, offset int) ([]*entity.Customer, error)
	ListBySalesRep(salesRepID string, limit, offset int) ([]*entity.Customer, error)
}
