package repository

import "github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/entity"

// ReturnRepository defines the persistence port for Return.
type ReturnRepository interface {
	Create(ret *entity.Return) error
	GetByID(id string) (*entity.Return, error)
	Update(ret *entity.Return) error
	List(limit, offset int) ([]*entity.Return, error)
	ListByCustomer(customerID string, limit, offset int) ([]*entity.Return, error)
}
