package repository

import "github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/entity"

// PriceListRepository defines the persistence port for PriceList.
// The store guarantees at most one default list.
type PriceListRepository interface {
	Create(list *entity.PriceList) error
	GetByID(id string) (*entity.PriceList, error)
	GetDefault() (*entity.PriceList, error)
	Update(list *entity.PriceList) error
	// SetDefault marks the given list as the single system default,
	// clearing the flag on any other list atomically.
	SetDefault(id string) error
	List(limit, offset int) ([]*entity.PriceList, error)
	Delete(id string) error
}
