package repository

import "github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/entity"

// CategoryRepository defines the persistence port for Category.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	Update(category *entity.Category) error
	List() ([]*entity.Category, error)
	Delete(id string) error
}
