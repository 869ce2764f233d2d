package repository

import "github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/entity"

// UserRepository defines the persistence port for User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
}
