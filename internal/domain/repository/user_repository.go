package repository

import "github.com/jhoicas/turavia-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id int64) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	List(q string, limit, offset int) ([]*entity.User, error)
	Update(u *entity.User) error
	SetActive(id int64, active bool) error
	Delete(id int64) error
}
