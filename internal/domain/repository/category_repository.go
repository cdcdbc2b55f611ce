package repository

import "github.com/jhoicas/turavia-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(c *entity.Category) error
	GetByID(id int64) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	List(q string, limit, offset int) ([]*entity.Category, error)
	Update(c *entity.Category) error
	Delete(id int64) error
}
