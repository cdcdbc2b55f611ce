package repository

import "github.com/jhoicas/turavia-api/internal/domain/entity"

// MovieRepository define el puerto de persistencia para Movie (DIP).
type MovieRepository interface {
	Create(m *entity.Movie) error
	GetByID(id int64) (*entity.Movie, error)
	List(q string, limit, offset int) ([]*entity.Movie, error)
	Update(m *entity.Movie) error
	SetFeatured(id int64, featured bool) error
	Delete(id int64) error
}
