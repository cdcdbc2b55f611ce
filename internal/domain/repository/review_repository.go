package repository

import "github.com/jhoicas/turavia-api/internal/domain/entity"

// ReviewRepository define el puerto de persistencia para Review (DIP).
type ReviewRepository interface {
	Create(r *entity.Review) error
	GetByID(id int64) (*entity.Review, error)
	ListByMovie(movieID int64, limit, offset int) ([]*entity.Review, error)
	Delete(id int64) error
}
