package repository

import "github.com/jhoicas/turavia-api/internal/domain/entity"

// DestinationRepository define el puerto de persistencia para Destination (DIP).
// List filtra por substring case-insensitive sobre name y location cuando q no es vacío.
type DestinationRepository interface {
	Create(d *entity.Destination) error
	GetByID(id int64) (*entity.Destination, error)
	List(q string, limit, offset int) ([]*entity.Destination, error)
	Update(d *entity.Destination) error
	SetActive(id int64, active bool) error
	SetFeatured(id int64, featured bool) error
	Delete(id int64) error
}
