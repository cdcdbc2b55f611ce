package repository

import "github.com/jhoicas/turavia-api/internal/domain/entity"

// TravelPackageRepository define el puerto de persistencia para TravelPackage (DIP).
type TravelPackageRepository interface {
	Create(p *entity.TravelPackage) error
	GetByID(id int64) (*entity.TravelPackage, error)
	List(q string, limit, offset int) ([]*entity.TravelPackage, error)
	Update(p *entity.TravelPackage) error
	SetActive(id int64, active bool) error
	SetFeatured(id int64, featured bool) error
	Delete(id int64) error
}
