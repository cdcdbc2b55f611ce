package repository

import "github.com/jhoicas/turavia-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
type CompanyRepository interface {
	Create(c *entity.Company) error
	GetByID(id int64) (*entity.Company, error)
	List(q string, limit, offset int) ([]*entity.Company, error)
	Update(c *entity.Company) error
	SetActive(id int64, active bool) error
	Delete(id int64) error
}
