package repository

import "github.com/jhoicas/turavia-api/internal/domain/entity"

// ContactRepository define el puerto de persistencia para Contact (DIP).
// List filtra por substring case-insensitive sobre name, email y message.
type ContactRepository interface {
	Create(c *entity.Contact) error
	GetByID(id int64) (*entity.Contact, error)
	List(q string, limit, offset int) ([]*entity.Contact, error)
	SetRead(id int64, read bool) error
	Delete(id int64) error
}
