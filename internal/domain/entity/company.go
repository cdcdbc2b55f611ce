package entity

import "time"

// Company representa una agencia u operador turístico listado en el sitio.
// Las ofertas referencian a la compañía emisora; borrar la compañía elimina
// sus ofertas en cascada (FK ON DELETE CASCADE).
type Company struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Address   string
	LogoURL   string
	IsActive  bool // default true
	CreatedAt time.Time
	UpdatedAt time.Time
}
