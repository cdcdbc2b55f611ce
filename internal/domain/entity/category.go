package entity

import "time"

// Category clasifica películas de la sección de cine del sitio.
// El nombre es único; borrar una categoría elimina sus películas en cascada.
type Category struct {
	ID        int64
	Name      string // 2-100 caracteres, único
	CreatedAt time.Time
	UpdatedAt time.Time
}
