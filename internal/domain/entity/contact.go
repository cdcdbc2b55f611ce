package entity

import "time"

// Contact mensaje recibido desde el formulario público de contacto.
// IsRead se alterna con marcar leído / no leído; no hay más moderación.
type Contact struct {
	ID        int64
	Name      string
	Email     string
	Message   string // mínimo 10 caracteres
	IsRead    bool   // default false
	CreatedAt time.Time
	UpdatedAt time.Time
}
