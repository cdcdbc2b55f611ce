package entity

import "time"

// Destination representa un destino turístico publicable en el sitio.
// IsActive e IsFeatured son flags independientes: un destino puede estar
// destacado y a la vez inactivo (no se muestra hasta reactivarlo).
type Destination struct {
	ID          int64
	Name        string // 3-255 caracteres
	Location    string // país o región
	Description string // mínimo 10 caracteres
	ImageURL    string // ruta pública de la imagen subida
	IsActive    bool   // default true
	IsFeatured  bool   // default false
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
