package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movie representa una película de la cartelera promocional del sitio.
// Rating es un promedio editorial con un decimal (columna NUMERIC(3,1),
// rango 0.0-5.0); las reseñas de usuarios viven en Review.
type Movie struct {
	ID          int64
	Title       string
	CategoryID  int64 // FK categories, ON DELETE CASCADE
	Genre       string
	Description string
	ReleaseDate time.Time
	Rating      decimal.Decimal // 0.0 - 5.0
	PosterURL   string
	TrailerURL  string // opcional
	Popularity  int    // >= 0
	Duration    *int   // minutos, opcional
	Language    string // opcional
	IsFeatured  bool   // default false
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
