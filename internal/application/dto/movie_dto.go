package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMovieRequest entrada para crear una película. El póster llega como
// parte multipart; el handler parsea decimales y fechas del formulario.
type CreateMovieRequest struct {
	Title       string
	CategoryID  int64
	Genre       string
	Description string
	ReleaseDate time.Time
	Rating      decimal.Decimal
	TrailerURL  string
	Popularity  int
	Duration    *int
	Language    string
	Poster      *ImageUpload
}

// UpdateMovieRequest actualización parcial de una película.
type UpdateMovieRequest struct {
	Title       *string
	CategoryID  *int64
	Genre       *string
	Description *string
	ReleaseDate *time.Time
	Rating      *decimal.Decimal
	TrailerURL  *string
	Popularity  *int
	Duration    *int
	Language    *string
	Poster      *ImageUpload
}

// MovieResponse salida de una película.
type MovieResponse struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	CategoryID  int64           `json:"category_id"`
	Genre       string          `json:"genre,omitempty"`
	Description string          `json:"description"`
	ReleaseDate time.Time       `json:"release_date"`
	Rating      decimal.Decimal `json:"rating"`
	PosterURL   string          `json:"poster_url,omitempty"`
	TrailerURL  string          `json:"trailer_url,omitempty"`
	Popularity  int             `json:"popularity"`
	Duration    *int            `json:"duration,omitempty"`
	Language    string          `json:"language,omitempty"`
	IsFeatured  bool            `json:"is_featured"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// MovieListResponse lista paginada de películas.
type MovieListResponse struct {
	Items []MovieResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
