package dto

import "time"

// CreateReviewRequest entrada para reseñar una película. El UserID sale del
// token, no del cuerpo.
type CreateReviewRequest struct {
	Rating int    `json:"rating"`
	Review string `json:"review"`
}

// ReviewResponse salida de una reseña.
type ReviewResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	MovieID   int64     `json:"movie_id"`
	Rating    uint8     `json:"rating"`
	Review    string    `json:"review,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReviewListResponse lista paginada de reseñas de una película.
type ReviewListResponse struct {
	Items []ReviewResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
