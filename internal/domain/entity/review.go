package entity

import "time"

// Review reseña de un usuario sobre una película. Borrar el usuario o la
// película elimina la reseña en cascada.
type Review struct {
	ID        int64
	UserID    int64 // FK users, ON DELETE CASCADE
	MovieID   int64 // FK movies, ON DELETE CASCADE
	Rating    uint8 // 0-5
	Review    string // opcional
	CreatedAt time.Time
	UpdatedAt time.Time
}
