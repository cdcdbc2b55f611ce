package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/turavia-api/internal/domain"
	"github.com/jhoicas/turavia-api/internal/domain/entity"
	"github.com/jhoicas/turavia-api/internal/domain/repository"
)

var _ repository.ReviewRepository = (*ReviewRepo)(nil)

// ReviewRepo implementación del puerto ReviewRepository sobre PostgreSQL (usable con pool o tx).
type ReviewRepo struct {
	q Querier
}

// NewReviewRepository construye el adaptador de persistencia para reseñas. Pasar pool o tx (Querier).
func NewReviewRepository(q Querier) *ReviewRepo {
	return &ReviewRepo{q: q}
}

// Create persiste una reseña nueva y asigna el ID generado.
func (r *ReviewRepo) Create(rev *entity.Review) error {
	query := `
		INSERT INTO reviews (user_id, movie_id, rating, review, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		rev.UserID, rev.MovieID, rev.Rating, rev.Review, rev.CreatedAt, rev.UpdatedAt,
	).Scan(&rev.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenceNotFound
		}
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

// GetByID obtiene una reseña por ID.
func (r *ReviewRepo) GetByID(id int64) (*entity.Review, error) {
	var rev entity.Review
	err := r.q.QueryRow(context.Background(),
		`SELECT id, user_id, movie_id, rating, review, created_at, updated_at FROM reviews WHERE id = $1`, id,
	).Scan(&rev.ID, &rev.UserID, &rev.MovieID, &rev.Rating, &rev.Review, &rev.CreatedAt, &rev.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get review: %w", err)
	}
	return &rev, nil
}

// ListByMovie lista las reseñas de una película, más recientes primero.
func (r *ReviewRepo) ListByMovie(movieID int64, limit, offset int) ([]*entity.Review, error) {
	query := `
		SELECT id, user_id, movie_id, rating, review, created_at, updated_at
		FROM reviews WHERE movie_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, movieID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()
	var list []*entity.Review
	for rows.Next() {
		var rev entity.Review
		if err := rows.Scan(&rev.ID, &rev.UserID, &rev.MovieID, &rev.Rating, &rev.Review, &rev.CreatedAt, &rev.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		list = append(list, &rev)
	}
	return list, rows.Err()
}

// Delete elimina una reseña por ID.
func (r *ReviewRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	return nil
}
