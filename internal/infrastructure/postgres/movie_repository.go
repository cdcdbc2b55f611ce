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

var _ repository.MovieRepository = (*MovieRepo)(nil)

// MovieRepo implementación del puerto MovieRepository sobre PostgreSQL (usable con pool o tx).
type MovieRepo struct {
	q Querier
}

// NewMovieRepository construye el adaptador de persistencia para películas. Pasar pool o tx (Querier).
func NewMovieRepository(q Querier) *MovieRepo {
	return &MovieRepo{q: q}
}

const movieColumns = `id, title, category_id, genre, description, release_date, rating, poster_url, trailer_url, popularity, duration, language, is_featured, created_at, updated_at`

// Create persiste una película nueva y asigna el ID generado.
func (r *MovieRepo) Create(m *entity.Movie) error {
	query := `
		INSERT INTO movies (title, category_id, genre, description, release_date, rating, poster_url, trailer_url, popularity, duration, language, is_featured, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		m.Title, m.CategoryID, m.Genre, m.Description, m.ReleaseDate, m.Rating, m.PosterURL,
		m.TrailerURL, m.Popularity, m.Duration, m.Language, m.IsFeatured, m.CreatedAt, m.UpdatedAt,
	).Scan(&m.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenceNotFound
		}
		return fmt.Errorf("insert movie: %w", err)
	}
	return nil
}

// GetByID obtiene una película por ID.
func (r *MovieRepo) GetByID(id int64) (*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`
	var m entity.Movie
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Title, &m.CategoryID, &m.Genre, &m.Description, &m.ReleaseDate, &m.Rating, &m.PosterURL,
		&m.TrailerURL, &m.Popularity, &m.Duration, &m.Language, &m.IsFeatured, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movie: %w", err)
	}
	return &m, nil
}

// List lista películas con paginación; q filtra por title o genre (case-insensitive).
func (r *MovieRepo) List(q string, limit, offset int) ([]*entity.Movie, error) {
	query := `
		SELECT ` + movieColumns + `
		FROM movies
		WHERE $1 = '' OR title ILIKE '%' || $1 || '%' OR genre ILIKE '%' || $1 || '%'
		ORDER BY popularity DESC, created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, escapeLike(q), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movie
	for rows.Next() {
		var m entity.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.CategoryID, &m.Genre, &m.Description, &m.ReleaseDate, &m.Rating, &m.PosterURL,
			&m.TrailerURL, &m.Popularity, &m.Duration, &m.Language, &m.IsFeatured, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Update actualiza los campos editables de una película.
func (r *MovieRepo) Update(m *entity.Movie) error {
	query := `
		UPDATE movies SET title = $2, category_id = $3, genre = $4, description = $5, release_date = $6,
			rating = $7, poster_url = $8, trailer_url = $9, popularity = $10, duration = $11, language = $12, updated_at = $13
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Title, m.CategoryID, m.Genre, m.Description, m.ReleaseDate,
		m.Rating, m.PosterURL, m.TrailerURL, m.Popularity, m.Duration, m.Language, m.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenceNotFound
		}
		return fmt.Errorf("update movie: %w", err)
	}
	return nil
}

// SetFeatured fija el flag de destacado en cartelera.
func (r *MovieRepo) SetFeatured(id int64, featured bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE movies SET is_featured = $2, updated_at = now() WHERE id = $1`,
		id, featured,
	)
	if err != nil {
		return fmt.Errorf("set movie featured: %w", err)
	}
	return nil
}

// Delete elimina una película; sus reseñas caen por FK ON DELETE CASCADE.
func (r *MovieRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}
	return nil
}
