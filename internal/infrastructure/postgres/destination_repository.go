package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/turavia-api/internal/domain/entity"
	"github.com/jhoicas/turavia-api/internal/domain/repository"
)

var _ repository.DestinationRepository = (*DestinationRepo)(nil)

// DestinationRepo implementación del puerto DestinationRepository sobre PostgreSQL (usable con pool o tx).
type DestinationRepo struct {
	q Querier
}

// NewDestinationRepository construye el adaptador de persistencia para destinos. Pasar pool o tx (Querier).
func NewDestinationRepository(q Querier) *DestinationRepo {
	return &DestinationRepo{q: q}
}

// Create persiste un destino nuevo y asigna el ID generado.
func (r *DestinationRepo) Create(d *entity.Destination) error {
	query := `
		INSERT INTO destinations (name, location, description, image_url, is_active, is_featured, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		d.Name, d.Location, d.Description, d.ImageURL, d.IsActive, d.IsFeatured, d.CreatedAt, d.UpdatedAt,
	).Scan(&d.ID)
	if err != nil {
		return fmt.Errorf("insert destination: %w", err)
	}
	return nil
}

// GetByID obtiene un destino por ID.
func (r *DestinationRepo) GetByID(id int64) (*entity.Destination, error) {
	query := `
		SELECT id, name, location, description, image_url, is_active, is_featured, created_at, updated_at
		FROM destinations WHERE id = $1`
	var d entity.Destination
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.Name, &d.Location, &d.Description, &d.ImageURL, &d.IsActive, &d.IsFeatured, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get destination: %w", err)
	}
	return &d, nil
}

// List lista destinos con paginación; q filtra por name o location (case-insensitive).
func (r *DestinationRepo) List(q string, limit, offset int) ([]*entity.Destination, error) {
	query := `
		SELECT id, name, location, description, image_url, is_active, is_featured, created_at, updated_at
		FROM destinations
		WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR location ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, escapeLike(q), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list destinations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Destination
	for rows.Next() {
		var d entity.Destination
		if err := rows.Scan(&d.ID, &d.Name, &d.Location, &d.Description, &d.ImageURL, &d.IsActive, &d.IsFeatured, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan destination: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Update actualiza los campos editables de un destino.
func (r *DestinationRepo) Update(d *entity.Destination) error {
	query := `
		UPDATE destinations SET name = $2, location = $3, description = $4, image_url = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.Name, d.Location, d.Description, d.ImageURL, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update destination: %w", err)
	}
	return nil
}

// SetActive fija el flag de publicación.
func (r *DestinationRepo) SetActive(id int64, active bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE destinations SET is_active = $2, updated_at = now() WHERE id = $1`,
		id, active,
	)
	if err != nil {
		return fmt.Errorf("set destination active: %w", err)
	}
	return nil
}

// SetFeatured fija el flag de destacado.
func (r *DestinationRepo) SetFeatured(id int64, featured bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE destinations SET is_featured = $2, updated_at = now() WHERE id = $1`,
		id, featured,
	)
	if err != nil {
		return fmt.Errorf("set destination featured: %w", err)
	}
	return nil
}

// Delete elimina un destino; ofertas y paquetes caen por FK ON DELETE CASCADE.
func (r *DestinationRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM destinations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete destination: %w", err)
	}
	return nil
}
