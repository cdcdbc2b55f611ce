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

var _ repository.TravelPackageRepository = (*TravelPackageRepo)(nil)

// TravelPackageRepo implementación del puerto TravelPackageRepository sobre PostgreSQL (usable con pool o tx).
type TravelPackageRepo struct {
	q Querier
}

// NewTravelPackageRepository construye el adaptador de persistencia para paquetes. Pasar pool o tx (Querier).
func NewTravelPackageRepository(q Querier) *TravelPackageRepo {
	return &TravelPackageRepo{q: q}
}

const packageColumns = `id, destination_id, name, description, price, duration_days, image_url, is_active, is_featured, created_at, updated_at`

// Create persiste un paquete nuevo y asigna el ID generado.
func (r *TravelPackageRepo) Create(p *entity.TravelPackage) error {
	query := `
		INSERT INTO travel_packages (destination_id, name, description, price, duration_days, image_url, is_active, is_featured, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		p.DestinationID, p.Name, p.Description, p.Price, p.DurationDays,
		p.ImageURL, p.IsActive, p.IsFeatured, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenceNotFound
		}
		return fmt.Errorf("insert travel package: %w", err)
	}
	return nil
}

// GetByID obtiene un paquete por ID.
func (r *TravelPackageRepo) GetByID(id int64) (*entity.TravelPackage, error) {
	query := `SELECT ` + packageColumns + ` FROM travel_packages WHERE id = $1`
	var p entity.TravelPackage
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.DestinationID, &p.Name, &p.Description, &p.Price, &p.DurationDays,
		&p.ImageURL, &p.IsActive, &p.IsFeatured, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get travel package: %w", err)
	}
	return &p, nil
}

// List lista paquetes con paginación; q filtra por name (case-insensitive).
func (r *TravelPackageRepo) List(q string, limit, offset int) ([]*entity.TravelPackage, error) {
	query := `
		SELECT ` + packageColumns + `
		FROM travel_packages
		WHERE $1 = '' OR name ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, escapeLike(q), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list travel packages: %w", err)
	}
	defer rows.Close()
	var list []*entity.TravelPackage
	for rows.Next() {
		var p entity.TravelPackage
		if err := rows.Scan(&p.ID, &p.DestinationID, &p.Name, &p.Description, &p.Price, &p.DurationDays,
			&p.ImageURL, &p.IsActive, &p.IsFeatured, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan travel package: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza los campos editables de un paquete.
func (r *TravelPackageRepo) Update(p *entity.TravelPackage) error {
	query := `
		UPDATE travel_packages SET destination_id = $2, name = $3, description = $4, price = $5,
			duration_days = $6, image_url = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.DestinationID, p.Name, p.Description, p.Price, p.DurationDays, p.ImageURL, p.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenceNotFound
		}
		return fmt.Errorf("update travel package: %w", err)
	}
	return nil
}

// SetActive fija el flag de publicación.
func (r *TravelPackageRepo) SetActive(id int64, active bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE travel_packages SET is_active = $2, updated_at = now() WHERE id = $1`,
		id, active,
	)
	if err != nil {
		return fmt.Errorf("set travel package active: %w", err)
	}
	return nil
}

// SetFeatured fija el flag de destacado.
func (r *TravelPackageRepo) SetFeatured(id int64, featured bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE travel_packages SET is_featured = $2, updated_at = now() WHERE id = $1`,
		id, featured,
	)
	if err != nil {
		return fmt.Errorf("set travel package featured: %w", err)
	}
	return nil
}

// Delete elimina un paquete por ID.
func (r *TravelPackageRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM travel_packages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete travel package: %w", err)
	}
	return nil
}
