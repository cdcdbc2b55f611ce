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

var _ repository.OfferRepository = (*OfferRepo)(nil)

// OfferRepo implementación del puerto OfferRepository sobre PostgreSQL (usable con pool o tx).
type OfferRepo struct {
	q Querier
}

// NewOfferRepository construye el adaptador de persistencia para ofertas. Pasar pool o tx (Querier).
func NewOfferRepository(q Querier) *OfferRepo {
	return &OfferRepo{q: q}
}

const offerColumns = `id, company_id, destination_id, title, description, price, discount_price, discount_type, start_date, end_date, image_url, is_active, created_at, updated_at`

// Create persiste una oferta nueva y asigna el ID generado. Una FK rota
// concurrente se traduce a ErrReferenceNotFound.
func (r *OfferRepo) Create(o *entity.Offer) error {
	query := `
		INSERT INTO offers (company_id, destination_id, title, description, price, discount_price, discount_type, start_date, end_date, image_url, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		o.CompanyID, o.DestinationID, o.Title, o.Description, o.Price, o.DiscountPrice,
		o.DiscountType, o.StartDate, o.EndDate, o.ImageURL, o.IsActive, o.CreatedAt, o.UpdatedAt,
	).Scan(&o.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenceNotFound
		}
		return fmt.Errorf("insert offer: %w", err)
	}
	return nil
}

// GetByID obtiene una oferta por ID.
func (r *OfferRepo) GetByID(id int64) (*entity.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers WHERE id = $1`
	var o entity.Offer
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.CompanyID, &o.DestinationID, &o.Title, &o.Description, &o.Price, &o.DiscountPrice,
		&o.DiscountType, &o.StartDate, &o.EndDate, &o.ImageURL, &o.IsActive, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get offer: %w", err)
	}
	return &o, nil
}

// List lista ofertas con paginación; q filtra por title (case-insensitive).
func (r *OfferRepo) List(q string, limit, offset int) ([]*entity.Offer, error) {
	query := `
		SELECT ` + offerColumns + `
		FROM offers
		WHERE $1 = '' OR title ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, escapeLike(q), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	defer rows.Close()
	return scanOffers(rows)
}

// ListActiveByDestination devuelve las ofertas activas de un destino,
// más baratas primero. Alimenta el catálogo PDF.
func (r *OfferRepo) ListActiveByDestination(destinationID int64) ([]*entity.Offer, error) {
	query := `
		SELECT ` + offerColumns + `
		FROM offers
		WHERE destination_id = $1 AND is_active = TRUE
		ORDER BY price ASC`
	rows, err := r.q.Query(context.Background(), query, destinationID)
	if err != nil {
		return nil, fmt.Errorf("list offers by destination: %w", err)
	}
	defer rows.Close()
	return scanOffers(rows)
}

func scanOffers(rows pgx.Rows) ([]*entity.Offer, error) {
	var list []*entity.Offer
	for rows.Next() {
		var o entity.Offer
		if err := rows.Scan(&o.ID, &o.CompanyID, &o.DestinationID, &o.Title, &o.Description, &o.Price, &o.DiscountPrice,
			&o.DiscountType, &o.StartDate, &o.EndDate, &o.ImageURL, &o.IsActive, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan offer: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Update actualiza los campos editables de una oferta.
func (r *OfferRepo) Update(o *entity.Offer) error {
	query := `
		UPDATE offers SET company_id = $2, destination_id = $3, title = $4, description = $5, price = $6,
			discount_price = $7, discount_type = $8, start_date = $9, end_date = $10, image_url = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.CompanyID, o.DestinationID, o.Title, o.Description, o.Price,
		o.DiscountPrice, o.DiscountType, o.StartDate, o.EndDate, o.ImageURL, o.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenceNotFound
		}
		return fmt.Errorf("update offer: %w", err)
	}
	return nil
}

// SetActive fija el flag de publicación.
func (r *OfferRepo) SetActive(id int64, active bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE offers SET is_active = $2, updated_at = now() WHERE id = $1`,
		id, active,
	)
	if err != nil {
		return fmt.Errorf("set offer active: %w", err)
	}
	return nil
}

// Delete elimina una oferta por ID.
func (r *OfferRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM offers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete offer: %w", err)
	}
	return nil
}
