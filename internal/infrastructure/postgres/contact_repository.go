package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/turavia-api/internal/domain/entity"
	"github.com/jhoicas/turavia-api/internal/domain/repository"
)

var _ repository.ContactRepository = (*ContactRepo)(nil)

// ContactRepo implementación del puerto ContactRepository sobre PostgreSQL (usable con pool o tx).
type ContactRepo struct {
	q Querier
}

// NewContactRepository construye el adaptador de persistencia para mensajes de contacto. Pasar pool o tx (Querier).
func NewContactRepository(q Querier) *ContactRepo {
	return &ContactRepo{q: q}
}

// Create persiste un mensaje nuevo (llega desde el formulario público).
func (r *ContactRepo) Create(c *entity.Contact) error {
	query := `
		INSERT INTO contacts (name, email, message, is_read, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		c.Name, c.Email, c.Message, c.IsRead, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

// GetByID obtiene un mensaje por ID.
func (r *ContactRepo) GetByID(id int64) (*entity.Contact, error) {
	var c entity.Contact
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, email, message, is_read, created_at, updated_at FROM contacts WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Message, &c.IsRead, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return &c, nil
}

// List lista mensajes con paginación; no leídos primero, luego por fecha.
// q filtra por name, email o message (case-insensitive).
func (r *ContactRepo) List(q string, limit, offset int) ([]*entity.Contact, error) {
	query := `
		SELECT id, name, email, message, is_read, created_at, updated_at
		FROM contacts
		WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%' OR message ILIKE '%' || $1 || '%'
		ORDER BY is_read ASC, created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, escapeLike(q), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Contact
	for rows.Next() {
		var c entity.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Message, &c.IsRead, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// SetRead fija el flag de lectura (leído / no leído).
func (r *ContactRepo) SetRead(id int64, read bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE contacts SET is_read = $2, updated_at = now() WHERE id = $1`,
		id, read,
	)
	if err != nil {
		return fmt.Errorf("set contact read: %w", err)
	}
	return nil
}

// Delete elimina un mensaje por ID.
func (r *ContactRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}
