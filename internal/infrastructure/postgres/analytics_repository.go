package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/turavia-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para los contadores del dashboard.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

func (r *AnalyticsRepo) count(ctx context.Context, label, query string) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", label, err)
	}
	return n, nil
}

// CountDestinations total de destinos, activos o no.
func (r *AnalyticsRepo) CountDestinations(ctx context.Context) (int64, error) {
	return r.count(ctx, "destinations", `SELECT COUNT(*) FROM destinations`)
}

// CountActiveOffers ofertas con is_active = true.
func (r *AnalyticsRepo) CountActiveOffers(ctx context.Context) (int64, error) {
	return r.count(ctx, "active offers", `SELECT COUNT(*) FROM offers WHERE is_active = TRUE`)
}

// CountPackages total de paquetes turísticos.
func (r *AnalyticsRepo) CountPackages(ctx context.Context) (int64, error) {
	return r.count(ctx, "packages", `SELECT COUNT(*) FROM travel_packages`)
}

// CountMovies total de películas en cartelera.
func (r *AnalyticsRepo) CountMovies(ctx context.Context) (int64, error) {
	return r.count(ctx, "movies", `SELECT COUNT(*) FROM movies`)
}

// CountUnreadContacts mensajes de contacto pendientes de lectura.
func (r *AnalyticsRepo) CountUnreadContacts(ctx context.Context) (int64, error) {
	return r.count(ctx, "unread contacts", `SELECT COUNT(*) FROM contacts WHERE is_read = FALSE`)
}

// CountActiveUsers usuarios con login habilitado.
func (r *AnalyticsRepo) CountActiveUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, "active users", `SELECT COUNT(*) FROM users WHERE is_active = TRUE`)
}
