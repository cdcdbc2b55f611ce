package repository

import "context"

// AnalyticsRepository consultas read-only para el dashboard del panel.
// Ninguna de estas consultas escribe: el poll periódico del dashboard no
// puede pisar estado de escritura.
type AnalyticsRepository interface {
	CountDestinations(ctx context.Context) (int64, error)
	CountActiveOffers(ctx context.Context) (int64, error)
	CountPackages(ctx context.Context) (int64, error)
	CountMovies(ctx context.Context) (int64, error)
	CountUnreadContacts(ctx context.Context) (int64, error)
	CountActiveUsers(ctx context.Context) (int64, error)
}
