package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/turavia-api/internal/application/dto"
	"github.com/jhoicas/turavia-api/internal/domain/repository"
)

// DashboardUseCase arma el resumen de contadores del panel. Las seis
// consultas son independientes entre sí, así que se disparan en paralelo
// y se recogen por canal; el resumen sale en el tiempo de la más lenta.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

type countResult struct {
	key   string
	value int64
	err   error
}

// GetSummary ejecuta los contadores en paralelo y devuelve el snapshot.
// Si cualquiera falla, falla el resumen completo: un dashboard con
// contadores parciales engaña más de lo que informa.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	queries := []struct {
		key string
		fn  func(context.Context) (int64, error)
	}{
		{"destinations", uc.analyticsRepo.CountDestinations},
		{"active_offers", uc.analyticsRepo.CountActiveOffers},
		{"packages", uc.analyticsRepo.CountPackages},
		{"movies", uc.analyticsRepo.CountMovies},
		{"unread_contacts", uc.analyticsRepo.CountUnreadContacts},
		{"active_users", uc.analyticsRepo.CountActiveUsers},
	}

	results := make(chan countResult, len(queries))
	for _, q := range queries {
		q := q
		go func() {
			v, err := q.fn(ctx)
			results <- countResult{key: q.key, value: v, err: err}
		}()
	}

	summary := &dto.DashboardSummaryDTO{}
	for range queries {
		r := <-results
		if r.err != nil {
			return nil, fmt.Errorf("dashboard: %s: %w", r.key, r.err)
		}
		switch r.key {
		case "destinations":
			summary.Destinations = r.value
		case "active_offers":
			summary.ActiveOffers = r.value
		case "packages":
			summary.Packages = r.value
		case "movies":
			summary.Movies = r.value
		case "unread_contacts":
			summary.UnreadContacts = r.value
		case "active_users":
			summary.ActiveUsers = r.value
		}
	}
	return summary, nil
}
