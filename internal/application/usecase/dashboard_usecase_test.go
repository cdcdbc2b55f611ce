package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/turavia-api/internal/application/usecase"
)

// fakeAnalyticsRepo contadores fijos, con error inyectable por consulta.
type fakeAnalyticsRepo struct {
	destinations, activeOffers, packages, movies, unreadContacts, activeUsers int64

	offersErr error
}

func (r *fakeAnalyticsRepo) CountDestinations(ctx context.Context) (int64, error) {
	return r.destinations, nil
}

func (r *fakeAnalyticsRepo) CountActiveOffers(ctx context.Context) (int64, error) {
	if r.offersErr != nil {
		return 0, r.offersErr
	}
	return r.activeOffers, nil
}

func (r *fakeAnalyticsRepo) CountPackages(ctx context.Context) (int64, error) {
	return r.packages, nil
}

func (r *fakeAnalyticsRepo) CountMovies(ctx context.Context) (int64, error) {
	return r.movies, nil
}

func (r *fakeAnalyticsRepo) CountUnreadContacts(ctx context.Context) (int64, error) {
	return r.unreadContacts, nil
}

func (r *fakeAnalyticsRepo) CountActiveUsers(ctx context.Context) (int64, error) {
	return r.activeUsers, nil
}

func TestDashboardSummary_TodosLosContadores(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		destinations:   12,
		activeOffers:   5,
		packages:       8,
		movies:         20,
		unreadContacts: 3,
		activeUsers:    4,
	}
	uc := usecase.NewDashboardUseCase(repo)

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(12), out.Destinations)
	assert.Equal(t, int64(5), out.ActiveOffers)
	assert.Equal(t, int64(8), out.Packages)
	assert.Equal(t, int64(20), out.Movies)
	assert.Equal(t, int64(3), out.UnreadContacts)
	assert.Equal(t, int64(4), out.ActiveUsers)
}

func TestDashboardSummary_UnaConsultaFallidaFallaTodo(t *testing.T) {
	repo := &fakeAnalyticsRepo{offersErr: errors.New("timeout")}
	uc := usecase.NewDashboardUseCase(repo)

	out, err := uc.GetSummary(context.Background())
	require.Error(t, err)
	assert.Nil(t, out)
}
