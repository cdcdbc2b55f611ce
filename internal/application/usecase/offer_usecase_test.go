package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/turavia-api/internal/application/dto"
	"github.com/jhoicas/turavia-api/internal/application/usecase"
	"github.com/jhoicas/turavia-api/internal/domain/entity"
	"github.com/jhoicas/turavia-api/internal/domain/validation"
)

type offerFixture struct {
	uc            *usecase.OfferUseCase
	offers        *fakeOfferRepo
	storage       *fakeStorage
	companyID     int64
	destinationID int64
}

func newOfferFixture(t *testing.T) *offerFixture {
	t.Helper()
	offers := newFakeOfferRepo()
	packages := newFakePackageRepo()
	companies := newFakeCompanyRepo()
	destinations := newFakeDestinationRepo()
	storage := newFakeStorage()
	tx := &fakeTxRunner{offers: offers, packages: packages, companies: companies, destinations: destinations}

	company := &entity.Company{Name: "Viajes Andinos", Email: "info@andinos.co", IsActive: true}
	require.NoError(t, companies.Create(company))
	destination := &entity.Destination{Name: "Cusco", Location: "Perú", IsActive: true}
	require.NoError(t, destinations.Create(destination))

	return &offerFixture{
		uc:            usecase.NewOfferUseCase(offers, tx, storage),
		offers:        offers,
		storage:       storage,
		companyID:     company.ID,
		destinationID: destination.ID,
	}
}

func validOfferRequest(f *offerFixture) dto.CreateOfferRequest {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	return dto.CreateOfferRequest{
		CompanyID:     f.companyID,
		DestinationID: f.destinationID,
		Title:         "Valle Sagrado 4 días",
		Description:   "Tour completo por el Valle Sagrado con guía local",
		Price:         decimal.NewFromInt(90),
		StartDate:     start,
		EndDate:       start.AddDate(0, 1, 0),
		Image:         testImage(),
	}
}

func TestOfferCreate_Valido(t *testing.T) {
	f := newOfferFixture(t)

	in := validOfferRequest(f)
	discount := decimal.NewFromInt(80)
	in.DiscountPrice = &discount
	in.DiscountType = entity.DiscountFixed

	out, err := f.uc.Create(context.Background(), in)
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.True(t, out.IsActive)
	require.NotNil(t, out.DiscountPrice)
	assert.True(t, out.DiscountPrice.Equal(decimal.NewFromInt(80)))
}

func TestOfferCreate_DescuentoMayorOIgualAlPrecio(t *testing.T) {
	f := newOfferFixture(t)

	in := validOfferRequest(f) // price 90
	discount := decimal.NewFromInt(90)
	in.DiscountPrice = &discount

	_, err := f.uc.Create(context.Background(), in)
	require.Error(t, err)

	var errs validation.FieldErrors
	require.True(t, errors.As(err, &errs))
	assert.Contains(t, errs, "discount_price", "descuento igual al precio debe fallar sobre discount_price")
	assert.Empty(t, f.offers.rows)
	assert.Empty(t, f.storage.saved, "nada se almacena si la validación falla")
}

func TestOfferCreate_VentanaDeFechasInvertida(t *testing.T) {
	f := newOfferFixture(t)

	in := validOfferRequest(f)
	in.EndDate = in.StartDate.AddDate(0, 0, -1)

	_, err := f.uc.Create(context.Background(), in)
	require.Error(t, err)

	var errs validation.FieldErrors
	require.True(t, errors.As(err, &errs))
	assert.Contains(t, errs, "end_date")
}

func TestOfferCreate_FKInexistente(t *testing.T) {
	f := newOfferFixture(t)

	in := validOfferRequest(f)
	in.DestinationID = 999

	_, err := f.uc.Create(context.Background(), in)
	require.Error(t, err)

	var errs validation.FieldErrors
	require.True(t, errors.As(err, &errs))
	assert.Contains(t, errs, "destination_id")
	assert.NotContains(t, errs, "company_id")

	// La imagen ya guardada se limpia cuando la transacción falla
	require.Len(t, f.storage.saved, 1)
	assert.Equal(t, f.storage.saved, f.storage.deleted)
}

func TestOfferUpdate_BajarPrecioPorDebajoDelDescuentoGuardado(t *testing.T) {
	f := newOfferFixture(t)

	in := validOfferRequest(f) // price 90
	discount := decimal.NewFromInt(80)
	in.DiscountPrice = &discount
	created, err := f.uc.Create(context.Background(), in)
	require.NoError(t, err)

	// Solo viaja price; el discount_price guardado (80) queda por encima
	newPrice := decimal.NewFromInt(70)
	_, err = f.uc.Update(context.Background(), created.ID, dto.UpdateOfferRequest{Price: &newPrice})
	require.Error(t, err)

	var errs validation.FieldErrors
	require.True(t, errors.As(err, &errs))
	assert.Contains(t, errs, "discount_price",
		"la revalidación es sobre la fila fusionada, aunque discount_price no haya viajado")
}

func TestOfferUpdate_Parcial(t *testing.T) {
	f := newOfferFixture(t)
	created, err := f.uc.Create(context.Background(), validOfferRequest(f))
	require.NoError(t, err)

	newTitle := "Valle Sagrado 5 días"
	out, err := f.uc.Update(context.Background(), created.ID, dto.UpdateOfferRequest{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, newTitle, out.Title)
	assert.True(t, out.Price.Equal(created.Price))
	assert.Equal(t, created.ImageURL, out.ImageURL)
}

func TestOfferToggleActive(t *testing.T) {
	f := newOfferFixture(t)
	created, err := f.uc.Create(context.Background(), validOfferRequest(f))
	require.NoError(t, err)

	out, err := f.uc.ToggleActive(created.ID)
	require.NoError(t, err)
	assert.False(t, out.IsActive)

	stored, _ := f.offers.GetByID(created.ID)
	assert.False(t, stored.IsActive, "el toggle persiste")
}
