package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/turavia-api/internal/application/ports"
	"github.com/jhoicas/turavia-api/internal/application/usecase"
	"github.com/jhoicas/turavia-api/internal/domain/entity"
)

// fakePDFGen captura las secciones recibidas y devuelve bytes fijos.
type fakePDFGen struct {
	sections []ports.CatalogSection
}

func (g *fakePDFGen) GenerateCatalogPDF(ctx context.Context, sections []ports.CatalogSection) ([]byte, error) {
	g.sections = sections
	return []byte("%PDF-fake"), nil
}

func TestCatalogo_SoloDestinosActivosConOfertasActivas(t *testing.T) {
	destinations := newFakeDestinationRepo()
	offers := newFakeOfferRepo()
	pdfGen := &fakePDFGen{}

	activo := &entity.Destination{Name: "Cusco", Location: "Perú", IsActive: true}
	require.NoError(t, destinations.Create(activo))
	inactivo := &entity.Destination{Name: "Lima", Location: "Perú", IsActive: false}
	require.NoError(t, destinations.Create(inactivo))
	sinOfertas := &entity.Destination{Name: "Arequipa", Location: "Perú", IsActive: true}
	require.NoError(t, destinations.Create(sinOfertas))

	now := time.Now()
	require.NoError(t, offers.Create(&entity.Offer{
		DestinationID: activo.ID, Title: "Valle Sagrado", Price: decimal.NewFromInt(90),
		StartDate: now, EndDate: now.AddDate(0, 1, 0), IsActive: true,
	}))
	require.NoError(t, offers.Create(&entity.Offer{
		DestinationID: activo.ID, Title: "Oferta apagada", Price: decimal.NewFromInt(50),
		StartDate: now, EndDate: now.AddDate(0, 1, 0), IsActive: false,
	}))
	require.NoError(t, offers.Create(&entity.Offer{
		DestinationID: inactivo.ID, Title: "Lima gastronómica", Price: decimal.NewFromInt(40),
		StartDate: now, EndDate: now.AddDate(0, 1, 0), IsActive: true,
	}))

	uc := usecase.NewCatalogUseCase(destinations, offers, pdfGen)
	pdf, err := uc.GenerateOfferCatalog(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)

	// Solo Cusco entra: Lima está inactivo y Arequipa no tiene ofertas
	require.Len(t, pdfGen.sections, 1)
	assert.Equal(t, "Cusco", pdfGen.sections[0].Destination.Name)
	require.Len(t, pdfGen.sections[0].Offers, 1, "las ofertas inactivas no entran al catálogo")
	assert.Equal(t, "Valle Sagrado", pdfGen.sections[0].Offers[0].Title)
}

func TestCatalogo_SinDestinos(t *testing.T) {
	uc := usecase.NewCatalogUseCase(newFakeDestinationRepo(), newFakeOfferRepo(), &fakePDFGen{})

	pdf, err := uc.GenerateOfferCatalog(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, pdf, "un catálogo vacío sigue siendo un PDF válido")
}
