package usecase

import (
	"context"

	"github.com/jhoicas/turavia-api/internal/application/ports"
	"github.com/jhoicas/turavia-api/internal/domain/repository"
)

// Tope de destinos incluidos en un catálogo; suficiente para el uso real
// y acota el tamaño del PDF.
const maxCatalogDestinations = 200

// CatalogUseCase arma el catálogo PDF de ofertas: todos los destinos
// activos con sus ofertas activas, agrupadas por destino.
type CatalogUseCase struct {
	destinationRepo repository.DestinationRepository
	offerRepo       repository.OfferRepository
	pdfGen          ports.CatalogPDFGenerator
}

// NewCatalogUseCase construye el caso de uso del catálogo.
func NewCatalogUseCase(
	destinationRepo repository.DestinationRepository,
	offerRepo repository.OfferRepository,
	pdfGen ports.CatalogPDFGenerator,
) *CatalogUseCase {
	return &CatalogUseCase{destinationRepo: destinationRepo, offerRepo: offerRepo, pdfGen: pdfGen}
}

// GenerateOfferCatalog recorre los destinos activos y genera el PDF.
// Los destinos sin ofertas activas no aparecen en el catálogo.
func (uc *CatalogUseCase) GenerateOfferCatalog(ctx context.Context) ([]byte, error) {
	destinations, err := uc.destinationRepo.List("", maxCatalogDestinations, 0)
	if err != nil {
		return nil, err
	}
	sections := make([]ports.CatalogSection, 0, len(destinations))
	for _, d := range destinations {
		if !d.IsActive {
			continue
		}
		offers, err := uc.offerRepo.ListActiveByDestination(d.ID)
		if err != nil {
			return nil, err
		}
		if len(offers) == 0 {
			continue
		}
		sections = append(sections, ports.CatalogSection{Destination: d, Offers: offers})
	}
	return uc.pdfGen.GenerateCatalogPDF(ctx, sections)
}
