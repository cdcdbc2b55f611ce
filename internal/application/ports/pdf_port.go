package ports

import (
	"context"

	"github.com/jhoicas/turavia-api/internal/domain/entity"
)

// CatalogSection un destino con sus ofertas activas, listo para maquetar.
type CatalogSection struct {
	Destination *entity.Destination
	Offers      []*entity.Offer
}

// CatalogPDFGenerator define el puerto de generación del catálogo de ofertas.
type CatalogPDFGenerator interface {
	GenerateCatalogPDF(ctx context.Context, sections []CatalogSection) ([]byte, error)
}
