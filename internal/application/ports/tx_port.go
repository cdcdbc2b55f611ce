package ports

import (
	"context"

	"github.com/jhoicas/turavia-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repositorios atados a una misma
// transacción. Se usa en escrituras referenciales (crear/actualizar ofertas
// y paquetes) para que la verificación de FKs y el insert sean atómicos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		offers repository.OfferRepository,
		packages repository.TravelPackageRepository,
		companies repository.CompanyRepository,
		destinations repository.DestinationRepository,
	) error) error
}
