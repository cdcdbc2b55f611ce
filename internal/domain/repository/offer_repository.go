package repository

import "github.com/jhoicas/turavia-api/internal/domain/entity"

// OfferRepository define el puerto de persistencia para Offer (DIP).
// ListActiveByDestination alimenta el catálogo PDF: solo ofertas activas,
// ordenadas por destino.
type OfferRepository interface {
	Create(o *entity.Offer) error
	GetByID(id int64) (*entity.Offer, error)
	List(q string, limit, offset int) ([]*entity.Offer, error)
	ListActiveByDestination(destinationID int64) ([]*entity.Offer, error)
	Update(o *entity.Offer) error
	SetActive(id int64, active bool) error
	Delete(id int64) error
}
