package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TravelPackage representa un paquete turístico armado sobre un destino
// (vuelo + hotel + actividades). Depende del destino: borrarlo elimina el
// paquete en cascada.
type TravelPackage struct {
	ID            int64
	DestinationID int64 // FK destinations, ON DELETE CASCADE
	Name          string
	Description   string
	Price         decimal.Decimal // >= 0
	DurationDays  int             // >= 1
	ImageURL      string
	IsActive      bool // default true
	IsFeatured    bool // default false
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
