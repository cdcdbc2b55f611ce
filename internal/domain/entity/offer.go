package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de descuento con significado fijo. Cualquier otro valor se trata
// como etiqueta libre (máx. 50 caracteres) y no altera el cálculo de precio.
const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

// Offer representa una oferta comercial de una compañía sobre un destino.
// DiscountPrice, cuando existe, debe ser estrictamente menor que Price;
// la ventana de validez exige EndDate >= StartDate.
type Offer struct {
	ID            int64
	CompanyID     int64 // FK companies, ON DELETE CASCADE
	DestinationID int64 // FK destinations, ON DELETE CASCADE
	Title         string
	Description   string
	Price         decimal.Decimal  // >= 0
	DiscountPrice *decimal.Decimal // opcional, >= 0 y < Price
	DiscountType  string           // percentage | fixed | etiqueta libre
	StartDate     time.Time
	EndDate       time.Time
	ImageURL      string
	IsActive      bool // default true
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
