package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOfferRequest entrada para crear una oferta. Los decimales y fechas
// llegan como texto en el multipart y el handler los parsea antes de armar
// este struct.
type CreateOfferRequest struct {
	CompanyID     int64
	DestinationID int64
	Title         string
	Description   string
	Price         decimal.Decimal
	DiscountPrice *decimal.Decimal
	DiscountType  string
	StartDate     time.Time
	EndDate       time.Time
	Image         *ImageUpload
}

// UpdateOfferRequest actualización parcial de una oferta. Las validaciones
// cruzadas (discount_price < price, end_date >= start_date) se evalúan sobre
// el resultado de fusionar estos campos con la fila cargada.
type UpdateOfferRequest struct {
	CompanyID     *int64
	DestinationID *int64
	Title         *string
	Description   *string
	Price         *decimal.Decimal
	DiscountPrice *decimal.Decimal
	DiscountType  *string
	StartDate     *time.Time
	EndDate       *time.Time
	Image         *ImageUpload
}

// OfferResponse salida de una oferta.
type OfferResponse struct {
	ID            int64            `json:"id"`
	CompanyID     int64            `json:"company_id"`
	DestinationID int64            `json:"destination_id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price"`
	DiscountPrice *decimal.Decimal `json:"discount_price,omitempty"`
	DiscountType  string           `json:"discount_type,omitempty"`
	StartDate     time.Time        `json:"start_date"`
	EndDate       time.Time        `json:"end_date"`
	ImageURL      string           `json:"image_url,omitempty"`
	IsActive      bool             `json:"is_active"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// OfferListResponse lista paginada de ofertas.
type OfferListResponse struct {
	Items []OfferResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
