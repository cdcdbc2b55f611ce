package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTravelPackageRequest entrada para crear un paquete.
type CreateTravelPackageRequest struct {
	DestinationID int64
	Name          string
	Description   string
	Price         decimal.Decimal
	DurationDays  int
	Image         *ImageUpload
}

// UpdateTravelPackageRequest actualización parcial de un paquete.
type UpdateTravelPackageRequest struct {
	DestinationID *int64
	Name          *string
	Description   *string
	Price         *decimal.Decimal
	DurationDays  *int
	Image         *ImageUpload
}

// TravelPackageResponse salida de un paquete.
type TravelPackageResponse struct {
	ID            int64           `json:"id"`
	DestinationID int64           `json:"destination_id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	DurationDays  int             `json:"duration_days"`
	ImageURL      string          `json:"image_url,omitempty"`
	IsActive      bool            `json:"is_active"`
	IsFeatured    bool            `json:"is_featured"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// TravelPackageListResponse lista paginada de paquetes.
type TravelPackageListResponse struct {
	Items []TravelPackageResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
