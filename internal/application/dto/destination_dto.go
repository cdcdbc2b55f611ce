package dto

import "time"

// CreateDestinationRequest entrada para crear un destino. La imagen llega
// como parte multipart separada (ver ImageUpload).
type CreateDestinationRequest struct {
	Name        string `json:"name" form:"name"`
	Location    string `json:"location" form:"location"`
	Description string `json:"description" form:"description"`
	Image       *ImageUpload
}

// UpdateDestinationRequest actualización parcial: solo los campos presentes
// en el formulario se aplican (el cliente envía únicamente lo modificado).
type UpdateDestinationRequest struct {
	Name        *string
	Location    *string
	Description *string
	Image       *ImageUpload
}

// DestinationResponse salida de un destino.
type DestinationResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url,omitempty"`
	IsActive    bool      `json:"is_active"`
	IsFeatured  bool      `json:"is_featured"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DestinationListResponse lista paginada de destinos.
type DestinationListResponse struct {
	Items []DestinationResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
