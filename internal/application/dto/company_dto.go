package dto

import "time"

// CreateCompanyRequest entrada para crear una compañía. El logo es opcional.
type CreateCompanyRequest struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Phone   string `json:"phone" form:"phone"`
	Address string `json:"address" form:"address"`
	Logo    *ImageUpload
}

// UpdateCompanyRequest actualización parcial de una compañía.
type UpdateCompanyRequest struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
	Logo    *ImageUpload
}

// CompanyResponse salida de una compañía.
type CompanyResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	LogoURL   string    `json:"logo_url,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CompanyListResponse lista paginada de compañías.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
