package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría de películas.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// UpdateCategoryRequest actualización de una categoría.
type UpdateCategoryRequest struct {
	Name *string `json:"name"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryListResponse lista paginada de categorías.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
