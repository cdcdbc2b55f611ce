package dto

import "time"

// CreateContactRequest entrada del formulario público de contacto.
type CreateContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactResponse salida de un mensaje de contacto.
type ContactResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContactListResponse lista paginada de mensajes.
type ContactListResponse struct {
	Items []ContactResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
