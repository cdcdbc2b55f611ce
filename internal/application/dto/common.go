package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
	Q      string `query:"q"` // filtro substring case-insensitive
}

// DefaultPage aplica valores por defecto y acota el límite.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// ErrorResponse cuerpo de error HTTP. Errors trae los mensajes por campo
// cuando el código es VALIDATION; el cliente los vuelca en el formulario.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// Tipos de mensaje flash.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash mensaje transitorio de una sola lectura. DismissAfterMS está
// estandarizado en 3000 para todas las pantallas.
type Flash struct {
	Type           string `json:"type"` // success | error
	Message        string `json:"message"`
	DismissAfterMS int    `json:"dismiss_after_ms"`
}
