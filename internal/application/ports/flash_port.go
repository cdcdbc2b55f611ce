package ports

import (
	"context"

	"github.com/jhoicas/turavia-api/internal/application/dto"
)

// FlashStore define el puerto del relay de mensajes flash: una sola ranura
// por usuario, un solo mensaje activo a la vez (un Push nuevo reemplaza al
// anterior) y lectura destructiva.
type FlashStore interface {
	// Push guarda el mensaje del usuario, pisando cualquier mensaje previo.
	Push(ctx context.Context, userID int64, f dto.Flash) error
	// Pop devuelve y elimina el mensaje pendiente; nil si no hay ninguno.
	Pop(ctx context.Context, userID int64) (*dto.Flash, error)
}
