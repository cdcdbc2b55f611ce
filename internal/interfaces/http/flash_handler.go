package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/turavia-api/internal/application/dto"
	"github.com/jhoicas/turavia-api/internal/application/ports"
)

// Milisegundos que el cliente muestra cada flash antes de ocultarlo.
const flashDismissMS = 3000

// FlashHandler expone la lectura destructiva del mensaje flash pendiente.
type FlashHandler struct {
	store ports.FlashStore
}

// NewFlashHandler construye el handler.
func NewFlashHandler(store ports.FlashStore) *FlashHandler {
	return &FlashHandler{store: store}
}

// Pop godoc
// @Summary      Leer (y consumir) el mensaje flash pendiente
// @Tags         flash
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Flash
// @Success      204  "sin mensaje pendiente"
// @Router       /api/flash [get]
func (h *FlashHandler) Pop(c *fiber.Ctx) error {
	f, err := h.store.Pop(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	if f == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(f)
}

// pushFlash encola un mensaje flash para el usuario autenticado. Es best
// effort: un fallo del store no debe tumbar la operación que ya se hizo.
func pushFlash(c *fiber.Ctx, store ports.FlashStore, typ, msg string) {
	userID := GetUserID(c)
	if store == nil || userID == 0 {
		return
	}
	_ = store.Push(c.UserContext(), userID, dto.Flash{
		Type:           typ,
		Message:        msg,
		DismissAfterMS: flashDismissMS,
	})
}
