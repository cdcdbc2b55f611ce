package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/turavia-api/internal/application/dto"
	"github.com/jhoicas/turavia-api/internal/application/ports"
	"github.com/jhoicas/turavia-api/internal/application/usecase"
)

// ContactHandler maneja los mensajes de contacto. El alta es pública (el
// formulario del sitio no lleva token, así que no encola flash); el resto
// requiere sesión de panel.
type ContactHandler struct {
	uc    *usecase.ContactUseCase
	flash ports.FlashStore
}

// NewContactHandler construye el handler.
func NewContactHandler(uc *usecase.ContactUseCase, flash ports.FlashStore) *ContactHandler {
	return &ContactHandler{uc: uc, flash: flash}
}

// Create godoc
// @Summary      Enviar mensaje de contacto (público)
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateContactRequest  true  "Nombre, email y mensaje"
// @Success      201  {object}  dto.ContactResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/contacts [post]
func (h *ContactHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateContactRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener mensaje por ID
// @Tags         contacts
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del mensaje"
// @Success      200  {object}  dto.ContactResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contacts/{id} [get]
func (h *ContactHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "mensaje no encontrado")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar mensajes de contacto
// @Tags         contacts
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Filtro por nombre, email o texto"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.ContactListResponse
// @Router       /api/contacts [get]
func (h *ContactHandler) List(c *fiber.Ctx) error {
	q, limit, offset := pageParams(c)
	out, err := h.uc.List(q, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MarkRead godoc
// @Summary      Marcar mensaje como leído
// @Tags         contacts
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del mensaje"
// @Success      200  {object}  dto.ContactResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contacts/{id}/read [patch]
func (h *ContactHandler) MarkRead(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	out, err := h.uc.MarkRead(id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "mensaje no encontrado")
	}
	pushFlash(c, h.flash, dto.FlashSuccess, "Mensaje marcado como leído")
	return c.JSON(out)
}

// MarkUnread godoc
// @Summary      Volver mensaje a no leído
// @Tags         contacts
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del mensaje"
// @Success      200  {object}  dto.ContactResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contacts/{id}/unread [patch]
func (h *ContactHandler) MarkUnread(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	out, err := h.uc.MarkUnread(id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "mensaje no encontrado")
	}
	pushFlash(c, h.flash, dto.FlashSuccess, "Mensaje marcado como no leído")
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar mensaje
// @Tags         contacts
// @Security     Bearer
// @Param        id   path  int  true  "ID del mensaje"
// @Success      204  "eliminado"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contacts/{id} [delete]
func (h *ContactHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	pushFlash(c, h.flash, dto.FlashSuccess, "Mensaje eliminado")
	return c.SendStatus(fiber.StatusNoContent)
}
