package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/turavia-api/internal/application/dto"
	"github.com/jhoicas/turavia-api/internal/application/ports"
	"github.com/jhoicas/turavia-api/internal/application/usecase"
)

// DestinationHandler maneja las peticiones HTTP para Destination (protegido).
type DestinationHandler struct {
	uc       *usecase.DestinationUseCase
	flash    ports.FlashStore
	maxBytes int64
}

// NewDestinationHandler construye el handler.
func NewDestinationHandler(uc *usecase.DestinationUseCase, flash ports.FlashStore, maxBytes int64) *DestinationHandler {
	return &DestinationHandler{uc: uc, flash: flash, maxBytes: maxBytes}
}

// Create godoc
// @Summary      Crear destino
// @Tags         destinations
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        name         formData  string  true   "Nombre"
// @Param        location     formData  string  true   "Ubicación"
// @Param        description  formData  string  true   "Descripción"
// @Param        image        formData  file    true   "Imagen (jpeg/png/gif, máx 2 MB)"
// @Success      201  {object}  dto.DestinationResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/destinations [post]
func (h *DestinationHandler) Create(c *fiber.Ctx) error {
	img, cleanup, err := imagePart(c, "image", h.maxBytes)
	if err != nil {
		return respondError(c, err)
	}
	if cleanup != nil {
		defer cleanup()
	}
	in := dto.CreateDestinationRequest{
		Name:        c.FormValue("name"),
		Location:    c.FormValue("location"),
		Description: c.FormValue("description"),
		Image:       img,
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	pushFlash(c, h.flash, dto.FlashSuccess, "Destino creado correctamente")
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener destino por ID
// @Tags         destinations
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del destino"
// @Success      200  {object}  dto.DestinationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/destinations/{id} [get]
func (h *DestinationHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "destino no encontrado")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar destinos
// @Tags         destinations
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Filtro por nombre o ubicación"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.DestinationListResponse
// @Router       /api/destinations [get]
func (h *DestinationHandler) List(c *fiber.Ctx) error {
	q, limit, offset := pageParams(c)
	out, err := h.uc.List(q, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar destino (parcial)
// @Tags         destinations
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id   path  int  true  "ID del destino"
// @Success      200  {object}  dto.DestinationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/destinations/{id} [put]
func (h *DestinationHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	img, cleanup, err := imagePart(c, "image", h.maxBytes)
	if err != nil {
		return respondError(c, err)
	}
	if cleanup != nil {
		defer cleanup()
	}
	var in dto.UpdateDestinationRequest
	if v, ok := formString(c, "name"); ok {
		in.Name = &v
	}
	if v, ok := formString(c, "location"); ok {
		in.Location = &v
	}
	if v, ok := formString(c, "description"); ok {
		in.Description = &v
	}
	in.Image = img

	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "destino no encontrado")
	}
	pushFlash(c, h.flash, dto.FlashSuccess, "Destino actualizado correctamente")
	return c.JSON(out)
}

// ToggleActive godoc
// @Summary      Alternar publicación del destino
// @Tags         destinations
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del destino"
// @Success      200  {object}  dto.DestinationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/destinations/{id}/toggle-active [patch]
func (h *DestinationHandler) ToggleActive(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	out, err := h.uc.ToggleActive(id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "destino no encontrado")
	}
	msg := "Destino deshabilitado"
	if out.IsActive {
		msg = "Destino habilitado"
	}
	pushFlash(c, h.flash, dto.FlashSuccess, msg)
	return c.JSON(out)
}

// ToggleFeatured godoc
// @Summary      Alternar destacado del destino
// @Tags         destinations
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del destino"
// @Success      200  {object}  dto.DestinationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/destinations/{id}/toggle-featured [patch]
func (h *DestinationHandler) ToggleFeatured(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	out, err := h.uc.ToggleFeatured(id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "destino no encontrado")
	}
	msg := "Destino quitado de destacados"
	if out.IsFeatured {
		msg = "Destino marcado como destacado"
	}
	pushFlash(c, h.flash, dto.FlashSuccess, msg)
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar destino (cascada sobre ofertas y paquetes)
// @Tags         destinations
// @Security     Bearer
// @Param        id   path  int  true  "ID del destino"
// @Success      204  "eliminado"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/destinations/{id} [delete]
func (h *DestinationHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	pushFlash(c, h.flash, dto.FlashSuccess, "Destino eliminado")
	return c.SendStatus(fiber.StatusNoContent)
}
