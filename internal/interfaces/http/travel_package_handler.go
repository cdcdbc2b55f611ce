package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/turavia-api/internal/application/dto"
	"github.com/jhoicas/turavia-api/internal/application/ports"
	"github.com/jhoicas/turavia-api/internal/application/usecase"
	"github.com/jhoicas/turavia-api/internal/domain/validation"
)

// TravelPackageHandler maneja las peticiones HTTP para TravelPackage (protegido).
type TravelPackageHandler struct {
	uc       *usecase.TravelPackageUseCase
	flash    ports.FlashStore
	maxBytes int64
}

// NewTravelPackageHandler construye el handler.
func NewTravelPackageHandler(uc *usecase.TravelPackageUseCase, flash ports.FlashStore, maxBytes int64) *TravelPackageHandler {
	return &TravelPackageHandler{uc: uc, flash: flash, maxBytes: maxBytes}
}

// Create godoc
// @Summary      Crear paquete turístico
// @Tags         packages
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        destination_id  formData  int     true   "Destino"
// @Param        name            formData  string  true   "Nombre"
// @Param        description     formData  string  true   "Descripción"
// @Param        price           formData  number  true   "Precio"
// @Param        duration_days   formData  int     true   "Duración en días (>= 1)"
// @Param        image           formData  file    false  "Imagen (jpeg/png/gif, máx 2 MB)"
// @Success      201  {object}  dto.TravelPackageResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/packages [post]
func (h *TravelPackageHandler) Create(c *fiber.Ctx) error {
	img, cleanup, err := imagePart(c, "image", h.maxBytes)
	if err != nil {
		return respondError(c, err)
	}
	if cleanup != nil {
		defer cleanup()
	}

	errs := validation.FieldErrors{}
	in := dto.CreateTravelPackageRequest{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Image:       img,
	}
	if v, ok := formInt64(c, "destination_id", errs); ok {
		in.DestinationID = v
	} else {
		errs.Add("destination_id", "es requerido")
	}
	if v, ok := formDecimal(c, "price", errs); ok {
		in.Price = v
	} else {
		errs.Add("price", "es requerido")
	}
	if v, ok := formInt(c, "duration_days", errs); ok {
		in.DurationDays = v
	} else {
		errs.Add("duration_days", "es requerido")
	}
	if errs.HasErrors() {
		return respondError(c, errs)
	}

	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	pushFlash(c, h.flash, dto.FlashSuccess, "Paquete creado correctamente")
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener paquete por ID
// @Tags         packages
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del paquete"
// @Success      200  {object}  dto.TravelPackageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/packages/{id} [get]
func (h *TravelPackageHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "paquete no encontrado")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar paquetes
// @Tags         packages
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Filtro por nombre"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.TravelPackageListResponse
// @Router       /api/packages [get]
func (h *TravelPackageHandler) List(c *fiber.Ctx) error {
	q, limit, offset := pageParams(c)
	out, err := h.uc.List(q, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar paquete (parcial)
// @Tags         packages
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id   path  int  true  "ID del paquete"
// @Success      200  {object}  dto.TravelPackageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/packages/{id} [put]
func (h *TravelPackageHandler) Update(c *fiber.Ctx) error {
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

	errs := validation.FieldErrors{}
	var in dto.UpdateTravelPackageRequest
	if v, ok := formInt64(c, "destination_id", errs); ok {
		in.DestinationID = &v
	}
	if v, ok := formString(c, "name"); ok {
		in.Name = &v
	}
	if v, ok := formString(c, "description"); ok {
		in.Description = &v
	}
	if v, ok := formDecimal(c, "price", errs); ok {
		in.Price = &v
	}
	if v, ok := formInt(c, "duration_days", errs); ok {
		in.DurationDays = &v
	}
	in.Image = img
	if errs.HasErrors() {
		return respondError(c, errs)
	}

	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "paquete no encontrado")
	}
	pushFlash(c, h.flash, dto.FlashSuccess, "Paquete actualizado correctamente")
	return c.JSON(out)
}

// ToggleActive godoc
// @Summary      Alternar publicación del paquete
// @Tags         packages
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del paquete"
// @Success      200  {object}  dto.TravelPackageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/packages/{id}/toggle-active [patch]
func (h *TravelPackageHandler) ToggleActive(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	out, err := h.uc.ToggleActive(id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "paquete no encontrado")
	}
	msg := "Paquete despublicado"
	if out.IsActive {
		msg = "Paquete publicado"
	}
	pushFlash(c, h.flash, dto.FlashSuccess, msg)
	return c.JSON(out)
}

// ToggleFeatured godoc
// @Summary      Alternar destacado del paquete
// @Tags         packages
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del paquete"
// @Success      200  {object}  dto.TravelPackageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/packages/{id}/toggle-featured [patch]
func (h *TravelPackageHandler) ToggleFeatured(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	out, err := h.uc.ToggleFeatured(id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "paquete no encontrado")
	}
	msg := "Paquete quitado de destacados"
	if out.IsFeatured {
		msg = "Paquete marcado como destacado"
	}
	pushFlash(c, h.flash, dto.FlashSuccess, msg)
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar paquete
// @Tags         packages
// @Security     Bearer
// @Param        id   path  int  true  "ID del paquete"
// @Success      204  "eliminado"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/packages/{id} [delete]
func (h *TravelPackageHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	pushFlash(c, h.flash, dto.FlashSuccess, "Paquete eliminado")
	return c.SendStatus(fiber.StatusNoContent)
}
