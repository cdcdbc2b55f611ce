package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/turavia-api/internal/application/dto"
	"github.com/jhoicas/turavia-api/internal/application/ports"
	"github.com/jhoicas/turavia-api/internal/application/usecase"
)

// CompanyHandler maneja las peticiones HTTP para Company (protegido).
type CompanyHandler struct {
	uc       *usecase.CompanyUseCase
	flash    ports.FlashStore
	maxBytes int64
}

// NewCompanyHandler construye el handler.
func NewCompanyHandler(uc *usecase.CompanyUseCase, flash ports.FlashStore, maxBytes int64) *CompanyHandler {
	return &CompanyHandler{uc: uc, flash: flash, maxBytes: maxBytes}
}

// Create godoc
// @Summary      Crear compañía
// @Tags         companies
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        name     formData  string  true   "Nombre"
// @Param        email    formData  string  true   "Email"
// @Param        phone    formData  string  false  "Teléfono"
// @Param        address  formData  string  false  "Dirección"
// @Param        logo     formData  file    false  "Logo (jpeg/png/gif, máx 2 MB)"
// @Success      201  {object}  dto.CompanyResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	logo, cleanup, err := imagePart(c, "logo", h.maxBytes)
	if err != nil {
		return respondError(c, err)
	}
	if cleanup != nil {
		defer cleanup()
	}
	in := dto.CreateCompanyRequest{
		Name:    c.FormValue("name"),
		Email:   c.FormValue("email"),
		Phone:   c.FormValue("phone"),
		Address: c.FormValue("address"),
		Logo:    logo,
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	pushFlash(c, h.flash, dto.FlashSuccess, "Compañía creada correctamente")
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener compañía por ID
// @Tags         companies
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la compañía"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "compañía no encontrada")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar compañías
// @Tags         companies
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Filtro por nombre o email"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.CompanyListResponse
// @Router       /api/companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	q, limit, offset := pageParams(c)
	out, err := h.uc.List(q, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar compañía (parcial)
// @Tags         companies
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id   path  int  true  "ID de la compañía"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	logo, cleanup, err := imagePart(c, "logo", h.maxBytes)
	if err != nil {
		return respondError(c, err)
	}
	if cleanup != nil {
		defer cleanup()
	}
	var in dto.UpdateCompanyRequest
	if v, ok := formString(c, "name"); ok {
		in.Name = &v
	}
	if v, ok := formString(c, "email"); ok {
		in.Email = &v
	}
	if v, ok := formString(c, "phone"); ok {
		in.Phone = &v
	}
	if v, ok := formString(c, "address"); ok {
		in.Address = &v
	}
	in.Logo = logo

	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "compañía no encontrada")
	}
	pushFlash(c, h.flash, dto.FlashSuccess, "Compañía actualizada correctamente")
	return c.JSON(out)
}

// ToggleActive godoc
// @Summary      Alternar publicación de la compañía
// @Tags         companies
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la compañía"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/toggle-active [patch]
func (h *CompanyHandler) ToggleActive(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	out, err := h.uc.ToggleActive(id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "compañía no encontrada")
	}
	msg := "Compañía deshabilitada"
	if out.IsActive {
		msg = "Compañía habilitada"
	}
	pushFlash(c, h.flash, dto.FlashSuccess, msg)
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar compañía (cascada sobre sus ofertas)
// @Tags         companies
// @Security     Bearer
// @Param        id   path  int  true  "ID de la compañía"
// @Success      204  "eliminada"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	pushFlash(c, h.flash, dto.FlashSuccess, "Compañía eliminada")
	return c.SendStatus(fiber.StatusNoContent)
}
