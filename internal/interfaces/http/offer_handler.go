package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/turavia-api/internal/application/dto"
	"github.com/jhoicas/turavia-api/internal/application/ports"
	"github.com/jhoicas/turavia-api/internal/application/usecase"
	"github.com/jhoicas/turavia-api/internal/domain/validation"
)

// OfferHandler maneja las peticiones HTTP para Offer (protegido).
type OfferHandler struct {
	uc       *usecase.OfferUseCase
	flash    ports.FlashStore
	maxBytes int64
}

// NewOfferHandler construye el handler.
func NewOfferHandler(uc *usecase.OfferUseCase, flash ports.FlashStore, maxBytes int64) *OfferHandler {
	return &OfferHandler{uc: uc, flash: flash, maxBytes: maxBytes}
}

// Create godoc
// @Summary      Crear oferta
// @Tags         offers
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        company_id      formData  int     true   "Compañía emisora"
// @Param        destination_id  formData  int     true   "Destino"
// @Param        title           formData  string  true   "Título"
// @Param        description     formData  string  true   "Descripción"
// @Param        price           formData  number  true   "Precio"
// @Param        discount_price  formData  number  false  "Precio con descuento (< precio)"
// @Param        discount_type   formData  string  false  "percentage | fixed | etiqueta libre"
// @Param        start_date      formData  string  true   "Inicio de vigencia (AAAA-MM-DD)"
// @Param        end_date        formData  string  true   "Fin de vigencia (AAAA-MM-DD)"
// @Param        image           formData  file    false  "Imagen (jpeg/png/gif, máx 2 MB)"
// @Success      201  {object}  dto.OfferResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/offers [post]
func (h *OfferHandler) Create(c *fiber.Ctx) error {
	img, cleanup, err := imagePart(c, "image", h.maxBytes)
	if err != nil {
		return respondError(c, err)
	}
	if cleanup != nil {
		defer cleanup()
	}

	// Los campos numéricos y de fecha del multipart se parsean aquí; un
	// formato roto es un error de validación, no un 400 genérico.
	errs := validation.FieldErrors{}
	in := dto.CreateOfferRequest{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Image:       img,
	}
	if v, ok := formInt64(c, "company_id", errs); ok {
		in.CompanyID = v
	} else {
		errs.Add("company_id", "es requerido")
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
	if v, ok := formDecimal(c, "discount_price", errs); ok {
		in.DiscountPrice = &v
	}
	if v, ok := formString(c, "discount_type"); ok {
		in.DiscountType = v
	}
	if v, ok := formDate(c, "start_date", errs); ok {
		in.StartDate = v
	} else {
		errs.Add("start_date", "es requerido")
	}
	if v, ok := formDate(c, "end_date", errs); ok {
		in.EndDate = v
	} else {
		errs.Add("end_date", "es requerido")
	}
	if errs.HasErrors() {
		return respondError(c, errs)
	}

	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	pushFlash(c, h.flash, dto.FlashSuccess, "Oferta creada correctamente")
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener oferta por ID
// @Tags         offers
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la oferta"
// @Success      200  {object}  dto.OfferResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/offers/{id} [get]
func (h *OfferHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "oferta no encontrada")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar ofertas
// @Tags         offers
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Filtro por título"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.OfferListResponse
// @Router       /api/offers [get]
func (h *OfferHandler) List(c *fiber.Ctx) error {
	q, limit, offset := pageParams(c)
	out, err := h.uc.List(q, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar oferta (parcial)
// @Tags         offers
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id   path  int  true  "ID de la oferta"
// @Success      200  {object}  dto.OfferResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/offers/{id} [put]
func (h *OfferHandler) Update(c *fiber.Ctx) error {
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
	var in dto.UpdateOfferRequest
	if v, ok := formInt64(c, "company_id", errs); ok {
		in.CompanyID = &v
	}
	if v, ok := formInt64(c, "destination_id", errs); ok {
		in.DestinationID = &v
	}
	if v, ok := formString(c, "title"); ok {
		in.Title = &v
	}
	if v, ok := formString(c, "description"); ok {
		in.Description = &v
	}
	if v, ok := formDecimal(c, "price", errs); ok {
		in.Price = &v
	}
	if v, ok := formDecimal(c, "discount_price", errs); ok {
		in.DiscountPrice = &v
	}
	if v, ok := formString(c, "discount_type"); ok {
		in.DiscountType = &v
	}
	if v, ok := formDate(c, "start_date", errs); ok {
		in.StartDate = &v
	}
	if v, ok := formDate(c, "end_date", errs); ok {
		in.EndDate = &v
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
		return notFound(c, "oferta no encontrada")
	}
	pushFlash(c, h.flash, dto.FlashSuccess, "Oferta actualizada correctamente")
	return c.JSON(out)
}

// ToggleActive godoc
// @Summary      Alternar publicación de la oferta
// @Tags         offers
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la oferta"
// @Success      200  {object}  dto.OfferResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/offers/{id}/toggle-active [patch]
func (h *OfferHandler) ToggleActive(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	out, err := h.uc.ToggleActive(id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "oferta no encontrada")
	}
	msg := "Oferta despublicada"
	if out.IsActive {
		msg = "Oferta publicada"
	}
	pushFlash(c, h.flash, dto.FlashSuccess, msg)
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar oferta
// @Tags         offers
// @Security     Bearer
// @Param        id   path  int  true  "ID de la oferta"
// @Success      204  "eliminada"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/offers/{id} [delete]
func (h *OfferHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	pushFlash(c, h.flash, dto.FlashSuccess, "Oferta eliminada")
	return c.SendStatus(fiber.StatusNoContent)
}
