package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/turavia-api/internal/application/dto"
	"github.com/jhoicas/turavia-api/internal/application/ports"
	"github.com/jhoicas/turavia-api/internal/application/usecase"
	"github.com/jhoicas/turavia-api/internal/domain/validation"
)

// MovieHandler maneja las peticiones HTTP para Movie (protegido).
type MovieHandler struct {
	uc       *usecase.MovieUseCase
	flash    ports.FlashStore
	maxBytes int64
}

// NewMovieHandler construye el handler.
func NewMovieHandler(uc *usecase.MovieUseCase, flash ports.FlashStore, maxBytes int64) *MovieHandler {
	return &MovieHandler{uc: uc, flash: flash, maxBytes: maxBytes}
}

// Create godoc
// @Summary      Crear película
// @Tags         movies
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        title         formData  string  true   "Título"
// @Param        category_id   formData  int     true   "Categoría"
// @Param        genre         formData  string  false  "Género"
// @Param        description   formData  string  true   "Sinopsis"
// @Param        release_date  formData  string  true   "Estreno (AAAA-MM-DD)"
// @Param        rating        formData  number  true   "Rating 0.0-5.0"
// @Param        trailer_url   formData  string  false  "URL del tráiler"
// @Param        popularity    formData  int     false  "Popularidad (>= 0)"
// @Param        duration      formData  int     false  "Duración en minutos"
// @Param        language      formData  string  false  "Idioma"
// @Param        poster        formData  file    true   "Póster (jpeg/png/gif, máx 2 MB)"
// @Success      201  {object}  dto.MovieResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/movies [post]
func (h *MovieHandler) Create(c *fiber.Ctx) error {
	poster, cleanup, err := imagePart(c, "poster", h.maxBytes)
	if err != nil {
		return respondError(c, err)
	}
	if cleanup != nil {
		defer cleanup()
	}

	errs := validation.FieldErrors{}
	in := dto.CreateMovieRequest{
		Title:       c.FormValue("title"),
		Genre:       c.FormValue("genre"),
		Description: c.FormValue("description"),
		TrailerURL:  c.FormValue("trailer_url"),
		Language:    c.FormValue("language"),
		Poster:      poster,
	}
	if v, ok := formInt64(c, "category_id", errs); ok {
		in.CategoryID = v
	} else {
		errs.Add("category_id", "es requerido")
	}
	if v, ok := formDate(c, "release_date", errs); ok {
		in.ReleaseDate = v
	} else {
		errs.Add("release_date", "es requerido")
	}
	if v, ok := formDecimal(c, "rating", errs); ok {
		in.Rating = v
	} else {
		errs.Add("rating", "es requerido")
	}
	if v, ok := formInt(c, "popularity", errs); ok {
		in.Popularity = v
	}
	if v, ok := formInt(c, "duration", errs); ok {
		in.Duration = &v
	}
	if errs.HasErrors() {
		return respondError(c, errs)
	}

	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	pushFlash(c, h.flash, dto.FlashSuccess, "Película creada correctamente")
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener película por ID
// @Tags         movies
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la película"
// @Success      200  {object}  dto.MovieResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movies/{id} [get]
func (h *MovieHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "película no encontrada")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar películas
// @Tags         movies
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Filtro por título o género"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.MovieListResponse
// @Router       /api/movies [get]
func (h *MovieHandler) List(c *fiber.Ctx) error {
	q, limit, offset := pageParams(c)
	out, err := h.uc.List(q, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar película (parcial)
// @Tags         movies
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id   path  int  true  "ID de la película"
// @Success      200  {object}  dto.MovieResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/movies/{id} [put]
func (h *MovieHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	poster, cleanup, err := imagePart(c, "poster", h.maxBytes)
	if err != nil {
		return respondError(c, err)
	}
	if cleanup != nil {
		defer cleanup()
	}

	errs := validation.FieldErrors{}
	var in dto.UpdateMovieRequest
	if v, ok := formString(c, "title"); ok {
		in.Title = &v
	}
	if v, ok := formInt64(c, "category_id", errs); ok {
		in.CategoryID = &v
	}
	if v, ok := formString(c, "genre"); ok {
		in.Genre = &v
	}
	if v, ok := formString(c, "description"); ok {
		in.Description = &v
	}
	if v, ok := formDate(c, "release_date", errs); ok {
		in.ReleaseDate = &v
	}
	if v, ok := formDecimal(c, "rating", errs); ok {
		in.Rating = &v
	}
	if v, ok := formString(c, "trailer_url"); ok {
		in.TrailerURL = &v
	}
	if v, ok := formInt(c, "popularity", errs); ok {
		in.Popularity = &v
	}
	if v, ok := formInt(c, "duration", errs); ok {
		in.Duration = &v
	}
	if v, ok := formString(c, "language"); ok {
		in.Language = &v
	}
	in.Poster = poster
	if errs.HasErrors() {
		return respondError(c, errs)
	}

	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "película no encontrada")
	}
	pushFlash(c, h.flash, dto.FlashSuccess, "Película actualizada correctamente")
	return c.JSON(out)
}

// ToggleFeatured godoc
// @Summary      Alternar destacado en cartelera
// @Tags         movies
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la película"
// @Success      200  {object}  dto.MovieResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movies/{id}/toggle-featured [patch]
func (h *MovieHandler) ToggleFeatured(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	out, err := h.uc.ToggleFeatured(id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "película no encontrada")
	}
	msg := "Película quitada de destacadas"
	if out.IsFeatured {
		msg = "Película marcada como destacada"
	}
	pushFlash(c, h.flash, dto.FlashSuccess, msg)
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar película (cascada sobre sus reseñas)
// @Tags         movies
// @Security     Bearer
// @Param        id   path  int  true  "ID de la película"
// @Success      204  "eliminada"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movies/{id} [delete]
func (h *MovieHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	pushFlash(c, h.flash, dto.FlashSuccess, "Película eliminada")
	return c.SendStatus(fiber.StatusNoContent)
}
