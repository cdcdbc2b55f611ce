package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/turavia-api/internal/application/dto"
	"github.com/jhoicas/turavia-api/internal/application/usecase"
)

// ReviewHandler maneja las reseñas de películas (protegido). El autor de la
// reseña sale del token, nunca del cuerpo.
type ReviewHandler struct {
	uc *usecase.ReviewUseCase
}

// NewReviewHandler construye el handler.
func NewReviewHandler(uc *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

// Create godoc
// @Summary      Reseñar una película
// @Tags         reviews
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la película"
// @Param        body  body  dto.CreateReviewRequest  true  "Rating y texto"
// @Success      201  {object}  dto.ReviewResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/movies/{id}/reviews [post]
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	movieID, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	var in dto.CreateReviewRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetUserID(c), movieID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByMovie godoc
// @Summary      Listar reseñas de una película
// @Tags         reviews
// @Security     Bearer
// @Produce      json
// @Param        id      path   int  true   "ID de la película"
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {object}  dto.ReviewListResponse
// @Router       /api/movies/{id}/reviews [get]
func (h *ReviewHandler) ListByMovie(c *fiber.Ctx) error {
	movieID, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	_, limit, offset := pageParams(c)
	out, err := h.uc.ListByMovie(movieID, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar reseña
// @Tags         reviews
// @Security     Bearer
// @Param        id   path  int  true  "ID de la reseña"
// @Success      204  "eliminada"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badID(c)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
