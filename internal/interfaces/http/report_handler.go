package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/turavia-api/internal/application/usecase"
)

// ReportHandler genera reportes exportables del catálogo.
type ReportHandler struct {
	uc *usecase.CatalogUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.CatalogUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// OfferCatalog godoc
// @Summary      Descargar catálogo de ofertas en PDF
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/reports/catalog [get]
func (h *ReportHandler) OfferCatalog(c *fiber.Ctx) error {
	pdf, err := h.uc.GenerateOfferCatalog(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="catalogo-ofertas.pdf"`)
	return c.Send(pdf)
}
