package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/turavia-api/internal/application/dto"
	"github.com/jhoicas/turavia-api/internal/application/usecase"
)

// AssistantHandler atiende el widget de chat del asistente de viajes.
type AssistantHandler struct {
	uc *usecase.AssistantUseCase
}

// NewAssistantHandler construye el handler.
func NewAssistantHandler(uc *usecase.AssistantUseCase) *AssistantHandler {
	return &AssistantHandler{uc: uc}
}

// Chat godoc
// @Summary      Conversar con el asistente de viajes
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AssistantChatRequest  true  "Historial de la conversación"
// @Success      200  {object}  dto.AssistantChatResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/assistant/chat [post]
func (h *AssistantHandler) Chat(c *fiber.Ctx) error {
	var in dto.AssistantChatRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Chat(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
