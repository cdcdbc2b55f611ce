package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/turavia-api/internal/application/dto"
	"github.com/jhoicas/turavia-api/internal/application/ports"
	"github.com/jhoicas/turavia-api/internal/domain/validation"
	"github.com/jhoicas/turavia-api/pkg/logger"
)

// Tope de turnos aceptados por petición; un historial más largo se
// rechaza en lugar de truncarse en silencio.
const maxChatHistory = 40

// Tiempo máximo de espera por el proveedor antes de responder con el
// mensaje de respaldo.
const chatTimeout = 10 * time.Second

// Respuesta fija cuando el proveedor falla o tarda demasiado. El chat
// nunca devuelve un 5xx al widget.
const assistantFallbackReply = "Lo siento, el asistente no está disponible en este momento. Intenta de nuevo en unos minutos."

// AssistantUseCase orquesta el chat del asistente de viajes contra el
// puerto LLM.
type AssistantUseCase struct {
	llm ports.LLMService
	log *logger.Logger
}

// NewAssistantUseCase construye el caso de uso del asistente.
func NewAssistantUseCase(llm ports.LLMService, log *logger.Logger) *AssistantUseCase {
	return &AssistantUseCase{llm: llm, log: log}
}

// Chat valida el historial y consulta al proveedor con timeout. Los
// fallos del proveedor degradan al mensaje de respaldo, nunca a error.
func (uc *AssistantUseCase) Chat(ctx context.Context, in dto.AssistantChatRequest) (*dto.AssistantChatResponse, error) {
	errs := validation.FieldErrors{}
	if len(in.Messages) == 0 {
		errs.Add("messages", "es requerido")
	}
	if len(in.Messages) > maxChatHistory {
		errs.Add("messages", "el historial supera el máximo de turnos")
	}
	for _, m := range in.Messages {
		if m.Role != "user" && m.Role != "assistant" {
			errs.Add("messages", "rol no permitido: "+m.Role)
			break
		}
	}
	if len(in.Messages) > 0 {
		last := in.Messages[len(in.Messages)-1]
		if last.Role != "user" || strings.TrimSpace(last.Content) == "" {
			errs.Add("messages", "el último turno debe ser del usuario y no estar vacío")
		}
	}
	if errs.HasErrors() {
		return nil, errs
	}

	ctx, cancel := context.WithTimeout(ctx, chatTimeout)
	defer cancel()

	reply, err := uc.llm.Chat(ctx, in.Messages)
	if err != nil {
		uc.log.Warn().Err(err).Msg("asistente: el proveedor falló, usando respuesta de respaldo")
		return &dto.AssistantChatResponse{Reply: assistantFallbackReply}, nil
	}
	if strings.TrimSpace(reply) == "" {
		return &dto.AssistantChatResponse{Reply: assistantFallbackReply}, nil
	}
	return &dto.AssistantChatResponse{Reply: reply}, nil
}
