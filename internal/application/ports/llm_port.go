package ports

import (
	"context"

	"github.com/jhoicas/turavia-api/internal/application/dto"
)

// LLMService define el puerto de salida para el asistente de viajes.
// Cualquier adaptador (Gemini, OpenAI, mock) debe implementar esta interfaz.
// El dominio/aplicación solo conoce este contrato, no la implementación.
type LLMService interface {
	// Chat recibe el historial de turnos y devuelve la respuesta del modelo.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	Chat(ctx context.Context, messages []dto.ChatMessage) (string, error)
}
