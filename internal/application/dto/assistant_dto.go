package dto

// ChatMessage un turno de la conversación con el asistente de viajes.
type ChatMessage struct {
	Role    string `json:"role"` // user | assistant
	Content string `json:"content"`
}

// AssistantChatRequest entrada del chat: el historial completo de turnos,
// el último siempre del usuario.
type AssistantChatRequest struct {
	Messages []ChatMessage `json:"messages"`
}

// AssistantChatResponse respuesta del asistente.
type AssistantChatResponse struct {
	Reply string `json:"reply"`
}
