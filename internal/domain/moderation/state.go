// Package moderation define el ciclo de vida de una fila moderada en los
// listados del panel administrativo. Todas las pantallas comparten la misma
// máquina de estados: una fila nace activa al crearse, se puede activar y
// desactivar cuantas veces se quiera, y el borrado es terminal.
package moderation

// State estado de una fila moderada.
type State string

const (
	StateDraft    State = "draft"    // aún no persistida
	StateActive   State = "active"
	StateInactive State = "inactive"
	StateDeleted  State = "deleted" // terminal
)

// FromActive deriva el estado a partir del flag is_active persistido.
func FromActive(isActive bool) State {
	if isActive {
		return StateActive
	}
	return StateInactive
}

// CanToggle indica si la fila admite el toggle activo/inactivo.
// Draft todavía no existe en DB y Deleted es terminal.
func (s State) CanToggle() bool {
	return s == StateActive || s == StateInactive
}

// CanDelete indica si la fila admite borrado (cualquier fila persistida).
func (s State) CanDelete() bool {
	return s == StateActive || s == StateInactive
}

// Toggled devuelve el estado opuesto. Dos aplicaciones seguidas devuelven el
// estado original: el toggle es idempotente en ida y vuelta.
func (s State) Toggled() State {
	switch s {
	case StateActive:
		return StateInactive
	case StateInactive:
		return StateActive
	default:
		return s
	}
}

// ReadState estado de lectura de un mensaje de contacto.
type ReadState string

const (
	ReadStateUnread ReadState = "unread"
	ReadStateRead   ReadState = "read"
)

// FromRead deriva el estado a partir del flag is_read persistido.
func FromRead(isRead bool) ReadState {
	if isRead {
		return ReadStateRead
	}
	return ReadStateUnread
}

// Toggled alterna leído/no leído. La dirección read→unread existe a propósito:
// el listado ofrece "marcar como no leído" y el servidor la soporta simétricamente.
func (s ReadState) Toggled() ReadState {
	if s == ReadStateRead {
		return ReadStateUnread
	}
	return ReadStateRead
}
