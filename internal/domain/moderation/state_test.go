package moderation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/turavia-api/internal/domain/moderation"
)

func TestToggled_IdaYVuelta(t *testing.T) {
	// Dos toggles seguidos deben devolver el estado original.
	s := moderation.StateActive
	assert.Equal(t, moderation.StateInactive, s.Toggled())
	assert.Equal(t, s, s.Toggled().Toggled())

	r := moderation.ReadStateUnread
	assert.Equal(t, moderation.ReadStateRead, r.Toggled())
	assert.Equal(t, r, r.Toggled().Toggled())
}

func TestDeleted_EsTerminal(t *testing.T) {
	s := moderation.StateDeleted
	assert.False(t, s.CanToggle())
	assert.False(t, s.CanDelete())
	assert.Equal(t, moderation.StateDeleted, s.Toggled(), "deleted no cambia con toggle")
}

func TestDraft_NoAdmiteAcciones(t *testing.T) {
	s := moderation.StateDraft
	assert.False(t, s.CanToggle())
	assert.False(t, s.CanDelete())
}

func TestFromActive(t *testing.T) {
	assert.Equal(t, moderation.StateActive, moderation.FromActive(true))
	assert.Equal(t, moderation.StateInactive, moderation.FromActive(false))
}

func TestFromRead(t *testing.T) {
	assert.Equal(t, moderation.ReadStateRead, moderation.FromRead(true))
	assert.Equal(t, moderation.ReadStateUnread, moderation.FromRead(false))
}
