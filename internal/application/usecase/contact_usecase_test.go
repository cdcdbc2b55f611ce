package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/turavia-api/internal/application/dto"
	"github.com/jhoicas/turavia-api/internal/application/usecase"
	"github.com/jhoicas/turavia-api/internal/domain"
	"github.com/jhoicas/turavia-api/internal/domain/validation"
)

func newContactUC() (*usecase.ContactUseCase, *fakeContactRepo) {
	repo := newFakeContactRepo()
	return usecase.NewContactUseCase(repo), repo
}

func TestContactCreate_Valido(t *testing.T) {
	uc, _ := newContactUC()

	out, err := uc.Create(dto.CreateContactRequest{
		Name:    "Carlos Pérez",
		Email:   "carlos@example.com",
		Message: "Quisiera información sobre paquetes a Cusco en octubre",
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.False(t, out.IsRead, "un mensaje nuevo entra como no leído")
	assert.Equal(t, int64(1), out.ID)
}

func TestContactCreate_Validacion(t *testing.T) {
	uc, repo := newContactUC()

	_, err := uc.Create(dto.CreateContactRequest{
		Name:    "C",
		Email:   "no-es-email",
		Message: "corto",
	})
	require.Error(t, err)

	var errs validation.FieldErrors
	require.True(t, errors.As(err, &errs))
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "message")
	assert.Empty(t, repo.rows)
}

func TestContactMarkRead_Idempotente(t *testing.T) {
	uc, _ := newContactUC()
	created, err := uc.Create(dto.CreateContactRequest{
		Name:    "Carlos Pérez",
		Email:   "carlos@example.com",
		Message: "Quisiera información sobre paquetes a Cusco",
	})
	require.NoError(t, err)

	out, err := uc.MarkRead(created.ID)
	require.NoError(t, err)
	assert.True(t, out.IsRead)

	// Marcar leído de nuevo no cambia nada
	out, err = uc.MarkRead(created.ID)
	require.NoError(t, err)
	assert.True(t, out.IsRead)

	out, err = uc.MarkUnread(created.ID)
	require.NoError(t, err)
	assert.False(t, out.IsRead, "la acción simétrica vuelve a no leído")
}

func TestContactMarkRead_NoExiste(t *testing.T) {
	uc, _ := newContactUC()
	out, err := uc.MarkRead(99)
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestContactDelete_NoExiste(t *testing.T) {
	uc, _ := newContactUC()
	assert.ErrorIs(t, uc.Delete(99), domain.ErrNotFound)
}
