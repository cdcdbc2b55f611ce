package flash_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/turavia-api/internal/application/dto"
	"github.com/jhoicas/turavia-api/internal/infrastructure/flash"
)

func TestMemoryStore_PushPop(t *testing.T) {
	store := flash.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Push(ctx, 1, dto.Flash{Type: dto.FlashSuccess, Message: "destino creado", DismissAfterMS: 3000}))

	f, err := store.Pop(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, dto.FlashSuccess, f.Type)
	assert.Equal(t, "destino creado", f.Message)

	// Lectura destructiva: el segundo Pop no encuentra nada
	f, err = store.Pop(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, f)
}

func TestMemoryStore_PushPisaAlAnterior(t *testing.T) {
	store := flash.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Push(ctx, 1, dto.Flash{Type: dto.FlashSuccess, Message: "primero"}))
	require.NoError(t, store.Push(ctx, 1, dto.Flash{Type: dto.FlashError, Message: "segundo"}))

	f, err := store.Pop(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, "segundo", f.Message, "una sola ranura por usuario: el push nuevo reemplaza")
}

func TestMemoryStore_RanurasPorUsuario(t *testing.T) {
	store := flash.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Push(ctx, 1, dto.Flash{Message: "para uno"}))
	require.NoError(t, store.Push(ctx, 2, dto.Flash{Message: "para dos"}))

	f, err := store.Pop(ctx, 2)
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, "para dos", f.Message)

	f, err = store.Pop(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, "para uno", f.Message)
}

func TestMemoryStore_PopSinMensaje(t *testing.T) {
	store := flash.NewMemoryStore()
	f, err := store.Pop(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, f)
}
