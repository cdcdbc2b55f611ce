package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// El binario sirve la UI de docs desde docs/swagger.json. El arranque tolera
// que falte el archivo, pero el repo debe incluirlo y debe ser JSON válido.
func TestSwaggerJSON_ExisteYEsValido(t *testing.T) {
	path := filepath.Join("..", "..", "docs", "swagger.json")

	raw, err := os.ReadFile(path)
	require.NoError(t, err, "docs/swagger.json debe estar versionado junto al binario")

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc), "docs/swagger.json debe ser JSON válido")
	assert.Equal(t, "2.0", doc["swagger"], "el documento debe declarar swagger 2.0")
	assert.NotEmpty(t, doc["paths"], "el documento debe declarar rutas")
}
