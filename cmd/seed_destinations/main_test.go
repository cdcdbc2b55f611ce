package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// csvISO88591 arma un CSV en ISO-8859-1 (como viene el export del sistema
// anterior): las vocales con tilde y la eñe son bytes de Latin-1.
func csvISO88591(lines ...string) []byte {
	joined := strings.Join(lines, "\n")
	out := make([]byte, 0, len(joined))
	for _, r := range joined {
		if r < 0x100 {
			out = append(out, byte(r))
		}
	}
	return out
}

func TestReadDestinos_DecodificaLatin1(t *testing.T) {
	src := csvISO88591(
		"nombre;ubicacion;descripcion",
		"Cancún;México;Arena blanca del Caribe",
		"A Coruña;España;Galicia atlántica",
	)

	destinos, err := readDestinos(bytes.NewReader(src))
	require.NoError(t, err)
	require.Len(t, destinos, 2)

	// Orden alfabético estable y tildes decodificadas a UTF-8
	assert.Equal(t, "A Coruña", destinos[0].nombre)
	assert.Equal(t, "España", destinos[0].ubicacion)
	assert.Equal(t, "Cancún", destinos[1].nombre)
	assert.Equal(t, "México", destinos[1].ubicacion)
}

func TestReadDestinos_FiltraIncompletosYDuplicados(t *testing.T) {
	src := csvISO88591(
		"nombre;ubicacion;descripcion",
		"Cusco;Perú;Capital arqueológica",
		"Cusco;Perú;repetido",
		";Perú;sin nombre",
		"SoloNombre",
	)

	destinos, err := readDestinos(bytes.NewReader(src))
	require.NoError(t, err)
	require.Len(t, destinos, 1)
	assert.Equal(t, "Cusco", destinos[0].nombre)
}

func TestWriteSeedSQL_ColumnasDelEsquema(t *testing.T) {
	var buf bytes.Buffer
	writeSeedSQL(&buf, []destino{
		{nombre: "Cusco", ubicacion: "Perú", descripcion: "Valle Sagrado y camino inca"},
	})
	sql := buf.String()

	assert.Contains(t, sql, "INSERT INTO destinations (name, location, description, is_active, is_featured)",
		"las columnas deben coincidir con las que usan los repositorios")
	assert.Contains(t, sql, "VALUES ('Cusco', 'Perú', 'Valle Sagrado y camino inca', true, false);")
	assert.NotContains(t, sql, "ON CONFLICT", "carga inicial sobre tabla vacía, sin cláusula de conflicto")
}

func TestWriteSeedSQL_EscapaComillas(t *testing.T) {
	var buf bytes.Buffer
	writeSeedSQL(&buf, []destino{
		{nombre: "L'Hospitalet", ubicacion: "España"},
	})
	assert.Contains(t, buf.String(), "'L''Hospitalet'")
}
