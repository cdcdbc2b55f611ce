package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"sin metacaracteres", "cusco", "cusco"},
		{"vacío queda vacío", "", ""},
		{"porcentaje literal", "100%", `100\%`},
		{"guion bajo literal", "valle_sagrado", `valle\_sagrado`},
		{"barra invertida primero", `a\b%`, `a\\b\%`},
		{"todos combinados", `%_\`, `\%\_\\`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, escapeLike(tc.in),
				"un término con comodines debe buscarse como texto literal")
		})
	}
}
