package validation_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/turavia-api/internal/domain/validation"
)

func TestLength_DescripcionCorta(t *testing.T) {
	errs := validation.FieldErrors{}
	// "short" tiene 5 caracteres; el mínimo para descripciones es 10.
	validation.MinLength(errs, "description", "short", 10)

	assert.True(t, errs.HasErrors())
	assert.Contains(t, errs["description"], "al menos 10")
}

func TestLength_NombreValido(t *testing.T) {
	errs := validation.FieldErrors{}
	// "Ibiza" con 4+ caracteres pasa el rango 3-255.
	validation.Length(errs, "name", "Ibiza", 3, 255)

	assert.False(t, errs.HasErrors())
}

func TestAdd_PrimerErrorGana(t *testing.T) {
	errs := validation.FieldErrors{}
	errs.Add("name", "es requerido")
	errs.Add("name", "otro mensaje")

	assert.Equal(t, "es requerido", errs["name"])
}

func TestLessThan_DescuentoMayorQuePrecio(t *testing.T) {
	cases := []struct {
		name     string
		discount string
		price    string
		wantErr  bool
	}{
		{"descuento menor pasa", "50", "100", false},
		{"descuento igual falla", "100", "100", true},
		{"descuento mayor falla", "90", "80", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := validation.FieldErrors{}
			d := decimal.RequireFromString(tc.discount)
			p := decimal.RequireFromString(tc.price)
			validation.LessThan(errs, "discount_price", d, p)
			assert.Equal(t, tc.wantErr, errs.HasErrors())
		})
	}
}

func TestDateWindow(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	errs := validation.FieldErrors{}
	validation.DateWindow(errs, "end_date", start, start.AddDate(0, 0, 7))
	assert.False(t, errs.HasErrors(), "fin posterior al inicio debe pasar")

	errs = validation.FieldErrors{}
	validation.DateWindow(errs, "end_date", start, start)
	assert.False(t, errs.HasErrors(), "fin igual al inicio debe pasar")

	errs = validation.FieldErrors{}
	validation.DateWindow(errs, "end_date", start, start.AddDate(0, 0, -1))
	assert.True(t, errs.HasErrors(), "fin anterior al inicio debe fallar")
}

func TestRating_Rango(t *testing.T) {
	errs := validation.FieldErrors{}
	validation.Rating(errs, "rating", decimal.RequireFromString("4.5"))
	assert.False(t, errs.HasErrors())

	errs = validation.FieldErrors{}
	validation.Rating(errs, "rating", decimal.RequireFromString("5.1"))
	assert.True(t, errs.HasErrors())

	errs = validation.FieldErrors{}
	validation.Rating(errs, "rating", decimal.RequireFromString("-0.5"))
	assert.True(t, errs.HasErrors())
}

func TestImage_TiposYTamano(t *testing.T) {
	const maxBytes = 2 * 1024 * 1024

	for _, mime := range []string{"image/jpeg", "image/jpg", "image/png", "image/gif"} {
		errs := validation.FieldErrors{}
		validation.Image(errs, "image", mime, 1024, maxBytes)
		assert.False(t, errs.HasErrors(), "tipo %s debe aceptarse", mime)
	}

	errs := validation.FieldErrors{}
	validation.Image(errs, "image", "application/pdf", 1024, maxBytes)
	assert.True(t, errs.HasErrors(), "PDF debe rechazarse")

	errs = validation.FieldErrors{}
	validation.Image(errs, "image", "image/png", maxBytes+1, maxBytes)
	assert.True(t, errs.HasErrors(), "archivo de más de 2 MiB debe rechazarse")
	assert.Contains(t, errs["image"], "2 MB")
}

func TestOneOf_DiscountType(t *testing.T) {
	errs := validation.FieldErrors{}
	validation.OneOf(errs, "discount_type", "percentage", "percentage", "fixed")
	assert.False(t, errs.HasErrors())

	errs = validation.FieldErrors{}
	validation.OneOf(errs, "discount_type", "weird", "percentage", "fixed")
	assert.True(t, errs.HasErrors())
}

func TestError_OrdenEstable(t *testing.T) {
	errs := validation.FieldErrors{}
	errs.Add("b_field", "x")
	errs.Add("a_field", "y")

	assert.Equal(t, "a_field: y; b_field: x", errs.Error())
}
