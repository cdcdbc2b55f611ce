package validation

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FieldErrors acumula errores de validación por nombre de campo.
// Es el mismo mapa que se serializa en la respuesta 422, de modo que el
// cliente puede anotar cada campo del formulario con su mensaje.
type FieldErrors map[string]string

// Add registra un error para un campo. El primer error por campo gana:
// un campo inválido no necesita dos mensajes.
func (e FieldErrors) Add(field, msg string) {
	if _, ok := e[field]; !ok {
		e[field] = msg
	}
}

// HasErrors indica si hay al menos un error acumulado.
func (e FieldErrors) HasErrors() bool { return len(e) > 0 }

// Error implementa error con los campos en orden estable.
func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return strings.Join(parts, "; ")
}

// ── Reglas de texto ───────────────────────────────────────────────────────────

// Required exige un valor no vacío (espacios no cuentan).
func Required(errs FieldErrors, field, value string) {
	if strings.TrimSpace(value) == "" {
		errs.Add(field, "es requerido")
	}
}

// Length exige longitud dentro de [min, max]. Vacío también falla si min > 0.
func Length(errs FieldErrors, field, value string, min, max int) {
	n := len(strings.TrimSpace(value))
	if n < min || n > max {
		errs.Add(field, fmt.Sprintf("debe tener entre %d y %d caracteres", min, max))
	}
}

// MinLength exige una longitud mínima (descripciones largas sin tope).
func MinLength(errs FieldErrors, field, value string, min int) {
	if len(strings.TrimSpace(value)) < min {
		errs.Add(field, fmt.Sprintf("debe tener al menos %d caracteres", min))
	}
}

// Email valida la forma mínima usuario@dominio.tld.
func Email(errs FieldErrors, field, value string) {
	at := strings.Index(value, "@")
	if at < 1 || at == len(value)-1 || !strings.Contains(value[at+1:], ".") {
		errs.Add(field, "no es un email válido")
	}
}

// OneOf exige que el valor esté en la lista permitida.
func OneOf(errs FieldErrors, field, value string, allowed ...string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	errs.Add(field, "valor no permitido: "+value)
}

// ── Reglas numéricas ──────────────────────────────────────────────────────────

// NonNegative exige un decimal >= 0 (precios).
func NonNegative(errs FieldErrors, field string, d decimal.Decimal) {
	if d.IsNegative() {
		errs.Add(field, "no puede ser negativo")
	}
}

// LessThan exige a < b; se usa para discount_price < price.
func LessThan(errs FieldErrors, field string, a, b decimal.Decimal) {
	if !a.LessThan(b) {
		errs.Add(field, "debe ser menor que el precio")
	}
}

// Rating exige un valor dentro de [0, 5].
func Rating(errs FieldErrors, field string, d decimal.Decimal) {
	if d.IsNegative() || d.GreaterThan(decimal.NewFromInt(5)) {
		errs.Add(field, "debe estar entre 0 y 5")
	}
}

// MinInt exige value >= min (duración de paquetes, etc.).
func MinInt(errs FieldErrors, field string, value, min int) {
	if value < min {
		errs.Add(field, fmt.Sprintf("debe ser al menos %d", min))
	}
}

// ── Reglas de fechas ──────────────────────────────────────────────────────────

// DateWindow exige end >= start. El error se anota sobre el campo de fin,
// que es donde el formulario lo muestra.
func DateWindow(errs FieldErrors, field string, start, end time.Time) {
	if end.Before(start) {
		errs.Add(field, "debe ser igual o posterior a la fecha de inicio")
	}
}

// ── Reglas de archivos ────────────────────────────────────────────────────────

// Tipos MIME aceptados para imágenes subidas.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

// ImageExtension devuelve la extensión canónica para un MIME aceptado
// y false si el tipo no está permitido.
func ImageExtension(contentType string) (string, bool) {
	ext, ok := allowedImageTypes[strings.ToLower(strings.TrimSpace(contentType))]
	return ext, ok
}

// Image valida tipo MIME y tamaño de una imagen subida.
func Image(errs FieldErrors, field, contentType string, size, maxBytes int64) {
	if _, ok := ImageExtension(contentType); !ok {
		errs.Add(field, "tipo de archivo no permitido (jpeg, jpg, png, gif)")
		return
	}
	if size > maxBytes {
		errs.Add(field, fmt.Sprintf("el archivo supera el máximo de %d MB", maxBytes/(1024*1024)))
	}
}
