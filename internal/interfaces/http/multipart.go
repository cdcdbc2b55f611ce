package http

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/turavia-api/internal/application/dto"
	"github.com/jhoicas/turavia-api/internal/domain/validation"
	"github.com/shopspring/decimal"
)

// Formato de fechas de los formularios del panel.
const formDateLayout = "2006-01-02"

// imagePart extrae la parte de imagen `field` del multipart, olfatea el tipo
// real del contenido y valida tipo y tamaño. Devuelve (nil, nil, nil) si el
// campo no viene; el caller decide si eso es un error. El cleanup cierra el
// archivo y debe llamarse después de consumir el Reader.
func imagePart(c *fiber.Ctx, field string, maxBytes int64) (*dto.ImageUpload, func(), error) {
	fh, err := c.FormFile(field)
	if err != nil || fh == nil {
		return nil, nil, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, nil, fmt.Errorf("abrir parte %s: %w", field, err)
	}
	// Olfatear el tipo con los primeros 512 bytes; no confiamos en el
	// Content-Type que declara el cliente.
	head := make([]byte, 512)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		f.Close()
		return nil, nil, fmt.Errorf("leer parte %s: %w", field, err)
	}
	contentType := http.DetectContentType(head[:n])

	errs := validation.FieldErrors{}
	validation.Image(errs, field, contentType, fh.Size, maxBytes)
	if errs.HasErrors() {
		f.Close()
		return nil, nil, errs
	}
	img := &dto.ImageUpload{
		Filename:    fh.Filename,
		ContentType: contentType,
		Size:        fh.Size,
		Reader:      io.MultiReader(bytes.NewReader(head[:n]), f),
	}
	return img, func() { f.Close() }, nil
}

// formString devuelve el valor del campo y si venía en el formulario.
// Distinguir "no vino" de "vino vacío" es lo que habilita los updates parciales.
func formString(c *fiber.Ctx, field string) (string, bool) {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return "", false
	}
	vals, ok := form.Value[field]
	if !ok || len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

// formInt64 parsea el campo como int64; anota el error de formato en errs.
func formInt64(c *fiber.Ctx, field string, errs validation.FieldErrors) (int64, bool) {
	raw, ok := formString(c, field)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		errs.Add(field, "debe ser numérico")
		return 0, false
	}
	return v, true
}

// formInt parsea el campo como int; anota el error de formato en errs.
func formInt(c *fiber.Ctx, field string, errs validation.FieldErrors) (int, bool) {
	v, ok := formInt64(c, field, errs)
	return int(v), ok
}

// formDecimal parsea el campo como decimal; anota el error de formato en errs.
func formDecimal(c *fiber.Ctx, field string, errs validation.FieldErrors) (decimal.Decimal, bool) {
	raw, ok := formString(c, field)
	if !ok {
		return decimal.Decimal{}, false
	}
	v, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		errs.Add(field, "debe ser un número decimal")
		return decimal.Decimal{}, false
	}
	return v, true
}

// formDate parsea el campo como fecha YYYY-MM-DD; anota el error en errs.
func formDate(c *fiber.Ctx, field string, errs validation.FieldErrors) (time.Time, bool) {
	raw, ok := formString(c, field)
	if !ok {
		return time.Time{}, false
	}
	v, err := time.Parse(formDateLayout, strings.TrimSpace(raw))
	if err != nil {
		errs.Add(field, "debe tener formato AAAA-MM-DD")
		return time.Time{}, false
	}
	return v, true
}
