// Package pdf implementa la generación del catálogo de ofertas de la
// agencia, agrupado por destino.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del catálogo + fecha de generación          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DESTINO: Nombre + ubicación                                │
//	│  TABLA: Oferta | Vigencia | Precio | Precio oferta          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  (siguiente destino...)                                     │
//	│  FOOTER: leyenda de validez de precios                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/turavia-api/internal/application/ports"
	"github.com/jhoicas/turavia-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 102, Blue: 153}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAccent  = &props.Color{Red: 200, Green: 60, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ ports.CatalogPDFGenerator = (*MarotoCatalogGenerator)(nil)

// MarotoCatalogGenerator implementa CatalogPDFGenerator usando Maroto v2.
type MarotoCatalogGenerator struct{}

// NewMarotoCatalogGenerator construye el generador.
func NewMarotoCatalogGenerator() *MarotoCatalogGenerator { return &MarotoCatalogGenerator{} }

// GenerateCatalogPDF genera el catálogo y devuelve sus bytes.
func (g *MarotoCatalogGenerator) GenerateCatalogPDF(
	_ context.Context,
	sections []ports.CatalogSection,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Catálogo de ofertas", true).
		WithAuthor("Turavia", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, s := range sections {
		m.AddRows(destinationRow(s.Destination))
		m.AddRows(tableHeaderRow())
		for _, r := range offerRows(s.Offers) {
			m.AddRows(r)
		}
		m.AddRows(line.NewRow(2))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del catálogo + fecha de generación.
func headerRow() core.Row {
	fecha := time.Now().Format("02/01/2006")
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Turavia", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Catálogo de ofertas por destino", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// destinationRow: cabecera de la sección de un destino.
func destinationRow(d *entity.Destination) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New(d.Name, props.Text{
				Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 2,
			}),
			text.New(d.Location, props.Text{Size: 8, Top: 8, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de ofertas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Oferta", 5, align.Left),
		h("Vigencia", 3, align.Center),
		h("Precio", 2, align.Right),
		h("Precio oferta", 2, align.Right),
	)
}

// offerRows: una fila por oferta activa del destino.
func offerRows(offers []*entity.Offer) []core.Row {
	result := make([]core.Row, 0, len(offers))
	for _, o := range offers {
		vigencia := o.StartDate.Format("02/01/2006") + " - " + o.EndDate.Format("02/01/2006")
		descuento := "—"
		if o.DiscountPrice != nil {
			descuento = "$" + formatMoney(o.DiscountPrice.StringFixed(0))
		}
		result = append(result, row.New(7).Add(
			col.New(5).Add(text.New(
				o.Title,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				vigencia,
				props.Text{Size: 7.5, Align: align.Center, Top: 1, Color: colorGray},
			)),
			col.New(2).Add(text.New(
				"$"+formatMoney(o.Price.StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				descuento,
				props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1, Color: colorAccent},
			)),
		))
	}
	return result
}

// footerRow: leyenda de validez.
func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Precios sujetos a disponibilidad y a la vigencia indicada en cada oferta. "+
				"Consulta condiciones completas en el sitio web de Turavia.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
