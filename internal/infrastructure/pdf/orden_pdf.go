// Package pdf genera la orden de trabajo imprimible con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Taller + Orden #XXXX  │  Estado + Fecha             │
//	│  CLIENTE / VEHÍCULO                                         │
//	│  TAREAS: Descripción | Precio al momento                     │
//	│  PRODUCTOS: Cant | Producto | P.Unit | Subtotal              │
//	│  TOTALES: Tareas / Productos / TOTAL                         │
//	│  OBSERVACIONES + QR con la referencia                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/detailing-dashboard/internal/domain/entity"
	"github.com/jhoicas/detailing-dashboard/internal/domain/trabajo"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 30, Green: 64, Blue: 175}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// OrdenPDFGenerator arma el PDF de una orden de trabajo.
type OrdenPDFGenerator struct {
	taller string
}

// NewOrdenPDFGenerator construye el generador; taller es el nombre que va en el encabezado.
func NewOrdenPDFGenerator(taller string) *OrdenPDFGenerator {
	return &OrdenPDFGenerator{taller: taller}
}

// GenerateOrdenPDF genera el PDF y devuelve sus bytes. Las líneas sin entidad poblada
// se imprimen con su ID.
func (g *OrdenPDFGenerator) GenerateOrdenPDF(
	_ context.Context,
	t *entity.Trabajo,
	resumen trabajo.Resumen,
	generadoEn time.Time,
) ([]byte, error) {
	ref := trabajo.Referencia(t.ID)
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(ref, true).
		WithAuthor(g.taller, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.taller, ref, t.Estado, generadoEn))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clienteVehiculoRow(t))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("TAREAS"))
	m.AddRows(tareasHeaderRow())
	m.AddRows(tareasRows(t.Tareas)...)

	if len(t.ProductosUsados) > 0 {
		m.AddRows(sectionTitle("PRODUCTOS UTILIZADOS"))
		m.AddRows(productosHeaderRow())
		m.AddRows(productosRows(t.ProductosUsados)...)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(resumen))

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRows(ref, t)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(taller, ref string, estado entity.Estado, fecha time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(taller, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("ORDEN DE TRABAJO", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(ref, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Estado: "+string(estado), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 8, Color: colorPrimary,
			}),
			text.New("Fecha: "+fecha.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func clienteVehiculoRow(t *entity.Trabajo) core.Row {
	clienteNombre, clienteContacto := "No disponible", ""
	if c, ok := t.Cliente(); ok {
		clienteNombre = c.NombreCompleto()
		clienteContacto = fmt.Sprintf("DNI: %s   |   Email: %s   |   Tel: %s",
			nonEmpty(c.DNI, "-"), nonEmpty(c.Email, "-"), nonEmpty(c.Telefono, "-"))
	}
	vehiculo := t.Vehiculo.ID()
	if v, ok := t.Vehiculo.Entity(); ok {
		vehiculo = v.Descripcion()
	}

	return row.New(16).Add(
		col.New(6).Add(
			text.New("CLIENTE", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(clienteNombre, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(clienteContacto, props.Text{Size: 7, Top: 12, Color: colorGray}),
		),
		col.New(6).Add(
			text.New("VEHÍCULO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(nonEmpty(vehiculo, "No disponible"), props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
		),
	)
}

func sectionTitle(s string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
	))
}

func headerCol(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a,
		Color: colorWhite, Top: 2, Left: 1, Right: 1,
	})).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func tareasHeaderRow() core.Row {
	return row.New(8).Add(
		headerCol("Descripción", 8, align.Left),
		headerCol("Precio", 4, align.Right),
	)
}

func tareasRows(tareas []entity.TareaLinea) []core.Row {
	result := make([]core.Row, 0, len(tareas))
	for _, l := range tareas {
		desc := l.Tarea.ID()
		if t, ok := l.Tarea.Entity(); ok {
			desc = t.Descripcion
		}
		result = append(result, row.New(7).Add(
			col.New(8).Add(text.New(desc, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(formatMoney(l.PrecioAlMomento), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

func productosHeaderRow() core.Row {
	return row.New(8).Add(
		headerCol("Cant.", 1, align.Center),
		headerCol("Producto", 6, align.Left),
		headerCol("Precio Unit.", 2, align.Right),
		headerCol("Subtotal", 3, align.Right),
	)
}

func productosRows(productos []entity.ProductoLinea) []core.Row {
	result := make([]core.Row, 0, len(productos))
	for _, l := range productos {
		nombre, precio := l.Producto.ID(), decimal.Zero
		if p, ok := l.Producto.Entity(); ok {
			nombre, precio = p.Nombre, p.PrecioVenta
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprint(l.Cantidad), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(6).Add(text.New(nombre, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(formatMoney(precio), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(formatMoney(trabajo.SubtotalLinea(l)), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

func totalsRow(r trabajo.Resumen) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grand := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1,
		})
	}

	return row.New(20).Add(
		col.New(6),
		col.New(3).Add(
			label("Subtotal tareas:"),
			label("Subtotal productos:"),
			label("TOTAL:"),
		),
		col.New(3).Add(
			value(formatMoney(r.SubtotalTareas)),
			value(formatMoney(r.SubtotalProductos)),
			grand(formatMoney(r.Total)),
		),
	)
}

func footerRows(ref string, t *entity.Trabajo) []core.Row {
	obs := nonEmpty(strings.TrimSpace(t.Observaciones), "Sin observaciones")
	rows := []core.Row{sectionTitle("OBSERVACIONES")}
	for _, chunk := range splitEvery(obs, 110) {
		rows = append(rows, row.New(4).Add(col.New(12).Add(
			text.New(chunk, props.Text{Size: 8, Color: colorGray, Left: 2}),
		)))
	}
	rows = append(rows, row.New(3), row.New(40).Add(
		col.New(3).Add(code.NewQr(ref+" "+t.ID, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("Presente este código al retirar el vehículo.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New(ref, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 14, Left: 3, Color: colorPrimary,
			}),
		),
	))
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney formatea con punto de miles y coma decimal: 1234.5 -> "$1.234,50".
func formatMoney(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	s := d.StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")

	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + "$" + string(buf) + "," + frac
}

// splitEvery divide s en trozos de max n runas.
func splitEvery(s string, n int) []string {
	r := []rune(s)
	var parts []string
	for len(r) > n {
		parts = append(parts, string(r[:n]))
		r = r[n:]
	}
	if len(r) > 0 {
		parts = append(parts, string(r))
	}
	return parts
}
