// Package pdf genera el tiquete de entrega de una caja IPTV.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Proyecto + Razón social │ N° Tiquete + Fecha       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EQUIPO: Serial / MAC / Tipo de servicio / Estatus          │
//	│  CLIENTE: Código / Contratos / Ubicación final              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA DE PRECIOS: Concepto | Valor                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  QR del serial + firmas de entrega y recibido               │
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

	"github.com/jhoicas/inventario-iptv/internal/application/inventory"
	"github.com/jhoicas/inventario-iptv/internal/domain/entity"
)

var _ inventory.TicketGenerator = (*TiquetePDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// TiquetePDFGenerator implementa inventory.TicketGenerator usando Maroto v2.
type TiquetePDFGenerator struct {
	empresa string
	now     func() time.Time
}

// NewTiquetePDFGenerator construye el generador; empresa aparece como autor del documento.
func NewTiquetePDFGenerator(empresa string) *TiquetePDFGenerator {
	return &TiquetePDFGenerator{empresa: empresa, now: time.Now}
}

// Generate genera el PDF y devuelve sus bytes.
func (g *TiquetePDFGenerator) Generate(_ context.Context, caja *entity.Caja) ([]byte, error) {
	if caja == nil || caja.Serial == "" {
		return nil, fmt.Errorf("pdf: caja sin serial")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Tiquete de entrega "+caja.Serial, true).
		WithAuthor(g.empresa, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(caja, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(equipoRow(caja))
	m.AddRows(clienteRow(caja))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(priceRows(caja)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRows(caja)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: proyecto + razón social (izq) y N° tiquete + fecha (der).
func headerRow(c *entity.Caja, now time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(c.Proyecto, "Inventario IPTV"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(c.RazonSocial, "-"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("TIQUETE DE ENTREGA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(c.TiqueteDeEntrega, "S/N"), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+now.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func equipoRow(c *entity.Caja) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("EQUIPO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New("Serial: "+c.Serial, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("MAC: %s   |   Servicio: %s   |   Estatus: %s   |   Cajas colocadas: %d",
				nonEmpty(c.MAC, "-"),
				nonEmpty(c.TipoServicio, "-"),
				nonEmpty(c.Estatus, "-"),
				c.CantidadDeCajasColocadasRevify,
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func clienteRow(c *entity.Caja) core.Row {
	return row.New(20).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Código: %s   |   Código BlueSAT: %s   |   Contratación: %s",
				nonEmpty(c.CodigoCliente, "-"),
				nonEmpty(c.CodigoClienteBlueSAT, "-"),
				nonEmpty(c.TipoContratacion, "-"),
			), props.Text{Size: 8, Top: 6}),
			text.New(fmt.Sprintf("Contrato Liberty: %s   |   Contrato facturación: %s   |   Estatus contrato: %s",
				nonEmpty(c.ContratoLiberty, "-"),
				nonEmpty(c.ContratoFacturacion, "-"),
				nonEmpty(c.EstatusContrato, "-"),
			), props.Text{Size: 8, Top: 11, Color: colorGray}),
			text.New("Ubicación final: "+nonEmpty(c.UbicacionFinal, "-"), props.Text{
				Size: 8, Top: 16, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de precios.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		h("Concepto", 8, align.Left),
		h("Valor", 4, align.Right),
	)
}

func priceRows(c *entity.Caja) []core.Row {
	items := []struct {
		label string
		value decimal.Decimal
	}{
		{"IPTV principal Revify", c.PrecioIPTVPrincipalRevify},
		{"IPTV adicional Revify", c.PrecioIPTVAdicionalRevify},
		{"IPTV principal Liberty", c.PrecioIPTVPrincipalLiberty},
		{"IPTV adicional Liberty", c.PrecioIPTVAdicionalLiberty},
		{"Convertidor principal Liberty", c.PreciodeConvertidorPrincipalLiberty},
		{"Convertidor adicional Liberty", c.PreciodeConvertidorAdicionalLiberty},
	}
	rows := make([]core.Row, 0, len(items)+1)
	for _, it := range items {
		rows = append(rows, row.New(7).Add(
			col.New(8).Add(text.New(it.label, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New("$"+formatMoney(it.value), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	rows = append(rows, row.New(9).Add(
		col.New(8).Add(text.New("TOTAL DEL CONTRATO", props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2, Left: 1,
		})),
		col.New(4).Add(text.New("$"+formatMoney(c.TotaldelContrato), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 1,
		})),
	))
	return rows
}

// footerRows: QR con el serial, observaciones y firmas.
func footerRows(c *entity.Caja) []core.Row {
	rows := []core.Row{
		row.New(45).Add(
			col.New(4).Add(code.NewQr(c.Serial, props.Rect{
				Percent: 95,
				Center:  true,
			})),
			col.New(8).Add(
				text.New("Escanea el código QR para identificar\nel equipo en el inventario.", props.Text{
					Size: 8, Top: 4, Left: 3, Color: colorGray,
				}),
				text.New("Observaciones: "+nonEmpty(c.Observaciones, "-"), props.Text{
					Size: 8, Top: 18, Left: 3,
				}),
			),
		),
		row.New(20),
		row.New(6).Add(
			col.New(5).Add(line.New(props.Line{Color: colorGray, Thickness: 0.3})),
			col.New(2),
			col.New(5).Add(line.New(props.Line{Color: colorGray, Thickness: 0.3})),
		),
		row.New(6).Add(
			col.New(5).Add(text.New("Entregado por", props.Text{Size: 8, Align: align.Center, Color: colorGray})),
			col.New(2),
			col.New(5).Add(text.New("Recibido por", props.Text{Size: 8, Align: align.Center, Color: colorGray})),
		),
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) != "" {
		return s
	}
	return fallback
}

// formatMoney formatea con puntos de miles y coma decimal.
// Ej: 25000 → "25.000,00", 1500.5 → "1.500,50"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, frac, _ := strings.Cut(s, ".")

	n := len(intPart)
	buf := make([]byte, 0, n+n/3+3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	out := string(buf) + "," + frac
	if neg {
		return "-" + out
	}
	return out
}
