// Package pdf implementa la representación gráfica de la nota de crédito.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Tienda + NIF        │  N° Nota + Fecha + Canal      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EMISOR (tienda)             │  CLIENTE (dirección congelada)│
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Concepto | Neto | Tasa | Impuesto | Total            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  IMPUESTOS por tasa          │  Subtotal / Impuestos / Total │
//	│  ─────────────────────────────────────────────────────────  │
//	│  COMENTARIO + pedido de referencia                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

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

	"github.com/jhoicas/creditmemo-api/internal/application/creditmemo"
	"github.com/jhoicas/creditmemo-api/internal/domain/entity"
	"github.com/jhoicas/creditmemo-api/pkg/money"
)

var _ creditmemo.CreditMemoPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa creditmemo.CreditMemoPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	author string
}

// NewMarotoPDFGenerator construye el generador. author vacío usa la razón social de la tienda.
func NewMarotoPDFGenerator(author string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{author: author}
}

// GenerateCreditMemoPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateCreditMemoPDF(_ context.Context, memo *entity.CreditMemo) ([]byte, error) {
	author := g.author
	if author == "" && memo.To != nil {
		author = memo.To.Company
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Nota de crédito "+memo.Number, true).
		WithAuthor(nonEmpty(author, memo.Channel.Name), true).
		Build()

	m := maroto.New(cfg)
	f := formatter{currency: memo.CurrencyCode, locale: memo.LocaleCode}

	m.AddRows(headerRow(memo))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(memo))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(memo.LineItems, f) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(memo, f))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range footerRows(memo) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

type formatter struct {
	currency string
	locale   string
}

func (f formatter) amount(v int64) string {
	return money.Format(v, f.currency, f.locale)
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: tienda (izq) y N° nota + fecha + canal (der).
func headerRow(memo *entity.CreditMemo) core.Row {
	shop, taxID := memo.Channel.Name, ""
	if memo.To != nil {
		shop, taxID = memo.To.Company, memo.To.TaxID
	}
	left := col.New(7).Add(
		text.New(shop, props.Text{
			Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
		}),
	)
	if taxID != "" {
		left.Add(text.New("NIF: "+taxID, props.Text{
			Size: 9, Top: 9, Color: colorGray,
		}))
	}
	return row.New(20).Add(
		left,
		col.New(5).Add(
			text.New("NOTA DE CRÉDITO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(memo.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6,
			}),
			text.New("Fecha: "+memo.IssuedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
			text.New("Canal: "+memo.Channel.Name, props.Text{
				Size: 8, Align: align.Right, Top: 17, Color: colorGray,
			}),
		),
	)
}

// partiesRow: datos de la tienda (emisor) y del cliente, tal como se congelaron.
func partiesRow(memo *entity.CreditMemo) core.Row {
	shopLines := []string{"—"}
	if memo.To != nil {
		shopLines = []string{
			memo.To.Company,
			memo.To.Street,
			strings.TrimSpace(memo.To.Postcode + " " + memo.To.City),
			memo.To.CountryCode,
		}
	}
	from := memo.From
	customerLines := []string{from.FullName}
	if from.Company != "" {
		customerLines = append(customerLines, from.Company)
	}
	customerLines = append(customerLines,
		from.Street,
		strings.TrimSpace(from.Postcode + " " + from.City),
		strings.TrimSpace(from.CountryCode + " " + nonEmpty(from.ProvinceName, from.ProvinceCode)),
	)
	return row.New(28).Add(
		col.New(6).Add(addressBlock("EMISOR", shopLines)...),
		col.New(6).Add(addressBlock("CLIENTE", customerLines)...),
	)
}

func addressBlock(title string, lines []string) []core.Component {
	components := []core.Component{
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}),
	}
	top := 6.0
	for _, l := range lines {
		if l == "" {
			continue
		}
		components = append(components, text.New(l, props.Text{Size: 8, Top: top, Color: colorGray}))
		top += 4.5
	}
	return components
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Concepto", 4, align.Left),
		h("Neto", 2, align.Right),
		h("Tasa", 2, align.Center),
		h("Impuesto", 2, align.Right),
		h("Total", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableLineRows: una fila por línea reembolsada.
func tableLineRows(lines []entity.LineItem, f formatter) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		rate := "—"
		if l.TaxRate != nil {
			rate = *l.TaxRate
		}
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(l.Label, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(f.amount(l.NetAmount()), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(rate, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(f.amount(l.TaxAmount), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(f.amount(l.Amount), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// totalsRow: desglose de impuestos (izq) y totales (der).
func totalsRow(memo *entity.CreditMemo, f formatter) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}

	taxCol := col.New(6).Add(text.New("IMPUESTOS", props.Text{
		Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
	}))
	top := 6.0
	for _, t := range memo.TaxItems {
		taxCol.Add(text.New(fmt.Sprintf("%s: %s", t.Label, f.amount(t.Amount)), props.Text{
			Size: 8, Top: top, Color: colorGray,
		}))
		top += 4.5
	}

	return row.New(26).Add(
		taxCol,
		col.New(3).Add(
			label("Subtotal:", 1),
			label("Impuestos:", 7),
			text.New("TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 2, Top: 13,
			}),
		),
		col.New(3).Add(
			value(f.amount(memo.Subtotal()), 1),
			value(f.amount(memo.TaxTotal()), 7),
			text.New(f.amount(memo.Total), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 1, Top: 13,
			}),
		),
	)
}

// footerRows: pedido de referencia y comentario.
func footerRows(memo *entity.CreditMemo) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("Pedido de referencia: #"+memo.OrderNumber, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	if memo.Comment != "" {
		rows = append(rows, row.New(12).Add(col.New(12).Add(
			text.New(memo.Comment, props.Text{Size: 8, Color: colorGray, Top: 1}),
		)))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
