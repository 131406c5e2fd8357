// Package pdf genera el ticket de venta en PDF para impresoras térmicas de 80 mm.
//
// Layout (de arriba a abajo):
//
//	┌──────────────────────────┐
//	│  NOMBRE DEL LOCAL        │
//	│  TICKET DE VENTA         │
//	│  ID / Fecha / Cliente    │
//	│  Mesa                    │
//	│  ──────────────────────  │
//	│  Item      Cant   Total  │
//	│  ...       >> nota       │
//	│  ──────────────────────  │
//	│  TOTAL            $xx    │
//	│  Metodo Pago: ...        │
//	│  ¡GRACIAS POR SU COMPRA! │
//	└──────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/comanda-eventos/internal/application/ports"
	"github.com/jhoicas/comanda-eventos/internal/domain/entity"
)

const (
	pageWidth     = 80.0 // mm
	baseHeight    = 150.0
	heightPerItem = 7.0
	heightPerNote = 4.0

	maxNameLen   = 25
	truncatedLen = 22

	dateLayout = "02/01/2006 15:04"
)

var colorGray = &props.Color{Red: 90, Green: 90, Blue: 90}

var _ ports.TicketPDFGenerator = (*TicketGenerator)(nil)

// TicketGenerator implementa ports.TicketPDFGenerator usando Maroto v2.
type TicketGenerator struct{}

// NewTicketGenerator construye el generador.
func NewTicketGenerator() *TicketGenerator { return &TicketGenerator{} }

// GenerateTicketPDF genera el ticket y devuelve sus bytes. El alto de la página
// crece con la cantidad de ítems y de notas.
func (g *TicketGenerator) GenerateTicketPDF(_ context.Context, order *entity.Order, restaurantName string) ([]byte, error) {
	if order == nil {
		return nil, fmt.Errorf("pdf: orden nil")
	}
	cfg := config.NewBuilder().
		WithDimensions(pageWidth, PageHeight(order)).
		WithLeftMargin(5).WithRightMargin(5).
		WithTopMargin(5).WithBottomMargin(5).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Ticket "+shortID(order.ID), true).
		WithAuthor(restaurantName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRows(order, restaurantName)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.2}))
	m.AddRows(itemHeaderRow())
	m.AddRows(itemRows(order.Items)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.2}))
	m.AddRows(footerRows(order)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar ticket: %w", err)
	}
	return doc.GetBytes(), nil
}

// PageHeight alto en mm: base + 7 por ítem + 4 por ítem con nota.
func PageHeight(order *entity.Order) float64 {
	h := baseHeight + heightPerItem*float64(len(order.Items))
	for _, it := range order.Items {
		if it.Note != "" {
			h += heightPerNote
		}
	}
	return h
}

// TruncateName recorta nombres de más de 25 caracteres a 22 + "...".
func TruncateName(name string) string {
	r := []rune(name)
	if len(r) <= maxNameLen {
		return name
	}
	return string(r[:truncatedLen]) + "..."
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRows(order *entity.Order, restaurantName string) []core.Row {
	small := props.Text{Size: 8, Top: 1}
	table := order.Table
	if table == "" {
		table = "N/A"
	}
	return []core.Row{
		row.New(8).Add(col.New(12).Add(text.New(restaurantName, props.Text{
			Style: fontstyle.Bold, Size: 12, Align: align.Center, Top: 1,
		}))),
		row.New(6).Add(col.New(12).Add(text.New("TICKET DE VENTA", props.Text{
			Size: 9, Align: align.Center, Top: 1,
		}))),
		row.New(3),
		row.New(5).Add(col.New(12).Add(text.New("ID: "+shortID(order.ID), small))),
		row.New(5).Add(col.New(12).Add(text.New("Fecha: "+order.Date.Format(dateLayout), small))),
		row.New(5).Add(col.New(12).Add(text.New("Cliente: "+order.Client, small))),
		row.New(5).Add(col.New(12).Add(text.New("Mesa: "+table, small))),
	}
}

func itemHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("Item", 7, align.Left),
		h("Cant", 2, align.Center),
		h("Total", 3, align.Right),
	)
}

func itemRows(items []entity.CartItem) []core.Row {
	rows := make([]core.Row, 0, len(items)*2)
	for _, it := range items {
		rows = append(rows, row.New(heightPerItem).Add(
			col.New(7).Add(text.New(TruncateName(it.Name), props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", it.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New("$"+formatMoney(it.Subtotal()), props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
		if it.Note != "" {
			rows = append(rows, row.New(heightPerNote).Add(col.New(12).Add(
				text.New(">> "+it.Note, props.Text{Size: 7, Style: fontstyle.Italic, Color: colorGray, Left: 3}),
			)))
		}
	}
	return rows
}

func footerRows(order *entity.Order) []core.Row {
	return []core.Row{
		row.New(8).Add(
			col.New(6).Add(text.New("TOTAL", props.Text{Style: fontstyle.Bold, Size: 11, Top: 1})),
			col.New(6).Add(text.New("$"+formatMoney(order.Total), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1,
			})),
		),
		row.New(6).Add(col.New(12).Add(text.New("Metodo Pago: "+string(order.Payment), props.Text{Size: 8, Top: 1}))),
		row.New(6),
		row.New(6).Add(col.New(12).Add(text.New("¡GRACIAS POR SU COMPRA!", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Center, Top: 1,
		}))),
	}
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[len(id)-8:]
}
