// Package pdf implementa la exportación del reporte de balances a PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Ubicación | Balance                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIE: total de filas con balance distinto de cero           │
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

	"github.com/jhoicas/almacen-api/internal/application/dto"
	appledger "github.com/jhoicas/almacen-api/internal/application/ledger"
)

var _ appledger.BalancePDFGenerator = (*MarotoBalanceReport)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorRed     = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoBalanceReport implementa ledger.BalancePDFGenerator usando Maroto v2.
type MarotoBalanceReport struct{}

// NewMarotoBalanceReport construye el generador.
func NewMarotoBalanceReport() *MarotoBalanceReport { return &MarotoBalanceReport{} }

// GenerateBalancePDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoBalanceReport) GenerateBalancePDF(
	_ context.Context,
	rows []dto.BalanceRow,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Balances de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(rows)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de generación (der).
func headerRow(generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Balances de Inventario", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Neto por producto y ubicación (ceros suprimidos)", props.Text{
				Size: 8, Top: 8, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Top: 3, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	style := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorWhite, Top: 1.5}
	return row.New(7).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		col.New(5).Add(text.New("Producto", style)),
		col.New(5).Add(text.New("Ubicación", style)),
		col.New(2).Add(text.New("Balance", props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorWhite, Top: 1.5, Align: align.Right,
		})),
	)
}

func tableDetailRows(rows []dto.BalanceRow) []core.Row {
	out := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		qtyColor := colorGray
		if r.Qty < 0 {
			qtyColor = colorRed
		}
		out = append(out, row.New(6).Add(
			col.New(5).Add(
				text.New(fmt.Sprintf("%s — %s", r.Product.ProductID, r.Product.Name), props.Text{Size: 8, Top: 1}),
			),
			col.New(5).Add(
				text.New(fmt.Sprintf("%s — %s", r.Location.LocationID, r.Location.Name), props.Text{Size: 8, Top: 1}),
			),
			col.New(2).Add(
				text.New(fmt.Sprintf("%d", r.Qty), props.Text{Size: 8, Top: 1, Align: align.Right, Color: qtyColor}),
			),
		))
	}
	return out
}

func footerRow(total int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("%d balances distintos de cero", total), props.Text{
				Size: 8, Top: 2, Color: colorGray,
			}),
		),
	)
}
