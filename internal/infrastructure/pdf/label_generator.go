// Package pdf genera hojas de etiquetas Code128 para el piso de bodega.
//
// Layout A4: una fila por producto, con el código de barras a la izquierda
// y marca / presentación / MRP a la derecha.
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/warehouse-picking-api/internal/domain/entity"
)

var colorGray = &props.Color{Red: 100, Green: 100, Blue: 100}

// LabelGenerator genera la hoja de etiquetas con Maroto v2.
type LabelGenerator struct{}

// NewLabelGenerator construye el generador.
func NewLabelGenerator() *LabelGenerator { return &LabelGenerator{} }

// GenerateLabelSheet genera el PDF y devuelve sus bytes.
func (g *LabelGenerator) GenerateLabelSheet(products []*entity.Product) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Etiquetas de bodega", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(len(products)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, p := range products {
		m.AddRows(labelRow(p))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(total int) core.Row {
	return row.New(10).Add(
		col.New(8).Add(
			text.New("Etiquetas de productos", props.Text{
				Style: fontstyle.Bold, Size: 12, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("%d etiquetas", total), props.Text{
				Size: 9, Top: 2, Color: colorGray,
			}),
		),
	)
}

// labelRow una etiqueta: Code128 del barcode + descripción + MRP.
func labelRow(p *entity.Product) core.Row {
	value := p.Barcode
	if value == "" {
		value = p.UPC
	}
	return row.New(24).Add(
		col.New(5).Add(
			code.NewBar(value, props.Barcode{Percent: 85, Center: true, Top: 2}),
		),
		col.New(4).Add(
			text.New(p.Brand, props.Text{Style: fontstyle.Bold, Size: 10, Top: 4}),
			text.New(p.BrandForm, props.Text{Size: 8, Top: 10, Color: colorGray}),
			text.New(p.BarcodeMRP, props.Text{Size: 7, Top: 15, Color: colorGray}),
		),
		col.New(3).Add(
			text.New("MRP "+p.MRP.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 8,
			}),
		),
	)
}
