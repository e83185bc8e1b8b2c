// Package pdf implementa el comprobante de recepción imprimible que se
// entrega al cliente al dejar su vehículo.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del taller  │  N° Orden + Fecha/Hora        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + teléfonos                                │
//	│  VEHÍCULO: Marca Modelo Año / Color / VIN                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FALLA REPORTADA                                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ESTATUS + código QR con el folio                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

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

	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/application/dto"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/application/orders"
)

// Verificar en tiempo de compilación que TicketGenerator implementa el puerto.
var _ orders.TicketGenerator = (*TicketGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 178, Green: 24, Blue: 43}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// TicketGenerator genera el comprobante de recepción usando Maroto v2.
type TicketGenerator struct {
	shopName string
}

// NewTicketGenerator construye el generador con el nombre del taller.
func NewTicketGenerator(shopName string) *TicketGenerator {
	return &TicketGenerator{shopName: shopName}
}

// GenerateTicket genera el PDF y devuelve sus bytes.
func (g *TicketGenerator) GenerateTicket(_ context.Context, order dto.OrderRow) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Comprobante de recepción", true).
		WithAuthor(g.shopName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(order))
	m.AddRows(vehicleRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(issueRows(order)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(order))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del taller (izq) y folio + fecha/hora (der).
func (g *TicketGenerator) headerRow(order dto.OrderRow) core.Row {
	folio := fmt.Sprintf("ORDEN #%d", order.OrderID)
	fecha := fmt.Sprintf("%s %s", order.Fecha, order.Hora)

	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.shopName, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Comprobante de recepción", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(folio, props.Text{
				Style: fontstyle.Bold, Size: 13, Align: align.Right, Top: 1,
			}),
			text.New(fecha, props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// customerRow: nombre y teléfonos del cliente.
func customerRow(order dto.OrderRow) core.Row {
	tels := order.Telefono1
	if order.Telefono2 != nil && *order.Telefono2 != "" {
		tels += " / " + *order.Telefono2
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1,
			}),
			text.New(order.Cliente, props.Text{Size: 11, Top: 5}),
			text.New("Tel: "+tels, props.Text{Size: 9, Top: 10, Color: colorGray}),
		),
	)
}

// vehicleRow: marca/modelo/año, color y VIN.
func vehicleRow(order dto.OrderRow) core.Row {
	desc := order.Marca + " " + order.Modelo
	if order.Anio != nil {
		desc += " " + strconv.Itoa(*order.Anio)
	}
	color := "—"
	if order.Color != nil && *order.Color != "" {
		color = *order.Color
	}
	vin := "—"
	if order.VIN != nil && *order.VIN != "" {
		vin = *order.VIN
	}
	return row.New(14).Add(
		col.New(6).Add(
			text.New("VEHÍCULO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1,
			}),
			text.New(desc, props.Text{Size: 11, Top: 5}),
			text.New("Color: "+color, props.Text{Size: 9, Top: 10, Color: colorGray}),
		),
		col.New(6).Add(
			text.New("VIN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1, Align: align.Right,
			}),
			text.New(vin, props.Text{Size: 10, Top: 5, Align: align.Right}),
		),
	)
}

// issueRows: falla reportada por el cliente.
func issueRows(order dto.OrderRow) []core.Row {
	return []core.Row{
		row.New(6).Add(
			col.New(12).Add(
				text.New("FALLA REPORTADA", props.Text{
					Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1,
				}),
			),
		),
		row.New(16).Add(
			col.New(12).Add(
				text.New(order.Falla, props.Text{Size: 10, Top: 1}),
			),
		),
	}
}

// footerRow: estatus actual y QR con el folio para consulta rápida.
func footerRow(order dto.OrderRow) core.Row {
	return row.New(24).Add(
		col.New(8).Add(
			text.New("ESTATUS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 2,
			}),
			text.New(order.Estatus, props.Text{
				Style: fontstyle.Bold, Size: 12, Top: 7, Color: colorPrimary,
			}),
			text.New("Presente este comprobante al recoger su vehículo.", props.Text{
				Size: 8, Top: 16, Color: colorGray,
			}),
		),
		col.New(4).Add(
			code.NewQr(fmt.Sprintf("orden:%d", order.OrderID), props.Rect{
				Center: true, Percent: 90,
			}),
		),
	)
}
