// Package pdf genera el recibo en PDF de una nota fiscal.
//
// Layout de la página A4:
//
//	┌──────────────────────────────────────────────┐
//	│  HEADER: Atelier + contacto │ N° Nota + Data  │
//	│  CLIENTE: nome / email / telefone             │
//	│  SERVIÇO: ordem, serviço, prazo, status       │
//	│  TOTAL                                        │
//	│  FOOTER: QR del archivo adjunto + leyenda     │
//	└──────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
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

	"github.com/jhoicas/atelier-api/internal/application/usecase"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/pkg/money"
)

var (
	colorPrimary = &props.Color{Red: 92, Green: 64, Blue: 51}
	colorGray    = &props.Color{Red: 110, Green: 110, Blue: 110}
)

var _ usecase.ReceiptRenderer = (*ReceiptGenerator)(nil)

// ReceiptGenerator implementa usecase.ReceiptRenderer con Maroto v2.
type ReceiptGenerator struct{}

// NewReceiptGenerator construye el generador.
func NewReceiptGenerator() *ReceiptGenerator { return &ReceiptGenerator{} }

// InvoiceReceipt genera el PDF y devuelve sus bytes.
func (g *ReceiptGenerator) InvoiceReceipt(_ context.Context, r usecase.InvoiceReceipt) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Nota Fiscal "+r.Invoice.ID, true).
		WithAuthor(r.BusinessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(r))
	if r.Order != nil {
		m.AddRows(orderRow(*r.Order))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(r.Invoice))
	m.AddRows(line.NewRow(3))
	m.AddRows(footerRows(r.Invoice, r.IssuedAt)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(r usecase.InvoiceReceipt) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New(r.BusinessName, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("Contato: "+nonEmpty(r.ContactPhone, "-"), props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("NOTA FISCAL", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1}),
			text.New("N° "+r.Invoice.ID, props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7}),
			text.New("Data: "+displayDate(r.Invoice.Date), props.Text{Size: 8, Align: align.Right, Top: 14, Color: colorGray}),
		),
	)
}

func customerRow(r usecase.InvoiceReceipt) core.Row {
	email, phone := "-", "-"
	if r.Customer != nil {
		email = nonEmpty(r.Customer.Email, "-")
		phone = nonEmpty(r.Customer.Phone, "-")
	}
	return row.New(16).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(r.Invoice.CustomerName, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(fmt.Sprintf("Email: %s   |   Tel: %s", email, phone), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func orderRow(o entity.Order) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("SERVIÇO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(fmt.Sprintf("%s  ·  %s", o.ID, o.Service), props.Text{Size: 9, Top: 6}),
			text.New(fmt.Sprintf("Prazo: %s   |   Status: %s", displayDate(o.Deadline), o.Status), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func totalRow(inv entity.Invoice) core.Row {
	return row.New(12).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL:", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 3})),
		col.New(3).Add(text.New(money.FormatBRL(inv.Value), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 3})),
	)
}

func footerRows(inv entity.Invoice, issuedAt time.Time) []core.Row {
	legend := fmt.Sprintf("Status da nota: %s. Recibo gerado em %s.", inv.Status, issuedAt.Format("02/01/2006 15:04"))
	if !inv.HasAttachment() {
		return []core.Row{row.New(10).Add(col.New(12).Add(
			text.New(legend, props.Text{Size: 7, Color: colorGray, Top: 2}),
		))}
	}
	return []core.Row{row.New(40).Add(
		col.New(3).Add(code.NewQr(inv.FileURL, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("Escaneie o QR para baixar o arquivo da nota:", props.Text{Size: 8, Top: 4, Left: 3, Color: colorGray}),
			text.New(nonEmpty(inv.FileName, inv.FileURL), props.Text{Style: fontstyle.Bold, Size: 9, Top: 10, Left: 3}),
			text.New(legend, props.Text{Size: 7, Top: 20, Left: 3, Color: colorGray}),
		),
	)}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// displayDate convierte YYYY-MM-DD en DD/MM/YYYY; deja el texto tal cual si no parsea.
func displayDate(s string) string {
	t, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		return s
	}
	return t.Format("02/01/2006")
}
