package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/atelier-api/internal/application/usecase"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
)

func TestInvoiceReceipt_GeneraPDF(t *testing.T) {
	g := NewReceiptGenerator()
	order := entity.Order{ID: "#ORD-1001", Service: "Troca de sola", Deadline: "2024-03-15", Status: entity.OrderPronto}

	out, err := g.InvoiceReceipt(context.Background(), usecase.InvoiceReceipt{
		Invoice: entity.Invoice{
			ID: "NF-123", CustomerName: "Ana", Date: "2024-03-10",
			Value: decimal.NewFromInt(250), Status: entity.InvoiceEmitida,
			FileURL: "http://localhost/files/tax-invoices/nf.pdf", FileName: "nf.pdf",
		},
		Order:        &order,
		Customer:     &entity.Customer{Name: "Ana", Email: "ana@x.com"},
		BusinessName: "Atelier",
		IssuedAt:     time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestDisplayDate(t *testing.T) {
	assert.Equal(t, "15/03/2024", displayDate("2024-03-15"))
	assert.Equal(t, "amanhã", displayDate("amanhã"))
}
