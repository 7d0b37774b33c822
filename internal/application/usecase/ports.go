// Package usecase implementa las acciones del painel sobre las colecciones del workspace.
// Toda mutación pasa por store.Collection: primero el gateway, después el estado local.
package usecase

import (
	"context"
	"io"
	"time"

	"github.com/jhoicas/atelier-api/internal/domain/entity"
)

// ReceiptRenderer genera el recibo PDF de una nota fiscal.
type ReceiptRenderer interface {
	InvoiceReceipt(ctx context.Context, r InvoiceReceipt) ([]byte, error)
}

// InvoiceReceipt datos del recibo. Order y Customer son opcionales (la referencia a la OS es texto libre).
type InvoiceReceipt struct {
	Invoice      entity.Invoice
	Order        *entity.Order
	Customer     *entity.Customer
	BusinessName string
	ContactPhone string
	IssuedAt     time.Time
}

// SheetWriter escribe una planilla de una hoja.
type SheetWriter interface {
	WriteSheet(name string, header []string, rows [][]any) ([]byte, error)
}

// Attachment archivo recibido en un formulario.
type Attachment struct {
	FileName string
	Content  io.Reader
}

// Clock permite fijar la hora en tests.
type Clock func() time.Time
