package entity

import "github.com/shopspring/decimal"

// InvoiceStatus estado de una nota fiscal.
type InvoiceStatus string

// Estados de nota fiscal.
const (
	InvoiceEmitida   InvoiceStatus = "Emitida"
	InvoiceCancelada InvoiceStatus = "Cancelada"
	InvoicePendente  InvoiceStatus = "Pendente"
)

// Valid indica si el estado es conocido.
func (s InvoiceStatus) Valid() bool {
	return s == InvoiceEmitida || s == InvoiceCancelada || s == InvoicePendente
}

// InvoiceBucket bucket donde se guardan los archivos adjuntos de las notas.
const InvoiceBucket = "tax-invoices"

// Invoice nota fiscal. ID es el número fiscal informado por el usuario;
// OrderID es una referencia libre a la ordem de serviço (no se valida).
type Invoice struct {
	ID           string
	OrderID      string
	CustomerName string
	Date         string // YYYY-MM-DD
	Value        decimal.Decimal
	Status       InvoiceStatus
	FileName     string
	FileURL      string
}

// Key implementa Keyed.
func (i Invoice) Key() string { return i.ID }

// HasAttachment indica si la nota tiene archivo adjunto.
func (i Invoice) HasAttachment() bool { return i.FileURL != "" }
