package dto

import "github.com/shopspring/decimal"

// CreateInvoiceRequest formulario "Nova Nota Fiscal".
type CreateInvoiceRequest struct {
	ID       string          `json:"id" form:"nf_id"`
	OrderID  string          `json:"order_id" form:"os_ref"`
	Customer string          `json:"customer" form:"customer"`
	Date     string          `json:"date" form:"date"`
	Value    decimal.Decimal `json:"value" form:"value"`
	Status   string          `json:"status" form:"status"`
}

// UpdateInvoiceRequest edición de una nota; ID permite renumerarla.
type UpdateInvoiceRequest struct {
	ID       *string          `json:"id,omitempty"`
	OrderID  *string          `json:"order_id,omitempty"`
	Customer *string          `json:"customer,omitempty"`
	Date     *string          `json:"date,omitempty"`
	Value    *decimal.Decimal `json:"value,omitempty"`
	Status   *string          `json:"status,omitempty"`
}

// InvoiceResponse nota fiscal en respuestas.
type InvoiceResponse struct {
	ID         string          `json:"id"`
	OrderID    string          `json:"order_id"`
	Customer   string          `json:"customer"`
	Date       string          `json:"date"`
	Value      decimal.Decimal `json:"value"`
	ValueLabel string          `json:"value_label"`
	Status     string          `json:"status"`
	FileName   string          `json:"file_name,omitempty"`
	FileURL    string          `json:"file_url,omitempty"`
}
