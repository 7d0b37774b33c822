package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterOrderRequest formulario "Novo Registro": ordem + datos del cliente.
type RegisterOrderRequest struct {
	Name     string          `json:"name"`
	Email    string          `json:"email,omitempty"`
	Phone    string          `json:"phone,omitempty"`
	Service  string          `json:"service"`
	Value    decimal.Decimal `json:"value"`
	Deadline string          `json:"deadline,omitempty"` // YYYY-MM-DD; vacío = hoy
}

// UpdateOrderRequest cambios parciales de una ordem. Campos nil no se tocan.
type UpdateOrderRequest struct {
	Status   *string          `json:"status,omitempty"`
	Service  *string          `json:"service,omitempty"`
	Deadline *string          `json:"deadline,omitempty"`
	Value    *decimal.Decimal `json:"value,omitempty"`
}

// OrderResponse ordem de serviço en respuestas.
type OrderResponse struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id,omitempty"`
	Customer   string          `json:"customer"`
	Service    string          `json:"service"`
	Status     string          `json:"status"`
	Deadline   string          `json:"deadline"`
	Value      decimal.Decimal `json:"value"`
	ValueLabel string          `json:"value_label"`
	CreatedAt  time.Time       `json:"created_at"`
}

// RegisterOrderResponse resultado del registro: la ordem y el cliente creado o actualizado.
type RegisterOrderResponse struct {
	Order           OrderResponse    `json:"order"`
	Customer        CustomerResponse `json:"customer"`
	CustomerCreated bool             `json:"customer_created"`
}

// UpdateOrderStatusRequest cambio rápido de status desde la tabla de ordens.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}
