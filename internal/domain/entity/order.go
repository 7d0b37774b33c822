package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado de una ordem de serviço.
type OrderStatus string

// Estados válidos de una ordem de serviço.
const (
	OrderPendente      OrderStatus = "Pendente"
	OrderEmRestauracao OrderStatus = "Em Restauração"
	OrderPronto        OrderStatus = "Pronto"
	OrderEntregue      OrderStatus = "Entregue"
)

// DateLayout formato de las fechas de prazo y emisión (local, sin zona horaria).
const DateLayout = "2006-01-02"

// Valid indica si el estado es uno de los cuatro conocidos.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPendente, OrderEmRestauracao, OrderPronto, OrderEntregue:
		return true
	}
	return false
}

// Finished es true para Pronto y Entregue (la orden ya no ocupa la bancada).
func (s OrderStatus) Finished() bool {
	return s == OrderPronto || s == OrderEntregue
}

// Urgent heurística del painel: todo lo que aún está en la bancada.
func (s OrderStatus) Urgent() bool {
	return s == OrderPendente || s == OrderEmRestauracao
}

// Order ordem de serviço de restauração.
// CustomerID es la relación real; CustomerName se conserva para exhibición y datos legados.
type Order struct {
	ID           string // #ORD-1234
	CustomerID   string
	CustomerName string
	Service      string
	Status       OrderStatus
	Deadline     string // YYYY-MM-DD
	Value        decimal.Decimal
	CreatedAt    time.Time
}

// Key implementa Keyed.
func (o Order) Key() string { return o.ID }
