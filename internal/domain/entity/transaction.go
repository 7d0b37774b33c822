package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType sentido del movimiento financiero.
type TransactionType string

// Tipos de transacción.
const (
	TxEntrada TransactionType = "Entrada"
	TxSaida   TransactionType = "Saída"
)

// Valid indica si el tipo es conocido.
func (t TransactionType) Valid() bool { return t == TxEntrada || t == TxSaida }

// Channel canal económico de una transacción.
type Channel string

// Canales de ingreso.
const (
	ChannelServico  Channel = "Serviço"
	ChannelBoutique Channel = "Boutique"
)

// Valid indica si el canal es conocido.
func (c Channel) Valid() bool { return c == ChannelServico || c == ChannelBoutique }

// TxStatusConcluido estado con el que se registran las transacciones manuales.
const TxStatusConcluido = "Concluído"

// Transaction movimiento del fluxo financeiro.
type Transaction struct {
	ID          int64
	Type        TransactionType
	Description string
	Value       decimal.Decimal
	Method      string
	OccurredAt  time.Time
	Status      string
	Channel     Channel
}

// Key implementa Keyed.
func (t Transaction) Key() int64 { return t.ID }
