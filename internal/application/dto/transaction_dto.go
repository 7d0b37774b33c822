package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest formulario "Nova Transação". Channel vacío = se deduce de la descripción.
type CreateTransactionRequest struct {
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Value       decimal.Decimal `json:"value"`
	Method      string          `json:"method"`
	Channel     string          `json:"channel,omitempty"`
}

// TransactionResponse movimiento financiero; DateLabel "Hoje, 14:05" o "02/03/2024 14:05".
type TransactionResponse struct {
	ID          int64           `json:"id"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Value       decimal.Decimal `json:"value"`
	ValueLabel  string          `json:"value_label"`
	Method      string          `json:"method"`
	OccurredAt  time.Time       `json:"occurred_at"`
	DateLabel   string          `json:"date_label"`
	Status      string          `json:"status"`
	Channel     string          `json:"channel"`
}

// FinanceSummaryResponse totales del fluxo financeiro.
type FinanceSummaryResponse struct {
	TotalIn  decimal.Decimal `json:"total_in"`
	TotalOut decimal.Decimal `json:"total_out"`
	Balance  decimal.Decimal `json:"balance"`
}
