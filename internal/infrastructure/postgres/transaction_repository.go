package postgres

import (
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/repository"
)

var _ repository.TransactionTable = (*Table[int64, entity.Transaction])(nil)

// NewTransactionTable tabla financial_transactions. channel puede venir vacío en filas legadas.
func NewTransactionTable(q Querier) *Table[int64, entity.Transaction] {
	return newTable(q, tableDef[int64, entity.Transaction]{
		name:    "financial_transactions",
		key:     "id",
		columns: []string{"id", "type", "description", "value", "method", "occurred_at", "status", "channel"},
		orderBy: "occurred_at DESC, id DESC",
		serial:  true,
		scan: func(s scanner) (entity.Transaction, error) {
			var t entity.Transaction
			err := s.Scan(&t.ID, &t.Type, &t.Description, &t.Value, &t.Method, &t.OccurredAt, &t.Status, &t.Channel)
			return t, err
		},
		values: func(t entity.Transaction) map[string]any {
			return map[string]any{
				"type":        string(t.Type),
				"description": t.Description,
				"value":       t.Value,
				"method":      t.Method,
				"occurred_at": createdAt(t.OccurredAt),
				"status":      t.Status,
				"channel":     string(t.Channel),
			}
		},
	})
}
