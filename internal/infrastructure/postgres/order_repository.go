package postgres

import (
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/repository"
)

var _ repository.OrderTable = (*Table[string, entity.Order])(nil)

// NewOrderTable tabla orders. Las más recientes primero.
func NewOrderTable(q Querier) *Table[string, entity.Order] {
	return newTable(q, tableDef[string, entity.Order]{
		name:    "orders",
		key:     "id",
		columns: []string{"id", "customer_id", "customer_name", "service", "status", "deadline", "value", "created_at"},
		orderBy: "created_at DESC",
		scan: func(s scanner) (entity.Order, error) {
			var o entity.Order
			err := s.Scan(&o.ID, &o.CustomerID, &o.CustomerName, &o.Service, &o.Status, &o.Deadline, &o.Value, &o.CreatedAt)
			return o, err
		},
		values: func(o entity.Order) map[string]any {
			return map[string]any{
				"customer_id":   o.CustomerID,
				"customer_name": o.CustomerName,
				"service":       o.Service,
				"status":        string(o.Status),
				"deadline":      o.Deadline,
				"value":         o.Value,
				"created_at":    createdAt(o.CreatedAt),
			}
		},
	})
}
