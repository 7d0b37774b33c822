package postgres

import (
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/repository"
)

var _ repository.CustomerTable = (*Table[string, entity.Customer])(nil)

// NewCustomerTable tabla customers.
func NewCustomerTable(q Querier) *Table[string, entity.Customer] {
	return newTable(q, tableDef[string, entity.Customer]{
		name:    "customers",
		key:     "id",
		columns: []string{"id", "name", "email", "phone", "visits", "loyalty", "created_at"},
		orderBy: "created_at DESC",
		scan: func(s scanner) (entity.Customer, error) {
			var c entity.Customer
			err := s.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Visits, &c.Loyalty, &c.CreatedAt)
			return c, err
		},
		values: func(c entity.Customer) map[string]any {
			return map[string]any{
				"name":       c.Name,
				"email":      c.Email,
				"phone":      c.Phone,
				"visits":     c.Visits,
				"loyalty":    c.Loyalty,
				"created_at": createdAt(c.CreatedAt),
			}
		},
	})
}
