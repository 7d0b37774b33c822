package postgres

import (
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/repository"
)

var _ repository.InvoiceTable = (*Table[string, entity.Invoice])(nil)

// NewInvoiceTable tabla invoices. El número fiscal es la clave primaria.
func NewInvoiceTable(q Querier) *Table[string, entity.Invoice] {
	return newTable(q, tableDef[string, entity.Invoice]{
		name:    "invoices",
		key:     "id",
		columns: []string{"id", "order_id", "customer_name", "date", "value", "status", "file_name", "file_url"},
		orderBy: "date DESC, id",
		scan: func(s scanner) (entity.Invoice, error) {
			var i entity.Invoice
			err := s.Scan(&i.ID, &i.OrderID, &i.CustomerName, &i.Date, &i.Value, &i.Status, &i.FileName, &i.FileURL)
			return i, err
		},
		values: func(i entity.Invoice) map[string]any {
			return map[string]any{
				"order_id":      i.OrderID,
				"customer_name": i.CustomerName,
				"date":          i.Date,
				"value":         i.Value,
				"status":        string(i.Status),
				"file_name":     i.FileName,
				"file_url":      i.FileURL,
			}
		},
	})
}
