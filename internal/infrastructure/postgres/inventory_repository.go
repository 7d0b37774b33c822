package postgres

import (
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/repository"
)

var _ repository.InventoryTable = (*Table[int64, entity.InventoryItem])(nil)

// NewInventoryTable tabla inventory; el ID es BIGSERIAL.
func NewInventoryTable(q Querier) *Table[int64, entity.InventoryItem] {
	return newTable(q, tableDef[int64, entity.InventoryItem]{
		name:    "inventory",
		key:     "id",
		columns: []string{"id", "name", "sku", "stock", "unit_price", "category", "type"},
		orderBy: "id",
		serial:  true,
		scan: func(s scanner) (entity.InventoryItem, error) {
			var i entity.InventoryItem
			err := s.Scan(&i.ID, &i.Name, &i.SKU, &i.Stock, &i.UnitPrice, &i.Category, &i.Type)
			return i, err
		},
		values: func(i entity.InventoryItem) map[string]any {
			return map[string]any{
				"name":       i.Name,
				"sku":        i.SKU,
				"stock":      i.Stock,
				"unit_price": i.UnitPrice,
				"category":   i.Category,
				"type":       string(i.Type),
			}
		},
	})
}
