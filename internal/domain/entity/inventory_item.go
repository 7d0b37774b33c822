package entity

import "github.com/shopspring/decimal"

// ItemType separa insumos de bancada de los artículos vendidos en la boutique.
type ItemType string

// Tipos de ítem de estoque.
const (
	ItemServico  ItemType = "Serviço"
	ItemBoutique ItemType = "Boutique"
)

// Valid indica si el tipo es conocido.
func (t ItemType) Valid() bool { return t == ItemServico || t == ItemBoutique }

// LowStockThreshold a partir de este valor (inclusive) un ítem con estoque se considera bajo.
const LowStockThreshold = 10

// InventoryItem insumo o artículo del estoque.
type InventoryItem struct {
	ID        int64
	Name      string
	SKU       string
	Stock     int
	UnitPrice decimal.Decimal
	Category  string
	Type      ItemType
}

// Key implementa Keyed.
func (i InventoryItem) Key() int64 { return i.ID }

// StockLevel clasifica el estoque: "out", "low" o "ok".
func (i InventoryItem) StockLevel() string {
	switch {
	case i.Stock <= 0:
		return "out"
	case i.Stock <= LowStockThreshold:
		return "low"
	default:
		return "ok"
	}
}
