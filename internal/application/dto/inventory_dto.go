package dto

import "github.com/shopspring/decimal"

// CreateInventoryItemRequest formulario "Novo Insumo".
type CreateInventoryItemRequest struct {
	Name     string          `json:"name"`
	SKU      string          `json:"sku"`
	Stock    int             `json:"stock"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
	Type     string          `json:"type"` // Serviço | Boutique
}

// AdjustStockRequest suma delta al estoque (negativo para descontar).
type AdjustStockRequest struct {
	Delta int `json:"delta"`
}

// InventoryItemResponse ítem del estoque; PriceLabel ya formateado en R$.
type InventoryItemResponse struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	SKU        string          `json:"sku"`
	Stock      int             `json:"stock"`
	Price      decimal.Decimal `json:"price"`
	PriceLabel string          `json:"price_label"`
	Category   string          `json:"category"`
	Type       string          `json:"type"`
	Level      string          `json:"level"` // ok | low | out
}

// InventorySummaryResponse conteo por nivel de estoque.
type InventorySummaryResponse struct {
	InStock    int `json:"in_stock"`
	LowStock   int `json:"low_stock"`
	OutOfStock int `json:"out_of_stock"`
}
