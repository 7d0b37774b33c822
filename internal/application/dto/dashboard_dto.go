package dto

import "github.com/shopspring/decimal"

// DashboardResponse tarjetas del "Painel geral".
type DashboardResponse struct {
	TotalRevenue       decimal.Decimal          `json:"total_revenue"`
	TotalRevenueLabel  string                   `json:"total_revenue_label"`
	ActiveOrders       int                      `json:"active_orders"`
	UrgentOrders       int                      `json:"urgent_orders"`
	CustomerCount      int                      `json:"customer_count"`
	BoutiqueSales      decimal.Decimal          `json:"boutique_sales"`
	BoutiqueSalesLabel string                   `json:"boutique_sales_label"`
	Inventory          InventorySummaryResponse `json:"inventory"`
	Finance            FinanceSummaryResponse   `json:"finance"`
}
