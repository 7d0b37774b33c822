// Package analytics contiene el resumen del "Painel geral".
package analytics

import (
	"sync"

	"github.com/jhoicas/atelier-api/internal/application/dto"
	"github.com/jhoicas/atelier-api/internal/application/workspace"
	"github.com/jhoicas/atelier-api/internal/domain/metrics"
	"github.com/jhoicas/atelier-api/pkg/money"
)

// versions identifica el estado de las colecciones de las que depende el resumen.
type versions struct {
	orders, customers, transactions, inventory uint64
}

// DashboardUseCase calcula las tarjetas del painel y las memoriza hasta que
// cambie alguna de las colecciones de origen.
type DashboardUseCase struct {
	ws *workspace.Workspace

	mu     sync.Mutex
	key    versions
	cached *dto.DashboardResponse
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(ws *workspace.Workspace) *DashboardUseCase {
	return &DashboardUseCase{ws: ws}
}

// GetSummary devuelve el resumen, recalculado solo si alguna colección cambió.
func (uc *DashboardUseCase) GetSummary() dto.DashboardResponse {
	orders, ov := uc.ws.Orders.SnapshotVersion()
	customers, cv := uc.ws.Customers.SnapshotVersion()
	txs, tv := uc.ws.Transactions.SnapshotVersion()
	items, iv := uc.ws.Inventory.SnapshotVersion()
	key := versions{orders: ov, customers: cv, transactions: tv, inventory: iv}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.cached != nil && uc.key == key {
		return *uc.cached
	}

	d := metrics.ComputeDashboard(orders, customers, txs)
	inv := metrics.ComputeInventory(items)
	fin := metrics.ComputeFinance(txs)
	out := dto.DashboardResponse{
		TotalRevenue:       d.TotalRevenue,
		TotalRevenueLabel:  money.FormatBRL(d.TotalRevenue),
		ActiveOrders:       d.ActiveOrders,
		UrgentOrders:       d.UrgentOrders,
		CustomerCount:      d.CustomerCount,
		BoutiqueSales:      d.BoutiqueSales,
		BoutiqueSalesLabel: money.FormatBRL(d.BoutiqueSales),
		Inventory: dto.InventorySummaryResponse{
			InStock:    inv.InStock,
			LowStock:   inv.LowStock,
			OutOfStock: inv.OutOfStock,
		},
		Finance: dto.FinanceSummaryResponse{
			TotalIn:  fin.TotalIn,
			TotalOut: fin.TotalOut,
			Balance:  fin.Balance,
		},
	}
	uc.key = key
	uc.cached = &out
	return out
}
