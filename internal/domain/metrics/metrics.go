// Package metrics calcula los indicadores derivados del painel a partir de snapshots
// de las colecciones. Todas las funciones son puras y deterministas.
package metrics

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/atelier-api/internal/domain/entity"
)

// Dashboard indicadores de las tarjetas del painel geral.
type Dashboard struct {
	TotalRevenue  decimal.Decimal
	ActiveOrders  int
	UrgentOrders  int
	CustomerCount int
	BoutiqueSales decimal.Decimal
}

// ComputeDashboard calcula todos los indicadores del painel.
func ComputeDashboard(orders []entity.Order, customers []entity.Customer, txs []entity.Transaction) Dashboard {
	return Dashboard{
		TotalRevenue:  TotalRevenue(txs),
		ActiveOrders:  ActiveOrders(orders),
		UrgentOrders:  UrgentOrders(orders),
		CustomerCount: len(customers),
		BoutiqueSales: BoutiqueSales(txs),
	}
}

// TotalRevenue suma de los valores de las transacciones de Entrada.
func TotalRevenue(txs []entity.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txs {
		if t.Type == entity.TxEntrada {
			total = total.Add(t.Value)
		}
	}
	return total
}

// ActiveOrders órdenes que no están Pronto ni Entregue.
func ActiveOrders(orders []entity.Order) int {
	n := 0
	for _, o := range orders {
		if !o.Status.Finished() {
			n++
		}
	}
	return n
}

// UrgentOrders órdenes Pendente o Em Restauração. No considera el prazo.
func UrgentOrders(orders []entity.Order) int {
	n := 0
	for _, o := range orders {
		if o.Status.Urgent() {
			n++
		}
	}
	return n
}

// BoutiqueSales suma de las Entradas del canal Boutique.
func BoutiqueSales(txs []entity.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txs {
		if t.Type == entity.TxEntrada && t.Channel == entity.ChannelBoutique {
			total = total.Add(t.Value)
		}
	}
	return total
}

// ClassifyChannel deduce el canal a partir de la descripción para transacciones
// que llegan sin canal (registros legados). Solo se usa al crear o cargar.
func ClassifyChannel(description string) entity.Channel {
	d := strings.ToLower(description)
	if strings.Contains(d, "venda") || strings.Contains(d, "boutique") {
		return entity.ChannelBoutique
	}
	return entity.ChannelServico
}

// Finance totales del fluxo financeiro.
type Finance struct {
	TotalIn  decimal.Decimal
	TotalOut decimal.Decimal
	Balance  decimal.Decimal
}

// ComputeFinance totales de entradas, saídas y saldo.
func ComputeFinance(txs []entity.Transaction) Finance {
	in, out := decimal.Zero, decimal.Zero
	for _, t := range txs {
		switch t.Type {
		case entity.TxEntrada:
			in = in.Add(t.Value)
		case entity.TxSaida:
			out = out.Add(t.Value)
		}
	}
	return Finance{TotalIn: in, TotalOut: out, Balance: in.Sub(out)}
}

// Inventory resumen del estoque por nivel.
type Inventory struct {
	InStock    int
	LowStock   int
	OutOfStock int
}

// ComputeInventory cuenta ítems con estoque > 10, entre 1 y 10, y en cero.
func ComputeInventory(items []entity.InventoryItem) Inventory {
	var s Inventory
	for _, i := range items {
		switch i.StockLevel() {
		case "out":
			s.OutOfStock++
		case "low":
			s.LowStock++
		default:
			s.InStock++
		}
	}
	return s
}
