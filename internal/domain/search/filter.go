// Package search compone los filtros de cada sección del painel: búsqueda de texto
// sin distinción de mayúsculas más una faceta opcional de estado o tipo.
package search

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/atelier-api/internal/domain/entity"
)

// All valor centinela de la faceta que desactiva el filtro.
const All = "Todos"

// Query texto libre + faceta. Facet vacío equivale a All.
type Query struct {
	Text  string
	Facet string
}

func (q Query) facetActive() bool {
	return q.Facet != "" && q.Facet != All
}

// Apply devuelve un slice nuevo con los ítems que cumplen texto Y faceta.
// fields devuelve los campos donde se busca el texto; facet puede ser nil si la
// sección no tiene faceta. La colección de origen nunca se modifica.
func Apply[T any](items []T, q Query, fields func(T) []string, facet func(T) string) []T {
	folder := cases.Fold()
	needle := folder.String(q.Text)

	out := make([]T, 0, len(items))
	for _, it := range items {
		if facet != nil && q.facetActive() && facet(it) != q.Facet {
			continue
		}
		if needle != "" && !anyContains(folder, fields(it), needle) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func anyContains(folder cases.Caser, fields []string, needle string) bool {
	for _, f := range fields {
		if strings.Contains(folder.String(f), needle) {
			return true
		}
	}
	return false
}

// Orders busca en id, cliente y serviço; faceta por status.
func Orders(items []entity.Order, q Query) []entity.Order {
	return Apply(items, q,
		func(o entity.Order) []string { return []string{o.ID, o.CustomerName, o.Service} },
		func(o entity.Order) string { return string(o.Status) },
	)
}

// Customers busca en nome, email y telefone; sin faceta.
func Customers(items []entity.Customer, q Query) []entity.Customer {
	return Apply(items, q,
		func(c entity.Customer) []string { return []string{c.Name, c.Email, c.Phone} },
		nil,
	)
}

// Invoices busca en número fiscal, OS de referencia y cliente; faceta por status.
func Invoices(items []entity.Invoice, q Query) []entity.Invoice {
	return Apply(items, q,
		func(i entity.Invoice) []string { return []string{i.ID, i.OrderID, i.CustomerName} },
		func(i entity.Invoice) string { return string(i.Status) },
	)
}

// Transactions busca en descrição y método; faceta por tipo (Entrada/Saída).
func Transactions(items []entity.Transaction, q Query) []entity.Transaction {
	return Apply(items, q,
		func(t entity.Transaction) []string { return []string{t.Description, t.Method} },
		func(t entity.Transaction) string { return string(t.Type) },
	)
}

// Inventory busca en nome, SKU y categoria; faceta por tipo (Serviço/Boutique).
func Inventory(items []entity.InventoryItem, q Query) []entity.InventoryItem {
	return Apply(items, q,
		func(i entity.InventoryItem) []string { return []string{i.Name, i.SKU, i.Category} },
		func(i entity.InventoryItem) string { return string(i.Type) },
	)
}

// Catalog busca en nome, subcategoria y descrição; faceta por categoria principal.
func Catalog(items []entity.CatalogProduct, q Query) []entity.CatalogProduct {
	return Apply(items, q,
		func(p entity.CatalogProduct) []string { return []string{p.Name, p.SubCategory, p.Description} },
		func(p entity.CatalogProduct) string { return p.MainCategory },
	)
}
