// Package crossref asocia órdenes con el cadastro de clientes.
package crossref

import (
	"golang.org/x/text/cases"

	"github.com/jhoicas/atelier-api/internal/domain/entity"
)

// Resolver índice de solo lectura sobre un snapshot de clientes.
// Se reconstruye cada vez que cambia la colección; no se actualiza incrementalmente.
type Resolver struct {
	customers []entity.Customer
	byID      map[string]int
}

// NewResolver indexa los clientes por ID.
func NewResolver(customers []entity.Customer) *Resolver {
	byID := make(map[string]int, len(customers))
	for i, c := range customers {
		byID[c.ID] = i
	}
	return &Resolver{customers: customers, byID: byID}
}

// ByID busca por identificador.
func (r *Resolver) ByID(id string) (entity.Customer, bool) {
	i, ok := r.byID[id]
	if !ok {
		return entity.Customer{}, false
	}
	return r.customers[i], true
}

// ForOrder devuelve el cliente de la orden: primero por CustomerID y, para órdenes
// legadas sin ID, por igualdad exacta del nombre (sensible a mayúsculas).
func (r *Resolver) ForOrder(o entity.Order) (entity.Customer, bool) {
	if o.CustomerID != "" {
		if c, ok := r.ByID(o.CustomerID); ok {
			return c, true
		}
	}
	return r.ByExactName(o.CustomerName)
}

// ByExactName recorre los clientes buscando el nombre idéntico.
func (r *Resolver) ByExactName(name string) (entity.Customer, bool) {
	for _, c := range r.customers {
		if c.Name == name {
			return c, true
		}
	}
	return entity.Customer{}, false
}

// ByNameFold compara nombres sin distinguir mayúsculas; lo usa el registro de órdenes
// para no duplicar clientes.
func (r *Resolver) ByNameFold(name string) (entity.Customer, bool) {
	folder := cases.Fold()
	want := folder.String(name)
	for _, c := range r.customers {
		if folder.String(c.Name) == want {
			return c, true
		}
	}
	return entity.Customer{}, false
}
