package crossref_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/atelier-api/internal/domain/crossref"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
)

func customers() []entity.Customer {
	return []entity.Customer{
		{ID: "C1", Name: "Ana Souza", Email: "ana@mail.com"},
		{ID: "C2", Name: "Beto Lima", Email: "beto@mail.com"},
	}
}

func TestForOrder_PorID(t *testing.T) {
	r := crossref.NewResolver(customers())
	c, ok := r.ForOrder(entity.Order{CustomerID: "C2", CustomerName: "otro nombre"})
	assert.True(t, ok)
	assert.Equal(t, "beto@mail.com", c.Email)
}

func TestForOrder_FallbackNombreExacto(t *testing.T) {
	r := crossref.NewResolver(customers())
	c, ok := r.ForOrder(entity.Order{CustomerName: "Ana Souza"})
	assert.True(t, ok)
	assert.Equal(t, "C1", c.ID)
}

func TestForOrder_NombreDistintaCapitalizacionNoResuelve(t *testing.T) {
	r := crossref.NewResolver(customers())
	_, ok := r.ForOrder(entity.Order{CustomerName: "ana souza"})
	assert.False(t, ok)
}

func TestForOrder_IDInexistenteUsaNombre(t *testing.T) {
	r := crossref.NewResolver(customers())
	c, ok := r.ForOrder(entity.Order{CustomerID: "C99", CustomerName: "Beto Lima"})
	assert.True(t, ok)
	assert.Equal(t, "C2", c.ID)
}

func TestByNameFold(t *testing.T) {
	r := crossref.NewResolver(customers())
	c, ok := r.ByNameFold("BETO LIMA")
	assert.True(t, ok)
	assert.Equal(t, "C2", c.ID)

	_, ok = r.ByNameFold("Caio")
	assert.False(t, ok)
}
