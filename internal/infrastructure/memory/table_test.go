package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/atelier-api/internal/domain"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/infrastructure/memory"
)

func TestTable_AsignaIDNumerico(t *testing.T) {
	gw := memory.NewGateway()
	ctx := context.Background()

	a, err := gw.Inventory.Insert(ctx, entity.InventoryItem{Name: "Cola"})
	require.NoError(t, err)
	b, err := gw.Inventory.Insert(ctx, entity.InventoryItem{Name: "Linha"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)

	require.NoError(t, gw.Inventory.Delete(ctx, a.ID))
	c, err := gw.Inventory.Insert(ctx, entity.InventoryItem{Name: "Tinta"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), c.ID, "un ID liberado no se reutiliza")
}

func TestTable_IDExplicitoYAutomatico(t *testing.T) {
	gw := memory.NewGateway()
	ctx := context.Background()

	_, err := gw.Inventory.Insert(ctx, entity.InventoryItem{ID: 5, Name: "Cola"})
	require.NoError(t, err)
	for want := int64(6); want <= 9; want++ {
		it, err := gw.Inventory.Insert(ctx, entity.InventoryItem{Name: "Linha"})
		require.NoError(t, err)
		assert.Equal(t, want, it.ID)
	}

	_, err = gw.Inventory.Insert(ctx, entity.InventoryItem{ID: 2, Name: "Tinta"})
	require.NoError(t, err)
	next, err := gw.Inventory.Insert(ctx, entity.InventoryItem{Name: "Cera"})
	require.NoError(t, err)
	assert.Equal(t, int64(10), next.ID, "un ID explícito menor no retrocede la secuencia")
}

func TestNewTable_SecuenciaDesdeElMayorID(t *testing.T) {
	ctx := context.Background()
	tbl := memory.NewTable(func(r entity.Transaction, next int64) entity.Transaction {
		if r.ID == 0 {
			r.ID = next
		}
		return r
	}, entity.Transaction{ID: 3}, entity.Transaction{ID: 10})

	tx, err := tbl.Insert(ctx, entity.Transaction{Description: "Venda"})
	require.NoError(t, err)
	assert.Equal(t, int64(11), tx.ID)
}

func TestTable_Duplicado(t *testing.T) {
	gw := memory.NewGateway()
	ctx := context.Background()
	_, err := gw.Invoices.Insert(ctx, entity.Invoice{ID: "NF-1"})
	require.NoError(t, err)

	_, err = gw.Invoices.Insert(ctx, entity.Invoice{ID: "NF-1"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestTable_UpdateYDeleteInexistente(t *testing.T) {
	gw := memory.NewGateway()
	ctx := context.Background()

	_, err := gw.Orders.Update(ctx, "#ORD-1", entity.Order{ID: "#ORD-1"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, gw.Orders.Delete(ctx, "#ORD-1"), domain.ErrNotFound)
}

func TestUserRepo_FindByEmailSinMayusculas(t *testing.T) {
	gw := memory.NewGateway()
	ctx := context.Background()
	require.NoError(t, gw.Users.Create(ctx, &entity.User{ID: "u1", Email: "Mestre@Atelier.com"}))

	u, err := gw.Users.FindByEmail(ctx, "mestre@atelier.com")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "u1", u.ID)
}
