package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/atelier-api/internal/application/dto"
	"github.com/jhoicas/atelier-api/internal/application/usecase"
	"github.com/jhoicas/atelier-api/internal/domain"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/search"
)

func TestInventoryCreate(t *testing.T) {
	f := newFixture(t, nil)
	uc := usecase.NewInventoryUseCase(f.ws)

	item, err := uc.Create(context.Background(), dto.CreateInventoryItemRequest{
		Name: "Cola de Contato", SKU: "INS-001", Stock: 8, Price: decimal.RequireFromString("45.9"), Category: "Adesivos",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), item.ID, "el ID lo asigna el gateway")
	assert.Equal(t, string(entity.ItemServico), item.Type)
	assert.Equal(t, "low", item.Level)
	assert.Equal(t, "R$ 45,90", item.PriceLabel)

	_, err = uc.Create(context.Background(), dto.CreateInventoryItemRequest{Name: "X", Type: "Outro"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Create(context.Background(), dto.CreateInventoryItemRequest{Name: "X", Stock: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInventoryAdjustStock_NoBajaDeCero(t *testing.T) {
	f := newFixture(t, nil)
	uc := usecase.NewInventoryUseCase(f.ws)
	item, err := uc.Create(context.Background(), dto.CreateInventoryItemRequest{Name: "Linha Encerada", Stock: 3})
	require.NoError(t, err)

	got, err := uc.AdjustStock(context.Background(), item.ID, -5)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Stock)
	assert.Equal(t, "out", got.Level)

	got, err = uc.AdjustStock(context.Background(), item.ID, 12)
	require.NoError(t, err)
	assert.Equal(t, 12, got.Stock)

	_, err = uc.AdjustStock(context.Background(), 99, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInventorySummaryYFaceta(t *testing.T) {
	f := newFixture(t, nil)
	uc := usecase.NewInventoryUseCase(f.ws)
	for _, in := range []dto.CreateInventoryItemRequest{
		{Name: "Graxa", Stock: 0},
		{Name: "Cadarço", Stock: 10, Type: string(entity.ItemBoutique)},
		{Name: "Palmilha", Stock: 11, Type: string(entity.ItemBoutique)},
	} {
		_, err := uc.Create(context.Background(), in)
		require.NoError(t, err)
	}

	assert.Equal(t, dto.InventorySummaryResponse{InStock: 1, LowStock: 1, OutOfStock: 1}, uc.Summary())
	assert.Equal(t, 2, uc.List(search.Query{Facet: string(entity.ItemBoutique)}).Count)
	assert.Equal(t, 3, uc.List(search.Query{Facet: search.All}).Count)
}
