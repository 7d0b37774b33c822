package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/atelier-api/internal/application/usecase"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/search"
	"github.com/jhoicas/atelier-api/internal/infrastructure/memory"
)

type sheetCall struct {
	name   string
	header []string
	rows   [][]any
}

type fakeSheets struct{ calls []sheetCall }

func (f *fakeSheets) WriteSheet(name string, header []string, rows [][]any) ([]byte, error) {
	f.calls = append(f.calls, sheetCall{name: name, header: header, rows: rows})
	return []byte("xlsx"), nil
}

func TestExportOrders_RespetaFiltro(t *testing.T) {
	f := newFixture(t, seedAgenda(t))
	sheets := &fakeSheets{}
	uc := usecase.NewExportUseCase(f.ws, sheets, clock())

	out, err := uc.Orders(search.Query{Facet: string(entity.OrderPendente)})
	require.NoError(t, err)
	assert.Equal(t, "xlsx", string(out))

	require.Len(t, sheets.calls, 1)
	call := sheets.calls[0]
	assert.Equal(t, "Ordens", call.name)
	assert.Equal(t, []string{"ID", "Cliente", "Serviço", "Status", "Prazo", "Valor"}, call.header)
	require.Len(t, call.rows, 2)
	assert.Equal(t, "#ORD-1001", call.rows[0][0])
}

func TestExportTransactionsEInventory(t *testing.T) {
	f := newFixture(t, func(gw *memory.Gateway) {
		mustInsert(t, gw.Transactions.Insert, entity.Transaction{
			Type: entity.TxEntrada, Description: "Venda cinto", Value: decimal.RequireFromString("89.9"), Method: "Cartão", OccurredAt: fixedNow, Status: entity.TxStatusConcluido,
		})
		mustInsert(t, gw.Inventory.Insert, entity.InventoryItem{Name: "Cera", Stock: 4, UnitPrice: decimal.NewFromInt(12), Type: entity.ItemServico})
	})
	sheets := &fakeSheets{}
	uc := usecase.NewExportUseCase(f.ws, sheets, clock())

	_, err := uc.Transactions(search.Query{})
	require.NoError(t, err)
	_, err = uc.Inventory(search.Query{Text: "cera"})
	require.NoError(t, err)

	require.Len(t, sheets.calls, 2)
	tx := sheets.calls[0].rows[0]
	assert.Equal(t, "Hoje, 14:30", tx[1])
	assert.Equal(t, string(entity.ChannelBoutique), tx[5], "canal deducido al cargar")
	assert.InDelta(t, 89.9, tx[6], 0.001)

	inv := sheets.calls[1]
	assert.Equal(t, "Estoque", inv.name)
	require.Len(t, inv.rows, 1)
	assert.Equal(t, 4, inv.rows[0][3])
}
