package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/atelier-api/internal/application/usecase"
	"github.com/jhoicas/atelier-api/internal/application/workspace"
	"github.com/jhoicas/atelier-api/internal/infrastructure/memory"
	"github.com/jhoicas/atelier-api/pkg/logger"
)

// fixedNow 10/03/2024 14:30 hora local.
var fixedNow = time.Date(2024, time.March, 10, 14, 30, 0, 0, time.Local)

func clock() usecase.Clock { return func() time.Time { return fixedNow } }

type fixture struct {
	gw *memory.Gateway
	ws *workspace.Workspace
}

// newFixture workspace cargado sobre un gateway en memoria; seed puebla las tablas antes de LoadAll.
func newFixture(t *testing.T, seed func(gw *memory.Gateway)) *fixture {
	t.Helper()
	gw := memory.NewGateway()
	if seed != nil {
		seed(gw)
	}
	ws := workspace.New(workspace.Tables{
		Orders:       gw.Orders,
		Customers:    gw.Customers,
		Inventory:    gw.Inventory,
		Invoices:     gw.Invoices,
		Transactions: gw.Transactions,
		Catalog:      gw.Catalog,
	}, logger.Nop())
	require.NoError(t, ws.LoadAll(context.Background()))
	return &fixture{gw: gw, ws: ws}
}

func mustInsert[T any](t *testing.T, insert func(context.Context, T) (T, error), rows ...T) {
	t.Helper()
	for _, r := range rows {
		_, err := insert(context.Background(), r)
		require.NoError(t, err)
	}
}
