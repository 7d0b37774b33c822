package metrics_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/infrastructure/memory"
	"github.com/jhoicas/atelier-api/internal/infrastructure/metrics"
)

func TestInstrument_CuentaPorResultado(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewGatewayMetrics(reg)
	tbl := metrics.Instrument[string, entity.Customer](m, "customers", memory.NewTable[string, entity.Customer](nil))
	ctx := context.Background()

	_, err := tbl.Insert(ctx, entity.Customer{ID: "C1"})
	require.NoError(t, err)
	_, err = tbl.Insert(ctx, entity.Customer{ID: "C1"})
	require.Error(t, err)
	require.Error(t, tbl.Delete(ctx, "C9"))
	_, err = tbl.Select(ctx)
	require.NoError(t, err)

	assert.Equal(t, 4, testutil.CollectAndCount(reg, "atelier_gateway_calls_total"))
	assert.Equal(t, 3, testutil.CollectAndCount(reg, "atelier_gateway_call_duration_seconds"))
}

func TestInstrument_SinMetricasDevuelveOriginal(t *testing.T) {
	inner := memory.NewTable[string, entity.Customer](nil)
	tbl := metrics.Instrument[string, entity.Customer](nil, "customers", inner)
	assert.Same(t, inner, tbl)
}
