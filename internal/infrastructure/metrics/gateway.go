// Package metrics instrumenta las llamadas al gateway remoto con Prometheus.
package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jhoicas/atelier-api/internal/domain"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/repository"
)

// GatewayMetrics contadores y latencias por colección y operación.
type GatewayMetrics struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewGatewayMetrics registra los colectores en reg.
func NewGatewayMetrics(reg prometheus.Registerer) *GatewayMetrics {
	m := &GatewayMetrics{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "atelier",
			Subsystem: "gateway",
			Name:      "calls_total",
			Help:      "Llamadas al gateway remoto por colección, operación y resultado.",
		}, []string{"collection", "op", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "atelier",
			Subsystem: "gateway",
			Name:      "call_duration_seconds",
			Help:      "Latencia de las llamadas al gateway remoto.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"collection", "op"}),
	}
	reg.MustRegister(m.calls, m.duration)
	return m
}

func (m *GatewayMetrics) observe(collection, op string, start time.Time, err error) {
	m.duration.WithLabelValues(collection, op).Observe(time.Since(start).Seconds())
	m.calls.WithLabelValues(collection, op, result(err)).Inc()
}

func result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrDuplicate):
		return "duplicate"
	default:
		return "error"
	}
}

// Table decora un repository.Table con métricas.
type Table[K comparable, T entity.Keyed[K]] struct {
	next       repository.Table[K, T]
	collection string
	m          *GatewayMetrics
}

// Instrument envuelve next. Con m nil devuelve next tal cual.
func Instrument[K comparable, T entity.Keyed[K]](m *GatewayMetrics, collection string, next repository.Table[K, T]) repository.Table[K, T] {
	if m == nil {
		return next
	}
	return &Table[K, T]{next: next, collection: collection, m: m}
}

func (t *Table[K, T]) Select(ctx context.Context) ([]T, error) {
	start := time.Now()
	rows, err := t.next.Select(ctx)
	t.m.observe(t.collection, "select", start, err)
	return rows, err
}

func (t *Table[K, T]) Insert(ctx context.Context, row T) (T, error) {
	start := time.Now()
	saved, err := t.next.Insert(ctx, row)
	t.m.observe(t.collection, "insert", start, err)
	return saved, err
}

func (t *Table[K, T]) Update(ctx context.Context, id K, row T) (T, error) {
	start := time.Now()
	saved, err := t.next.Update(ctx, id, row)
	t.m.observe(t.collection, "update", start, err)
	return saved, err
}

func (t *Table[K, T]) Delete(ctx context.Context, id K) error {
	start := time.Now()
	err := t.next.Delete(ctx, id)
	t.m.observe(t.collection, "delete", start, err)
	return err
}
