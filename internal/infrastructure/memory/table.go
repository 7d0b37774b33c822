// Package memory implementa el gateway remoto en memoria del proceso.
// Sirve para levantar el painel sin base de datos (APP_GATEWAY=memory) y en tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/atelier-api/internal/domain"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/repository"
)

var (
	_ repository.OrderTable       = (*Table[string, entity.Order])(nil)
	_ repository.InventoryTable   = (*Table[int64, entity.InventoryItem])(nil)
	_ repository.TransactionTable = (*Table[int64, entity.Transaction])(nil)
)

// Table colección en memoria. assign, si no es nil, completa el ID de las filas
// insertadas sin él (simula un BIGSERIAL). seq es el mayor ID numérico visto.
type Table[K comparable, T entity.Keyed[K]] struct {
	mu     sync.RWMutex
	rows   []T
	seq    int64
	assign func(row T, next int64) T
}

// NewTable crea la tabla con filas iniciales.
func NewTable[K comparable, T entity.Keyed[K]](assign func(row T, next int64) T, rows ...T) *Table[K, T] {
	t := &Table[K, T]{assign: assign}
	t.rows = append(t.rows, rows...)
	for _, r := range rows {
		t.observeLocked(r.Key())
	}
	return t
}

// observeLocked avanza seq si id es numérico y mayor.
func (t *Table[K, T]) observeLocked(id K) {
	if n, ok := any(id).(int64); ok && n > t.seq {
		t.seq = n
	}
}

// Select devuelve una copia de todas las filas.
func (t *Table[K, T]) Select(_ context.Context) ([]T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, len(t.rows))
	copy(out, t.rows)
	return out, nil
}

// Insert agrega la fila; clave repetida → domain.ErrDuplicate.
func (t *Table[K, T]) Insert(_ context.Context, row T) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.assign != nil {
		row = t.assign(row, t.seq+1)
	}
	if t.indexLocked(row.Key()) >= 0 {
		var zero T
		return zero, fmt.Errorf("insert %v: %w", row.Key(), domain.ErrDuplicate)
	}
	t.observeLocked(row.Key())
	t.rows = append(t.rows, row)
	return row, nil
}

// Update reemplaza la fila con clave id.
func (t *Table[K, T]) Update(_ context.Context, id K, row T) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := t.indexLocked(id)
	if i < 0 {
		var zero T
		return zero, fmt.Errorf("update %v: %w", id, domain.ErrNotFound)
	}
	if row.Key() != id && t.indexLocked(row.Key()) >= 0 {
		var zero T
		return zero, fmt.Errorf("update %v: %w", row.Key(), domain.ErrDuplicate)
	}
	t.rows[i] = row
	return row, nil
}

// Delete elimina la fila con clave id.
func (t *Table[K, T]) Delete(_ context.Context, id K) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := t.indexLocked(id)
	if i < 0 {
		return fmt.Errorf("delete %v: %w", id, domain.ErrNotFound)
	}
	t.rows = append(t.rows[:i], t.rows[i+1:]...)
	return nil
}

func (t *Table[K, T]) indexLocked(id K) int {
	for i, r := range t.rows {
		if r.Key() == id {
			return i
		}
	}
	return -1
}
