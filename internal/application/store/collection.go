// Package store mantiene en memoria la copia de trabajo de cada colección del painel
// y la sincroniza con el gateway remoto.
//
// Protocolo de mutación: el gateway confirma primero y solo entonces se aplica el
// cambio local. Un fallo remoto deja el estado local intacto.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jhoicas/atelier-api/internal/domain"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/repository"
	"github.com/jhoicas/atelier-api/pkg/logger"
)

// Position dónde se inserta un registro nuevo.
type Position int

const (
	Back Position = iota
	Front
)

// Confirmer responde la pregunta de confirmación antes de un borrado.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapta una función a Confirmer.
type ConfirmFunc func(prompt string) bool

// Confirm implementa Confirmer.
func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Confirmed confirma siempre (jobs internos y tests).
var Confirmed Confirmer = ConfirmFunc(func(string) bool { return true })

type settings[T any] struct {
	deletePrompt string
	normalize    func(T) T
	onLoad       func([]T)
}

// Option configura una Collection.
type Option[T any] func(*settings[T])

// WithDeletePrompt texto de la pregunta de confirmación de borrado.
func WithDeletePrompt[T any](prompt string) Option[T] {
	return func(s *settings[T]) { s.deletePrompt = prompt }
}

// WithNormalizer se aplica a cada fila recibida en Load (completar campos de registros legados).
func WithNormalizer[T any](fn func(T) T) Option[T] {
	return func(s *settings[T]) { s.normalize = fn }
}

// WithOnLoad se invoca con el snapshot recién cargado (sembrar secuencias de IDs).
func WithOnLoad[T any](fn func([]T)) Option[T] {
	return func(s *settings[T]) { s.onLoad = fn }
}

// Collection copia autoritativa en memoria de una colección.
// Un único escritor a la vez (wmu, retenido durante la llamada al gateway); las
// lecturas usan mu y no esperan al gateway.
type Collection[K comparable, T entity.Keyed[K]] struct {
	name  string
	table repository.Table[K, T]
	log   *logger.Logger
	opts  settings[T]

	wmu     sync.Mutex
	mu      sync.RWMutex
	items   []T
	version uint64
	loaded  bool
}

// New construye la colección vacía. Load debe llamarse para poblarla.
func New[K comparable, T entity.Keyed[K]](name string, table repository.Table[K, T], log *logger.Logger, opts ...Option[T]) *Collection[K, T] {
	c := &Collection[K, T]{
		name:  name,
		table: table,
		log:   log.Named("store").WithField("collection", name),
		opts:  settings[T]{deletePrompt: "Excluir este registro?"},
	}
	for _, o := range opts {
		o(&c.opts)
	}
	return c
}

// Name nombre de la colección.
func (c *Collection[K, T]) Name() string { return c.name }

// Load reemplaza la lista completa por lo que devuelve el gateway (sin merge).
// Si el gateway falla se registra el error y se conserva el estado anterior.
func (c *Collection[K, T]) Load(ctx context.Context) error {
	c.wmu.Lock()
	defer c.wmu.Unlock()

	rows, err := c.table.Select(ctx)
	if err != nil {
		c.log.Error().Err(err).Msg("carga de la colección falló; se mantiene el estado anterior")
		return c.wrap("cargar", err)
	}
	if c.opts.normalize != nil {
		for i := range rows {
			rows[i] = c.opts.normalize(rows[i])
		}
	}

	c.mu.Lock()
	c.items = rows
	c.version++
	c.loaded = true
	snap := c.snapshotLocked()
	c.mu.Unlock()

	if c.opts.onLoad != nil {
		c.opts.onLoad(snap)
	}
	c.log.Debug().Int("rows", len(rows)).Msg("colección cargada")
	return nil
}

// Loaded indica si hubo al menos un Load exitoso.
func (c *Collection[K, T]) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// Snapshot copia inmutable del estado actual.
func (c *Collection[K, T]) Snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshotLocked()
}

// SnapshotVersion snapshot y versión leídos de forma consistente.
func (c *Collection[K, T]) SnapshotVersion() ([]T, uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshotLocked(), c.version
}

func (c *Collection[K, T]) snapshotLocked() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Version contador que aumenta con cada cambio (carga o mutación).
func (c *Collection[K, T]) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// Len cantidad de registros.
func (c *Collection[K, T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Get busca por clave.
func (c *Collection[K, T]) Get(id K) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.indexLocked(id); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

func (c *Collection[K, T]) indexLocked(id K) int {
	for i, it := range c.items {
		if it.Key() == id {
			return i
		}
	}
	return -1
}

// Create persiste el registro en el gateway y, con la fila aceptada, lo agrega
// al inicio o al final de la lista local.
func (c *Collection[K, T]) Create(ctx context.Context, row T, pos Position) (T, error) {
	c.wmu.Lock()
	defer c.wmu.Unlock()

	saved, err := c.table.Insert(ctx, row)
	if err != nil {
		c.log.Error().Err(err).Msg("alta rechazada por el gateway")
		var zero T
		return zero, c.wrap("crear", err)
	}

	c.mu.Lock()
	if pos == Front {
		c.items = append([]T{saved}, c.items...)
	} else {
		c.items = append(c.items, saved)
	}
	c.version++
	c.mu.Unlock()
	return saved, nil
}

// Update aplica patch sobre una copia del registro, la persiste y reemplaza la local.
// patch puede cambiar la clave (ej. número de una nota fiscal); el reemplazo usa la clave original.
// Lectura, patch y escritura ocurren bajo el lock de escritor: patch siempre ve la última versión.
func (c *Collection[K, T]) Update(ctx context.Context, id K, patch func(*T)) (T, error) {
	c.wmu.Lock()
	defer c.wmu.Unlock()

	current, ok := c.Get(id)
	if !ok {
		var zero T
		return zero, fmt.Errorf("actualizar %s: %w", c.name, domain.ErrNotFound)
	}
	merged := current
	patch(&merged)

	saved, err := c.table.Update(ctx, id, merged)
	if err != nil {
		c.log.Error().Err(err).Msg("actualización rechazada por el gateway")
		var zero T
		return zero, c.wrap("actualizar", err)
	}

	c.mu.Lock()
	if i := c.indexLocked(id); i >= 0 {
		c.items[i] = saved
		c.version++
	}
	c.mu.Unlock()
	return saved, nil
}

// Delete pide confirmación, borra en el gateway y solo entonces quita el registro local.
func (c *Collection[K, T]) Delete(ctx context.Context, id K, confirm Confirmer) error {
	if confirm == nil || !confirm.Confirm(c.opts.deletePrompt) {
		return fmt.Errorf("%s: %w", c.opts.deletePrompt, domain.ErrNotConfirmed)
	}

	c.wmu.Lock()
	defer c.wmu.Unlock()
	if err := c.table.Delete(ctx, id); err != nil {
		c.log.Error().Err(err).Msg("borrado rechazado por el gateway; estado local sin cambios")
		return c.wrap("excluir", err)
	}

	c.mu.Lock()
	if i := c.indexLocked(id); i >= 0 {
		c.items = append(c.items[:i:i], c.items[i+1:]...)
		c.version++
	}
	c.mu.Unlock()
	return nil
}

// wrap conserva los errores de dominio conocidos y marca el resto como fallo del gateway.
func (c *Collection[K, T]) wrap(op string, err error) error {
	for _, known := range []error{domain.ErrNotFound, domain.ErrDuplicate, domain.ErrInvalidInput} {
		if errors.Is(err, known) {
			return fmt.Errorf("%s %s: %w", op, c.name, err)
		}
	}
	return fmt.Errorf("%s %s: %w: %w", op, c.name, domain.ErrGateway, err)
}
