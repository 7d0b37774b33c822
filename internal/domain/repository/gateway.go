// Package repository define los puertos hacia el gateway remoto (persistencia, archivos y usuarios).
package repository

import (
	"context"
	"io"

	"github.com/jhoicas/atelier-api/internal/domain/entity"
)

// Table es el CRUD mínimo que el gateway remoto expone por colección.
// Cada llamada es atómica por sí sola; no hay transacciones entre filas ni entre tablas.
type Table[K comparable, T entity.Keyed[K]] interface {
	// Select devuelve todas las filas de la colección.
	Select(ctx context.Context) ([]T, error)
	// Insert persiste la fila y devuelve la versión aceptada (con el ID asignado por el backend si aplica).
	Insert(ctx context.Context, row T) (T, error)
	// Update reemplaza la fila con ese ID y devuelve la versión persistida.
	Update(ctx context.Context, id K, row T) (T, error)
	// Delete elimina la fila. Devuelve domain.ErrNotFound si no existe.
	Delete(ctx context.Context, id K) error
}

// Tablas concretas del atelier.
type (
	OrderTable       = Table[string, entity.Order]
	CustomerTable    = Table[string, entity.Customer]
	InventoryTable   = Table[int64, entity.InventoryItem]
	InvoiceTable     = Table[string, entity.Invoice]
	TransactionTable = Table[int64, entity.Transaction]
	CatalogTable     = Table[int64, entity.CatalogProduct]
)

// FileStorage sube archivos a un bucket y devuelve su URL pública.
type FileStorage interface {
	Upload(ctx context.Context, bucket, path string, r io.Reader) (publicURL string, err error)
}

// SettingsRepository filas clave/valor con valores JSON opacos.
type SettingsRepository interface {
	List(ctx context.Context) ([]entity.Setting, error)
	Upsert(ctx context.Context, s entity.Setting) error
}

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
