package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/repository"
)

// Gateway agrupa todas las tablas en memoria.
type Gateway struct {
	Orders       *Table[string, entity.Order]
	Customers    *Table[string, entity.Customer]
	Inventory    *Table[int64, entity.InventoryItem]
	Invoices     *Table[string, entity.Invoice]
	Transactions *Table[int64, entity.Transaction]
	Catalog      *Table[int64, entity.CatalogProduct]
	Settings     *SettingsRepo
	Users        *UserRepo
}

// NewGateway crea un gateway vacío con IDs numéricos autoincrementales.
func NewGateway() *Gateway {
	return &Gateway{
		Orders:    NewTable[string, entity.Order](nil),
		Customers: NewTable[string, entity.Customer](nil),
		Inventory: NewTable(func(r entity.InventoryItem, next int64) entity.InventoryItem {
			if r.ID == 0 {
				r.ID = next
			}
			return r
		}),
		Invoices: NewTable[string, entity.Invoice](nil),
		Transactions: NewTable(func(r entity.Transaction, next int64) entity.Transaction {
			if r.ID == 0 {
				r.ID = next
			}
			return r
		}),
		Catalog: NewTable(func(r entity.CatalogProduct, next int64) entity.CatalogProduct {
			if r.ID == 0 {
				r.ID = next
			}
			return r
		}),
		Settings: NewSettingsRepo(),
		Users:    NewUserRepo(),
	}
}

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo configuración clave/valor en memoria.
type SettingsRepo struct {
	mu   sync.RWMutex
	rows map[string]entity.Setting
}

// NewSettingsRepo crea el repositorio vacío.
func NewSettingsRepo() *SettingsRepo {
	return &SettingsRepo{rows: map[string]entity.Setting{}}
}

// List devuelve las filas ordenadas por clave.
func (r *SettingsRepo) List(_ context.Context) ([]entity.Setting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Setting, 0, len(r.rows))
	for _, s := range r.rows {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

// Upsert inserta o reemplaza por clave.
func (r *SettingsRepo) Upsert(_ context.Context, s entity.Setting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = time.Now()
	}
	r.rows[s.Key] = s
	return nil
}

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo usuarios en memoria.
type UserRepo struct {
	mu    sync.RWMutex
	users map[string]*entity.User
}

// NewUserRepo crea el repositorio vacío.
func NewUserRepo() *UserRepo {
	return &UserRepo{users: map[string]*entity.User{}}
}

// Create guarda una copia del usuario.
func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

// GetByID devuelve nil, nil si no existe.
func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

// FindByEmail compara el email sin distinguir mayúsculas. Devuelve nil, nil si no existe.
func (r *UserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}
