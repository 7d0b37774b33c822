// Package workspace reúne las colecciones del painel y las secuencias de IDs.
package workspace

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/atelier-api/internal/application/idgen"
	"github.com/jhoicas/atelier-api/internal/application/store"
	"github.com/jhoicas/atelier-api/internal/domain"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/metrics"
	"github.com/jhoicas/atelier-api/internal/domain/repository"
	"github.com/jhoicas/atelier-api/pkg/logger"
)

// Tables gateway remoto por colección.
type Tables struct {
	Orders       repository.OrderTable
	Customers    repository.CustomerTable
	Inventory    repository.InventoryTable
	Invoices     repository.InvoiceTable
	Transactions repository.TransactionTable
	Catalog      repository.CatalogTable
}

// Workspace dueño de todas las colecciones en memoria.
type Workspace struct {
	Orders       *store.Collection[string, entity.Order]
	Customers    *store.Collection[string, entity.Customer]
	Inventory    *store.Collection[int64, entity.InventoryItem]
	Invoices     *store.Collection[string, entity.Invoice]
	Transactions *store.Collection[int64, entity.Transaction]
	Catalog      *store.Collection[int64, entity.CatalogProduct]

	OrderIDs    *idgen.Sequence
	CustomerIDs *idgen.Sequence

	registration sync.Mutex
	log          *logger.Logger
}

// LockRegistration serializa los registros de ordem: la búsqueda del cliente por nombre,
// el alta de la ordem y el alta o actualización del cliente ocurren sin intercalarse.
func (w *Workspace) LockRegistration() (unlock func()) {
	w.registration.Lock()
	return w.registration.Unlock
}

// New arma las colecciones sobre las tablas dadas. No carga nada.
func New(t Tables, log *logger.Logger) *Workspace {
	w := &Workspace{
		OrderIDs:    idgen.Orders(),
		CustomerIDs: idgen.Customers(),
		log:         log.Named("workspace"),
	}

	w.Orders = store.New("orders", t.Orders, log,
		store.WithDeletePrompt[entity.Order]("Excluir esta ordem de serviço permanentemente?"),
		store.WithOnLoad(func(rows []entity.Order) {
			for _, o := range rows {
				w.OrderIDs.Observe(o.ID)
			}
		}),
	)
	w.Customers = store.New("customers", t.Customers, log,
		store.WithDeletePrompt[entity.Customer]("Excluir este cliente?"),
		store.WithNormalizer(func(c entity.Customer) entity.Customer {
			if c.Loyalty == "" {
				c.Loyalty = entity.DefaultLoyalty
			}
			return c
		}),
		store.WithOnLoad(func(rows []entity.Customer) {
			for _, c := range rows {
				w.CustomerIDs.Observe(c.ID)
			}
		}),
	)
	w.Inventory = store.New("inventory", t.Inventory, log,
		store.WithDeletePrompt[entity.InventoryItem]("Excluir este item do estoque?"),
	)
	w.Invoices = store.New("invoices", t.Invoices, log,
		store.WithDeletePrompt[entity.Invoice]("Excluir esta nota fiscal?"),
	)
	w.Transactions = store.New("financial_transactions", t.Transactions, log,
		store.WithDeletePrompt[entity.Transaction]("Excluir esta transação financeira?"),
		store.WithNormalizer(func(tx entity.Transaction) entity.Transaction {
			if !tx.Channel.Valid() {
				tx.Channel = metrics.ClassifyChannel(tx.Description)
			}
			return tx
		}),
	)
	w.Catalog = store.New("products", t.Catalog, log,
		store.WithDeletePrompt[entity.CatalogProduct]("Excluir este item do catálogo? Esta ação é irreversível e o item deixará de aparecer no site para os clientes."),
	)
	return w
}

// LoadAll carga todas las colecciones en paralelo. Un fallo no impide las demás
// cargas; se devuelve el primero para reportarlo.
func (w *Workspace) LoadAll(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { return w.Orders.Load(ctx) })
	g.Go(func() error { return w.Customers.Load(ctx) })
	g.Go(func() error { return w.Inventory.Load(ctx) })
	g.Go(func() error { return w.Invoices.Load(ctx) })
	g.Go(func() error { return w.Transactions.Load(ctx) })
	g.Go(func() error { return w.Catalog.Load(ctx) })
	err := g.Wait()
	if err != nil {
		w.log.Warn().Err(err).Msg("carga inicial incompleta")
		return err
	}
	w.log.Info().
		Int("orders", w.Orders.Len()).
		Int("customers", w.Customers.Len()).
		Int("inventory", w.Inventory.Len()).
		Int("invoices", w.Invoices.Len()).
		Int("transactions", w.Transactions.Len()).
		Int("products", w.Catalog.Len()).
		Msg("colecciones cargadas")
	return nil
}

type loader interface {
	Loaded() bool
	Load(ctx context.Context) error
}

// byKey colecciones por la clave pública que usan /health y el reload.
func (w *Workspace) byKey() map[string]loader {
	return map[string]loader{
		"orders":       w.Orders,
		"customers":    w.Customers,
		"inventory":    w.Inventory,
		"invoices":     w.Invoices,
		"transactions": w.Transactions,
		"products":     w.Catalog,
	}
}

// Loaded estado de carga por colección.
func (w *Workspace) Loaded() map[string]bool {
	out := make(map[string]bool, 6)
	for k, col := range w.byKey() {
		out[k] = col.Loaded()
	}
	return out
}

// Reload vuelve a leer desde el gateway las colecciones indicadas, o todas si keys está vacío.
// Una clave desconocida no recarga nada.
func (w *Workspace) Reload(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return w.LoadAll(ctx)
	}
	all := w.byKey()
	selected := make([]loader, 0, len(keys))
	for _, k := range keys {
		col, ok := all[k]
		if !ok {
			known := make([]string, 0, len(all))
			for name := range all {
				known = append(known, name)
			}
			sort.Strings(known)
			return fmt.Errorf("%w: coleção %q (use %v)", domain.ErrInvalidInput, k, known)
		}
		selected = append(selected, col)
	}

	var g errgroup.Group
	for _, col := range selected {
		g.Go(func() error { return col.Load(ctx) })
	}
	if err := g.Wait(); err != nil {
		w.log.Warn().Err(err).Strs("collections", keys).Msg("recarga incompleta")
		return err
	}
	w.log.Info().Strs("collections", keys).Msg("colecciones recargadas")
	return nil
}
