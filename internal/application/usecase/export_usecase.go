package usecase

import (
	"time"

	"github.com/samber/lo"

	"github.com/jhoicas/atelier-api/internal/application/workspace"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/search"
)

// ExportUseCase planillas XLSX de las secciones del painel, respetando el filtro activo.
type ExportUseCase struct {
	ws     *workspace.Workspace
	sheets SheetWriter
	now    Clock
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(ws *workspace.Workspace, sheets SheetWriter, now Clock) *ExportUseCase {
	if now == nil {
		now = time.Now
	}
	return &ExportUseCase{ws: ws, sheets: sheets, now: now}
}

// Orders planilla de ordens.
func (uc *ExportUseCase) Orders(q search.Query) ([]byte, error) {
	rows := lo.Map(search.Orders(uc.ws.Orders.Snapshot(), q), func(o entity.Order, _ int) []any {
		return []any{o.ID, o.CustomerName, o.Service, string(o.Status), o.Deadline, o.Value.InexactFloat64()}
	})
	return uc.sheets.WriteSheet("Ordens", []string{"ID", "Cliente", "Serviço", "Status", "Prazo", "Valor"}, rows)
}

// Inventory planilla de estoque.
func (uc *ExportUseCase) Inventory(q search.Query) ([]byte, error) {
	rows := lo.Map(search.Inventory(uc.ws.Inventory.Snapshot(), q), func(i entity.InventoryItem, _ int) []any {
		return []any{i.ID, i.Name, i.SKU, i.Stock, i.UnitPrice.InexactFloat64(), i.Category, string(i.Type)}
	})
	return uc.sheets.WriteSheet("Estoque", []string{"ID", "Nome", "SKU", "Estoque", "Preço", "Categoria", "Tipo"}, rows)
}

// Transactions planilla del fluxo financeiro.
func (uc *ExportUseCase) Transactions(q search.Query) ([]byte, error) {
	now := uc.now()
	rows := lo.Map(search.Transactions(uc.ws.Transactions.Snapshot(), q), func(t entity.Transaction, _ int) []any {
		return []any{t.ID, DateLabel(t.OccurredAt, now), string(t.Type), t.Description, t.Method, string(t.Channel), t.Value.InexactFloat64(), t.Status}
	})
	return uc.sheets.WriteSheet("Financeiro", []string{"ID", "Data", "Tipo", "Descrição", "Método", "Canal", "Valor", "Status"}, rows)
}
