package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/jhoicas/atelier-api/internal/application/dto"
	"github.com/jhoicas/atelier-api/internal/application/store"
	"github.com/jhoicas/atelier-api/internal/application/workspace"
	"github.com/jhoicas/atelier-api/internal/domain"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/metrics"
	"github.com/jhoicas/atelier-api/internal/domain/search"
)

// InventoryUseCase estoque e insumos.
type InventoryUseCase struct {
	ws *workspace.Workspace
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(ws *workspace.Workspace) *InventoryUseCase {
	return &InventoryUseCase{ws: ws}
}

// List ítems filtrados por nome, SKU o categoria y tipo.
func (uc *InventoryUseCase) List(q search.Query) dto.ListResponse[dto.InventoryItemResponse] {
	all := uc.ws.Inventory.Snapshot()
	found := search.Inventory(all, q)
	return dto.ListResponse[dto.InventoryItemResponse]{
		Items: lo.Map(found, func(i entity.InventoryItem, _ int) dto.InventoryItemResponse { return toInventoryItemResponse(i) }),
		Count: len(found),
		Total: len(all),
	}
}

// Create "Novo Insumo". El ID lo asigna el gateway.
func (uc *InventoryUseCase) Create(ctx context.Context, in dto.CreateInventoryItemRequest) (dto.InventoryItemResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return dto.InventoryItemResponse{}, fmt.Errorf("%w: nome obrigatório", domain.ErrInvalidInput)
	}
	if in.Stock < 0 {
		return dto.InventoryItemResponse{}, fmt.Errorf("%w: estoque negativo", domain.ErrInvalidInput)
	}
	if in.Price.IsNegative() {
		return dto.InventoryItemResponse{}, fmt.Errorf("%w: preço negativo", domain.ErrInvalidInput)
	}
	typ := entity.ItemType(in.Type)
	if typ == "" {
		typ = entity.ItemServico
	}
	if !typ.Valid() {
		return dto.InventoryItemResponse{}, fmt.Errorf("%w: tipo %q", domain.ErrInvalidInput, in.Type)
	}
	saved, err := uc.ws.Inventory.Create(ctx, entity.InventoryItem{
		Name:      name,
		SKU:       strings.TrimSpace(in.SKU),
		Stock:     in.Stock,
		UnitPrice: in.Price,
		Category:  strings.TrimSpace(in.Category),
		Type:      typ,
	}, store.Back)
	if err != nil {
		return dto.InventoryItemResponse{}, err
	}
	return toInventoryItemResponse(saved), nil
}

// AdjustStock suma delta al estoque; nunca baja de cero.
func (uc *InventoryUseCase) AdjustStock(ctx context.Context, id int64, delta int) (dto.InventoryItemResponse, error) {
	saved, err := uc.ws.Inventory.Update(ctx, id, func(i *entity.InventoryItem) {
		i.Stock = max(0, i.Stock+delta)
	})
	if err != nil {
		return dto.InventoryItemResponse{}, err
	}
	return toInventoryItemResponse(saved), nil
}

// Delete exclui el ítem tras la confirmación.
func (uc *InventoryUseCase) Delete(ctx context.Context, id int64, confirm store.Confirmer) error {
	return uc.ws.Inventory.Delete(ctx, id, confirm)
}

// Summary conteo por nivel de estoque.
func (uc *InventoryUseCase) Summary() dto.InventorySummaryResponse {
	return toInventorySummary(metrics.ComputeInventory(uc.ws.Inventory.Snapshot()))
}

func toInventorySummary(s metrics.Inventory) dto.InventorySummaryResponse {
	return dto.InventorySummaryResponse{InStock: s.InStock, LowStock: s.LowStock, OutOfStock: s.OutOfStock}
}
