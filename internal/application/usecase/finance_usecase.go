package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/jhoicas/atelier-api/internal/application/dto"
	"github.com/jhoicas/atelier-api/internal/application/store"
	"github.com/jhoicas/atelier-api/internal/application/workspace"
	"github.com/jhoicas/atelier-api/internal/domain"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/metrics"
	"github.com/jhoicas/atelier-api/internal/domain/search"
)

// FinanceUseCase fluxo financeiro.
type FinanceUseCase struct {
	ws  *workspace.Workspace
	now Clock
}

// NewFinanceUseCase construye el caso de uso.
func NewFinanceUseCase(ws *workspace.Workspace, now Clock) *FinanceUseCase {
	if now == nil {
		now = time.Now
	}
	return &FinanceUseCase{ws: ws, now: now}
}

// List transacciones filtradas por descrição o método y tipo.
func (uc *FinanceUseCase) List(q search.Query) dto.ListResponse[dto.TransactionResponse] {
	all := uc.ws.Transactions.Snapshot()
	found := search.Transactions(all, q)
	now := uc.now()
	return dto.ListResponse[dto.TransactionResponse]{
		Items: lo.Map(found, func(t entity.Transaction, _ int) dto.TransactionResponse { return toTransactionResponse(t, now) }),
		Count: len(found),
		Total: len(all),
	}
}

// Create "Nova Transação": status Concluído, canal explícito o deducido de la descripción.
func (uc *FinanceUseCase) Create(ctx context.Context, in dto.CreateTransactionRequest) (dto.TransactionResponse, error) {
	typ := entity.TransactionType(in.Type)
	if !typ.Valid() {
		return dto.TransactionResponse{}, fmt.Errorf("%w: tipo %q (Entrada|Saída)", domain.ErrInvalidInput, in.Type)
	}
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return dto.TransactionResponse{}, fmt.Errorf("%w: descrição obrigatória", domain.ErrInvalidInput)
	}
	if in.Value.IsNegative() {
		return dto.TransactionResponse{}, fmt.Errorf("%w: valor negativo", domain.ErrInvalidInput)
	}
	channel := entity.Channel(in.Channel)
	switch {
	case in.Channel == "":
		channel = metrics.ClassifyChannel(desc)
	case !channel.Valid():
		return dto.TransactionResponse{}, fmt.Errorf("%w: canal %q (Serviço|Boutique)", domain.ErrInvalidInput, in.Channel)
	}

	now := uc.now()
	saved, err := uc.ws.Transactions.Create(ctx, entity.Transaction{
		Type:        typ,
		Description: desc,
		Value:       in.Value,
		Method:      strings.TrimSpace(in.Method),
		OccurredAt:  now,
		Status:      entity.TxStatusConcluido,
		Channel:     channel,
	}, store.Front)
	if err != nil {
		return dto.TransactionResponse{}, err
	}
	return toTransactionResponse(saved, now), nil
}

// Delete exclui la transacción tras la confirmación.
func (uc *FinanceUseCase) Delete(ctx context.Context, id int64, confirm store.Confirmer) error {
	return uc.ws.Transactions.Delete(ctx, id, confirm)
}

// Summary entradas, saídas y saldo.
func (uc *FinanceUseCase) Summary() dto.FinanceSummaryResponse {
	return toFinanceSummary(metrics.ComputeFinance(uc.ws.Transactions.Snapshot()))
}

func toFinanceSummary(f metrics.Finance) dto.FinanceSummaryResponse {
	return dto.FinanceSummaryResponse{TotalIn: f.TotalIn, TotalOut: f.TotalOut, Balance: f.Balance}
}
