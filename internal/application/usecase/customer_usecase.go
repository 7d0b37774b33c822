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
	"github.com/jhoicas/atelier-api/internal/domain/crossref"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/search"
)

// DefaultCustomerPhone teléfono de los clientes cadastrados sin uno.
const DefaultCustomerPhone = "(13) 99999-0000"

// CustomerUseCase cadastro de clientes.
type CustomerUseCase struct {
	ws  *workspace.Workspace
	now Clock
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(ws *workspace.Workspace, now Clock) *CustomerUseCase {
	if now == nil {
		now = time.Now
	}
	return &CustomerUseCase{ws: ws, now: now}
}

// List clientes filtrados por nome, email o telefone.
func (uc *CustomerUseCase) List(q search.Query) dto.ListResponse[dto.CustomerResponse] {
	all := uc.ws.Customers.Snapshot()
	found := search.Customers(all, q)
	return dto.ListResponse[dto.CustomerResponse]{
		Items: lo.Map(found, func(c entity.Customer, _ int) dto.CustomerResponse { return toCustomerResponse(c) }),
		Count: len(found),
		Total: len(all),
	}
}

// Create "Novo Cadastro": visits 0 y loyalty Silver.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (dto.CustomerResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return dto.CustomerResponse{}, fmt.Errorf("%w: nome obrigatório", domain.ErrInvalidInput)
	}
	saved, err := uc.ws.Customers.Create(ctx, entity.Customer{
		ID:        uc.ws.CustomerIDs.Next(),
		Name:      name,
		Email:     strings.TrimSpace(in.Email),
		Phone:     orDefault(in.Phone, DefaultCustomerPhone),
		Visits:    0,
		Loyalty:   entity.DefaultLoyalty,
		CreatedAt: uc.now(),
	}, store.Back)
	if err != nil {
		return dto.CustomerResponse{}, err
	}
	return toCustomerResponse(saved), nil
}

// Delete exclui el cliente tras la confirmación. Las ordens conservan el nombre.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string, confirm store.Confirmer) error {
	return uc.ws.Customers.Delete(ctx, id, confirm)
}

// Contact cliente asociado a la ordem (popover de contacto).
// Ordem inexistente o sin cliente → domain.ErrNotFound.
func (uc *CustomerUseCase) Contact(orderID string) (dto.ContactResponse, error) {
	o, ok := uc.ws.Orders.Get(orderID)
	if !ok {
		return dto.ContactResponse{}, fmt.Errorf("ordem %s: %w", orderID, domain.ErrNotFound)
	}
	c, ok := crossref.NewResolver(uc.ws.Customers.Snapshot()).ForOrder(o)
	if !ok {
		return dto.ContactResponse{}, fmt.Errorf("cliente da ordem %s: %w", orderID, domain.ErrNotFound)
	}
	return dto.ContactResponse{OrderID: o.ID, Customer: toCustomerResponse(c)}, nil
}
