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
	"github.com/jhoicas/atelier-api/pkg/logger"
)

// Valores por defecto del cliente creado desde "Novo Registro".
const registrationPlaceholder = "n/a"

// OrderUseCase atendimento e ordens.
type OrderUseCase struct {
	ws  *workspace.Workspace
	log *logger.Logger
	now Clock
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(ws *workspace.Workspace, log *logger.Logger, now Clock) *OrderUseCase {
	if now == nil {
		now = time.Now
	}
	return &OrderUseCase{ws: ws, log: log.Named("orders"), now: now}
}

// List ordens filtradas por texto (id, cliente, serviço) y status.
func (uc *OrderUseCase) List(q search.Query) dto.ListResponse[dto.OrderResponse] {
	all := uc.ws.Orders.Snapshot()
	found := search.Orders(all, q)
	return dto.ListResponse[dto.OrderResponse]{
		Items: lo.Map(found, func(o entity.Order, _ int) dto.OrderResponse { return ToOrderResponse(o) }),
		Count: len(found),
		Total: len(all),
	}
}

// Get una ordem por ID.
func (uc *OrderUseCase) Get(id string) (dto.OrderResponse, error) {
	o, ok := uc.ws.Orders.Get(id)
	if !ok {
		return dto.OrderResponse{}, fmt.Errorf("ordem %s: %w", id, domain.ErrNotFound)
	}
	return ToOrderResponse(o), nil
}

// Register crea una ordem Pendente y registra la visita del cliente: si ya existe uno con el
// mismo nombre (sin distinguir mayúsculas) suma una visita, si no lo crea con visits = 1.
// La ordem se persiste primero; si la actualización del cliente falla la ordem queda registrada
// y se devuelve el error.
func (uc *OrderUseCase) Register(ctx context.Context, in dto.RegisterOrderRequest) (*dto.RegisterOrderResponse, error) {
	name := strings.TrimSpace(in.Name)
	service := strings.TrimSpace(in.Service)
	if name == "" || service == "" {
		return nil, fmt.Errorf("%w: nome e serviço são obrigatórios", domain.ErrInvalidInput)
	}
	if in.Value.IsNegative() {
		return nil, fmt.Errorf("%w: valor negativo", domain.ErrInvalidInput)
	}
	now := uc.now()
	deadline := strings.TrimSpace(in.Deadline)
	if deadline == "" {
		deadline = now.Format(entity.DateLayout)
	} else if !validDate(deadline) {
		return nil, fmt.Errorf("%w: prazo %q (use AAAA-MM-DD)", domain.ErrInvalidInput, deadline)
	}

	unlock := uc.ws.LockRegistration()
	defer unlock()

	existing, found := crossref.NewResolver(uc.ws.Customers.Snapshot()).ByNameFold(name)
	customerID := existing.ID
	if !found {
		customerID = uc.ws.CustomerIDs.Next()
	}

	order, err := uc.ws.Orders.Create(ctx, entity.Order{
		ID:           uc.ws.OrderIDs.Next(),
		CustomerID:   customerID,
		CustomerName: name,
		Service:      service,
		Status:       entity.OrderPendente,
		Deadline:     deadline,
		Value:        in.Value,
		CreatedAt:    now,
	}, store.Front)
	if err != nil {
		return nil, err
	}

	var customer entity.Customer
	if found {
		customer, err = uc.ws.Customers.Update(ctx, existing.ID, func(c *entity.Customer) { c.Visits++ })
	} else {
		customer, err = uc.ws.Customers.Create(ctx, entity.Customer{
			ID:        customerID,
			Name:      name,
			Email:     orDefault(in.Email, registrationPlaceholder),
			Phone:     orDefault(in.Phone, registrationPlaceholder),
			Visits:    1,
			Loyalty:   entity.DefaultLoyalty,
			CreatedAt: now,
		}, store.Back)
	}
	if err != nil {
		uc.log.Warn().Err(err).Str("order_id", order.ID).Msg("ordem registrada sem atualizar o cliente")
		return nil, fmt.Errorf("ordem %s registrada, cliente não atualizado: %w", order.ID, err)
	}

	uc.log.Info().Str("order_id", order.ID).Str("customer_id", customer.ID).Bool("new_customer", !found).Msg("novo registro")
	return &dto.RegisterOrderResponse{
		Order:           ToOrderResponse(order),
		Customer:        toCustomerResponse(customer),
		CustomerCreated: !found,
	}, nil
}

// UpdateStatus cambia el status de la ordem.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, id, status string) (dto.OrderResponse, error) {
	return uc.Update(ctx, id, dto.UpdateOrderRequest{Status: &status})
}

// Update aplica cambios parciales y los persiste.
func (uc *OrderUseCase) Update(ctx context.Context, id string, in dto.UpdateOrderRequest) (dto.OrderResponse, error) {
	if in.Status != nil && !entity.OrderStatus(*in.Status).Valid() {
		return dto.OrderResponse{}, fmt.Errorf("%w: status %q", domain.ErrInvalidInput, *in.Status)
	}
	if in.Deadline != nil && !validDate(*in.Deadline) {
		return dto.OrderResponse{}, fmt.Errorf("%w: prazo %q (use AAAA-MM-DD)", domain.ErrInvalidInput, *in.Deadline)
	}
	if in.Service != nil && strings.TrimSpace(*in.Service) == "" {
		return dto.OrderResponse{}, fmt.Errorf("%w: serviço vazio", domain.ErrInvalidInput)
	}
	if in.Value != nil && in.Value.IsNegative() {
		return dto.OrderResponse{}, fmt.Errorf("%w: valor negativo", domain.ErrInvalidInput)
	}
	saved, err := uc.ws.Orders.Update(ctx, id, func(o *entity.Order) {
		if in.Status != nil {
			o.Status = entity.OrderStatus(*in.Status)
		}
		if in.Service != nil {
			o.Service = strings.TrimSpace(*in.Service)
		}
		if in.Deadline != nil {
			o.Deadline = *in.Deadline
		}
		if in.Value != nil {
			o.Value = *in.Value
		}
	})
	if err != nil {
		return dto.OrderResponse{}, err
	}
	return ToOrderResponse(saved), nil
}

// Delete exclui la ordem tras la confirmación.
func (uc *OrderUseCase) Delete(ctx context.Context, id string, confirm store.Confirmer) error {
	return uc.ws.Orders.Delete(ctx, id, confirm)
}

func validDate(s string) bool {
	_, err := time.Parse(entity.DateLayout, s)
	return err == nil
}

func orDefault(s, def string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return def
}
