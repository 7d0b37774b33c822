package usecase

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/jhoicas/atelier-api/internal/application/dto"
	"github.com/jhoicas/atelier-api/internal/application/store"
	"github.com/jhoicas/atelier-api/internal/application/workspace"
	"github.com/jhoicas/atelier-api/internal/domain"
	"github.com/jhoicas/atelier-api/internal/domain/crossref"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/repository"
	"github.com/jhoicas/atelier-api/internal/domain/search"
)

// InvoiceUseCase notas fiscais.
type InvoiceUseCase struct {
	ws           *workspace.Workspace
	files        repository.FileStorage
	receipts     ReceiptRenderer
	settings     *SettingsUseCase
	businessName string
	now          Clock
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(
	ws *workspace.Workspace,
	files repository.FileStorage,
	receipts ReceiptRenderer,
	settings *SettingsUseCase,
	businessName string,
	now Clock,
) *InvoiceUseCase {
	if now == nil {
		now = time.Now
	}
	return &InvoiceUseCase{
		ws:           ws,
		files:        files,
		receipts:     receipts,
		settings:     settings,
		businessName: businessName,
		now:          now,
	}
}

// List notas filtradas por número, OS o cliente y status.
func (uc *InvoiceUseCase) List(q search.Query) dto.ListResponse[dto.InvoiceResponse] {
	all := uc.ws.Invoices.Snapshot()
	found := search.Invoices(all, q)
	return dto.ListResponse[dto.InvoiceResponse]{
		Items: lo.Map(found, func(i entity.Invoice, _ int) dto.InvoiceResponse { return toInvoiceResponse(i) }),
		Count: len(found),
		Total: len(all),
	}
}

// Get una nota por número.
func (uc *InvoiceUseCase) Get(id string) (dto.InvoiceResponse, error) {
	inv, ok := uc.ws.Invoices.Get(id)
	if !ok {
		return dto.InvoiceResponse{}, fmt.Errorf("nota %s: %w", id, domain.ErrNotFound)
	}
	return toInvoiceResponse(inv), nil
}

// Create "Nova Nota Fiscal". Si hay archivo se sube primero al bucket tax-invoices;
// un número fiscal repetido devuelve domain.ErrDuplicate.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest, file *Attachment) (dto.InvoiceResponse, error) {
	inv := entity.Invoice{
		ID:           strings.TrimSpace(in.ID),
		OrderID:      strings.TrimSpace(in.OrderID),
		CustomerName: strings.TrimSpace(in.Customer),
		Date:         strings.TrimSpace(in.Date),
		Value:        in.Value,
		Status:       entity.InvoiceStatus(in.Status),
	}
	if inv.Status == "" {
		inv.Status = entity.InvoiceEmitida
	}
	if inv.Date == "" {
		inv.Date = uc.now().Format(entity.DateLayout)
	}
	if err := validateInvoice(inv); err != nil {
		return dto.InvoiceResponse{}, err
	}
	if _, exists := uc.ws.Invoices.Get(inv.ID); exists {
		return dto.InvoiceResponse{}, fmt.Errorf("nota %s: %w", inv.ID, domain.ErrDuplicate)
	}

	if file != nil && file.Content != nil {
		url, err := uc.files.Upload(ctx, entity.InvoiceBucket, objectName("", file.FileName), file.Content)
		if err != nil {
			return dto.InvoiceResponse{}, fmt.Errorf("enviar arquivo da nota: %w", err)
		}
		inv.FileName = file.FileName
		inv.FileURL = url
	}

	saved, err := uc.ws.Invoices.Create(ctx, inv, store.Front)
	if err != nil {
		return dto.InvoiceResponse{}, err
	}
	return toInvoiceResponse(saved), nil
}

// Update edita la nota; cambiar el número a uno existente devuelve domain.ErrDuplicate.
func (uc *InvoiceUseCase) Update(ctx context.Context, id string, in dto.UpdateInvoiceRequest) (dto.InvoiceResponse, error) {
	current, ok := uc.ws.Invoices.Get(id)
	if !ok {
		return dto.InvoiceResponse{}, fmt.Errorf("nota %s: %w", id, domain.ErrNotFound)
	}
	next := current
	applyInvoicePatch(&next, in)
	if err := validateInvoice(next); err != nil {
		return dto.InvoiceResponse{}, err
	}
	if next.ID != id {
		if _, exists := uc.ws.Invoices.Get(next.ID); exists {
			return dto.InvoiceResponse{}, fmt.Errorf("nota %s: %w", next.ID, domain.ErrDuplicate)
		}
	}
	saved, err := uc.ws.Invoices.Update(ctx, id, func(inv *entity.Invoice) { applyInvoicePatch(inv, in) })
	if err != nil {
		return dto.InvoiceResponse{}, err
	}
	return toInvoiceResponse(saved), nil
}

// Delete exclui la nota tras la confirmación. El archivo adjunto no se borra del bucket.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id string, confirm store.Confirmer) error {
	return uc.ws.Invoices.Delete(ctx, id, confirm)
}

// Receipt genera el recibo PDF. La OS y el cliente se buscan por la referencia y el nombre
// de la nota; si no aparecen el recibo sale sin esos bloques.
func (uc *InvoiceUseCase) Receipt(ctx context.Context, id string) ([]byte, error) {
	inv, ok := uc.ws.Invoices.Get(id)
	if !ok {
		return nil, fmt.Errorf("nota %s: %w", id, domain.ErrNotFound)
	}
	r := InvoiceReceipt{Invoice: inv, BusinessName: uc.businessName, IssuedAt: uc.now()}

	resolver := crossref.NewResolver(uc.ws.Customers.Snapshot())
	if o, ok := uc.ws.Orders.Get(inv.OrderID); ok {
		r.Order = &o
		if c, ok := resolver.ForOrder(o); ok {
			r.Customer = &c
		}
	}
	if r.Customer == nil {
		if c, ok := resolver.ByExactName(inv.CustomerName); ok {
			r.Customer = &c
		}
	}
	if uc.settings != nil {
		if s, err := uc.settings.Load(ctx); err == nil {
			r.ContactPhone = s.ContactPhone
		}
	}
	return uc.receipts.InvoiceReceipt(ctx, r)
}

func applyInvoicePatch(inv *entity.Invoice, in dto.UpdateInvoiceRequest) {
	if in.ID != nil {
		inv.ID = strings.TrimSpace(*in.ID)
	}
	if in.OrderID != nil {
		inv.OrderID = strings.TrimSpace(*in.OrderID)
	}
	if in.Customer != nil {
		inv.CustomerName = strings.TrimSpace(*in.Customer)
	}
	if in.Date != nil {
		inv.Date = strings.TrimSpace(*in.Date)
	}
	if in.Value != nil {
		inv.Value = *in.Value
	}
	if in.Status != nil {
		inv.Status = entity.InvoiceStatus(*in.Status)
	}
}

func validateInvoice(inv entity.Invoice) error {
	switch {
	case inv.ID == "":
		return fmt.Errorf("%w: número da nota obrigatório", domain.ErrInvalidInput)
	case inv.CustomerName == "":
		return fmt.Errorf("%w: cliente obrigatório", domain.ErrInvalidInput)
	case !validDate(inv.Date):
		return fmt.Errorf("%w: data %q (use AAAA-MM-DD)", domain.ErrInvalidInput, inv.Date)
	case inv.Value.IsNegative():
		return fmt.Errorf("%w: valor negativo", domain.ErrInvalidInput)
	case !inv.Status.Valid():
		return fmt.Errorf("%w: status %q", domain.ErrInvalidInput, inv.Status)
	}
	return nil
}

// objectName nombre aleatorio conservando la extensión del archivo original.
func objectName(dir, fileName string) string {
	name := uuid.NewString() + strings.ToLower(path.Ext(fileName))
	if dir == "" {
		return name
	}
	return dir + "/" + name
}
