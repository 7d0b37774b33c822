package usecase

import (
	"time"

	"github.com/jhoicas/atelier-api/internal/application/dto"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/pkg/money"
)

// ToOrderResponse mapea una ordem a su DTO.
func ToOrderResponse(o entity.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		Customer:   o.CustomerName,
		Service:    o.Service,
		Status:     string(o.Status),
		Deadline:   o.Deadline,
		Value:      o.Value,
		ValueLabel: money.FormatBRL(o.Value),
		CreatedAt:  o.CreatedAt,
	}
}

func toCustomerResponse(c entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:      c.ID,
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Visits:  c.Visits,
		Loyalty: c.Loyalty,
	}
}

func toInventoryItemResponse(i entity.InventoryItem) dto.InventoryItemResponse {
	return dto.InventoryItemResponse{
		ID:         i.ID,
		Name:       i.Name,
		SKU:        i.SKU,
		Stock:      i.Stock,
		Price:      i.UnitPrice,
		PriceLabel: money.FormatBRL(i.UnitPrice),
		Category:   i.Category,
		Type:       string(i.Type),
		Level:      i.StockLevel(),
	}
}

func toInvoiceResponse(i entity.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:         i.ID,
		OrderID:    i.OrderID,
		Customer:   i.CustomerName,
		Date:       i.Date,
		Value:      i.Value,
		ValueLabel: money.FormatBRL(i.Value),
		Status:     string(i.Status),
		FileName:   i.FileName,
		FileURL:    i.FileURL,
	}
}

func toTransactionResponse(t entity.Transaction, now time.Time) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:          t.ID,
		Type:        string(t.Type),
		Description: t.Description,
		Value:       t.Value,
		ValueLabel:  money.FormatBRL(t.Value),
		Method:      t.Method,
		OccurredAt:  t.OccurredAt,
		DateLabel:   DateLabel(t.OccurredAt, now),
		Status:      t.Status,
		Channel:     string(t.Channel),
	}
}

func toProductResponse(p entity.CatalogProduct) dto.ProductResponse {
	return dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		MainCategory: p.MainCategory,
		Category:     p.SubCategory,
		Price:        p.Price,
		Description:  p.Description,
		Image:        p.Image,
		Rating:       p.Rating,
		InstagramURL: p.InstagramURL,
	}
}

// DateLabel "Hoje, 14:05" para movimientos del día de now; si no "02/03/2024 14:05".
func DateLabel(t, now time.Time) string {
	t = t.In(now.Location())
	if t.Year() == now.Year() && t.YearDay() == now.YearDay() {
		return "Hoje, " + t.Format("15:04")
	}
	return t.Format("02/01/2006 15:04")
}
