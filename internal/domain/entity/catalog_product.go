package entity

import "github.com/shopspring/decimal"

// Categorías principales del catálogo.
const (
	MainCategoryCalcados  = "Calçados"
	MainCategoryBolsas    = "Bolsas"
	MainCategoryLoja      = "Loja"
	MainCategoryCutelaria = "Cutelaria"
)

// ValidMainCategory indica si la categoría principal es conocida.
func ValidMainCategory(c string) bool {
	switch c {
	case MainCategoryCalcados, MainCategoryBolsas, MainCategoryLoja, MainCategoryCutelaria:
		return true
	}
	return false
}

// Valores por defecto de un producto recién creado.
const (
	CatalogBucket       = "product-images"
	DefaultProductImage = "https://images.unsplash.com/photo-1595950653106-6c9ebd614d3a?auto=format&fit=crop&q=80&w=400"
)

// DefaultRating nota inicial de todo producto del catálogo.
var DefaultRating = decimal.NewFromInt(5)

// CatalogProduct servicio o producto publicado en el site.
type CatalogProduct struct {
	ID           int64
	Name         string
	MainCategory string
	SubCategory  string
	Price        decimal.Decimal
	Description  string
	Image        string
	Rating       decimal.Decimal
	InstagramURL string
}

// Key implementa Keyed.
func (p CatalogProduct) Key() int64 { return p.ID }
