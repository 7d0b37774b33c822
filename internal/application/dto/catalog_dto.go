package dto

import "github.com/shopspring/decimal"

// ProductRequest alta o edición de un producto del catálogo.
type ProductRequest struct {
	Name         string          `json:"name"`
	MainCategory string          `json:"main_category"`
	Category     string          `json:"category"`
	Price        decimal.Decimal `json:"price"`
	Description  string          `json:"description"`
	Image        string          `json:"image,omitempty"`
	InstagramURL string          `json:"instagram_url,omitempty"`
}

// ProductResponse producto en respuestas (panel y site).
type ProductResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	MainCategory string          `json:"main_category"`
	Category     string          `json:"category"`
	Price        decimal.Decimal `json:"price"`
	Description  string          `json:"description"`
	Image        string          `json:"image"`
	Rating       decimal.Decimal `json:"rating"`
	InstagramURL string          `json:"instagram_url,omitempty"`
}

// UploadResponse URL pública de un archivo subido.
type UploadResponse struct {
	URL string `json:"url"`
}
