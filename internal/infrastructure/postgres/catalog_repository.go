package postgres

import (
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/repository"
)

var _ repository.CatalogTable = (*Table[int64, entity.CatalogProduct])(nil)

// NewCatalogTable tabla products (catálogo del site).
func NewCatalogTable(q Querier) *Table[int64, entity.CatalogProduct] {
	return newTable(q, tableDef[int64, entity.CatalogProduct]{
		name:    "products",
		key:     "id",
		columns: []string{"id", "name", "main_category", "sub_category", "price", "description", "image", "rating", "instagram_url"},
		orderBy: "id",
		serial:  true,
		scan: func(s scanner) (entity.CatalogProduct, error) {
			var p entity.CatalogProduct
			err := s.Scan(&p.ID, &p.Name, &p.MainCategory, &p.SubCategory, &p.Price, &p.Description, &p.Image, &p.Rating, &p.InstagramURL)
			return p, err
		},
		values: func(p entity.CatalogProduct) map[string]any {
			return map[string]any{
				"name":          p.Name,
				"main_category": p.MainCategory,
				"sub_category":  p.SubCategory,
				"price":         p.Price,
				"description":   p.Description,
				"image":         p.Image,
				"rating":        p.Rating,
				"instagram_url": p.InstagramURL,
			}
		},
	})
}
