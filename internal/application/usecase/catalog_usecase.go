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
	"github.com/jhoicas/atelier-api/internal/domain/repository"
	"github.com/jhoicas/atelier-api/internal/domain/search"
)

// Carpeta de las imágenes dentro del bucket product-images.
const catalogImageDir = "products"

// CatalogUseCase gestão de catálogos (productos del site).
type CatalogUseCase struct {
	ws    *workspace.Workspace
	files repository.FileStorage
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(ws *workspace.Workspace, files repository.FileStorage) *CatalogUseCase {
	return &CatalogUseCase{ws: ws, files: files}
}

// List productos filtrados por texto y categoría principal. Es también el listado público.
func (uc *CatalogUseCase) List(q search.Query) dto.ListResponse[dto.ProductResponse] {
	all := uc.ws.Catalog.Snapshot()
	found := search.Catalog(all, q)
	return dto.ListResponse[dto.ProductResponse]{
		Items: lo.Map(found, func(p entity.CatalogProduct, _ int) dto.ProductResponse { return toProductResponse(p) }),
		Count: len(found),
		Total: len(all),
	}
}

// Create nuevo producto con imagen por defecto si no trae y rating 5.
func (uc *CatalogUseCase) Create(ctx context.Context, in dto.ProductRequest) (dto.ProductResponse, error) {
	p, err := productFromRequest(in)
	if err != nil {
		return dto.ProductResponse{}, err
	}
	saved, err := uc.ws.Catalog.Create(ctx, p, store.Front)
	if err != nil {
		return dto.ProductResponse{}, err
	}
	return toProductResponse(saved), nil
}

// Update reemplaza los datos editables. Guardar desde el formulario vuelve el rating a 5.
func (uc *CatalogUseCase) Update(ctx context.Context, id int64, in dto.ProductRequest) (dto.ProductResponse, error) {
	p, err := productFromRequest(in)
	if err != nil {
		return dto.ProductResponse{}, err
	}
	saved, err := uc.ws.Catalog.Update(ctx, id, func(cur *entity.CatalogProduct) {
		p.ID = cur.ID
		*cur = p
	})
	if err != nil {
		return dto.ProductResponse{}, err
	}
	return toProductResponse(saved), nil
}

// Delete exclui el producto tras la confirmación; deja de aparecer en el site.
func (uc *CatalogUseCase) Delete(ctx context.Context, id int64, confirm store.Confirmer) error {
	return uc.ws.Catalog.Delete(ctx, id, confirm)
}

// UploadImage sube la imagen a product-images/products/ y devuelve la URL pública.
func (uc *CatalogUseCase) UploadImage(ctx context.Context, file Attachment) (dto.UploadResponse, error) {
	if file.Content == nil {
		return dto.UploadResponse{}, fmt.Errorf("%w: imagem vazia", domain.ErrInvalidInput)
	}
	url, err := uc.files.Upload(ctx, entity.CatalogBucket, objectName(catalogImageDir, file.FileName), file.Content)
	if err != nil {
		return dto.UploadResponse{}, fmt.Errorf("enviar imagem: %w", err)
	}
	return dto.UploadResponse{URL: url}, nil
}

func productFromRequest(in dto.ProductRequest) (entity.CatalogProduct, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entity.CatalogProduct{}, fmt.Errorf("%w: nome obrigatório", domain.ErrInvalidInput)
	}
	if !entity.ValidMainCategory(in.MainCategory) {
		return entity.CatalogProduct{}, fmt.Errorf("%w: categoria %q", domain.ErrInvalidInput, in.MainCategory)
	}
	if in.Price.IsNegative() {
		return entity.CatalogProduct{}, fmt.Errorf("%w: preço negativo", domain.ErrInvalidInput)
	}
	return entity.CatalogProduct{
		Name:         name,
		MainCategory: in.MainCategory,
		SubCategory:  strings.TrimSpace(in.Category),
		Price:        in.Price,
		Description:  strings.TrimSpace(in.Description),
		Image:        orDefault(in.Image, entity.DefaultProductImage),
		Rating:       entity.DefaultRating,
		InstagramURL: strings.TrimSpace(in.InstagramURL),
	}, nil
}
