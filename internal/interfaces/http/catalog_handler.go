package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/atelier-api/internal/application/dto"
	"github.com/jhoicas/atelier-api/internal/application/usecase"
)

// Campo del formulario con la imagen del producto.
const catalogImageField = "image"

// CatalogHandler gestão de catálogos. List también se monta como ruta pública del site.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// List godoc
// @Summary      Listar catálogo
// @Tags         catalog
// @Produce      json
// @Param        q         query  string  false  "Busca por nome, subcategoria ou descrição"
// @Param        category  query  string  false  "Calçados | Bolsas | Loja | Cutelaria | Todos"
// @Success      200       {object}  dto.ListResponse[dto.ProductResponse]
// @Router       /api/catalog [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List(listQuery(c, "category")))
}

// Create godoc
// @Summary      Novo item do catálogo
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductRequest  true  "Dados do produto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/catalog [post]
func (h *CatalogHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar item do catálogo
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                 true  "ID do produto"
// @Param        body  body  dto.ProductRequest  true  "Dados do produto"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/catalog/{id} [put]
func (h *CatalogHandler) Update(c *fiber.Ctx) error {
	id, ok := numericID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir item do catálogo
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        id       path   int   true  "ID do produto"
// @Param        confirm  query  bool  true  "Confirma a exclusão"
// @Success      200      {object}  dto.MessageResponse
// @Failure      428      {object}  dto.ErrorResponse
// @Router       /api/admin/catalog/{id} [delete]
func (h *CatalogHandler) Delete(c *fiber.Ctx) error {
	id, ok := numericID(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.uc.Delete(c.Context(), id, confirmation(c)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Item excluído do catálogo"})
}

// UploadImage godoc
// @Summary      Enviar imagem do catálogo
// @Tags         catalog
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        image  formData  file  true  "Imagem"
// @Success      201    {object}  dto.UploadResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      502    {object}  dto.ErrorResponse
// @Router       /api/admin/catalog/images [post]
func (h *CatalogHandler) UploadImage(c *fiber.Ctx) error {
	fh, err := c.FormFile(catalogImageField)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "imagem obrigatória (campo image)"})
	}
	f, err := fh.Open()
	if err != nil {
		return invalidBody(c)
	}
	defer f.Close()
	out, err := h.uc.UploadImage(c.Context(), usecase.Attachment{FileName: fh.Filename, Content: f})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
