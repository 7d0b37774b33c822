package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/atelier-api/internal/application/dto"
	"github.com/jhoicas/atelier-api/internal/application/usecase"
)

// InventoryHandler estoque e insumos (protegido).
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar estoque
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        q     query  string  false  "Busca por nome, SKU ou categoria"
// @Param        type  query  string  false  "Serviço | Boutique | Todos"
// @Success      200   {object}  dto.ListResponse[dto.InventoryItemResponse]
// @Router       /api/admin/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List(listQuery(c, "type")))
}

// Summary godoc
// @Summary      Resumo do estoque por nível
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventorySummaryResponse
// @Router       /api/admin/inventory/summary [get]
func (h *InventoryHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(h.uc.Summary())
}

// Create godoc
// @Summary      Novo insumo
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventoryItemRequest  true  "Dados do item"
// @Success      201   {object}  dto.InventoryItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventoryItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// AdjustStock godoc
// @Summary      Ajustar estoque (+/-)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "ID do item"
// @Param        body  body  dto.AdjustStockRequest  true  "Delta"
// @Success      200   {object}  dto.InventoryItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/inventory/{id}/stock [post]
func (h *InventoryHandler) AdjustStock(c *fiber.Ctx) error {
	id, ok := numericID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.AdjustStock(c.Context(), id, in.Delta)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir item do estoque
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id       path   int   true  "ID do item"
// @Param        confirm  query  bool  true  "Confirma a exclusão"
// @Success      200      {object}  dto.MessageResponse
// @Failure      428      {object}  dto.ErrorResponse
// @Router       /api/admin/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	id, ok := numericID(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.uc.Delete(c.Context(), id, confirmation(c)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Item excluído com sucesso!"})
}
