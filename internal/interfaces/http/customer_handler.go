package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/atelier-api/internal/application/dto"
	"github.com/jhoicas/atelier-api/internal/application/usecase"
)

// CustomerHandler cadastro de clientes (protegido).
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// List godoc
// @Summary      Listar clientes
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  false  "Busca por nome, email ou telefone"
// @Success      200  {object}  dto.ListResponse[dto.CustomerResponse]
// @Router       /api/admin/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List(listQuery(c, "")))
}

// Create godoc
// @Summary      Novo cadastro
// @Tags         customers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomerRequest  true  "Dados do cliente"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Excluir cliente
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        id       path   string  true  "ID do cliente"
// @Param        confirm  query  bool    true  "Confirma a exclusão"
// @Success      200      {object}  dto.MessageResponse
// @Failure      428      {object}  dto.ErrorResponse
// @Router       /api/admin/customers/{id} [delete]
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, ok := textID(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.uc.Delete(c.Context(), id, confirmation(c)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Cliente excluído com sucesso!"})
}

// Contact godoc
// @Summary      Contato do cliente de uma ordem
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da ordem"
// @Success      200  {object}  dto.ContactResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/orders/{id}/contact [get]
func (h *CustomerHandler) Contact(c *fiber.Ctx) error {
	id, ok := textID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.Contact(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
