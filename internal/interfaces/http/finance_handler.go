package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/atelier-api/internal/application/dto"
	"github.com/jhoicas/atelier-api/internal/application/usecase"
)

// FinanceHandler fluxo financeiro (protegido).
type FinanceHandler struct {
	uc *usecase.FinanceUseCase
}

// NewFinanceHandler construye el handler.
func NewFinanceHandler(uc *usecase.FinanceUseCase) *FinanceHandler {
	return &FinanceHandler{uc: uc}
}

// List godoc
// @Summary      Listar transações
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        q     query  string  false  "Busca por descrição ou método"
// @Param        type  query  string  false  "Entrada | Saída | Todos"
// @Success      200   {object}  dto.ListResponse[dto.TransactionResponse]
// @Router       /api/admin/transactions [get]
func (h *FinanceHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List(listQuery(c, "type")))
}

// Summary godoc
// @Summary      Entradas, saídas e saldo
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.FinanceSummaryResponse
// @Router       /api/admin/transactions/summary [get]
func (h *FinanceHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(h.uc.Summary())
}

// Create godoc
// @Summary      Nova transação
// @Tags         finance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransactionRequest  true  "Dados da transação"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/transactions [post]
func (h *FinanceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
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
// @Summary      Excluir transação
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        id       path   int   true  "ID da transação"
// @Param        confirm  query  bool  true  "Confirma a exclusão"
// @Success      200      {object}  dto.MessageResponse
// @Failure      428      {object}  dto.ErrorResponse
// @Router       /api/admin/transactions/{id} [delete]
func (h *FinanceHandler) Delete(c *fiber.Ctx) error {
	id, ok := numericID(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.uc.Delete(c.Context(), id, confirmation(c)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Transação excluída com sucesso!"})
}
