package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/atelier-api/internal/application/usecase"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler planillas XLSX con el mismo filtro que los listados.
type ExportHandler struct {
	uc *usecase.ExportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *usecase.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

func sendSheet(c *fiber.Ctx, name string, data []byte, err error) error {
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, xlsxMIME)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.xlsx"`, name))
	return c.Send(data)
}

// Orders godoc
// @Summary      Exportar ordens (XLSX)
// @Tags         exports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        q       query  string  false  "Busca"
// @Param        status  query  string  false  "Status"
// @Success      200     {file}  binary
// @Router       /api/admin/exports/orders [get]
func (h *ExportHandler) Orders(c *fiber.Ctx) error {
	data, err := h.uc.Orders(listQuery(c, "status"))
	return sendSheet(c, "ordens", data, err)
}

// Inventory godoc
// @Summary      Exportar estoque (XLSX)
// @Tags         exports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        q     query  string  false  "Busca"
// @Param        type  query  string  false  "Tipo"
// @Success      200   {file}  binary
// @Router       /api/admin/exports/inventory [get]
func (h *ExportHandler) Inventory(c *fiber.Ctx) error {
	data, err := h.uc.Inventory(listQuery(c, "type"))
	return sendSheet(c, "estoque", data, err)
}

// Transactions godoc
// @Summary      Exportar fluxo financeiro (XLSX)
// @Tags         exports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        q     query  string  false  "Busca"
// @Param        type  query  string  false  "Entrada | Saída"
// @Success      200   {file}  binary
// @Router       /api/admin/exports/transactions [get]
func (h *ExportHandler) Transactions(c *fiber.Ctx) error {
	data, err := h.uc.Transactions(listQuery(c, "type"))
	return sendSheet(c, "financeiro", data, err)
}
