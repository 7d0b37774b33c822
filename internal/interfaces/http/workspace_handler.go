package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/atelier-api/internal/application/dto"
	"github.com/jhoicas/atelier-api/internal/application/workspace"
	"github.com/jhoicas/atelier-api/internal/domain"
)

// WorkspaceHandler operaciones sobre las colecciones en memoria.
type WorkspaceHandler struct {
	ws *workspace.Workspace
}

// NewWorkspaceHandler construye el handler.
func NewWorkspaceHandler(ws *workspace.Workspace) *WorkspaceHandler {
	return &WorkspaceHandler{ws: ws}
}

// Reload godoc
// @Summary      Recarregar dados
// @Description  Lê de novo as coleções do banco. Sem parâmetro recarrega todas; collection aceita uma lista separada por vírgula.
// @Tags         workspace
// @Security     Bearer
// @Produce      json
// @Param        collection  query  string  false  "orders, customers, inventory, invoices, transactions, products"
// @Success      200  {object}  dto.ReloadResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ReloadResponse
// @Router       /api/admin/reload [post]
func (h *WorkspaceHandler) Reload(c *fiber.Ctx) error {
	var keys []string
	for _, k := range strings.Split(c.Query("collection"), ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	err := h.ws.Reload(c.UserContext(), keys...)
	switch {
	case err == nil:
		return c.JSON(dto.ReloadResponse{Loaded: h.ws.Loaded()})
	case errors.Is(err, domain.ErrInvalidInput):
		return writeError(c, err)
	default:
		return c.Status(fiber.StatusBadGateway).JSON(dto.ReloadResponse{Loaded: h.ws.Loaded()})
	}
}
