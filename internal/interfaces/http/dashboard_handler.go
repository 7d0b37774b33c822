package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/atelier-api/internal/application/analytics"
)

// DashboardHandler maneja el "Painel geral".
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Indicadores do painel
// @Description  Faturamento total, ordens ativas e urgentes, clientes, vendas boutique, estoque e saldo.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/admin/dashboard [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	return c.JSON(h.uc.GetSummary())
}
