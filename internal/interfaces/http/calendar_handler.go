package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/atelier-api/internal/application/usecase"
)

// CalendarHandler agenda de entregas (protegido).
type CalendarHandler struct {
	uc *usecase.CalendarUseCase
}

// NewCalendarHandler construye el handler.
func NewCalendarHandler(uc *usecase.CalendarUseCase) *CalendarHandler {
	return &CalendarHandler{uc: uc}
}

// Month godoc
// @Summary      Calendário do mês
// @Tags         calendar
// @Security     Bearer
// @Produce      json
// @Param        year      query  int     false  "Ano (padrão: atual)"
// @Param        month     query  int     false  "Mês 1-12 (padrão: atual)"
// @Param        selected  query  string  false  "Dia selecionado AAAA-MM-DD"
// @Success      200       {object}  dto.CalendarMonthResponse
// @Failure      400       {object}  dto.ErrorResponse
// @Router       /api/admin/calendar [get]
func (h *CalendarHandler) Month(c *fiber.Ctx) error {
	out, err := h.uc.Month(c.QueryInt("year", 0), c.QueryInt("month", 0), c.Query("selected"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Day godoc
// @Summary      Entregas do dia
// @Tags         calendar
// @Security     Bearer
// @Produce      json
// @Param        date  path  string  true  "AAAA-MM-DD"
// @Success      200   {object}  dto.CalendarDateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/calendar/{date} [get]
func (h *CalendarHandler) Day(c *fiber.Ctx) error {
	out, err := h.uc.Day(c.Params("date"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
