package usecase

import (
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/jhoicas/atelier-api/internal/application/dto"
	"github.com/jhoicas/atelier-api/internal/application/workspace"
	"github.com/jhoicas/atelier-api/internal/domain"
	"github.com/jhoicas/atelier-api/internal/domain/calendar"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
)

// CalendarUseCase agenda de entregas por prazo.
type CalendarUseCase struct {
	ws  *workspace.Workspace
	now Clock
}

// NewCalendarUseCase construye el caso de uso.
func NewCalendarUseCase(ws *workspace.Workspace, now Clock) *CalendarUseCase {
	if now == nil {
		now = time.Now
	}
	return &CalendarUseCase{ws: ws, now: now}
}

// Month grilla del mes. year/month en cero = mes actual; selected (opcional) marca un día.
func (uc *CalendarUseCase) Month(year, month int, selected string) (dto.CalendarMonthResponse, error) {
	now := uc.now()
	cur := calendar.CursorAt(now)
	if year != 0 || month != 0 {
		if month < 1 || month > 12 || year < 1 {
			return dto.CalendarMonthResponse{}, fmt.Errorf("%w: mês %d/%d", domain.ErrInvalidInput, month, year)
		}
		cur = calendar.Cursor{Year: year, Month: time.Month(month)}
	}
	if selected != "" && !validDate(selected) {
		return dto.CalendarMonthResponse{}, fmt.Errorf("%w: data %q (use AAAA-MM-DD)", domain.ErrInvalidInput, selected)
	}

	m := calendar.BuildMonth(cur.Year, cur.Month, uc.ws.Orders.Snapshot(), calendar.Today(now), selected)
	prev, next := cur.Prev(), cur.Next()
	return dto.CalendarMonthResponse{
		Year:          m.Year,
		Month:         int(m.Month),
		Label:         m.Label,
		LeadingBlanks: m.LeadingBlanks,
		Days: lo.Map(m.Days, func(d calendar.Day, _ int) dto.CalendarDayResponse {
			return dto.CalendarDayResponse{
				Day:        d.Day,
				Date:       d.Date,
				IsToday:    d.IsToday,
				IsSelected: d.IsSelected,
				Label:      d.Label,
				Orders:     orderResponses(d.Orders),
			}
		}),
		Prev: dto.CalendarCursor{Year: prev.Year, Month: int(prev.Month)},
		Next: dto.CalendarCursor{Year: next.Year, Month: int(next.Month)},
	}, nil
}

// Day ordens con prazo en date y la etiqueta "N Serviços".
func (uc *CalendarUseCase) Day(date string) (dto.CalendarDateResponse, error) {
	if !validDate(date) {
		return dto.CalendarDateResponse{}, fmt.Errorf("%w: data %q (use AAAA-MM-DD)", domain.ErrInvalidInput, date)
	}
	orders := calendar.OrdersOn(uc.ws.Orders.Snapshot(), date)
	return dto.CalendarDateResponse{
		Date:   date,
		Label:  calendar.ServiceCountLabel(len(orders)),
		Orders: orderResponses(orders),
	}, nil
}

func orderResponses(orders []entity.Order) []dto.OrderResponse {
	return lo.Map(orders, func(o entity.Order, _ int) dto.OrderResponse { return ToOrderResponse(o) })
}
