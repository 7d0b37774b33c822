// Package calendar arma la vista mensual de la agenda de entregas.
// Las fechas son strings YYYY-MM-DD sin zona horaria; la comparación con el
// prazo de cada orden es por igualdad exacta del string.
package calendar

import (
	"fmt"
	"time"

	"github.com/jhoicas/atelier-api/internal/domain/entity"
)

var monthNames = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// Day celda de un día del mes.
type Day struct {
	Day        int
	Date       string
	Orders     []entity.Order
	IsToday    bool
	IsSelected bool
	Label      string // "1 ENTREGA", "3 ENTREGAS" o vacío
}

// Month vista completa de un mes.
type Month struct {
	Year          int
	Month         time.Month
	Label         string // "março de 2024"
	LeadingBlanks int    // día de la semana del día 1 (domingo = 0)
	Days          []Day
}

// DaysIn cantidad de días del mes (calendario gregoriano proléptico).
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday día de la semana del día 1, domingo = 0.
func FirstWeekday(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// DateString formatea año/mes/día como YYYY-MM-DD.
func DateString(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// Today fecha local de now en formato YYYY-MM-DD.
func Today(now time.Time) string {
	return now.Format(entity.DateLayout)
}

// MonthLabel etiqueta en pt-BR, ej: "março de 2024".
func MonthLabel(year int, month time.Month) string {
	return fmt.Sprintf("%s de %d", monthNames[month-1], year)
}

// BuildMonth arma la grilla del mes con las órdenes cuyo prazo cae en cada día.
// today y selected son fechas YYYY-MM-DD (selected puede ser vacío).
func BuildMonth(year int, month time.Month, orders []entity.Order, today, selected string) Month {
	byDate := make(map[string][]entity.Order)
	for _, o := range orders {
		byDate[o.Deadline] = append(byDate[o.Deadline], o)
	}

	n := DaysIn(year, month)
	days := make([]Day, 0, n)
	for day := 1; day <= n; day++ {
		date := DateString(year, month, day)
		onDay := byDate[date]
		days = append(days, Day{
			Day:        day,
			Date:       date,
			Orders:     onDay,
			IsToday:    date == today,
			IsSelected: date == selected,
			Label:      DeliveryLabel(len(onDay)),
		})
	}

	return Month{
		Year:          year,
		Month:         month,
		Label:         MonthLabel(year, month),
		LeadingBlanks: FirstWeekday(year, month),
		Days:          days,
	}
}

// OrdersOn órdenes cuyo prazo es exactamente date.
func OrdersOn(orders []entity.Order, date string) []entity.Order {
	out := make([]entity.Order, 0)
	for _, o := range orders {
		if o.Deadline == date {
			out = append(out, o)
		}
	}
	return out
}

// ServiceCountLabel "1 Serviço" o "N Serviços".
func ServiceCountLabel(n int) string {
	if n == 1 {
		return "1 Serviço"
	}
	return fmt.Sprintf("%d Serviços", n)
}

// DeliveryLabel insignia de la celda; vacío si no hay entregas.
func DeliveryLabel(n int) string {
	switch {
	case n == 0:
		return ""
	case n == 1:
		return "1 ENTREGA"
	default:
		return fmt.Sprintf("%d ENTREGAS", n)
	}
}

// Cursor mes que se está mostrando. Navegar no toca las órdenes.
type Cursor struct {
	Year  int
	Month time.Month
}

// CursorAt cursor en el mes de t.
func CursorAt(t time.Time) Cursor {
	return Cursor{Year: t.Year(), Month: t.Month()}
}

// Next mes siguiente.
func (c Cursor) Next() Cursor { return c.shift(1) }

// Prev mes anterior.
func (c Cursor) Prev() Cursor { return c.shift(-1) }

func (c Cursor) shift(delta int) Cursor {
	t := time.Date(c.Year, c.Month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	return Cursor{Year: t.Year(), Month: t.Month()}
}
