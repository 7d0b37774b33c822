package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/atelier-api/internal/domain/calendar"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
)

func TestBuildMonth_FebreroBisiesto(t *testing.T) {
	m := calendar.BuildMonth(2024, time.February, nil, "", "")
	assert.Len(t, m.Days, 29)
	assert.Equal(t, 4, m.LeadingBlanks, "01/02/2024 fue jueves")
}

func TestBuildMonth_FebreroComun(t *testing.T) {
	m := calendar.BuildMonth(2023, time.February, nil, "", "")
	assert.Len(t, m.Days, 28)
}

func TestDaysIn_Siglos(t *testing.T) {
	assert.Equal(t, 28, calendar.DaysIn(1900, time.February))
	assert.Equal(t, 29, calendar.DaysIn(2000, time.February))
	assert.Equal(t, 31, calendar.DaysIn(2024, time.December))
}

func agenda() []entity.Order {
	return []entity.Order{
		{ID: "#ORD-1", CustomerName: "Ana", Deadline: "2024-03-10"},
		{ID: "#ORD-2", CustomerName: "Beto", Deadline: "2024-03-10"},
		{ID: "#ORD-3", CustomerName: "Caio", Deadline: "2024-03-11"},
	}
}

func TestOrdersOn_FechaSeleccionada(t *testing.T) {
	got := calendar.OrdersOn(agenda(), "2024-03-10")
	require.Len(t, got, 2)
	assert.Equal(t, "Ana", got[0].CustomerName)
	assert.Equal(t, "Beto", got[1].CustomerName)
	assert.Equal(t, "2 Serviços", calendar.ServiceCountLabel(len(got)))
}

func TestServiceCountLabel(t *testing.T) {
	assert.Equal(t, "1 Serviço", calendar.ServiceCountLabel(1))
	assert.Equal(t, "0 Serviços", calendar.ServiceCountLabel(0))
	assert.Equal(t, "5 Serviços", calendar.ServiceCountLabel(5))
}

func TestBuildMonth_AgrupaPorPrazoYMarcaHoy(t *testing.T) {
	m := calendar.BuildMonth(2024, time.March, agenda(), "2024-03-11", "2024-03-10")

	day10 := m.Days[9]
	assert.Equal(t, "2024-03-10", day10.Date)
	assert.Len(t, day10.Orders, 2)
	assert.Equal(t, "2 ENTREGAS", day10.Label)
	assert.True(t, day10.IsSelected)
	assert.False(t, day10.IsToday)

	day11 := m.Days[10]
	assert.Equal(t, "1 ENTREGA", day11.Label)
	assert.True(t, day11.IsToday)

	assert.Empty(t, m.Days[0].Label)
	assert.Equal(t, "março de 2024", m.Label)
}

func TestCursor_Navegacion(t *testing.T) {
	c := calendar.Cursor{Year: 2024, Month: time.December}
	assert.Equal(t, calendar.Cursor{Year: 2025, Month: time.January}, c.Next())
	assert.Equal(t, calendar.Cursor{Year: 2024, Month: time.November}, c.Prev())

	jan := calendar.Cursor{Year: 2024, Month: time.January}
	assert.Equal(t, calendar.Cursor{Year: 2023, Month: time.December}, jan.Prev())
}

func TestToday(t *testing.T) {
	now := time.Date(2024, time.March, 5, 23, 59, 0, 0, time.Local)
	assert.Equal(t, "2024-03-05", calendar.Today(now))
}
