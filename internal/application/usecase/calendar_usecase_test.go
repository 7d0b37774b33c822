package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/atelier-api/internal/application/dto"
	"github.com/jhoicas/atelier-api/internal/application/usecase"
	"github.com/jhoicas/atelier-api/internal/domain"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/infrastructure/memory"
)

func seedAgenda(t *testing.T) func(*memory.Gateway) {
	return func(gw *memory.Gateway) {
		mustInsert(t, gw.Orders.Insert,
			entity.Order{ID: "#ORD-1001", CustomerName: "Ana", Service: "Pintura", Status: entity.OrderPendente, Deadline: "2024-03-10"},
			entity.Order{ID: "#ORD-1002", CustomerName: "Bruno", Service: "Costura", Status: entity.OrderEmRestauracao, Deadline: "2024-03-10"},
			entity.Order{ID: "#ORD-1003", CustomerName: "Carla", Service: "Solado", Status: entity.OrderPronto, Deadline: "2024-03-11"},
			entity.Order{ID: "#ORD-1004", CustomerName: "Davi", Service: "Tingimento", Status: entity.OrderPendente, Deadline: "2024-04-02"},
		)
	}
}

func TestCalendarMonth_MesActual(t *testing.T) {
	f := newFixture(t, seedAgenda(t))
	uc := usecase.NewCalendarUseCase(f.ws, clock())

	m, err := uc.Month(0, 0, "2024-03-10")
	require.NoError(t, err)
	assert.Equal(t, 2024, m.Year)
	assert.Equal(t, 3, m.Month)
	assert.Equal(t, "março de 2024", m.Label)
	assert.Equal(t, 5, m.LeadingBlanks, "01/03/2024 cae en viernes")
	require.Len(t, m.Days, 31)

	day10 := m.Days[9]
	assert.True(t, day10.IsToday)
	assert.True(t, day10.IsSelected)
	assert.Equal(t, "2 ENTREGAS", day10.Label)
	assert.Len(t, day10.Orders, 2)
	assert.Equal(t, "1 ENTREGA", m.Days[10].Label)

	assert.Equal(t, dto.CalendarCursor{Year: 2024, Month: 2}, m.Prev)
	assert.Equal(t, dto.CalendarCursor{Year: 2024, Month: 4}, m.Next)
}

func TestCalendarMonth_CambioDeAnio(t *testing.T) {
	f := newFixture(t, nil)
	uc := usecase.NewCalendarUseCase(f.ws, clock())

	m, err := uc.Month(2024, 12, "")
	require.NoError(t, err)
	assert.Equal(t, dto.CalendarCursor{Year: 2025, Month: 1}, m.Next)

	m, err = uc.Month(2024, 2, "")
	require.NoError(t, err)
	assert.Len(t, m.Days, 29, "2024 es bisiesto")

	_, err = uc.Month(2024, 13, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Month(2024, 3, "10/03/2024")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCalendarDay(t *testing.T) {
	f := newFixture(t, seedAgenda(t))
	uc := usecase.NewCalendarUseCase(f.ws, clock())

	d, err := uc.Day("2024-03-10")
	require.NoError(t, err)
	assert.Equal(t, "2 Serviços", d.Label)
	assert.Len(t, d.Orders, 2)

	d, err = uc.Day("2024-03-11")
	require.NoError(t, err)
	assert.Equal(t, "1 Serviço", d.Label)

	d, err = uc.Day("2024-03-12")
	require.NoError(t, err)
	assert.Equal(t, "0 Serviços", d.Label)
	assert.Empty(t, d.Orders)

	_, err = uc.Day("ontem")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
