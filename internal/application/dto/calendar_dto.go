package dto

// CalendarDayResponse celda del calendario de entregas.
type CalendarDayResponse struct {
	Day        int             `json:"day"`
	Date       string          `json:"date"`
	IsToday    bool            `json:"is_today"`
	IsSelected bool            `json:"is_selected"`
	Label      string          `json:"label,omitempty"`
	Orders     []OrderResponse `json:"orders"`
}

// CalendarMonthResponse mes visible; LeadingBlanks = celdas vacías antes del día 1 (domingo = 0).
type CalendarMonthResponse struct {
	Year          int                   `json:"year"`
	Month         int                   `json:"month"`
	Label         string                `json:"label"`
	LeadingBlanks int                   `json:"leading_blanks"`
	Days          []CalendarDayResponse `json:"days"`
	Prev          CalendarCursor        `json:"prev"`
	Next          CalendarCursor        `json:"next"`
}

// CalendarCursor año/mes para navegar.
type CalendarCursor struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// CalendarDateResponse detalle de un día seleccionado.
type CalendarDateResponse struct {
	Date   string          `json:"date"`
	Label  string          `json:"label"` // "2 Serviços"
	Orders []OrderResponse `json:"orders"`
}
