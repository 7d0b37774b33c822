package entity

import "time"

// DefaultLoyalty nivel de fidelidad asignado a todo cliente nuevo.
const DefaultLoyalty = "Silver"

// Customer cliente del atelier.
type Customer struct {
	ID        string // C1, C2...
	Name      string
	Email     string
	Phone     string
	Visits    int
	Loyalty   string
	CreatedAt time.Time
}

// Key implementa Keyed.
func (c Customer) Key() string { return c.ID }
