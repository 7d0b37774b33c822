package dto

import "github.com/jhoicas/atelier-api/internal/domain/entity"

// SettingsResponse configuración del site; lo no persistido llega con valores por defecto.
type SettingsResponse struct {
	BusinessHours entity.BusinessHours `json:"business_hours"`
	LandingPage   entity.LandingPage   `json:"landing_page"`
	ContactPhone  string               `json:"contact_phone"`
}

// SaveSettingsRequest campos nil no se guardan.
type SaveSettingsRequest struct {
	BusinessHours *entity.BusinessHours `json:"business_hours,omitempty"`
	LandingPage   *entity.LandingPage   `json:"landing_page,omitempty"`
	ContactPhone  *string               `json:"contact_phone,omitempty"`
}
