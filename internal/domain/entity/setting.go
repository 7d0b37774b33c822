package entity

import (
	"encoding/json"
	"time"
)

// Claves de configuración persistidas en la tabla settings.
const (
	SettingBusinessHours = "business_hours"
	SettingLandingPage   = "landing_page"
	SettingContactPhone  = "contact_phone"
)

// Setting fila clave/valor; Value es JSON opaco.
type Setting struct {
	Key       string
	Value     json.RawMessage
	UpdatedAt time.Time
}

// BusinessHours horario de atendimento exhibido en el site.
type BusinessHours struct {
	MonFri string `json:"monFri"`
	Sat    string `json:"sat"`
	Sun    string `json:"sun"`
}

// LandingPage textos e imagen del hero del site.
type LandingPage struct {
	HeroTitle    string `json:"heroTitle"`
	HeroSubtitle string `json:"heroSubtitle"`
	HeroImage    string `json:"heroImage"`
}

// DefaultBusinessHours valores usados mientras no haya nada persistido.
func DefaultBusinessHours() BusinessHours {
	return BusinessHours{MonFri: "09h às 19h", Sat: "09h às 18h", Sun: "Fechado"}
}

// DefaultLandingPage valores usados mientras no haya nada persistido.
func DefaultLandingPage() LandingPage {
	return LandingPage{
		HeroTitle:    "Restauração de Alta Classe",
		HeroSubtitle: "Maestria Sapataria Litoral",
		HeroImage:    "https://images.unsplash.com/photo-1449241717754-993d087b32c1?auto=format&fit=crop&q=80&w=2000",
	}
}
