package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin     = "admin"
	RoleAtendente = "atendente"
)

// User representa un usuario del painel administrativo.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FullName     string
	AvatarURL    string
	Role         string
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
