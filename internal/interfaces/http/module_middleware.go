package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/atelier-api/internal/application/dto"
)

// loadChecker es el contrato mínimo para saber si una colección ya se cargó.
// Lo implementa *store.Collection.
type loadChecker interface {
	Name() string
	Loaded() bool
	Load(ctx context.Context) error
}

// RequireLoaded responde 503 mientras alguna de las colecciones no tuvo un Load exitoso.
// Una colección sin cargar se reintenta una vez por request antes de rechazarlo.
func RequireLoaded(collections ...loadChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		for _, col := range collections {
			if col.Loaded() || col.Load(c.UserContext()) == nil {
				continue
			}
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "NOT_LOADED",
				Message: "os dados de '" + col.Name() + "' ainda não foram carregados, tente novamente",
			})
		}
		return c.Next()
	}
}
