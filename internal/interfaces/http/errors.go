package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/atelier-api/internal/application/dto"
	"github.com/jhoicas/atelier-api/internal/domain"
)

// errorMapping status, código y mensaje por error de dominio. El orden importa:
// un fallo del gateway puede envolver también ErrNotFound.
var errorMapping = []struct {
	err     error
	status  int
	code    string
	message string
}{
	{domain.ErrNotConfirmed, fiber.StatusPreconditionRequired, "NOT_CONFIRMED", "confirme a exclusão com ?confirm=true"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION", ""},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE", "registro já existe"},
	{domain.ErrEmailAlreadyExists, fiber.StatusConflict, "EMAIL_EXISTS", "o email já está cadastrado"},
	{domain.ErrUserNotFound, fiber.StatusNotFound, "NOT_FOUND", "usuário não encontrado"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND", "registro não encontrado"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED", "credenciais inválidas"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN", "conta inativa ou sem permissão"},
	{domain.ErrStorage, fiber.StatusBadGateway, "STORAGE", "falha ao enviar o arquivo, tente novamente"},
	{domain.ErrGateway, fiber.StatusBadGateway, "GATEWAY", "não foi possível salvar, tente novamente"},
}

// writeError traduce err a dto.ErrorResponse. Los errores de validación devuelven
// el mensaje completo porque describe el campo inválido.
func writeError(c *fiber.Ctx, err error) error {
	for _, m := range errorMapping {
		if errors.Is(err, m.err) {
			msg := m.message
			if msg == "" {
				msg = err.Error()
			}
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: msg})
		}
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
}

func invalidID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
}
