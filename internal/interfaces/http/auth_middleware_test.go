package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/atelier-api/internal/application/auth"
	"github.com/jhoicas/atelier-api/internal/application/dto"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/atelier-api/internal/interfaces/http"
	"github.com/jhoicas/atelier-api/pkg/logger"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testPassword  = "couro-nobre-123"
)

var testJWT = auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 60, Issuer: "atelier-test"}

// newAuth crea el caso de uso con un usuario por rol (admin@ y atendente@).
func newAuth(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	uc := auth.NewAuthUseCase(memory.NewUserRepo(), testJWT, logger.Nop())
	for _, role := range []string{entity.RoleAdmin, entity.RoleAtendente} {
		_, err := uc.CreateUser(context.Background(), role+"@atelier.com", testPassword, "", role)
		require.NoError(t, err)
	}
	return uc
}

// tokenForRole inicia sesión con el usuario del rol y devuelve el header Authorization.
func tokenForRole(t *testing.T, uc *auth.AuthUseCase, role string) string {
	t.Helper()
	s, err := uc.SignIn(context.Background(), dto.LoginRequest{Email: role + "@atelier.com", Password: testPassword})
	require.NoError(t, err)
	return "Bearer " + s.Token
}

func buildTestApp(uc *auth.AuthUseCase, allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(uc),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"ok":      true,
				"role":    apphttp.GetRole(c),
				"email":   apphttp.GetEmail(c),
				"user_id": apphttp.GetUserID(c),
			})
		},
	)
	return app
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestRequireRole_AdminAccede(t *testing.T) {
	uc := newAuth(t)
	resp := doRequest(t, buildTestApp(uc, entity.RoleAdmin), tokenForRole(t, uc, entity.RoleAdmin))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, entity.RoleAdmin, body["role"])
	assert.Equal(t, "admin@atelier.com", body["email"])
	assert.NotEmpty(t, body["user_id"])
}

func TestRequireRole_MultiRol(t *testing.T) {
	uc := newAuth(t)
	resp := doRequest(t, buildTestApp(uc, entity.RoleAdmin, entity.RoleAtendente), tokenForRole(t, uc, entity.RoleAtendente))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_AtendenteBloqueadoEnRutaAdmin(t *testing.T) {
	uc := newAuth(t)
	resp := doRequest(t, buildTestApp(uc, entity.RoleAdmin), tokenForRole(t, uc, entity.RoleAtendente))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestAuthMiddleware_SinHeader(t *testing.T) {
	resp := doRequest(t, buildTestApp(newAuth(t), entity.RoleAdmin), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	app := buildTestApp(newAuth(t), entity.RoleAdmin)
	for _, h := range []string{"Bearer token.invalido.aqui", "Basic abc", "Bearer "} {
		resp := doRequest(t, app, h)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, h)
		resp.Body.Close()
	}
}

func TestAuthMiddleware_TokenCerrado(t *testing.T) {
	uc := newAuth(t)
	app := buildTestApp(uc, entity.RoleAdmin)
	header := tokenForRole(t, uc, entity.RoleAdmin)

	resp := doRequest(t, app, header)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, uc.SignOut(header[len("Bearer "):]))
	resp = doRequest(t, app, header)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

type sessionWithoutRole struct{}

func (sessionWithoutRole) GetSession(string) *auth.Session {
	return &auth.Session{UserID: "u-1", Email: "legado@atelier.com"}
}

func TestRequireRole_SesionSinRol(t *testing.T) {
	app := fiber.New()
	app.Get("/protected", apphttp.AuthMiddleware(sessionWithoutRole{}), apphttp.RequireRole(entity.RoleAdmin),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	resp := doRequest(t, app, "Bearer qualquer")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE")
}
