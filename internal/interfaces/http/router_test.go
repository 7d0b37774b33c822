package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/atelier-api/internal/application/analytics"
	"github.com/jhoicas/atelier-api/internal/application/dto"
	"github.com/jhoicas/atelier-api/internal/application/usecase"
	"github.com/jhoicas/atelier-api/internal/application/workspace"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/repository"
	"github.com/jhoicas/atelier-api/internal/infrastructure/memory"
	"github.com/jhoicas/atelier-api/internal/infrastructure/storage"
	apphttp "github.com/jhoicas/atelier-api/internal/interfaces/http"
	"github.com/jhoicas/atelier-api/pkg/logger"
)

type stubReceipts struct{}

func (stubReceipts) InvoiceReceipt(context.Context, usecase.InvoiceReceipt) ([]byte, error) {
	return []byte("%PDF-1.4 stub"), nil
}

type stubSheets struct{}

func (stubSheets) WriteSheet(string, []string, [][]any) ([]byte, error) { return []byte("PK"), nil }

type testServer struct {
	app     *fiber.App
	admin   string
	att     string
	fs      afero.Fs
	loadErr error
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	s := newTestServerWith(t, nil)
	require.NoError(t, s.loadErr)
	return s
}

// newTestServerWith permite reemplazar tablas antes de la carga inicial; un fallo
// de carga queda en loadErr.
func newTestServerWith(t *testing.T, override func(*workspace.Tables)) *testServer {
	t.Helper()
	gw := memory.NewGateway()
	log := logger.Nop()
	now := func() time.Time { return time.Date(2024, time.March, 10, 9, 0, 0, 0, time.Local) }
	tables := workspace.Tables{
		Orders:       gw.Orders,
		Customers:    gw.Customers,
		Inventory:    gw.Inventory,
		Invoices:     gw.Invoices,
		Transactions: gw.Transactions,
		Catalog:      gw.Catalog,
	}
	if override != nil {
		override(&tables)
	}
	ws := workspace.New(tables, log)
	loadErr := ws.LoadAll(context.Background())

	fs := afero.NewMemMapFs()
	files := storage.New(fs, "/files")
	settings := usecase.NewSettingsUseCase(gw.Settings, log, now)
	authUC := newAuth(t)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Workspace:   ws,
		AuthUC:      authUC,
		OrderUC:     usecase.NewOrderUseCase(ws, log, now),
		CustomerUC:  usecase.NewCustomerUseCase(ws, now),
		InventoryUC: usecase.NewInventoryUseCase(ws),
		InvoiceUC:   usecase.NewInvoiceUseCase(ws, files, stubReceipts{}, settings, "Maestria", now),
		FinanceUC:   usecase.NewFinanceUseCase(ws, now),
		CatalogUC:   usecase.NewCatalogUseCase(ws, files),
		SettingsUC:  settings,
		CalendarUC:  usecase.NewCalendarUseCase(ws, now),
		ExportUC:    usecase.NewExportUseCase(ws, stubSheets{}, now),
		DashboardUC: appanalytics.NewDashboardUseCase(ws),
		ServiceName: "atelier-test",
		Files:       fs,
	})
	return &testServer{
		app:     app,
		admin:   tokenForRole(t, authUC, entity.RoleAdmin),
		att:     tokenForRole(t, authUC, entity.RoleAtendente),
		fs:      fs,
		loadErr: loadErr,
	}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	return s.send(t, req)
}

func (s *testServer) send(t *testing.T, req *http.Request) (*http.Response, []byte) {
	t.Helper()
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func TestRouter_RegistroListadoYExclusao(t *testing.T) {
	s := newTestServer(t)

	resp, body := s.do(t, http.MethodPost, "/api/admin/orders", s.att, map[string]any{
		"name": "Ana Souza", "service": "Restauração Premium", "value": "350.00", "deadline": "2024-03-10",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var reg dto.RegisterOrderResponse
	require.NoError(t, json.Unmarshal(body, &reg))
	assert.Equal(t, "#ORD-1001", reg.Order.ID)
	assert.True(t, reg.CustomerCreated)

	resp, body = s.do(t, http.MethodGet, "/api/admin/orders?q=ana&status=Pendente", s.att, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list dto.ListResponse[dto.OrderResponse]
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Equal(t, 1, list.Count)
	assert.Equal(t, "R$ 350,00", list.Items[0].ValueLabel)

	resp, body = s.do(t, http.MethodGet, "/api/admin/orders/%23ORD-1001/contact", s.att, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Contains(t, string(body), "Ana Souza")

	resp, body = s.do(t, http.MethodGet, "/api/admin/calendar/2024-03-10", s.att, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "1 Serviço")

	resp, body = s.do(t, http.MethodDelete, "/api/admin/orders/%23ORD-1001", s.att, nil)
	assert.Equal(t, fiber.StatusPreconditionRequired, resp.StatusCode)
	assert.Contains(t, string(body), "NOT_CONFIRMED")

	resp, _ = s.do(t, http.MethodDelete, "/api/admin/orders/%23ORD-1001?confirm=true", s.att, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = s.do(t, http.MethodGet, "/api/admin/orders/%23ORD-1001", s.att, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_Validacion(t *testing.T) {
	s := newTestServer(t)

	resp, body := s.do(t, http.MethodPost, "/api/admin/orders", s.att, map[string]any{"name": "", "service": "x"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "VALIDATION")

	resp, _ = s.do(t, http.MethodPost, "/api/admin/inventory/abc/stock", s.att, map[string]any{"delta": 1})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = s.do(t, http.MethodGet, "/api/admin/orders/%23ORD-9999/contact", s.att, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_PublicoYPermisos(t *testing.T) {
	s := newTestServer(t)

	resp, _ := s.do(t, http.MethodGet, "/api/catalog", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, body := s.do(t, http.MethodGet, "/api/settings", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Restauração de Alta Classe")

	resp, _ = s.do(t, http.MethodGet, "/api/admin/dashboard", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	phone := "(13) 3333-4444"
	resp, _ = s.do(t, http.MethodPut, "/api/admin/settings", s.att, dto.SaveSettingsRequest{ContactPhone: &phone})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp, body = s.do(t, http.MethodPut, "/api/admin/settings", s.admin, dto.SaveSettingsRequest{ContactPhone: &phone})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), phone)

	resp, _ = s.do(t, http.MethodPost, "/api/admin/catalog", s.att, map[string]any{"name": "Bolsa", "main_category": "Bolsas"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp, _ = s.do(t, http.MethodPost, "/api/admin/catalog", s.admin, map[string]any{"name": "Bolsa", "main_category": "Bolsas", "price": 199})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body = s.do(t, http.MethodGet, "/api/catalog?category=Bolsas", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"count":1`)
}

func TestRouter_NotaFiscalMultipartYRecibo(t *testing.T) {
	s := newTestServer(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range map[string]string{"nf_id": "NF-001", "os_ref": "#ORD-1001", "customer": "Ana Souza", "value": "350,50"} {
		require.NoError(t, w.WriteField(k, v))
	}
	part, err := w.CreateFormFile("file", "nota.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-nota"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/invoices", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", s.att)
	resp, body := s.send(t, req)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var inv dto.InvoiceResponse
	require.NoError(t, json.Unmarshal(body, &inv))
	assert.Equal(t, "350.5", inv.Value.String())
	require.True(t, strings.HasPrefix(inv.FileURL, "/files/tax-invoices/"))

	resp, body = s.do(t, http.MethodGet, inv.FileURL, "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "%PDF-nota", string(body))

	resp, body = s.do(t, http.MethodGet, "/api/admin/invoices/NF-001/receipt", s.att, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))

	resp, _ = s.do(t, http.MethodPost, "/api/admin/invoices", s.att, map[string]any{"id": "NF-001", "customer": "Ana"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRouter_Exportacion(t *testing.T) {
	s := newTestServer(t)
	resp, _ := s.do(t, http.MethodGet, "/api/admin/exports/orders", s.att, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "ordens.xlsx")
}

func TestRouter_Health(t *testing.T) {
	s := newTestServer(t)
	resp, body := s.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"orders":true`)
}

// flakyOrders tabla de ordens que falla el Select mientras down está activo.
type flakyOrders struct {
	repository.OrderTable
	down *atomic.Bool
}

func (f flakyOrders) Select(ctx context.Context) ([]entity.Order, error) {
	if f.down.Load() {
		return nil, errors.New("connection refused")
	}
	return f.OrderTable.Select(ctx)
}

func TestRouter_RecargaTrasFalloInicial(t *testing.T) {
	var down atomic.Bool
	down.Store(true)
	s := newTestServerWith(t, func(tb *workspace.Tables) {
		tb.Orders = flakyOrders{OrderTable: tb.Orders, down: &down}
	})
	require.Error(t, s.loadErr)

	resp, body := s.do(t, http.MethodGet, "/api/admin/orders", s.att, nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Contains(t, string(body), "NOT_LOADED")

	resp, body = s.do(t, http.MethodPost, "/api/admin/reload?collection=orders", s.admin, nil)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Contains(t, string(body), `"orders":false`)

	resp, _ = s.do(t, http.MethodPost, "/api/admin/reload?collection=pedidos", s.admin, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = s.do(t, http.MethodPost, "/api/admin/reload", s.att, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "solo admin recarga")

	down.Store(false)
	resp, body = s.do(t, http.MethodPost, "/api/admin/reload?collection=orders", s.admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var out dto.ReloadResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.True(t, out.Loaded["orders"])

	resp, _ = s.do(t, http.MethodGet, "/api/admin/orders", s.att, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_CargaPerezosaAlRecuperarse(t *testing.T) {
	var down atomic.Bool
	down.Store(true)
	s := newTestServerWith(t, func(tb *workspace.Tables) {
		tb.Orders = flakyOrders{OrderTable: tb.Orders, down: &down}
	})
	require.Error(t, s.loadErr)

	resp, _ := s.do(t, http.MethodGet, "/api/admin/calendar", s.att, nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	down.Store(false)
	resp, body := s.do(t, http.MethodGet, "/api/admin/calendar", s.att, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	resp, body = s.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"orders":true`)
}
