package http

import (
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/spf13/afero"

	appanalytics "github.com/jhoicas/atelier-api/internal/application/analytics"
	"github.com/jhoicas/atelier-api/internal/application/auth"
	"github.com/jhoicas/atelier-api/internal/application/usecase"
	"github.com/jhoicas/atelier-api/internal/application/workspace"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Workspace   *workspace.Workspace
	AuthUC      *auth.AuthUseCase
	OrderUC     *usecase.OrderUseCase
	CustomerUC  *usecase.CustomerUseCase
	InventoryUC *usecase.InventoryUseCase
	InvoiceUC   *usecase.InvoiceUseCase
	FinanceUC   *usecase.FinanceUseCase
	CatalogUC   *usecase.CatalogUseCase
	SettingsUC  *usecase.SettingsUseCase
	CalendarUC  *usecase.CalendarUseCase
	ExportUC    *usecase.ExportUseCase
	DashboardUC *appanalytics.DashboardUseCase

	ServiceName string
	Files       afero.Fs        // se sirve bajo /files si no es nil
	Metrics     nethttp.Handler // se sirve bajo /metrics si no es nil
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	ws := deps.Workspace

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": deps.ServiceName,
			"loaded":  ws.Loaded(),
		})
	})
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics))
	}
	if deps.Files != nil {
		app.Use("/files", filesystem.New(filesystem.Config{Root: afero.NewHttpFs(deps.Files)}))
	}

	api := app.Group("/api")

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", AuthMiddleware(deps.AuthUC), authHandler.Logout)
	authGroup.Get("/me", AuthMiddleware(deps.AuthUC), authHandler.Me)

	// Site público
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	api.Get("/catalog", RequireLoaded(ws.Catalog), catalogHandler.List)
	api.Get("/settings", settingsHandler.Get)

	// Painel (requiere Bearer Token)
	admin := api.Group("/admin", AuthMiddleware(deps.AuthUC), RequireRole(entity.RoleAdmin, entity.RoleAtendente))
	adminOnly := RequireRole(entity.RoleAdmin)

	admin.Post("/reload", adminOnly, NewWorkspaceHandler(ws).Reload)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	admin.Get("/dashboard", RequireLoaded(ws.Orders, ws.Customers, ws.Transactions, ws.Inventory), dashboardHandler.GetSummary)

	orderHandler := NewOrderHandler(deps.OrderUC)
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	orders := admin.Group("/orders", RequireLoaded(ws.Orders, ws.Customers))
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Register)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Patch("/:id", orderHandler.Update)
	orders.Patch("/:id/status", orderHandler.UpdateStatus)
	orders.Delete("/:id", orderHandler.Delete)
	orders.Get("/:id/contact", customerHandler.Contact)

	customers := admin.Group("/customers", RequireLoaded(ws.Customers))
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Delete("/:id", customerHandler.Delete)

	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inventory := admin.Group("/inventory", RequireLoaded(ws.Inventory))
	inventory.Get("/", inventoryHandler.List)
	inventory.Get("/summary", inventoryHandler.Summary)
	inventory.Post("/", inventoryHandler.Create)
	inventory.Post("/:id/stock", inventoryHandler.AdjustStock)
	inventory.Delete("/:id", inventoryHandler.Delete)

	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices := admin.Group("/invoices", RequireLoaded(ws.Invoices))
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Patch("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)
	invoices.Get("/:id/receipt", invoiceHandler.Receipt)

	financeHandler := NewFinanceHandler(deps.FinanceUC)
	transactions := admin.Group("/transactions", RequireLoaded(ws.Transactions))
	transactions.Get("/", financeHandler.List)
	transactions.Get("/summary", financeHandler.Summary)
	transactions.Post("/", financeHandler.Create)
	transactions.Delete("/:id", financeHandler.Delete)

	catalog := admin.Group("/catalog", RequireLoaded(ws.Catalog))
	catalog.Get("/", catalogHandler.List)
	catalog.Post("/", adminOnly, catalogHandler.Create)
	catalog.Post("/images", adminOnly, catalogHandler.UploadImage)
	catalog.Put("/:id", adminOnly, catalogHandler.Update)
	catalog.Delete("/:id", adminOnly, catalogHandler.Delete)

	admin.Get("/settings", settingsHandler.Get)
	admin.Put("/settings", adminOnly, settingsHandler.Save)

	calendarHandler := NewCalendarHandler(deps.CalendarUC)
	calendar := admin.Group("/calendar", RequireLoaded(ws.Orders))
	calendar.Get("/", calendarHandler.Month)
	calendar.Get("/:date", calendarHandler.Day)

	exportHandler := NewExportHandler(deps.ExportUC)
	exports := admin.Group("/exports")
	exports.Get("/orders", RequireLoaded(ws.Orders), exportHandler.Orders)
	exports.Get("/inventory", RequireLoaded(ws.Inventory), exportHandler.Inventory)
	exports.Get("/transactions", RequireLoaded(ws.Transactions), exportHandler.Transactions)
}
