package main

import (
	"context"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/jhoicas/atelier-api/docs"
	appanalytics "github.com/jhoicas/atelier-api/internal/application/analytics"
	"github.com/jhoicas/atelier-api/internal/application/auth"
	"github.com/jhoicas/atelier-api/internal/application/usecase"
	"github.com/jhoicas/atelier-api/internal/application/workspace"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/domain/repository"
	"github.com/jhoicas/atelier-api/internal/infrastructure/memory"
	"github.com/jhoicas/atelier-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/atelier-api/internal/infrastructure/pdf"
	"github.com/jhoicas/atelier-api/internal/infrastructure/postgres"
	"github.com/jhoicas/atelier-api/internal/infrastructure/storage"
	infraxlsx "github.com/jhoicas/atelier-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/atelier-api/internal/interfaces/http"
	"github.com/jhoicas/atelier-api/pkg/config"
	"github.com/jhoicas/atelier-api/pkg/logger"
)

// gateway tablas y repositorios del backend elegido (postgres o memory).
type gateway struct {
	tables   workspace.Tables
	settings repository.SettingsRepository
	users    repository.UserRepository
	close    func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("gateway", cfg.App.Gateway).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET obligatorio")
	}

	var (
		gwMetrics   *metrics.GatewayMetrics
		metricsHTTP nethttp.Handler
	)
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		gwMetrics = metrics.NewGatewayMetrics(reg)
		metricsHTTP = promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
	}

	ctx := context.Background()
	gw := openGateway(ctx, cfg, gwMetrics, log)
	defer gw.close()

	files := storage.NewOS(cfg.Storage.Root, cfg.Storage.PublicBaseURL)

	ws := workspace.New(gw.tables, log)
	loadCtx, cancelLoad := context.WithTimeout(ctx, 30*time.Second)
	if err := ws.LoadAll(loadCtx); err != nil {
		// El painel sigue arriba; las colecciones sin cargar se reintentan por request o con POST /api/admin/reload.
		log.Warn().Err(err).Msg("carga inicial incompleta")
	}
	cancelLoad()

	settingsUC := usecase.NewSettingsUseCase(gw.settings, log, nil)
	authUC := auth.NewAuthUseCase(gw.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)
	unsubscribe := authUC.OnChange(func(ev auth.Event) {
		log.Info().Str("event", string(ev.Type)).Str("email", ev.Email).Msg("sesión")
	})
	defer unsubscribe()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    20 * 1024 * 1024,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Atelier Admin API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Workspace:   ws,
		AuthUC:      authUC,
		OrderUC:     usecase.NewOrderUseCase(ws, log, nil),
		CustomerUC:  usecase.NewCustomerUseCase(ws, nil),
		InventoryUC: usecase.NewInventoryUseCase(ws),
		InvoiceUC:   usecase.NewInvoiceUseCase(ws, files, infrapdf.NewReceiptGenerator(), settingsUC, cfg.App.BusinessName, nil),
		FinanceUC:   usecase.NewFinanceUseCase(ws, nil),
		CatalogUC:   usecase.NewCatalogUseCase(ws, files),
		SettingsUC:  settingsUC,
		CalendarUC:  usecase.NewCalendarUseCase(ws, nil),
		ExportUC:    usecase.NewExportUseCase(ws, infraxlsx.NewExporter(), nil),
		DashboardUC: appanalytics.NewDashboardUseCase(ws),
		ServiceName: cfg.App.Name,
		Files:       files.FS(),
		Metrics:     metricsHTTP,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// openGateway conecta con PostgreSQL (migraciones incluidas) o arma el gateway en memoria.
func openGateway(ctx context.Context, cfg *config.Config, m *metrics.GatewayMetrics, log *logger.Logger) gateway {
	if cfg.App.Gateway == "memory" {
		mem := memory.NewGateway()
		return gateway{
			tables: workspace.Tables{
				Orders:       metrics.Instrument[string, entity.Order](m, "orders", mem.Orders),
				Customers:    metrics.Instrument[string, entity.Customer](m, "customers", mem.Customers),
				Inventory:    metrics.Instrument[int64, entity.InventoryItem](m, "inventory", mem.Inventory),
				Invoices:     metrics.Instrument[string, entity.Invoice](m, "tax_invoices", mem.Invoices),
				Transactions: metrics.Instrument[int64, entity.Transaction](m, "transactions", mem.Transactions),
				Catalog:      metrics.Instrument[int64, entity.CatalogProduct](m, "products", mem.Catalog),
			},
			settings: mem.Settings,
			users:    mem.Users,
			close:    func() {},
		}
	}

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	return gateway{
		tables: workspace.Tables{
			Orders:       metrics.Instrument[string, entity.Order](m, "orders", postgres.NewOrderTable(pool)),
			Customers:    metrics.Instrument[string, entity.Customer](m, "customers", postgres.NewCustomerTable(pool)),
			Inventory:    metrics.Instrument[int64, entity.InventoryItem](m, "inventory", postgres.NewInventoryTable(pool)),
			Invoices:     metrics.Instrument[string, entity.Invoice](m, "tax_invoices", postgres.NewInvoiceTable(pool)),
			Transactions: metrics.Instrument[int64, entity.Transaction](m, "transactions", postgres.NewTransactionTable(pool)),
			Catalog:      metrics.Instrument[int64, entity.CatalogProduct](m, "products", postgres.NewCatalogTable(pool)),
		},
		settings: postgres.NewSettingsRepository(pool),
		users:    postgres.NewUserRepository(pool),
		close:    pool.Close,
	}
}
