// seed prepara una base nueva: usuario administrador, catálogo y estoque de ejemplo,
// clientes importados de la planilla antigua (CSV en ISO-8859-1) y ordens ficticias.
//
// Uso: go run ./cmd/seed [ruta/clientes.csv]
// Credenciales del administrador: SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD.
// SEED_FAKE_ORDERS define cuántas ordens ficticias se registran (0 desactiva).
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/atelier-api/internal/application/auth"
	"github.com/jhoicas/atelier-api/internal/application/dto"
	"github.com/jhoicas/atelier-api/internal/application/usecase"
	"github.com/jhoicas/atelier-api/internal/application/workspace"
	"github.com/jhoicas/atelier-api/internal/domain"
	"github.com/jhoicas/atelier-api/internal/domain/crossref"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/infrastructure/postgres"
	"github.com/jhoicas/atelier-api/pkg/config"
	"github.com/jhoicas/atelier-api/pkg/logger"
)

var catalogSeed = []dto.ProductRequest{
	{Name: "Restauração Premium", MainCategory: entity.MainCategoryCalcados, Category: "Restauração", Price: decimal.NewFromInt(350), Description: "Limpeza profunda, hidratação e pintura artesanal."},
	{Name: "Troca de Solado", MainCategory: entity.MainCategoryCalcados, Category: "Reparos", Price: decimal.NewFromInt(220), Description: "Solado em couro ou borracha com costura Goodyear."},
	{Name: "Higienização de Bolsa", MainCategory: entity.MainCategoryBolsas, Category: "Limpeza", Price: decimal.NewFromInt(180), Description: "Limpeza interna e externa com proteção do couro."},
	{Name: "Kit Engraxate", MainCategory: entity.MainCategoryLoja, Category: "Cuidados", Price: decimal.NewFromInt(129), Description: "Graxa, escovas e flanela."},
	{Name: "Afiação de Facas", MainCategory: entity.MainCategoryCutelaria, Category: "Afiação", Price: decimal.NewFromInt(45), Description: "Afiação em pedra d'água."},
}

var inventorySeed = []dto.CreateInventoryItemRequest{
	{Name: "Tinta para Couro Preta", SKU: "TIN-001", Stock: 12, Price: decimal.NewFromInt(38), Category: "Tintas", Type: string(entity.ItemServico)},
	{Name: "Cola de Contato", SKU: "COL-002", Stock: 3, Price: decimal.NewFromInt(29), Category: "Adesivos", Type: string(entity.ItemServico)},
	{Name: "Cadarço Encerado", SKU: "CAD-010", Stock: 40, Price: decimal.NewFromInt(15), Category: "Acessórios", Type: string(entity.ItemBoutique)},
	{Name: "Palmilha de Couro", SKU: "PAL-004", Stock: 0, Price: decimal.NewFromInt(59), Category: "Acessórios", Type: string(entity.ItemBoutique)},
}

var serviceSeed = []string{"Restauração Premium", "Troca de Solado", "Higienização de Bolsa", "Pintura Artesanal", "Costura Manual"}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	ws := workspace.New(workspace.Tables{
		Orders:       postgres.NewOrderTable(pool),
		Customers:    postgres.NewCustomerTable(pool),
		Inventory:    postgres.NewInventoryTable(pool),
		Invoices:     postgres.NewInvoiceTable(pool),
		Transactions: postgres.NewTransactionTable(pool),
		Catalog:      postgres.NewCatalogTable(pool),
	}, log)
	if err := ws.LoadAll(ctx); err != nil {
		log.Fatal().Err(err).Msg("cargar colecciones")
	}

	authUC := auth.NewAuthUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{}, log)
	email := envOr("SEED_ADMIN_EMAIL", "admin@atelier.com")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		log.Fatal().Msg("SEED_ADMIN_PASSWORD obligatorio")
	}
	switch _, err := authUC.CreateUser(ctx, email, password, "Administrador", entity.RoleAdmin); {
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		log.Info().Str("email", email).Msg("administrador ya existe")
	case err != nil:
		log.Fatal().Err(err).Msg("crear administrador")
	default:
		log.Info().Str("email", email).Msg("administrador creado")
	}

	if ws.Catalog.Len() == 0 {
		catalogUC := usecase.NewCatalogUseCase(ws, nil)
		for _, p := range catalogSeed {
			if _, err := catalogUC.Create(ctx, p); err != nil {
				log.Fatal().Err(err).Str("product", p.Name).Msg("catálogo")
			}
		}
		log.Info().Int("count", len(catalogSeed)).Msg("catálogo creado")
	}
	if ws.Inventory.Len() == 0 {
		inventoryUC := usecase.NewInventoryUseCase(ws)
		for _, it := range inventorySeed {
			if _, err := inventoryUC.Create(ctx, it); err != nil {
				log.Fatal().Err(err).Str("sku", it.SKU).Msg("estoque")
			}
		}
		log.Info().Int("count", len(inventorySeed)).Msg("estoque creado")
	}

	if len(os.Args) > 1 {
		n, err := importCustomers(ctx, ws, os.Args[1])
		if err != nil {
			log.Fatal().Err(err).Str("file", os.Args[1]).Msg("importar clientes")
		}
		log.Info().Int("count", n).Msg("clientes importados")
	}

	fake, _ := strconv.Atoi(envOr("SEED_FAKE_ORDERS", "20"))
	if fake > 0 {
		if err := fakeOrders(ctx, usecase.NewOrderUseCase(ws, log, nil), fake); err != nil {
			log.Fatal().Err(err).Msg("ordens ficticias")
		}
		log.Info().Int("count", fake).Msg("ordens registradas")
	}
}

// importCustomers lee nome;email;telefone de la planilla exportada por el sistema antiguo.
// Filas sin nombre o con un cliente ya cadastrado (sin distinguir mayúsculas) se ignoran.
func importCustomers(ctx context.Context, ws *workspace.Workspace, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	r := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	r.Comma = ';'
	r.FieldsPerRecord = -1

	uc := usecase.NewCustomerUseCase(ws, nil)
	imported := 0
	for line := 1; ; line++ {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return imported, nil
		}
		if err != nil {
			return imported, fmt.Errorf("línea %d: %w", line, err)
		}
		if line == 1 && strings.EqualFold(strings.TrimSpace(rec[0]), "nome") {
			continue
		}
		in := dto.CreateCustomerRequest{Name: field(rec, 0), Email: field(rec, 1), Phone: field(rec, 2)}
		if in.Name == "" {
			continue
		}
		if _, found := crossref.NewResolver(ws.Customers.Snapshot()).ByNameFold(in.Name); found {
			continue
		}
		if _, err := uc.Create(ctx, in); err != nil {
			return imported, fmt.Errorf("línea %d: %w", line, err)
		}
		imported++
	}
}

func fakeOrders(ctx context.Context, uc *usecase.OrderUseCase, n int) error {
	gofakeit.Seed(0)
	today := time.Now()
	for i := 0; i < n; i++ {
		deadline := today.AddDate(0, 0, gofakeit.Number(-10, 30))
		_, err := uc.Register(ctx, dto.RegisterOrderRequest{
			Name:     gofakeit.Name(),
			Email:    gofakeit.Email(),
			Phone:    gofakeit.Phone(),
			Service:  serviceSeed[gofakeit.Number(0, len(serviceSeed)-1)],
			Value:    decimal.NewFromFloat(gofakeit.Price(60, 900)).Round(2),
			Deadline: deadline.Format(entity.DateLayout),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func field(rec []string, i int) string {
	if i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
