package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/vishal7007/MobileShop-api/internal/application/analytics"
	"github.com/vishal7007/MobileShop-api/internal/application/auth"
	"github.com/vishal7007/MobileShop-api/internal/application/companies"
	"github.com/vishal7007/MobileShop-api/internal/application/emi"
	"github.com/vishal7007/MobileShop-api/internal/application/ledger"
	"github.com/vishal7007/MobileShop-api/internal/application/sales"
	"github.com/vishal7007/MobileShop-api/internal/application/scan"
	infrapdf "github.com/vishal7007/MobileShop-api/internal/infrastructure/pdf"
	"github.com/vishal7007/MobileShop-api/internal/infrastructure/postgres"
	httpRouter "github.com/vishal7007/MobileShop-api/internal/interfaces/http"
	"github.com/vishal7007/MobileShop-api/pkg/config"
	"github.com/vishal7007/MobileShop-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	loc, err := time.LoadLocation(cfg.Shop.Timezone)
	if err != nil {
		log.Warn().Err(err).Str("tz", cfg.Shop.Timezone).Msg("zona horaria inválida, usando UTC")
		loc = time.UTC
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios atados al pool (los flujos transaccionales usan el TxRunner).
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	emiRepo := postgres.NewEmiRepository(pool)
	companyRepo := postgres.NewFinanceCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Casos de uso.
	stockLedger := ledger.NewStockLedger(txRunner, productRepo, movementRepo)
	createSaleUC := sales.NewCreateSaleUseCase(txRunner, companyRepo, saleRepo, customerRepo, emiRepo)
	receiptUC := sales.NewReceiptUseCase(
		saleRepo, customerRepo, productRepo,
		infrapdf.NewMarotoReceiptGenerator(),
		cfg.Shop.Name, cfg.Shop.Currency,
	)
	emiTrackerUC := emi.NewTrackerUseCase(emiRepo)
	dashboardUC := analytics.NewDashboardUseCase(analyticsRepo)
	billScanUC := scan.NewBillScanUseCase(saleRepo)
	companyUC := companies.NewUseCase(companyRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
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
		Title:    "MobileShop API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		Ledger:        stockLedger,
		CreateSale:    createSaleUC,
		Receipt:       receiptUC,
		EmiTracker:    emiTrackerUC,
		Dashboard:     dashboardUC,
		BillScan:      billScanUC,
		CompanyUC:     companyUC,
		AnalyticsRepo: analyticsRepo,
		JWTSecret:     cfg.JWT.Secret,
		ShopLocation:  loc,
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
