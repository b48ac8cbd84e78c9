package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/vishal7007/MobileShop-api/internal/application/analytics"
	"github.com/vishal7007/MobileShop-api/internal/application/auth"
	"github.com/vishal7007/MobileShop-api/internal/application/companies"
	"github.com/vishal7007/MobileShop-api/internal/application/emi"
	"github.com/vishal7007/MobileShop-api/internal/application/ledger"
	"github.com/vishal7007/MobileShop-api/internal/application/sales"
	"github.com/vishal7007/MobileShop-api/internal/application/scan"
	"github.com/vishal7007/MobileShop-api/internal/domain/entity"
	"github.com/vishal7007/MobileShop-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	Ledger        *ledger.StockLedger
	CreateSale    *sales.CreateSaleUseCase
	Receipt       *sales.ReceiptUseCase
	EmiTracker    *emi.TrackerUseCase
	Dashboard     *analytics.DashboardUseCase
	BillScan      *scan.BillScanUseCase
	CompanyUC     *companies.UseCase
	AnalyticsRepo repository.AnalyticsRepository
	JWTSecret     string
	ShopLocation  *time.Location
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	adminOnly := RequireRole(entity.RoleOwner, entity.RoleAdmin)

	// Auth: login público; register y listado de usuarios solo admin/owner.
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Post("/auth/register", adminOnly, authHandler.Register)
	protected.Get("/users", adminOnly, authHandler.ListUsers)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.Ledger)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/movements", productHandler.Movements)

	// Inventory (ledger)
	inventory := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Ledger, deps.AnalyticsRepo)
	inventory.Post("/movements", inventoryHandler.RegisterMovement)
	inventory.Get("/movements", inventoryHandler.ListMovements)
	inventory.Post("/import", inventoryHandler.Import)
	inventory.Get("/summary", inventoryHandler.Summary)

	// Sales (POS)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.CreateSale, deps.Receipt)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Get("/:id/receipt", saleHandler.Receipt)

	// EMI tracker
	emiHandler := NewEmiHandler(deps.EmiTracker)
	protected.Get("/emis", emiHandler.List)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.Dashboard, deps.ShopLocation)
	protected.Get("/dashboard", dashboardHandler.Summary)

	// Escáner de facturas
	scanHandler := NewScanHandler(deps.BillScan)
	protected.Post("/scan/bill", scanHandler.ScanBill)

	// Financieras
	companiesGroup := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companiesGroup.Get("/", companyHandler.List)
	companiesGroup.Post("/", adminOnly, companyHandler.Create)
}
