// Seed de desarrollo: crea el usuario admin, dos financieras y productos de
// demostración con su stock inicial registrado a través del ledger. Solo corre
// cuando la tabla de usuarios está vacía, para no pisar datos reales.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/vishal7007/MobileShop-api/internal/application/dto"
	"github.com/vishal7007/MobileShop-api/internal/application/ledger"
	"github.com/vishal7007/MobileShop-api/internal/domain/entity"
	"github.com/vishal7007/MobileShop-api/internal/infrastructure/postgres"
	"github.com/vishal7007/MobileShop-api/pkg/config"
	"github.com/vishal7007/MobileShop-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewFinanceCompanyRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	stockLedger := ledger.NewStockLedger(postgres.NewTxRunner(pool), productRepo, movementRepo)

	count, err := userRepo.Count()
	if err != nil {
		log.Fatal().Err(err).Msg("contar usuarios")
	}
	if count > 0 {
		log.Info().Int("users", count).Msg("ya hay usuarios, seed omitido")
		return
	}

	// Usuario admin inicial. Cambiar la contraseña en el primer login.
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear password")
	}
	admin := &entity.User{
		ID:           uuid.New().String(),
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         entity.RoleOwner,
		FullName:     "Administrator",
		Active:       true,
		CreatedAt:    time.Now(),
	}
	if err := userRepo.Create(admin); err != nil {
		log.Fatal().Err(err).Msg("crear usuario admin")
	}
	log.Info().Str("username", admin.Username).Msg("usuario admin creado")

	for _, c := range []*entity.FinanceCompany{
		{ID: uuid.New().String(), Name: "Bajaj Finance", Type: entity.CompanyNBFC, Active: true},
		{ID: uuid.New().String(), Name: "HDFC Bank", Type: entity.CompanyBank, Active: true},
	} {
		if err := companyRepo.Create(c); err != nil {
			log.Fatal().Err(err).Str("name", c.Name).Msg("crear financiera")
		}
		log.Info().Str("name", c.Name).Msg("financiera creada")
	}

	// Productos demo; el stock inicial entra como movimiento purchase.
	demo := []dto.CreateProductRequest{
		{
			Name: "Galaxy A15 128GB", Category: "phone", SKU: "SM-A155",
			IMEI:      "356938035643809",
			CostPrice: decimal.NewFromInt(10500), SellPrice: decimal.NewFromInt(12999),
			InitialQty: 5,
		},
		{
			Name: "Redmi 13C 256GB", Category: "phone", SKU: "23100RN82L",
			IMEI:      "490154203237518",
			CostPrice: decimal.NewFromInt(8900), SellPrice: decimal.NewFromInt(10499),
			InitialQty: 3,
		},
		{
			Name: "Cargador rápido 33W", Category: "accessory", SKU: "CHG-33W",
			CostPrice: decimal.NewFromInt(450), SellPrice: decimal.NewFromInt(799),
			InitialQty: 25,
		},
		{
			Name: "Protector templado universal", Category: "accessory", SKU: "TMP-UNI",
			CostPrice: decimal.NewFromInt(60), SellPrice: decimal.NewFromInt(199),
			InitialQty: 50,
		},
		{
			Name: "Cambio de pantalla", Category: "service",
			CostPrice: decimal.Zero, SellPrice: decimal.NewFromInt(1500),
		},
	}
	for _, in := range demo {
		product, err := stockLedger.CreateProduct(ctx, in, admin.ID)
		if err != nil {
			log.Fatal().Err(err).Str("name", in.Name).Msg("crear producto demo")
		}
		log.Info().Str("name", product.Name).Int64("qty", product.QtyOnHand).Msg("producto creado")
	}

	log.Info().Msg("seed completado")
}
