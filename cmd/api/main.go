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

	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/auth"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/catalog"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/costing"
	appcustomers "github.com/enescc00/b2bsitesibitmis-sub001/internal/application/customers"
	appinventory "github.com/enescc00/b2bsitesibitmis-sub001/internal/application/inventory"
	appledger "github.com/enescc00/b2bsitesibitmis-sub001/internal/application/ledger"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/orders"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/pricelist"
	apppricing "github.com/enescc00/b2bsitesibitmis-sub001/internal/application/pricing"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/returns"
	appsettings "github.com/enescc00/b2bsitesibitmis-sub001/internal/application/settings"
	appusers "github.com/enescc00/b2bsitesibitmis-sub001/internal/application/users"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/infrastructure/postgres"
	httpRouter "github.com/enescc00/b2bsitesibitmis-sub001/internal/interfaces/http"
	"github.com/enescc00/b2bsitesibitmis-sub001/pkg/config"
	"github.com/enescc00/b2bsitesibitmis-sub001/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	if err := postgres.Migrate(cfg.DB, cfg.DB.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("database migration")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	priceListRepo := postgres.NewPriceListRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	inventoryRepo := postgres.NewInventoryItemRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	returnRepo := postgres.NewReturnRepository(pool)
	ledgerRepo := postgres.NewLedgerRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	quoter := apppricing.NewQuoter(priceListRepo, settingsRepo)

	authUC := auth.NewAuthUseCase(userRepo, customerRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := catalog.NewProductUseCase(productRepo, customerRepo, quoter)
	categoryUC := catalog.NewCategoryUseCase(categoryRepo)
	priceListUC := pricelist.NewUseCase(priceListRepo)
	settingsUC := appsettings.NewUseCase(settingsRepo)
	costingUC := costing.NewUseCase(inventoryRepo, settingsRepo, cfg.App.CostingStrict, log.Zerolog())
	inventoryUC := appinventory.NewUseCase(inventoryRepo)
	createOrderUC := orders.NewCreateOrderUseCase(txRunner, customerRepo, productRepo, quoter)
	orderUC := orders.NewUseCase(orderRepo, txRunner)
	returnUC := returns.NewUseCase(returnRepo, orderRepo, txRunner)
	customerUC := appcustomers.NewUseCase(customerRepo, priceListRepo)
	ledgerUC := appledger.NewUseCase(ledgerRepo, customerRepo)
	userUC := appusers.NewUseCase(userRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI at /docs when docs/swagger.json is present
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		CategoryUC:  categoryUC,
		PriceListUC: priceListUC,
		SettingsUC:  settingsUC,
		CostingUC:   costingUC,
		InventoryUC: inventoryUC,
		CreateOrder: createOrderUC,
		OrderUC:     orderUC,
		ReturnUC:    returnUC,
		CustomerUC:  customerUC,
		LedgerUC:    ledgerUC,
		UserUC:      userUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
