package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/auth"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/catalog"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/costing"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/customers"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/inventory"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/ledger"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/orders"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/pricelist"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/returns"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/settings"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/application/users"
	"github.com/enescc00/b2bsitesibitmis-sub001/internal/domain/entity"
)

// RouterDeps carries the use cases the router wires to handlers.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *catalog.ProductUseCase
	CategoryUC  *catalog.CategoryUseCase
	PriceListUC *pricelist.UseCase
	SettingsUC  *settings.UseCase
	CostingUC   *costing.UseCase
	InventoryUC *inventory.UseCase
	CreateOrder *orders.CreateOrderUseCase
	OrderUC     *orders.UseCase
	ReturnUC    *returns.UseCase
	CustomerUC  *customers.UseCase
	LedgerUC    *ledger.UseCase
	UserUC      *users.UseCase
	JWTSecret   string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	adminOnly := RequireRoles(entity.RoleAdmin)
	staffOnly := RequireRoles(entity.RoleAdmin, entity.RoleSalesRep)

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Everything else requires a Bearer token
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catalog: reads for everyone, writes admin-only
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", adminOnly, productHandler.Create)
	products.Put("/:id", adminOnly, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", adminOnly, categoryHandler.Create)
	categories.Put("/:id", adminOnly, categoryHandler.Update)
	categories.Delete("/:id", adminOnly, categoryHandler.Delete)

	// Price lists (admin)
	priceLists := protected.Group("/price-lists", adminOnly)
	priceListHandler := NewPriceListHandler(deps.PriceListUC)
	priceLists.Post("/", priceListHandler.Create)
	priceLists.Get("/", priceListHandler.List)
	priceLists.Get("/:id", priceListHandler.GetByID)
	priceLists.Put("/:id", priceListHandler.Update)
	priceLists.Post("/:id/default", priceListHandler.SetDefault)
	priceLists.Delete("/:id", priceListHandler.Delete)

	// Settings (admin)
	settingsGroup := protected.Group("/settings", adminOnly)
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settingsGroup.Get("/", settingsHandler.Get)
	settingsGroup.Put("/", settingsHandler.Update)

	// Cost estimation (admin)
	costingGroup := protected.Group("/costing", adminOnly)
	costingHandler := NewCostingHandler(deps.CostingUC)
	costingGroup.Post("/estimate", costingHandler.Estimate)

	// Inventory components (admin)
	invGroup := protected.Group("/inventory", adminOnly)
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Post("/", inventoryHandler.Create)
	invGroup.Get("/", inventoryHandler.List)
	invGroup.Get("/:id", inventoryHandler.GetByID)
	invGroup.Put("/:id", inventoryHandler.Update)
	invGroup.Post("/:id/adjust", inventoryHandler.AdjustQuantity)
	invGroup.Delete("/:id", inventoryHandler.Delete)

	// Orders: customers place and see their own, staff manage all
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.CreateOrder, deps.OrderUC)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Patch("/:id/status", staffOnly, orderHandler.UpdateStatus)

	// Returns
	returnsGroup := protected.Group("/returns")
	returnHandler := NewReturnHandler(deps.ReturnUC)
	returnsGroup.Post("/", returnHandler.Create)
	returnsGroup.Get("/", returnHandler.List)
	returnsGroup.Get("/:id", returnHandler.GetByID)
	returnsGroup.Patch("/:id/status", staffOnly, returnHandler.UpdateStatus)

	// Customers and ledgers
	customersGroup := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.LedgerUC)
	customersGroup.Get("/", staffOnly, customerHandler.List)
	customersGroup.Get("/:id", customerHandler.GetByID)
	customersGroup.Put("/:id", adminOnly, customerHandler.Update)
	customersGroup.Get("/:id/ledger", customerHandler.Ledger)
	customersGroup.Post("/:id/payments", adminOnly, customerHandler.RecordPayment)

	// Users (admin)
	usersGroup := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	usersGroup.Get("/", userHandler.List)
	usersGroup.Get("/:id", userHandler.GetByID)
	usersGroup.Put("/:id", userHandler.Update)
}
