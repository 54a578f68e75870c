package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/quimicos-inventario/internal/application/auth"
	appinventory "github.com/jhoicas/quimicos-inventario/internal/application/inventory"
	"github.com/jhoicas/quimicos-inventario/internal/application/usecase"
	"github.com/jhoicas/quimicos-inventario/internal/domain/entity"
	"github.com/jhoicas/quimicos-inventario/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	InventoryUC *appinventory.InventoryUseCase
	Gate        *auth.Gate
	Logger      *logger.Logger

	LoginRateLimit int           // intentos por minuto e IP; <= 0 desactiva el límite
	LimiterStorage fiber.Storage // nil = memoria del proceso
}

// Router registra las rutas de la API bajo /api.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	api := app.Group("/api")

	// Auth (público, con límite de intentos)
	authHandler := NewAuthHandler(deps.AuthUC, log)
	authGroup := api.Group("/auth")
	limit := func(c *fiber.Ctx) error { return c.Next() }
	if deps.LoginRateLimit > 0 {
		limit = LoginRateLimiter(deps.LoginRateLimit, deps.LimiterStorage)
	}
	authGroup.Post("/register", limit, authHandler.Register)
	authGroup.Post("/login", limit, authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	authn := AuthMiddleware(deps.Gate)
	adminOnly := RequireRole(deps.Gate, entity.RoleAdministrador)
	stockRoles := RequireRole(deps.Gate, entity.RoleAdministrador, entity.RoleBodeguero)

	authGroup.Get("/me", authn, authHandler.Me)

	// Products
	productHandler := NewProductHandler(deps.ProductUC, log)
	products := api.Group("/products", authn)
	products.Get("/", productHandler.List)
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", adminOnly, productHandler.Create)
	products.Put("/:id", stockRoles, productHandler.Update)
	products.Patch("/:id/stock", stockRoles, productHandler.AdjustStock)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Inventory
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, log)
	inv := api.Group("/inventory", authn)
	inv.Get("/summary", inventoryHandler.Summary)
	inv.Get("/report.pdf", stockRoles, inventoryHandler.Report)
}
