package mockapi

import (
	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Inventario-console/pkg/config"
)

// NewApp arma la aplicación Fiber completa del backend simulado sobre un Store
// compartido. Se expone para que los tests la ejerciten con app.Test sin
// levantar un listener real.
func NewApp(store *Store, cfg config.MockConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "inventario-mockapi",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(fiberlog.New())

	api := app.Group("/api")

	// Auth (público). Paths con slash final: contrato del cliente.
	authHandler := NewAuthHandler(store, cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTMinutes)
	api.Post("/admin/register/", authHandler.RegisterAdmin)
	api.Post("/admin/login/", authHandler.LoginAdmin)
	api.Post("/salesperson/auth/", authHandler.AuthSalesperson)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(cfg.JWTSecret))

	products := protected.Group("/products")
	productHandler := NewProductHandler(store)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Put("/:id/", productHandler.Update)
	products.Delete("/:id/", productHandler.Delete)

	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(store)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Put("/:id/", customerHandler.Update)
	customers.Delete("/:id/", customerHandler.Delete)

	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(store)
	sales.Get("/", saleHandler.List)
	sales.Post("/", saleHandler.Create)

	// Gestión de personal: solo admin.
	userHandler := NewUserHandler(store)
	users := protected.Group("/users", RequireAdmin())
	users.Get("/", userHandler.List)
	users.Post("/generate-token/", userHandler.GenerateUserToken)
	users.Post("/", userHandler.Create)
	users.Put("/:id/", userHandler.Update)
	users.Delete("/:id/", userHandler.Delete)
	protected.Post("/generate-token/", RequireAdmin(), userHandler.GenerateAccessToken)

	miscHandler := NewMiscHandler(store)
	protected.Get("/dashboard-stats/", miscHandler.DashboardStats)
	protected.Get("/audit-logs/", miscHandler.AuditLogs)
	protected.Get("/notifications/", miscHandler.Notifications)
	protected.Get("/system-settings/", miscHandler.GetSettings)
	protected.Put("/system-settings/", miscHandler.UpdateSettings)

	return app
}
