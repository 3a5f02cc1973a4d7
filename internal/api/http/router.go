package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salestrack/sales-service/internal/api/http/handlers"
	"github.com/salestrack/sales-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	AdminAuth      *handlers.AdminAuthHandler
	ClientAuth     *handlers.ClientAuthHandler
	Sales          *handlers.SalesHandler
	Catalog        *handlers.CatalogHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Login endpoints sit outside the gated
// groups; everything else passes through the authorization middleware.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")
	api.Post("/client/auth", cfg.ClientAuth.Authenticate)

	client := api.Group("", cfg.AuthMiddleware.RequireClient)
	client.Post("/sales", cfg.Sales.Submit)
	client.Get("/sales/mine", cfg.Sales.ListMine)

	managed := client.Group("/stores/:storeId", auth.RequireManager())
	managed.Get("/sales", cfg.Sales.ListByStore)
	managed.Get("/dashboard", cfg.Sales.Dashboard)

	adminGroup := api.Group("/admin")
	adminGroup.Post("/login", cfg.AdminAuth.Login)

	console := adminGroup.Group("", cfg.AuthMiddleware.RequireAdmin)
	console.Post("/stores", cfg.Catalog.CreateStore)
	console.Put("/stores/:id", cfg.Catalog.UpdateStore)
	console.Get("/stores", cfg.Catalog.ListStores)
	console.Post("/staff", cfg.Catalog.CreateStaff)
	console.Put("/staff/:id", cfg.Catalog.UpdateStaff)
	console.Get("/staff", cfg.Catalog.ListStaff)
	console.Post("/products", cfg.Catalog.CreateProduct)
	console.Put("/products/:id", cfg.Catalog.UpdateProduct)
	console.Get("/products", cfg.Catalog.ListProducts)
}
