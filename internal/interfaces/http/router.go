package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/jhoicas/warehouse-picking-api/internal/application/auth"
	"github.com/jhoicas/warehouse-picking-api/internal/application/dto"
	"github.com/jhoicas/warehouse-picking-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InventoryUC *usecase.InventoryUseCase
	ScanUC      *usecase.ScanUseCase
	ProductUC   *usecase.ProductUseCase
	LabelUC     *usecase.LabelUseCase
	AuthUC      *auth.AuthUseCase
	Sessions    *session.Store
}

// Router registra las rutas de la API y las páginas del dashboard.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC, deps.Sessions)

	// Auth (público) + páginas estáticas
	app.Post("/login", authHandler.Login)
	app.Get("/logout", authHandler.Logout)
	registerPages(app, deps.Sessions)

	// API protegida por sesión
	api := app.Group("/api", RequireLogin(deps.Sessions))

	api.Get("/me", authHandler.Me)

	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	api.Get("/summary", inventoryHandler.Summary)
	api.Get("/categories", inventoryHandler.Categories)

	productHandler := NewProductHandler(deps.InventoryUC, deps.ProductUC, deps.LabelUC)
	api.Get("/products", productHandler.List)
	api.Get("/products/labels", RequireAdmin(), productHandler.Labels)
	api.Put("/product/:id", productHandler.Update)

	scanHandler := NewScanHandler(deps.ScanUC)
	api.Post("/scan", scanHandler.Scan)
	api.Delete("/scan/:id", scanHandler.Unscan)
	api.Get("/scans", RequireAdmin(), scanHandler.Events)

	// Rutas no registradas: 404 con el shape {"error": ...}
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "not found"})
	})
}
