package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	LocationUC  *usecase.LocationUseCase
	DashboardUC *usecase.DashboardUseCase
	MovementUC  *ledger.MovementUseCase
	BalanceUC   *ledger.BalanceUseCase
	ReportPDF   *ledger.ReportPDFUseCase
	Auth        AuthConfig
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.Auth)
	authGroup.Post("/token", authHandler.Token)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.Auth.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.MovementUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Get("/:id/movements", productHandler.Movements)

	// Locations (protegido)
	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC, deps.MovementUC)
	locations.Post("/", locationHandler.Create)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)
	locations.Put("/:id", locationHandler.Update)
	locations.Get("/:id/movements", locationHandler.Movements)

	// Movements (protegido)
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Post("/", movementHandler.Record)
	movements.Get("/", movementHandler.List)
	movements.Get("/:id", movementHandler.GetByID)
	movements.Put("/:id", movementHandler.Update)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.BalanceUC, deps.ReportPDF, deps.DashboardUC)
	reports.Get("/balance", reportHandler.Balance)
	reports.Get("/balance/raw", reportHandler.BalanceRaw)
	reports.Get("/balance/pdf", reportHandler.BalancePDF)
	reports.Get("/dashboard", reportHandler.Dashboard)
}
