package http

import (
	"github.com/gofiber/fiber/v2"
)

// Router agrupa los handlers y registra las rutas de la API.
type Router struct {
	authHandler       *AuthHandler
	stockHandler      *StockHandler
	movimientoHandler *MovimientoHandler
	reporteHandler    *ReporteHandler
	jwtSecret         string
}

// NewRouter construye el router.
func NewRouter(
	authHandler *AuthHandler,
	stockHandler *StockHandler,
	movimientoHandler *MovimientoHandler,
	reporteHandler *ReporteHandler,
	jwtSecret string,
) *Router {
	return &Router{
		authHandler:       authHandler,
		stockHandler:      stockHandler,
		movimientoHandler: movimientoHandler,
		reporteHandler:    reporteHandler,
		jwtSecret:         jwtSecret,
	}
}

// Setup registra todas las rutas bajo /api. Todo excepto auth requiere
// Bearer token; el alta de administradores requiere además superusuario.
func (r *Router) Setup(app *fiber.App) {
	api := app.Group("/api")

	// Rutas públicas de autenticación.
	authGroup := api.Group("/auth")
	authGroup.Post("/login", r.authHandler.Login)
	authGroup.Post("/refresh", r.authHandler.Refresh)
	authGroup.Post("/verify", r.authHandler.Verify)

	protected := api.Group("", AuthMiddleware(r.jwtSecret))

	stockGroup := protected.Group("/stock")
	stockGroup.Post("/", r.stockHandler.Create)
	stockGroup.Get("/", r.stockHandler.List)
	stockGroup.Get("/:id", r.stockHandler.GetByID)
	stockGroup.Patch("/:id", r.stockHandler.Update)
	stockGroup.Delete("/:id", r.stockHandler.Delete)
	stockGroup.Put("/:id/subtract", r.stockHandler.Subtract)
	stockGroup.Put("/:id/restock", r.stockHandler.Restock)
	stockGroup.Get("/:id/movimientos", r.stockHandler.Movimientos)

	protected.Get("/movimientos", r.movimientoHandler.List)

	reportes := protected.Group("/reportes")
	reportes.Get("/stock-bajo", r.reporteHandler.StockBajo)
	reportes.Get("/valor-inventario", r.reporteHandler.ValorInventario)

	protected.Post("/administradores", RequireSuperuser(), r.authHandler.RegistrarAdmin)
}
