package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acardona/stock-api/internal/application/usecase"
)

// ReporteHandler handlers de reportes de inventario.
type ReporteHandler struct {
	reporteUC *usecase.ReporteUseCase
}

// NewReporteHandler construye el handler.
func NewReporteHandler(reporteUC *usecase.ReporteUseCase) *ReporteHandler {
	return &ReporteHandler{reporteUC: reporteUC}
}

// StockBajo maneja GET /api/reportes/stock-bajo: productos activos con
// cantidad en o por debajo del stock mínimo.
func (h *ReporteHandler) StockBajo(c *fiber.Ctx) error {
	items, err := h.reporteUC.StockBajo()
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(fiber.Map{"items": items, "total": len(items)})
}

// ValorInventario maneja GET /api/reportes/valor-inventario: Σ cantidad × precio
// de los productos activos.
func (h *ReporteHandler) ValorInventario(c *fiber.Ctx) error {
	res, err := h.reporteUC.ValorInventario()
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(res)
}
