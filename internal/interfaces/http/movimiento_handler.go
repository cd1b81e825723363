package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/acardona/stock-api/internal/application/usecase"
	"github.com/acardona/stock-api/internal/domain/repository"
)

// MovimientoHandler handlers de solo lectura sobre el libro de movimientos.
type MovimientoHandler struct {
	movimientoUC *usecase.MovimientoUseCase
}

// NewMovimientoHandler construye el handler.
func NewMovimientoHandler(movimientoUC *usecase.MovimientoUseCase) *MovimientoHandler {
	return &MovimientoHandler{movimientoUC: movimientoUC}
}

// List maneja GET /api/movimientos. Filtros opcionales: producto_id, tipo.
// Siempre ordenado del movimiento más reciente al más antiguo.
func (h *MovimientoHandler) List(c *fiber.Ctx) error {
	productoID := c.Query("producto_id")
	if productoID != "" {
		if _, err := uuid.Parse(productoID); err != nil {
			return fail(c, fiber.StatusBadRequest, "VALIDATION", "producto_id debe ser un UUID")
		}
	}
	limit, offset := parsePagination(c)
	res, err := h.movimientoUC.List(repository.MovimientoFiltro{
		ProductoID: productoID,
		Tipo:       c.Query("tipo"),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(res)
}
