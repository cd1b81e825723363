package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/acardona/stock-api/internal/application/dto"
	"github.com/acardona/stock-api/internal/application/stock"
	"github.com/acardona/stock-api/internal/application/usecase"
)

// StockHandler handlers HTTP para productos y mutaciones de stock.
type StockHandler struct {
	productoUC   *usecase.ProductoUseCase
	stockUC      *stock.UseCase
	movimientoUC *usecase.MovimientoUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(productoUC *usecase.ProductoUseCase, stockUC *stock.UseCase, movimientoUC *usecase.MovimientoUseCase) *StockHandler {
	return &StockHandler{productoUC: productoUC, stockUC: stockUC, movimientoUC: movimientoUC}
}

// Create maneja POST /api/stock/.
func (h *StockHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateProductoRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo JSON inválido")
	}
	res, err := h.productoUC.Create(req)
	if err != nil {
		return failDomain(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// List maneja GET /api/stock/.
func (h *StockHandler) List(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)
	res, err := h.productoUC.List(limit, offset)
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(res)
}

// paramID valida el :id de la ruta. Un id que ni siquiera es un UUID no
// puede nombrar ningún producto, así que cuenta como no encontrado.
func paramID(c *fiber.Ctx) (string, bool) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

// GetByID maneja GET /api/stock/:id.
func (h *StockHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", "producto no encontrado")
	}
	res, err := h.productoUC.GetByID(id)
	if err != nil {
		return failDomain(c, err)
	}
	if res == nil {
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", "producto no encontrado")
	}
	return c.JSON(res)
}

// Update maneja PATCH /api/stock/:id. El body no admite cantidad; el stock
// solo cambia por subtract/restock.
func (h *StockHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", "producto no encontrado")
	}
	var req dto.UpdateProductoRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo JSON inválido")
	}
	res, err := h.productoUC.Update(c.Context(), id, req, GetAdminID(c))
	if err != nil {
		return failDomain(c, err)
	}
	if res == nil {
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", "producto no encontrado")
	}
	return c.JSON(res)
}

// Delete maneja DELETE /api/stock/:id.
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", "producto no encontrado")
	}
	if err := h.productoUC.Delete(id); err != nil {
		return failDomain(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Subtract maneja PUT /api/stock/:id/subtract. Resta stock y anexa un
// movimiento 'salida'.
func (h *StockHandler) Subtract(c *fiber.Ctx) error {
	return h.mutar(c, false)
}

// Restock maneja PUT /api/stock/:id/restock. Suma stock y anexa un
// movimiento 'entrada'.
func (h *StockHandler) Restock(c *fiber.Ctx) error {
	return h.mutar(c, true)
}

func (h *StockHandler) mutar(c *fiber.Ctx, aumentar bool) error {
	id, ok := paramID(c)
	if !ok {
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", "producto no encontrado")
	}
	var req dto.MutacionStockRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo JSON inválido")
	}
	if req.Cantidad == nil {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "cantidad es requerida")
	}

	var (
		res     *stock.Resultado
		err     error
		mensaje string
	)
	if aumentar {
		res, err = h.stockUC.Aumentar(c.Context(), id, *req.Cantidad, req.Observaciones, GetAdminID(c))
		mensaje = "Stock aumentado"
	} else {
		res, err = h.stockUC.Disminuir(c.Context(), id, *req.Cantidad, req.Observaciones, GetAdminID(c))
		mensaje = "Stock reducido"
	}
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(dto.MutacionStockResponse{
		Mensaje:      mensaje,
		NuevoStock:   res.NuevoStock,
		MovimientoID: res.MovimientoID,
	})
}

// Movimientos maneja GET /api/stock/:id/movimientos. Devuelve el libro del
// producto junto con su saldo.
func (h *StockHandler) Movimientos(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", "producto no encontrado")
	}
	limit, offset := parsePagination(c)
	res, err := h.movimientoUC.LedgerProducto(id, c.Query("tipo"), limit, offset)
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(res)
}

// parsePagination lee limit/offset del query string con defaults sanos.
func parsePagination(c *fiber.Ctx) (limit, offset int) {
	limit = 50
	offset = 0
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > 200 {
		limit = 200
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}
