package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/acardona/stock-api/internal/application/dto"
	"github.com/acardona/stock-api/internal/domain"
)

// fail responde con el cuerpo de error estándar {error, detail, success:false}.
func fail(c *fiber.Ctx, status int, code, detail string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: code, Detail: detail, Success: false})
}

// failDomain traduce un error de dominio a status + cuerpo estándar.
// Mapeo: validación/stock insuficiente -> 400, no encontrado -> 404,
// no autorizado -> 401, prohibido -> 403, duplicado -> 409, resto -> 500.
func failDomain(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		return fail(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	case errors.Is(err, domain.ErrInsufficientStock):
		return fail(c, fiber.StatusBadRequest, "STOCK_INSUFICIENTE", err.Error())
	case errors.Is(err, domain.ErrStockExceedsMax):
		return fail(c, fiber.StatusBadRequest, "STOCK_MAXIMO", err.Error())
	case errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidThresholds),
		errors.Is(err, domain.ErrInvalidInput):
		return fail(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrAdminNotFound):
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		return fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", err.Error())
	case errors.Is(err, domain.ErrForbidden):
		return fail(c, fiber.StatusForbidden, "FORBIDDEN", err.Error())
	case errors.Is(err, domain.ErrUsernameExists), errors.Is(err, domain.ErrDuplicate):
		return fail(c, fiber.StatusConflict, "DUPLICATE", err.Error())
	default:
		// No filtrar detalles internos al caller; el detalle queda en el log.
		log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
		return fail(c, fiber.StatusInternalServerError, "INTERNAL", "error interno del servidor")
	}
}

// ErrorHandler manejador de errores de Fiber: garantiza la forma JSON
// estándar también para fallos no anticipados y panics recuperados.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code := "ERROR"
		switch fiberErr.Code {
		case fiber.StatusNotFound:
			code = "NOT_FOUND"
		case fiber.StatusMethodNotAllowed:
			code = "METHOD_NOT_ALLOWED"
		case fiber.StatusBadRequest:
			code = "VALIDATION"
		}
		return fail(c, fiberErr.Code, code, fiberErr.Message)
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("error no manejado")
	return fail(c, fiber.StatusInternalServerError, "INTERNAL", "error interno del servidor")
}
