package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/acardona/stock-api/internal/application/auth"
	"github.com/acardona/stock-api/internal/application/dto"
	"github.com/acardona/stock-api/internal/domain"
)

// AuthHandler handlers de autenticación y administración de cuentas.
type AuthHandler struct {
	authUC *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(authUC *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// Login maneja POST /api/auth/login. Credenciales inválidas responden 401
// sin distinguir usuario inexistente de contraseña incorrecta.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo JSON inválido")
	}
	res, err := h.authUC.Login(req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAdminNotFound), errors.Is(err, domain.ErrUnauthorized):
			return fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "credenciales inválidas")
		case errors.Is(err, domain.ErrForbidden):
			return fail(c, fiber.StatusForbidden, "FORBIDDEN", "cuenta inactiva")
		case errors.Is(err, domain.ErrInvalidInput):
			return fail(c, fiber.StatusBadRequest, "VALIDATION", "username y password son requeridos")
		default:
			return failDomain(c, err)
		}
	}
	return c.JSON(res)
}

// Refresh maneja POST /api/auth/refresh: rota el access token a partir de un
// refresh token vigente.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo JSON inválido")
	}
	if req.Refresh == "" {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "refresh es requerido")
	}
	res, err := h.authUC.Refresh(req.Refresh)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return fail(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "refresh token inválido o expirado")
		}
		return failDomain(c, err)
	}
	return c.JSON(res)
}

// Verify maneja POST /api/auth/verify: comprueba firma y expiración de un token.
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	var req dto.VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo JSON inválido")
	}
	if req.Token == "" {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "token es requerido")
	}
	if err := h.authUC.Verify(req.Token); err != nil {
		return fail(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "token inválido o expirado")
	}
	return c.JSON(fiber.Map{"success": true})
}

// RegistrarAdmin maneja POST /api/administradores. Solo superusuarios.
func (h *AuthHandler) RegistrarAdmin(c *fiber.Ctx) error {
	var req dto.RegistrarAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo JSON inválido")
	}
	res, err := h.authUC.Registrar(req)
	if err != nil {
		return failDomain(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}
