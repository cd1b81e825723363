package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/acardona/stock-api/pkg/jwt"
)

// Locals keys para los claims del token en Fiber.
const (
	LocalAdminID   = "admin_id"
	LocalSuperuser = "superuser"
)

// AuthMiddleware valida el Bearer Token JWT (tipo access) y deja AdminID y el
// flag de superuser en c.Locals. Ausencia o invalidez del token -> 401.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fail(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "Authorization header requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fail(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return fail(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "token vacío")
		}
		claims, err := jwt.ParseAccess(jwtSecret, tokenString)
		if err != nil {
			return fail(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "token inválido o expirado")
		}
		c.Locals(LocalAdminID, claims.AdminID)
		c.Locals(LocalSuperuser, claims.Superuser)
		return c.Next()
	}
}

// RequireSuperuser autoriza solo a superusuarios. Usar después de AuthMiddleware.
func RequireSuperuser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetAdminID(c) == "" {
			return fail(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "token requerido")
		}
		if !IsSuperuser(c) {
			return fail(c, fiber.StatusForbidden, "FORBIDDEN", "se requiere superusuario")
		}
		return c.Next()
	}
}

// GetAdminID devuelve el AdminID del contexto (después del middleware de auth).
func GetAdminID(c *fiber.Ctx) string {
	v := c.Locals(LocalAdminID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// IsSuperuser indica si el token pertenece a un superusuario.
func IsSuperuser(c *fiber.Ctx) bool {
	v := c.Locals(LocalSuperuser)
	if v == nil {
		return false
	}
	b, _ := v.(bool)
	return b
}
