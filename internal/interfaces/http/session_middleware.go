package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/jhoicas/warehouse-picking-api/internal/application/dto"
	"github.com/jhoicas/warehouse-picking-api/internal/domain/entity"
)

// Claves de sesión y de c.Locals.
const (
	sessionKeyUsername = "username"
	sessionKeyRole     = "role"

	LocalUsername = "username"
	LocalRole     = "role"
)

// RequireLogin exige sesión activa. Los clientes programáticos (rutas /api,
// Accept JSON o XHR) reciben 401; la navegación de browser se redirige al login.
// Carga username y role en c.Locals para los handlers siguientes.
func RequireLogin(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return unauthorized(c)
		}
		username, _ := sess.Get(sessionKeyUsername).(string)
		if username == "" {
			return unauthorized(c)
		}
		role, _ := sess.Get(sessionKeyRole).(string)
		c.Locals(LocalUsername, username)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireAdmin exige rol admin. Debe usarse DESPUÉS de RequireLogin
// (lee el rol de c.Locals).
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetRole(c) != entity.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "Admin privileges required"})
		}
		return c.Next()
	}
}

// GetUsername devuelve el username de la sesión (después de RequireLogin).
func GetUsername(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUsername).(string)
	return s
}

// GetRole devuelve el rol de la sesión (después de RequireLogin).
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}

// wantsJSON distingue cliente programático de navegación de browser.
func wantsJSON(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Path(), "/api") ||
		strings.Contains(c.Get(fiber.HeaderAccept), fiber.MIMEApplicationJSON) ||
		c.XHR()
}

func unauthorized(c *fiber.Ctx) error {
	if wantsJSON(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Unauthorized"})
	}
	return c.Redirect("/login", fiber.StatusFound)
}
