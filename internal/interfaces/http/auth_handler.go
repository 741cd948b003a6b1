package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/jhoicas/warehouse-picking-api/internal/application/auth"
	"github.com/jhoicas/warehouse-picking-api/internal/application/dto"
)

// AuthHandler login/logout sobre sesiones de cookie.
type AuthHandler struct {
	uc    *auth.AuthUseCase
	store *session.Store
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, store *session.Store) *AuthHandler {
	return &AuthHandler{uc: uc, store: store}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Accept       json
// @Produce      json
// @Param        username  formData  string  true  "usuario"
// @Param        password  formData  string  true  "password"
// @Success      200  {object}  dto.LoginResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return h.loginFailed(c)
	}
	if in.Username == "" || in.Password == "" {
		return h.loginFailed(c)
	}

	user, err := h.uc.Login(in.Username, in.Password)
	if err != nil {
		// Mensaje genérico: nunca se revela qué campo falló.
		return h.loginFailed(c)
	}

	sess, err := h.store.Get(c)
	if err != nil {
		return err
	}
	// Cookie nueva en cada login para no reutilizar IDs de sesión previos.
	if err := sess.Regenerate(); err != nil {
		return err
	}
	sess.Set(sessionKeyUsername, user.Username)
	sess.Set(sessionKeyRole, user.Role)
	if err := sess.Save(); err != nil {
		return err
	}

	if wantsJSON(c) {
		return c.JSON(dto.LoginResponse{
			Success: true,
			User:    dto.SessionUserResponse{Username: user.Username, Role: user.Role},
		})
	}
	return c.Redirect("/", fiber.StatusFound)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Success      302
// @Router       /logout [get]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err == nil {
		_ = sess.Destroy()
	}
	return c.Redirect("/login", fiber.StatusFound)
}

// Me devuelve la identidad de la sesión activa (para el dashboard).
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(dto.SessionUserResponse{Username: GetUsername(c), Role: GetRole(c)})
}

func (h *AuthHandler) loginFailed(c *fiber.Ctx) error {
	if wantsJSON(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Invalid credentials"})
	}
	return c.Redirect("/login?error=1", fiber.StatusFound)
}
