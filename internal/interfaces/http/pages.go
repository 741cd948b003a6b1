package http

import (
	"embed"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Las páginas son estáticas a propósito: el dashboard habla solo JSON con
// la API y el render vive en el browser, no en el servidor.
//
//go:embed web/login.html web/dashboard.html
var webFS embed.FS

// registerPages GET /login (pública) y GET / (dashboard, exige sesión).
func registerPages(app *fiber.App, store *session.Store) {
	app.Get("/login", func(c *fiber.Ctx) error {
		// Sesión activa: directo al dashboard.
		if sess, err := store.Get(c); err == nil {
			if username, _ := sess.Get(sessionKeyUsername).(string); username != "" {
				return c.Redirect("/", fiber.StatusFound)
			}
		}
		return servePage(c, "web/login.html")
	})

	app.Get("/", RequireLogin(store), func(c *fiber.Ctx) error {
		return servePage(c, "web/dashboard.html")
	})
}

func servePage(c *fiber.Ctx, name string) error {
	page, err := webFS.ReadFile(name)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(page)
}
