package routes

import (
	"github.com/anjiri1684/questoes_api/handlers"
	"github.com/gofiber/fiber/v2"
)

func PublicRoutes(app *fiber.App, h *handlers.StatusHandler) {
	app.Get("/", h.GetStatus)
}
