package routes

import (
	"github.com/anjiri1684/questoes_api/handlers"
	"github.com/gofiber/fiber/v2"
)

func UserRoutes(app *fiber.App, h *handlers.UserHandler) {
	users := app.Group("/usuarios")
	users.Get("", h.ListUsers)
	users.Post("", h.CreateUser)
	users.Get("/email/:email", h.GetUserByEmail)
	users.Get("/:id", h.GetUser)
	users.Put("/:id", h.UpdateUser)
	users.Delete("/:id", h.DeleteUser)
}
