package routes

import (
	"github.com/anjiri1684/questoes_api/handlers"
	"github.com/gofiber/fiber/v2"
)

func QuestionRoutes(app *fiber.App, h *handlers.QuestionHandler) {
	questions := app.Group("/questoes")
	questions.Get("", h.ListQuestions)
	questions.Post("", h.CreateQuestion)
	questions.Get("/:id", h.GetQuestion)
	questions.Put("/:id", h.UpdateQuestion)
	questions.Delete("/:id", h.DeleteQuestion)
}
