package routes

import (
	"errors"
	"time"

	"github.com/anjiri1684/questoes_api/database"
	"github.com/anjiri1684/questoes_api/handlers"
	"github.com/anjiri1684/questoes_api/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// NewApp wires every route onto a fresh fiber app. Handlers answer their own
// failures; the error handler only sees unknown routes and recovered panics.
func NewApp(db *database.Gateway, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:       "Questoes API",
		CaseSensitive: false,
		StrictRouting: false,
		UnescapePath:  false,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			if code >= fiber.StatusInternalServerError {
				log.Error("unhandled request error",
					zap.Error(err),
					zap.String("method", c.Method()),
					zap.String("path", c.Path()),
				)
				return c.Status(code).JSON(fiber.Map{"erro": "Erro interno do servidor"})
			}
			return c.Status(code).JSON(fiber.Map{"erro": err.Error()})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, " + middleware.RequestIDHeader,
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
		MaxAge:       86400,
	}))
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path} ${locals:requestid}\n",
	}))

	PublicRoutes(app, handlers.NewStatusHandler(db))
	QuestionRoutes(app, handlers.NewQuestionHandler(db))
	UserRoutes(app, handlers.NewUserHandler(db, log))

	return app
}
