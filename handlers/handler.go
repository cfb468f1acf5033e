package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

const msgMissingFields = "Campos obrigatórios faltando"

// Gateway is the slice of the database gateway the resource handlers use.
type Gateway interface {
	Query(ctx context.Context, dest any, stmt string, args ...any) error
	Exec(ctx context.Context, stmt string, args ...any) error
}

func errorJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"erro": message})
}

func messageJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"mensagem": message})
}
