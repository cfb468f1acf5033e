package handlers

import "github.com/gofiber/fiber/v2"

const (
	apiDescription = "API para questões e usuários"
	apiAuthor      = "Luick Eduardo Neres Costa"
)

// HealthReporter exposes the database health captured at startup.
type HealthReporter interface {
	Status() string
}

type StatusHandler struct {
	health HealthReporter
}

func NewStatusHandler(health HealthReporter) *StatusHandler {
	return &StatusHandler{health: health}
}

// GetStatus reports the startup snapshot; it does not touch the database.
func (h *StatusHandler) GetStatus(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":  apiDescription,
		"author":   apiAuthor,
		"statusBD": h.health.Status(),
	})
}
