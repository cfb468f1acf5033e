package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestID keeps a caller supplied X-Request-ID or assigns a UUID.
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:    RequestIDHeader,
		Generator: uuid.NewString,
	})
}
