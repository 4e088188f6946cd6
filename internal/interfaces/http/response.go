package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// envelope estructura uniforme de todas las respuestas JSON.
// En éxito lleva Data; en error lleva Message y opcionalmente Details.
type envelope struct {
	Status    int    `json:"status"`
	Success   bool   `json:"success"`
	Timestamp string `json:"timestamp"`
	Path      string `json:"path"`
	Method    string `json:"method"`
	Message   string `json:"message,omitempty"`
	Details   any    `json:"details,omitempty"`
	Data      any    `json:"data,omitempty"`
}

// respond envía una respuesta exitosa con el envoltorio estándar.
func respond(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(envelope{
		Status:    status,
		Success:   true,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Path:      c.OriginalURL(),
		Method:    c.Method(),
		Data:      data,
	})
}
