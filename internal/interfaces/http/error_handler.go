package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/usuarios-api/internal/application/authz"
	"github.com/jhoicas/usuarios-api/internal/domain"
	pkgjwt "github.com/jhoicas/usuarios-api/pkg/jwt"
)

// APIError error tipado con código HTTP y detalles opcionales.
// Los handlers lo devuelven cuando necesitan adjuntar detalles (campo en
// conflicto, lista de validaciones); para el resto alcanzan los sentinelas
// de dominio que el ErrorHandler mapea solo.
type APIError struct {
	Status  int
	Message string
	Details any
}

func (e *APIError) Error() string { return e.Message }

// BadRequest error 400 con detalles de validación por campo.
func BadRequest(message string, details any) *APIError {
	return &APIError{Status: fiber.StatusBadRequest, Message: message, Details: details}
}

// Unauthorized error 401.
func Unauthorized(message string) *APIError {
	return &APIError{Status: fiber.StatusUnauthorized, Message: message}
}

// NotFound error 404.
func NotFound(message string) *APIError {
	return &APIError{Status: fiber.StatusNotFound, Message: message}
}

// Conflict error 409, con el campo y valor duplicados como detalle.
func Conflict(message, field, value string) *APIError {
	return &APIError{
		Status:  fiber.StatusConflict,
		Message: message,
		Details: fiber.Map{"field": field, "value": value},
	}
}

// NewErrorHandler devuelve el ErrorHandler global de Fiber: único punto donde
// los errores tipados se traducen al envoltorio JSON uniforme. En producción
// los errores internos son opacos para el cliente; el detalle queda en el log.
func NewErrorHandler(log zerolog.Logger, env string) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := "error interno del servidor"
		var details any

		var apiErr *APIError
		var denial *authz.Denial
		var fiberErr *fiber.Error

		switch {
		case errors.As(err, &apiErr):
			status = apiErr.Status
			message = apiErr.Message
			details = apiErr.Details
		case errors.As(err, &denial):
			status = fiber.StatusForbidden
			message = denial.Message
		case errors.Is(err, pkgjwt.ErrExpired):
			status = fiber.StatusUnauthorized
			message = "token expirado"
		case errors.Is(err, pkgjwt.ErrMalformed), errors.Is(err, pkgjwt.ErrSignatureInvalid):
			status = fiber.StatusUnauthorized
			message = "token inválido"
		case errors.Is(err, domain.ErrUnauthorized):
			status = fiber.StatusUnauthorized
			message = "no autorizado"
		case errors.Is(err, domain.ErrSuperadminRole), errors.Is(err, domain.ErrCompanyAdminDelete),
			errors.Is(err, domain.ErrForbidden):
			status = fiber.StatusForbidden
			message = err.Error()
		case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrCompanyNotFound),
			errors.Is(err, domain.ErrRoleNotFound), errors.Is(err, domain.ErrNotFound):
			status = fiber.StatusNotFound
			message = err.Error()
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			status = fiber.StatusConflict
			message = err.Error()
		case errors.As(err, &fiberErr):
			status = fiberErr.Code
			message = fiberErr.Message
		}

		if status >= fiber.StatusInternalServerError {
			log.Error().Err(err).
				Str("path", c.OriginalURL()).
				Str("method", c.Method()).
				Msg("error no manejado")
			if env == "development" {
				message = err.Error()
			}
		}

		return c.Status(status).JSON(envelope{
			Status:    status,
			Success:   false,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Path:      c.OriginalURL(),
			Method:    c.Method(),
			Message:   message,
			Details:   details,
		})
	}
}
