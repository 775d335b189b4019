package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"propapi/internal/http/middleware"
	"propapi/internal/service"
	"propapi/internal/validation"
)

// Wire error codes. The names follow the portal's original public API,
// so clients keep matching on the strings they already know.
const (
	codeInvalidArgument  = "invalid-argument"
	codeUnauthenticated  = "unauthenticated"
	codeNotFound         = "not-found"
	codeMethodNotAllowed = "method-not-allowed"
	codeUnavailable      = "unavailable"
	codeInternal         = "internal"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking
// internal errors.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// respondError translates service and validation errors into the wire
// envelope. Validation failures surface their messages joined into one
// string, the shape the portal's clients already parse.
func respondError(c *fiber.Ctx, err error) error {
	var reqErr *validation.RequestError
	var valErr *validation.ValidationError
	switch {
	case errors.As(err, &reqErr):
		return writeError(c, fiber.StatusBadRequest, codeInvalidArgument, reqErr.Reason)
	case errors.As(err, &valErr):
		return writeError(c, fiber.StatusBadRequest, codeInvalidArgument, valErr.Error())
	case errors.Is(err, validation.ErrUnauthenticated):
		return writeError(c, fiber.StatusUnauthorized, codeUnauthenticated, "authentication required")
	case errors.Is(err, service.ErrIDRequired):
		return writeError(c, fiber.StatusBadRequest, codeInvalidArgument, "id is required")
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, codeNotFound, "record not found")
	default:
		return writeError(c, fiber.StatusInternalServerError, codeInternal, "internal server error")
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes
// error responses, including rejections from routing and middleware.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			switch fe.Code {
			case fiber.StatusBadRequest:
				return writeError(c, fe.Code, codeInvalidArgument, fe.Message)
			case fiber.StatusUnauthorized:
				return writeError(c, fe.Code, codeUnauthenticated, fe.Message)
			case fiber.StatusNotFound:
				return writeError(c, fe.Code, codeNotFound, "resource not found")
			case fiber.StatusMethodNotAllowed:
				return writeError(c, fe.Code, codeMethodNotAllowed, "method not allowed")
			default:
				return writeError(c, fe.Code, codeInternal, "internal server error")
			}
		}
		return respondError(c, err)
	}
}
