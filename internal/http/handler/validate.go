package handler

import (
	"github.com/gofiber/fiber/v2"

	"propapi/internal/validation"
)

// validateResponse is the boundary shape of a validation call: pass/fail
// plus human-readable messages. The structured field errors stay internal.
type validateResponse struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Validate checks a {collection, data, operation} request against the
// matching validator set without persisting anything.
func Validate(v *validation.Validator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req validation.Request
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, codeInvalidArgument, "request body must be a JSON object")
		}
		res, err := v.Validate(c.UserContext(), req)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(validateResponse{Valid: res.Valid, Errors: res.Messages()})
	}
}
