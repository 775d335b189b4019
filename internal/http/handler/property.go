package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"propapi/internal/model"
	"propapi/internal/service"
	"propapi/internal/transform"
)

// decodePropertyInput accepts either a JSON body or the portal's submitted
// property form, keyed on Content-Type. Form submissions arrive with every
// field as a string and go through the form transformer first.
func decodePropertyInput(c *fiber.Ctx) (*model.PropertyInput, error) {
	ct := string(c.Request().Header.ContentType())
	if strings.HasPrefix(ct, fiber.MIMEApplicationForm) || strings.HasPrefix(ct, fiber.MIMEMultipartForm) {
		var f model.PropertyForm
		if err := c.BodyParser(&f); err != nil {
			return nil, err
		}
		return transform.PropertyFromForm(&f), nil
	}
	var in model.PropertyInput
	if err := c.BodyParser(&in); err != nil {
		return nil, err
	}
	return &in, nil
}

// CreateProperty validates and stores a new property.
func CreateProperty(svc service.PropertyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in, err := decodePropertyInput(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, codeInvalidArgument, "invalid request body")
		}
		p, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// GetProperty returns a property by ID.
func GetProperty(svc service.PropertyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(p)
	}
}

// ListProperties returns properties with limit/offset pagination. An
// ownerId query parameter narrows the listing to that owner's portfolio.
func ListProperties(svc service.PropertyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, err := listParams(c)
		if err != nil {
			return respondError(c, err)
		}
		var res *service.PropertyListResult
		if owner := c.Query("ownerId"); owner != "" {
			res, err = svc.ListByOwner(c.UserContext(), owner, limit, offset)
		} else {
			res, err = svc.List(c.UserContext(), limit, offset)
		}
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}

// UpdateProperty validates and applies the fields present in the body.
func UpdateProperty(svc service.PropertyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in, err := decodePropertyInput(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, codeInvalidArgument, "invalid request body")
		}
		p, err := svc.Update(c.UserContext(), c.Params("id"), in)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(p)
	}
}

// DeleteProperty removes a property record permanently.
func DeleteProperty(svc service.PropertyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return respondError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
