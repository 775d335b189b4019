package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"propapi/internal/model"
	"propapi/internal/service"
	"propapi/internal/validation"
)

// listParams reads the limit/offset query parameters shared by all list
// endpoints. A malformed value is a request error, not a silent default.
func listParams(c *fiber.Ctx) (int, int, error) {
	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil {
		return 0, 0, &validation.RequestError{Reason: "invalid limit"}
	}
	offset, err := strconv.Atoi(c.Query("offset", "0"))
	if err != nil {
		return 0, 0, &validation.RequestError{Reason: "invalid offset"}
	}
	return limit, offset, nil
}

// CreateUser validates and stores a new portal user.
func CreateUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.UserInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, codeInvalidArgument, "invalid request body")
		}
		u, err := svc.Create(c.UserContext(), &in)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(u)
	}
}

// GetUser returns a user by ID.
func GetUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(u)
	}
}

// ListUsers returns users with limit/offset pagination.
func ListUsers(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, err := listParams(c)
		if err != nil {
			return respondError(c, err)
		}
		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}

// UpdateUser validates and applies the fields present in the body.
func UpdateUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.UserInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, codeInvalidArgument, "invalid request body")
		}
		u, err := svc.Update(c.UserContext(), c.Params("id"), &in)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(u)
	}
}

// DeactivateUser clears the active flag without removing the record.
func DeactivateUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := svc.Deactivate(c.UserContext(), c.Params("id"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(u)
	}
}

// DeleteUser removes a user record permanently.
func DeleteUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return respondError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
