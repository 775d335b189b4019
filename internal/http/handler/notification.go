package handler

import (
	"github.com/gofiber/fiber/v2"

	"propapi/internal/model"
	"propapi/internal/service"
)

// SendNotification validates and stores a notification for a user.
func SendNotification(svc service.NotificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.NotificationInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, codeInvalidArgument, "invalid request body")
		}
		n, err := svc.Send(c.UserContext(), &in)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(n)
	}
}

// ListUserNotifications returns the notifications addressed to the user in
// the path, newest first.
func ListUserNotifications(svc service.NotificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, err := listParams(c)
		if err != nil {
			return respondError(c, err)
		}
		res, err := svc.ListByUser(c.UserContext(), c.Params("id"), limit, offset)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}

// MarkNotificationRead flips the read flag on a notification.
func MarkNotificationRead(svc service.NotificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.MarkRead(c.UserContext(), c.Params("id")); err != nil {
			return respondError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
