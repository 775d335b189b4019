package handler

import (
	"github.com/gofiber/fiber/v2"

	"propapi/internal/auth"
	"propapi/internal/http/middleware"
	"propapi/internal/service"
	"propapi/internal/validation"
)

// Deps bundles everything the route table needs. Handlers stay thin;
// business rules live in the services.
type Deps struct {
	DB            Pinger
	Tokens        *auth.Tokens
	Validator     *validation.Validator
	Users         service.UserService
	Properties    service.PropertyService
	Documents     service.DocumentService
	Notifications service.NotificationService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Health
// probes stay open; everything under /v1 requires a bearer token.
func RegisterRoutes(app *fiber.App, d Deps) {
	// Health endpoint: checks DB connectivity only
	app.Get("/health", HealthCheck(d.DB))

	// Backward-compatible simple liveness probe
	app.Get("/healthz", LivenessProbe())

	v1 := app.Group("/v1", middleware.Auth(d.Tokens))

	// Validation entry point: checks a payload without persisting it
	v1.Post("/validate", Validate(d.Validator))

	users := v1.Group("/users")
	users.Post("/", CreateUser(d.Users))
	users.Get("/", ListUsers(d.Users))
	users.Get("/:id", GetUser(d.Users))
	users.Patch("/:id", UpdateUser(d.Users))
	users.Post("/:id/deactivate", DeactivateUser(d.Users))
	users.Delete("/:id", DeleteUser(d.Users))
	users.Get("/:id/notifications", ListUserNotifications(d.Notifications))

	properties := v1.Group("/properties")
	properties.Post("/", CreateProperty(d.Properties))
	properties.Get("/", ListProperties(d.Properties))
	properties.Get("/:id", GetProperty(d.Properties))
	properties.Patch("/:id", UpdateProperty(d.Properties))
	properties.Delete("/:id", DeleteProperty(d.Properties))
	properties.Get("/:id/documents", ListPropertyDocuments(d.Documents))

	documents := v1.Group("/documents")
	documents.Post("/", UploadDocument(d.Documents))
	documents.Get("/", ListDocuments(d.Documents))
	documents.Get("/:id", GetDocument(d.Documents))
	documents.Get("/:id/download", DownloadDocument(d.Documents))
	documents.Patch("/:id", UpdateDocument(d.Documents))
	documents.Delete("/:id", DeleteDocument(d.Documents))

	notifications := v1.Group("/notifications")
	notifications.Post("/", SendNotification(d.Notifications))
	notifications.Post("/:id/read", MarkNotificationRead(d.Notifications))
}
