package repository

import (
	"context"

	"propapi/internal/model"
)

// NotificationRepository defines data access for portal notifications.
type NotificationRepository interface {
	// Create inserts a notification built from the given input.
	Create(ctx context.Context, in *model.NotificationInput) (*model.Notification, error)

	// ListByUser returns the notifications addressed to the given user,
	// newest first.
	ListByUser(ctx context.Context, userID string, pq PageQuery) (*PageResult[model.Notification], error)

	// MarkRead flips the read flag on a notification. Returns ErrNotFound
	// when the id matches no record.
	MarkRead(ctx context.Context, id string) error
}
