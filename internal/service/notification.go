package service

import (
	"context"

	"propapi/internal/model"
	"propapi/internal/repository"
	"propapi/internal/validation"
)

// NotificationListResult is the service-level DTO for paginated
// notifications.
type NotificationListResult struct {
	Items []model.Notification `json:"data"`
	Total int                  `json:"total"`
}

// NotificationService defines the use cases for portal notifications.
// Other services also send through it when a write deserves a heads-up
// to the affected user.
type NotificationService interface {
	// Send validates the input and stores the notification unread.
	Send(ctx context.Context, in *model.NotificationInput) (*model.Notification, error)

	// ListByUser returns the notifications addressed to a user, newest first.
	ListByUser(ctx context.Context, userID string, limit, offset int) (*NotificationListResult, error)

	// MarkRead flips the read flag on a notification.
	MarkRead(ctx context.Context, id string) error
}

type notificationService struct {
	repo repository.NotificationRepository
	v    *validation.Validator
}

// NewNotificationService constructs a new NotificationService.
func NewNotificationService(repo repository.NotificationRepository, v *validation.Validator) NotificationService {
	return &notificationService{repo: repo, v: v}
}

func (s *notificationService) Send(ctx context.Context, in *model.NotificationInput) (*model.Notification, error) {
	if err := s.v.ValidateNotification(ctx, in).Err(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, in)
}

func (s *notificationService) ListByUser(ctx context.Context, userID string, limit, offset int) (*NotificationListResult, error) {
	if userID == "" {
		return nil, ErrIDRequired
	}
	res, err := s.repo.ListByUser(ctx, userID, pageQuery(limit, offset))
	if err != nil {
		return nil, err
	}
	return &NotificationListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *notificationService) MarkRead(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	return mapNotFound(s.repo.MarkRead(ctx, id))
}
