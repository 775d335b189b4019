package transform

import (
	"strings"
	"time"

	"propapi/internal/model"
)

// NotificationFromRecord widens a stored notification into the
// application model.
func NotificationFromRecord(rec *model.NotificationRecord) *model.Notification {
	return &model.Notification{
		ID:        hexID(rec.ID),
		UserID:    hexID(rec.UserID),
		Title:     rec.Title,
		Message:   rec.Message,
		Type:      model.NotificationType(rec.Type),
		Read:      rec.Read,
		CreatedAt: rec.CreatedAt,
	}
}

// NewNotificationRecord builds the record a send persists. Notifications
// start unread and default to the info type.
func NewNotificationRecord(in *model.NotificationInput, now time.Time) *model.NotificationRecord {
	rec := &model.NotificationRecord{
		Type:      string(model.NotificationInfo),
		CreatedAt: now,
	}
	if in.UserID != nil {
		rec.UserID = oid(*in.UserID)
	}
	if in.Title != nil {
		rec.Title = strings.TrimSpace(*in.Title)
	}
	if in.Message != nil {
		rec.Message = strings.TrimSpace(*in.Message)
	}
	if in.Type != nil && strings.TrimSpace(*in.Type) != "" {
		rec.Type = strings.TrimSpace(*in.Type)
	}
	return rec
}
