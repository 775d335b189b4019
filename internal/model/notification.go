package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification is a message delivered to a portal user's notification
// center. Delivery and presentation are the frontend's concern; this side
// stores and lists them.
type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"createdAt"`
}

// NotificationRecord is the persisted shape of a notification.
type NotificationRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"userId"`
	Title     string             `bson:"title"`
	Message   string             `bson:"message"`
	Type      string             `bson:"type"`
	Read      bool               `bson:"read"`
	CreatedAt time.Time          `bson:"createdAt"`
}

// NotificationInput carries a send request before validation.
type NotificationInput struct {
	UserID  *string `json:"userId"`
	Title   *string `json:"title"`
	Message *string `json:"message"`
	Type    *string `json:"type"`
}
