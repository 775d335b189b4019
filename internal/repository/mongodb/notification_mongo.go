package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"propapi/internal/model"
	"propapi/internal/repository"
	"propapi/internal/transform"
)

// NotificationMongo is the MongoDB implementation of
// repository.NotificationRepository.
type NotificationMongo struct {
	c *mongo.Collection
}

// NewNotificationMongo creates a notification repository over the
// notifications collection.
func NewNotificationMongo(db *mongo.Database) *NotificationMongo {
	return &NotificationMongo{c: db.Collection("notifications")}
}

var _ repository.NotificationRepository = (*NotificationMongo)(nil)

// Create inserts the record built from the input and returns the stored
// notification.
func (r *NotificationMongo) Create(ctx context.Context, in *model.NotificationInput) (*model.Notification, error) {
	rec := transform.NewNotificationRecord(in, time.Now().UTC())
	res, err := r.c.InsertOne(ctx, rec)
	if err != nil {
		return nil, err
	}
	rec.ID = res.InsertedID.(primitive.ObjectID)
	return transform.NotificationFromRecord(rec), nil
}

// ListByUser returns the notifications addressed to the given user,
// newest first. A user id no record could carry yields an empty page.
func (r *NotificationMongo) ListByUser(ctx context.Context, userID string, pq repository.PageQuery) (*repository.PageResult[model.Notification], error) {
	oid, err := objectID(userID)
	if err != nil {
		return &repository.PageResult[model.Notification]{Items: []model.Notification{}}, nil
	}
	filter := bson.M{"userId": oid}

	total, err := r.c.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(pq.Limit)).
		SetSkip(int64(pq.Offset))
	cur, err := r.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := make([]model.Notification, 0)
	for cur.Next(ctx) {
		var rec model.NotificationRecord
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}
		items = append(items, *transform.NotificationFromRecord(&rec))
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Notification]{Items: items, Total: int(total)}, nil
}

// MarkRead flips the read flag on a notification.
func (r *NotificationMongo) MarkRead(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := r.c.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
