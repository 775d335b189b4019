package mongodb

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"propapi/internal/model"
	"propapi/internal/repository"
	"propapi/internal/transform"
)

// DocumentMongo is the MongoDB implementation of
// repository.DocumentRepository.
type DocumentMongo struct {
	c *mongo.Collection
}

// NewDocumentMongo creates a document repository over the documents
// collection.
func NewDocumentMongo(db *mongo.Database) *DocumentMongo {
	return &DocumentMongo{c: db.Collection(string(model.CollectionDocuments))}
}

var _ repository.DocumentRepository = (*DocumentMongo)(nil)

// Create inserts the record built from the input and returns the stored
// document.
func (r *DocumentMongo) Create(ctx context.Context, in *model.DocumentInput) (*model.Document, error) {
	rec := transform.NewDocumentRecord(in, time.Now().UTC())
	res, err := r.c.InsertOne(ctx, rec)
	if err != nil {
		return nil, err
	}
	rec.ID = res.InsertedID.(primitive.ObjectID)
	return transform.DocumentFromRecord(rec), nil
}

// FindByID fetches a single document by its ID.
func (r *DocumentMongo) FindByID(ctx context.Context, id string) (*model.Document, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var rec model.DocumentRecord
	if err := r.c.FindOne(ctx, bson.M{"_id": oid}).Decode(&rec); err != nil {
		return nil, mapErr(err)
	}
	return transform.DocumentFromRecord(&rec), nil
}

// List returns documents using limit/offset pagination and a total count.
func (r *DocumentMongo) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Document], error) {
	return r.page(ctx, bson.M{}, pq)
}

// ListByProperty returns the documents attached to the given property.
func (r *DocumentMongo) ListByProperty(ctx context.Context, propertyID string, pq repository.PageQuery) (*repository.PageResult[model.Document], error) {
	oid, err := objectID(propertyID)
	if err != nil {
		return &repository.PageResult[model.Document]{Items: []model.Document{}}, nil
	}
	return r.page(ctx, bson.M{"propertyId": oid}, pq)
}

func (r *DocumentMongo) page(ctx context.Context, filter bson.M, pq repository.PageQuery) (*repository.PageResult[model.Document], error) {
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

	items := make([]model.Document, 0)
	for cur.Next(ctx) {
		var rec model.DocumentRecord
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}
		items = append(items, *transform.DocumentFromRecord(&rec))
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Document]{Items: items, Total: int(total)}, nil
}

// Update applies the fields present in the input and returns the updated
// document.
func (r *DocumentMongo) Update(ctx context.Context, id string, in *model.DocumentInput) (*model.Document, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if in.Name != nil {
		set["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Type != nil {
		set["type"] = strings.TrimSpace(*in.Type)
	}
	if in.PropertyID != nil {
		if prop, err := primitive.ObjectIDFromHex(strings.TrimSpace(*in.PropertyID)); err == nil {
			set["propertyId"] = prop
		}
	}
	if in.OwnerID != nil {
		if owner, err := primitive.ObjectIDFromHex(strings.TrimSpace(*in.OwnerID)); err == nil {
			set["ownerId"] = owner
		}
	}
	if in.FileSize != nil {
		set["fileSize"] = *in.FileSize
	}
	if in.MimeType != nil {
		set["mimeType"] = strings.TrimSpace(*in.MimeType)
	}
	if in.StoragePath != nil {
		set["storagePath"] = strings.TrimSpace(*in.StoragePath)
	}
	if in.Description != nil {
		set["description"] = strings.TrimSpace(*in.Description)
	}
	if in.Tags != nil {
		set["tags"] = in.Tags
	}
	if in.IsActive != nil {
		set["isActive"] = *in.IsActive
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var rec model.DocumentRecord
	if err := r.c.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&rec); err != nil {
		return nil, mapErr(err)
	}
	return transform.DocumentFromRecord(&rec), nil
}

// Delete removes a document record. It returns nil if the record was
// deleted or did not exist.
func (r *DocumentMongo) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return nil
	}
	_, err = r.c.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
