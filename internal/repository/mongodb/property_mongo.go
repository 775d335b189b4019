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

// PropertyMongo is the MongoDB implementation of
// repository.PropertyRepository.
type PropertyMongo struct {
	c *mongo.Collection
}

// NewPropertyMongo creates a property repository over the properties
// collection.
func NewPropertyMongo(db *mongo.Database) *PropertyMongo {
	return &PropertyMongo{c: db.Collection(string(model.CollectionProperties))}
}

var _ repository.PropertyRepository = (*PropertyMongo)(nil)

// Create inserts the record built from the input and returns the stored
// property.
func (r *PropertyMongo) Create(ctx context.Context, in *model.PropertyInput) (*model.Property, error) {
	rec := transform.NewPropertyRecord(in, time.Now().UTC())
	res, err := r.c.InsertOne(ctx, rec)
	if err != nil {
		return nil, err
	}
	rec.ID = res.InsertedID.(primitive.ObjectID)
	return transform.PropertyFromRecord(rec), nil
}

// FindByID fetches a single property by its ID.
func (r *PropertyMongo) FindByID(ctx context.Context, id string) (*model.Property, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var rec model.PropertyRecord
	if err := r.c.FindOne(ctx, bson.M{"_id": oid}).Decode(&rec); err != nil {
		return nil, mapErr(err)
	}
	return transform.PropertyFromRecord(&rec), nil
}

// List returns properties using limit/offset pagination and a total count.
func (r *PropertyMongo) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Property], error) {
	return r.page(ctx, bson.M{}, pq)
}

// ListByOwner returns the properties referencing the given owner. An
// owner id no record could carry yields an empty page.
func (r *PropertyMongo) ListByOwner(ctx context.Context, ownerID string, pq repository.PageQuery) (*repository.PageResult[model.Property], error) {
	oid, err := objectID(ownerID)
	if err != nil {
		return &repository.PageResult[model.Property]{Items: []model.Property{}}, nil
	}
	return r.page(ctx, bson.M{"ownerId": oid}, pq)
}

func (r *PropertyMongo) page(ctx context.Context, filter bson.M, pq repository.PageQuery) (*repository.PageResult[model.Property], error) {
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

	items := make([]model.Property, 0)
	for cur.Next(ctx) {
		var rec model.PropertyRecord
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}
		items = append(items, *transform.PropertyFromRecord(&rec))
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Property]{Items: items, Total: int(total)}, nil
}

// Update applies the fields present in the input and returns the updated
// property. Reference and date fields were validated upstream; values
// that still fail to parse are skipped rather than written as zeros.
func (r *PropertyMongo) Update(ctx context.Context, id string, in *model.PropertyInput) (*model.Property, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if in.Address != nil {
		set["address"] = strings.TrimSpace(*in.Address)
	}
	if in.Type != nil {
		set["type"] = strings.TrimSpace(*in.Type)
	}
	if in.OwnerID != nil {
		if owner, err := primitive.ObjectIDFromHex(strings.TrimSpace(*in.OwnerID)); err == nil {
			set["ownerId"] = owner
		}
	}
	if in.Value != nil {
		set["value"] = *in.Value
	}
	if in.PurchaseDate != nil {
		if t, ok := transform.ParseDate(*in.PurchaseDate); ok {
			set["purchaseDate"] = t
		}
	}
	if in.Bedrooms != nil {
		set["bedrooms"] = *in.Bedrooms
	}
	if in.Bathrooms != nil {
		set["bathrooms"] = *in.Bathrooms
	}
	if in.Area != nil {
		set["area"] = *in.Area
	}
	if in.YearBuilt != nil {
		set["yearBuilt"] = *in.YearBuilt
	}
	if in.Features != nil {
		set["features"] = in.Features
	}
	if in.IsActive != nil {
		set["isActive"] = *in.IsActive
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var rec model.PropertyRecord
	if err := r.c.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&rec); err != nil {
		return nil, mapErr(err)
	}
	return transform.PropertyFromRecord(&rec), nil
}

// Delete removes a property record permanently. It returns nil if the
// record was deleted or did not exist.
func (r *PropertyMongo) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return nil
	}
	_, err = r.c.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
