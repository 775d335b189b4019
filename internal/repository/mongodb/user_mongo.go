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

// UserMongo is the MongoDB implementation of repository.UserRepository.
type UserMongo struct {
	c *mongo.Collection
}

// NewUserMongo creates a user repository over the users collection.
func NewUserMongo(db *mongo.Database) *UserMongo {
	return &UserMongo{c: db.Collection(string(model.CollectionUsers))}
}

var _ repository.UserRepository = (*UserMongo)(nil)

// Create inserts the record built from the input and returns the stored
// user. The unique email index turns races past the validation pre-check
// into ErrDuplicateEmail instead of silent duplicates.
func (r *UserMongo) Create(ctx context.Context, in *model.UserInput) (*model.User, error) {
	rec := transform.NewUserRecord(in, time.Now().UTC())
	res, err := r.c.InsertOne(ctx, rec)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, repository.ErrDuplicateEmail
		}
		return nil, err
	}
	rec.ID = res.InsertedID.(primitive.ObjectID)
	return transform.UserFromRecord(rec), nil
}

// FindByID fetches a single user by its ID.
func (r *UserMongo) FindByID(ctx context.Context, id string) (*model.User, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var rec model.UserRecord
	if err := r.c.FindOne(ctx, bson.M{"_id": oid}).Decode(&rec); err != nil {
		return nil, mapErr(err)
	}
	return transform.UserFromRecord(&rec), nil
}

// FindByEmail fetches a single user by exact email match. Emails are
// stored lowercased, so the lookup lowercases too.
func (r *UserMongo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var rec model.UserRecord
	filter := bson.M{"email": strings.ToLower(strings.TrimSpace(email))}
	if err := r.c.FindOne(ctx, filter).Decode(&rec); err != nil {
		return nil, mapErr(err)
	}
	return transform.UserFromRecord(&rec), nil
}

// List returns users using limit/offset pagination and a total count.
func (r *UserMongo) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.User], error) {
	total, err := r.c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(pq.Limit)).
		SetSkip(int64(pq.Offset))
	cur, err := r.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := make([]model.User, 0)
	for cur.Next(ctx) {
		var rec model.UserRecord
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}
		items = append(items, *transform.UserFromRecord(&rec))
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.User]{Items: items, Total: int(total)}, nil
}

// Update applies the fields present in the input and returns the updated
// user.
func (r *UserMongo) Update(ctx context.Context, id string, in *model.UserInput) (*model.User, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if in.Name != nil {
		set["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		set["email"] = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if in.Role != nil {
		set["role"] = strings.TrimSpace(*in.Role)
	}
	if in.Phone != nil {
		set["phone"] = strings.TrimSpace(*in.Phone)
	}
	if in.IsActive != nil {
		set["isActive"] = *in.IsActive
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var rec model.UserRecord
	if err := r.c.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&rec); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, repository.ErrDuplicateEmail
		}
		return nil, mapErr(err)
	}
	return transform.UserFromRecord(&rec), nil
}

// Delete removes a user record permanently. It returns nil if the record
// was deleted or did not exist.
func (r *UserMongo) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return nil
	}
	_, err = r.c.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
