package mongodb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"propapi/internal/model"
	"propapi/internal/repository"
)

var userStoredAt = time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)

// userReplyDoc is a stored user as the server would return it. It carries
// no isActive field, so the mapped model must default to active.
func userReplyDoc(id primitive.ObjectID) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: "Jane Doe"},
		{Key: "email", Value: "jane@example.com"},
		{Key: "role", Value: "owner"},
		{Key: "phone", Value: "(300) 123-4567"},
		{Key: "createdAt", Value: primitive.NewDateTimeFromTime(userStoredAt)},
		{Key: "updatedAt", Value: primitive.NewDateTimeFromTime(userStoredAt)},
	}
}

func TestUserMongoCreate(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("inserts and returns the stored user", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		in := &model.UserInput{
			Name:  ptr(" Jane Doe "),
			Email: ptr("Jane@Example.com"),
			Role:  ptr("owner"),
		}
		got, err := NewUserMongo(mt.DB).Create(context.Background(), in)
		require.NoError(mt, err)

		assert.Len(mt, got.ID, 24)
		assert.Equal(mt, "Jane Doe", got.Name)
		assert.Equal(mt, "jane@example.com", got.Email)
		assert.Equal(mt, model.RoleOwner, got.Role)
		assert.True(mt, got.IsActive)
	})

	mt.Run("unique index violation maps to the duplicate sentinel", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: propapi.users index: email_1",
		}))

		in := &model.UserInput{
			Name:  ptr("Jane Doe"),
			Email: ptr("jane@example.com"),
			Role:  ptr("owner"),
		}
		_, err := NewUserMongo(mt.DB).Create(context.Background(), in)
		assert.ErrorIs(mt, err, repository.ErrDuplicateEmail)
	})
}

func TestUserMongoFindByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, "users"), mtest.FirstBatch, userReplyDoc(oid)))

		got, err := NewUserMongo(mt.DB).FindByID(context.Background(), oid.Hex())
		require.NoError(mt, err)

		assert.Equal(mt, oid.Hex(), got.ID)
		assert.Equal(mt, "Jane Doe", got.Name)
		assert.Equal(mt, "jane@example.com", got.Email)
		assert.Equal(mt, model.RoleOwner, got.Role)
		assert.Equal(mt, "(300) 123-4567", got.Phone)
		assert.True(mt, got.IsActive)
		assert.True(mt, got.CreatedAt.Equal(userStoredAt))
	})

	mt.Run("not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, "users"), mtest.FirstBatch))

		_, err := NewUserMongo(mt.DB).FindByID(context.Background(), primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})

	mt.Run("malformed id never reaches the server", func(mt *mtest.T) {
		_, err := NewUserMongo(mt.DB).FindByID(context.Background(), "not-a-hex-id")
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})
}

func TestUserMongoFindByEmail(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("normalizes the lookup email", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, "users"), mtest.FirstBatch, userReplyDoc(oid)))

		got, err := NewUserMongo(mt.DB).FindByEmail(context.Background(), " Jane@Example.COM ")
		require.NoError(mt, err)
		assert.Equal(mt, "jane@example.com", got.Email)

		ev := mt.GetStartedEvent()
		require.NotNil(mt, ev)
		assert.Equal(mt, "find", ev.CommandName)
		assert.Equal(mt, "jane@example.com", ev.Command.Lookup("filter", "email").StringValue())
	})

	mt.Run("not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, "users"), mtest.FirstBatch))

		_, err := NewUserMongo(mt.DB).FindByEmail(context.Background(), "nobody@example.com")
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})
}

func TestUserMongoList(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns a counted page", func(mt *mtest.T) {
		first := userReplyDoc(primitive.NewObjectID())
		second := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "name", Value: "Tom Tenant"},
			{Key: "email", Value: "tom@example.com"},
			{Key: "role", Value: "tenant"},
			{Key: "createdAt", Value: primitive.NewDateTimeFromTime(userStoredAt.Add(-time.Hour))},
			{Key: "updatedAt", Value: primitive.NewDateTimeFromTime(userStoredAt.Add(-time.Hour))},
		}
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns(mt, "users"), mtest.FirstBatch, bson.D{{Key: "n", Value: 2}}),
			mtest.CreateCursorResponse(0, ns(mt, "users"), mtest.FirstBatch, first, second),
		)

		page, err := NewUserMongo(mt.DB).List(context.Background(), repository.PageQuery{Limit: 10})
		require.NoError(mt, err)

		assert.Equal(mt, 2, page.Total)
		require.Len(mt, page.Items, 2)
		assert.Equal(mt, "jane@example.com", page.Items[0].Email)
		assert.Equal(mt, model.RoleTenant, page.Items[1].Role)
	})

	mt.Run("empty collection", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns(mt, "users"), mtest.FirstBatch),
			mtest.CreateCursorResponse(0, ns(mt, "users"), mtest.FirstBatch),
		)

		page, err := NewUserMongo(mt.DB).List(context.Background(), repository.PageQuery{Limit: 10})
		require.NoError(mt, err)
		assert.Zero(mt, page.Total)
		assert.Empty(mt, page.Items)
	})
}

func TestUserMongoUpdate(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns the document after the update", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: userReplyDoc(oid)}))

		got, err := NewUserMongo(mt.DB).Update(context.Background(), oid.Hex(), &model.UserInput{
			Phone: ptr(" (300) 123-4567 "),
		})
		require.NoError(mt, err)
		assert.Equal(mt, oid.Hex(), got.ID)
		assert.Equal(mt, "(300) 123-4567", got.Phone)

		ev := mt.GetStartedEvent()
		require.NotNil(mt, ev)
		assert.Equal(mt, "findAndModify", ev.CommandName)
		set := ev.Command.Lookup("update", "$set")
		assert.Equal(mt, "(300) 123-4567", set.Document().Lookup("phone").StringValue())
	})

	mt.Run("no matching document", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		_, err := NewUserMongo(mt.DB).Update(context.Background(), primitive.NewObjectID().Hex(), &model.UserInput{
			Name: ptr("Jane Doe"),
		})
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})

	mt.Run("email collides with another user", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11000,
			Name:    "DuplicateKey",
			Message: "E11000 duplicate key error collection: propapi.users index: email_1",
		}))

		_, err := NewUserMongo(mt.DB).Update(context.Background(), primitive.NewObjectID().Hex(), &model.UserInput{
			Email: ptr("taken@example.com"),
		})
		assert.ErrorIs(mt, err, repository.ErrDuplicateEmail)
	})

	mt.Run("malformed id never reaches the server", func(mt *mtest.T) {
		_, err := NewUserMongo(mt.DB).Update(context.Background(), "not-a-hex-id", &model.UserInput{})
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})
}

func TestUserMongoDelete(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("removes the record", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		err := NewUserMongo(mt.DB).Delete(context.Background(), primitive.NewObjectID().Hex())
		assert.NoError(mt, err)
	})

	mt.Run("malformed id is a no-op", func(mt *mtest.T) {
		err := NewUserMongo(mt.DB).Delete(context.Background(), "not-a-hex-id")
		assert.NoError(mt, err)
	})
}
