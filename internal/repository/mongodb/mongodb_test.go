package mongodb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"propapi/internal/repository"
)

func ptr[T any](v T) *T { return &v }

// ns names the collection the way cursor replies address it.
func ns(mt *mtest.T, coll string) string {
	return mt.DB.Name() + "." + coll
}

func TestObjectID(t *testing.T) {
	t.Run("valid hex", func(t *testing.T) {
		oid, err := objectID("665f1f77bcf86cd799439011")
		require.NoError(t, err)
		assert.Equal(t, "665f1f77bcf86cd799439011", oid.Hex())
	})

	t.Run("malformed id behaves as not found", func(t *testing.T) {
		_, err := objectID("not-a-hex-id")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestMapErr(t *testing.T) {
	assert.ErrorIs(t, mapErr(mongo.ErrNoDocuments), repository.ErrNotFound)
	assert.ErrorIs(t, mapErr(assert.AnError), assert.AnError)
	assert.NoError(t, mapErr(nil))
}
