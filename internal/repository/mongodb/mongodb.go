// Package mongodb implements the repository interfaces over MongoDB
// collections. Repositories own the record↔model conversion at the store
// boundary and contain no business logic.
package mongodb

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"propapi/internal/repository"
)

// objectID parses a hex id. A malformed id behaves as not found, since
// no stored record can ever match it.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, repository.ErrNotFound
	}
	return oid, nil
}

// mapErr translates driver sentinels into repository sentinels.
func mapErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return repository.ErrNotFound
	}
	return err
}
