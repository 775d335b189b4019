// Package schema ensures the portal's collections, their JSON-Schema
// validators and their indexes exist at startup. Every step is
// idempotent; problems are aggregated so one bad collection does not
// hide the rest.
package schema

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"propapi/internal/model"
)

// EnsureAll creates missing collections, attaches validators and builds
// indexes. Servers without collMod support (some DocumentDB versions)
// get the validator step skipped with a log line instead of an error.
func EnsureAll(ctx context.Context, db *mongo.Database, log *zap.Logger) error {
	var problems []string

	ensure := func(coll string, schema bson.M, indexes []mongo.IndexModel) {
		if err := ensureCollection(ctx, db, coll); err != nil {
			problems = append(problems, coll+": "+err.Error())
			return
		}
		if schema != nil {
			if err := setValidator(ctx, db, coll, schema); err != nil {
				if isUnsupported(err) {
					log.Info("validator skipped (unsupported)", zap.String("collection", coll))
				} else {
					problems = append(problems, coll+": "+err.Error())
				}
			}
		}
		if len(indexes) > 0 {
			if _, err := db.Collection(coll).Indexes().CreateMany(ctx, indexes); err != nil {
				problems = append(problems, coll+" indexes: "+err.Error())
			}
		}
	}

	ensure(string(model.CollectionUsers), usersSchema(), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_users_email"),
		},
		{
			Keys:    bson.D{{Key: "role", Value: 1}},
			Options: options.Index().SetName("idx_users_role"),
		},
	})
	ensure(string(model.CollectionProperties), propertiesSchema(), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "ownerId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_properties_owner_created"),
		},
	})
	ensure(string(model.CollectionDocuments), documentsSchema(), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "propertyId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_documents_property_created"),
		},
		{
			Keys:    bson.D{{Key: "ownerId", Value: 1}},
			Options: options.Index().SetName("idx_documents_owner"),
		},
	})
	ensure("notifications", notificationsSchema(), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_notifications_user_created"),
		},
	})

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureCollection(ctx context.Context, db *mongo.Database, name string) error {
	names, err := db.ListCollectionNames(ctx, bson.M{"name": name})
	if err == nil && len(names) > 0 {
		return nil
	}
	// Listing failed or came back empty; create and tolerate the race.
	if err := db.CreateCollection(ctx, name); err != nil {
		if isNamespaceExists(err) {
			return nil
		}
		return err
	}
	return nil
}

func setValidator(ctx context.Context, db *mongo.Database, name string, validator bson.M) error {
	cmd := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
		{Key: "validationLevel", Value: "moderate"},
		{Key: "validationAction", Value: "error"},
	}
	return db.RunCommand(ctx, cmd).Err()
}

func isNamespaceExists(err error) bool {
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == 48 {
		return true
	}
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "already exists")
}

func isUnsupported(err error) bool {
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 59 || ce.Code == 115) {
		return true
	}
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "no such command") ||
		strings.Contains(s, "not implemented") ||
		strings.Contains(s, "not supported")
}

func enum(values []string) bson.A {
	out := bson.A{}
	for _, v := range values {
		out = append(out, v)
	}
	return out
}

func usersSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"name", "email", "role"},
			"properties": bson.M{
				"name":      bson.M{"bsonType": "string", "minLength": 2, "maxLength": 100},
				"email":     bson.M{"bsonType": "string", "pattern": "^\\S+@\\S+\\.\\S+$"},
				"role":      bson.M{"enum": enum(model.Roles)},
				"phone":     bson.M{"bsonType": "string"},
				"isActive":  bson.M{"bsonType": "bool"},
				"createdAt": bson.M{"bsonType": "date"},
				"updatedAt": bson.M{"bsonType": "date"},
			},
		},
	}
}

func propertiesSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"address", "type", "ownerId", "value"},
			"properties": bson.M{
				"address":      bson.M{"bsonType": "string", "minLength": 5, "maxLength": 200},
				"type":         bson.M{"enum": enum(model.PropertyTypes)},
				"ownerId":      bson.M{"bsonType": "objectId"},
				"value":        bson.M{"bsonType": bson.A{"double", "int", "long", "decimal"}, "minimum": 0},
				"purchaseDate": bson.M{"bsonType": "date"},
				"isActive":     bson.M{"bsonType": "bool"},
			},
		},
	}
}

func documentsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"name", "type", "propertyId", "ownerId", "storagePath"},
			"properties": bson.M{
				"name":        bson.M{"bsonType": "string", "minLength": 1, "maxLength": 100},
				"type":        bson.M{"enum": enum(model.DocumentTypes)},
				"propertyId":  bson.M{"bsonType": "objectId"},
				"ownerId":     bson.M{"bsonType": "objectId"},
				"fileSize":    bson.M{"bsonType": bson.A{"int", "long"}, "minimum": 1},
				"mimeType":    bson.M{"bsonType": "string"},
				"storagePath": bson.M{"bsonType": "string", "minLength": 1},
				"description": bson.M{"bsonType": "string", "maxLength": 500},
				"isActive":    bson.M{"bsonType": "bool"},
			},
		},
	}
}

func notificationsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"userId", "title", "message", "type"},
			"properties": bson.M{
				"userId":    bson.M{"bsonType": "objectId"},
				"title":     bson.M{"bsonType": "string", "minLength": 1},
				"message":   bson.M{"bsonType": "string", "minLength": 1},
				"type":      bson.M{"enum": enum(model.NotificationTypes)},
				"read":      bson.M{"bsonType": "bool"},
				"createdAt": bson.M{"bsonType": "date"},
			},
		},
	}
}
