package repository

import (
	"context"

	"propapi/internal/model"
)

// DocumentRepository defines data access for property documents. The file
// bytes live in object storage; these records carry the metadata and the
// storage pointer.
type DocumentRepository interface {
	// Create inserts a new document built from the given input.
	Create(ctx context.Context, in *model.DocumentInput) (*model.Document, error)

	// FindByID returns a document by its ID. Returns ErrNotFound when the
	// id is malformed or matches no record.
	FindByID(ctx context.Context, id string) (*model.Document, error)

	// List returns a paginated list of documents and the total count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Document], error)

	// ListByProperty returns the documents attached to the given property.
	ListByProperty(ctx context.Context, propertyID string, pq PageQuery) (*PageResult[model.Document], error)

	// Update applies the fields present in the input to the stored record
	// and returns the updated document.
	Update(ctx context.Context, id string, in *model.DocumentInput) (*model.Document, error)

	// Delete removes a document record. It returns nil if the record was
	// deleted or did not exist.
	Delete(ctx context.Context, id string) error
}
