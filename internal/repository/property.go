package repository

import (
	"context"

	"propapi/internal/model"
)

// PropertyRepository defines data access for property listings.
type PropertyRepository interface {
	// Create inserts a new property built from the given input.
	Create(ctx context.Context, in *model.PropertyInput) (*model.Property, error)

	// FindByID returns a property by its ID. Returns ErrNotFound when the
	// id is malformed or matches no record.
	FindByID(ctx context.Context, id string) (*model.Property, error)

	// List returns a paginated list of properties and the total count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Property], error)

	// ListByOwner returns the properties referencing the given owner.
	ListByOwner(ctx context.Context, ownerID string, pq PageQuery) (*PageResult[model.Property], error)

	// Update applies the fields present in the input to the stored record
	// and returns the updated property.
	Update(ctx context.Context, id string, in *model.PropertyInput) (*model.Property, error)

	// Delete removes a property record permanently.
	Delete(ctx context.Context, id string) error
}
