package repository

import (
	"context"

	"propapi/internal/model"
)

// UserRepository defines data access for portal users.
// No business logic here, strictly persistence operations.
type UserRepository interface {
	// Create inserts a new user built from the given input. Defaults
	// (active flag, timestamps) are applied by the record builder.
	// Returns ErrDuplicateEmail when the unique email index rejects the
	// insert.
	Create(ctx context.Context, in *model.UserInput) (*model.User, error)

	// FindByID returns a user by its ID. Returns ErrNotFound when the id
	// is malformed or matches no record.
	FindByID(ctx context.Context, id string) (*model.User, error)

	// FindByEmail returns a user by exact email match.
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// List returns a paginated list of users and the total count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.User], error)

	// Update applies the fields present in the input to the stored record
	// and returns the updated user. Absent fields are left untouched.
	Update(ctx context.Context, id string, in *model.UserInput) (*model.User, error)

	// Delete removes a user record permanently. Soft deletion goes through
	// Update with the active flag instead.
	Delete(ctx context.Context, id string) error
}
