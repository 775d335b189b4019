package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the application model for a portal account: an admin, a property
// owner, or a tenant.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserRecord is the persisted shape of a user in the users collection.
// IsActive is a pointer so that documents written before the flag existed
// read back as nil and can be defaulted rather than silently deactivated.
type UserRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Role      string             `bson:"role"`
	Phone     string             `bson:"phone,omitempty"`
	IsActive  *bool              `bson:"isActive,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// UserForm is the flat, all-string shape a profile form submits. Password
// and its confirmation ride along for account provisioning but are never
// persisted with the user record.
type UserForm struct {
	Name            string `json:"name" form:"name"`
	Email           string `json:"email" form:"email"`
	Role            string `json:"role" form:"role"`
	Phone           string `json:"phone" form:"phone"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword"`
}

// UserInput is the users variant of the validation input union. Pointer
// fields distinguish "absent" from "present but zero", which is what lets
// required checks apply only on create while format checks apply whenever
// a field shows up.
type UserInput struct {
	Name            *string `json:"name"`
	Email           *string `json:"email"`
	Role            *string `json:"role"`
	Phone           *string `json:"phone"`
	IsActive        *bool   `json:"isActive"`
	Password        *string `json:"password"`
	ConfirmPassword *string `json:"confirmPassword"`
}
