// Package identity talks to the platform's identity/authentication
// service. The portal keeps account credentials there, not in the
// document store, so email-uniqueness checks resolve against it.
package identity

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no account matches the lookup. For
// uniqueness checks this is the success case.
var ErrNotFound = errors.New("identity: account not found")

// Account is the identity service's view of a portal account.
type Account struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
	Disabled    bool   `json:"disabled,omitempty"`
}

// Directory looks up accounts in the identity service.
type Directory interface {
	// GetByEmail returns the account registered under the given email.
	// Returns ErrNotFound when no account matches.
	GetByEmail(ctx context.Context, email string) (*Account, error)
}
