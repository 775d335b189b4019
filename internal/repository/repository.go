package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., mongodb) inside this directory.

import "errors"

// ErrNotFound is returned by lookups when no record matches. Referential
// checks treat it as "reference absent" and anything else as "lookup
// failed", so implementations must map their driver's not-found condition
// to this sentinel.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateEmail is returned by user inserts and updates that would
// violate the unique email index. It backs the email-uniqueness invariant
// when the validation pre-check races a concurrent write.
var ErrDuplicateEmail = errors.New("email already exists")

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
