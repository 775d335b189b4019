// Package service implements the portal's use cases on top of the
// validation core, the repositories and object storage. Write paths
// validate first and persist only on a passing result; an invalid
// result surfaces as a *validation.ValidationError.
package service

import (
	"errors"

	"propapi/internal/repository"
)

var (
	ErrIDRequired = errors.New("id is required")
	ErrNotFound   = errors.New("record not found")
	ErrReaderNil  = errors.New("reader is nil")
)

// mapNotFound translates the repository sentinel into the service one so
// handlers depend on a single error vocabulary.
func mapNotFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// pageQuery normalizes limit/offset the way all list endpoints do.
func pageQuery(limit, offset int) repository.PageQuery {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	return repository.PageQuery{Limit: limit, Offset: offset}
}
