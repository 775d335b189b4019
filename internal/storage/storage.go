// Package storage contains the object store abstraction behind document
// files. The document store keeps only metadata and a storage pointer;
// these implementations hold the bytes. Streaming I/O only, no local
// disk.
package storage

import (
	"context"
	"io"
	"time"
)

// PutOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known; if unknown, set to
// -1 and the implementation will buffer/chunk as the backend supports.
type PutOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a stored object.
type ObjectInfo struct {
	Key         string
	Size        int64
	ETag        string
	ContentType string
}

// Storage is an S3-compatible object store client.
type Storage interface {
	// Put uploads an object under the given key from the reader.
	Put(ctx context.Context, key string, r io.Reader, opt PutOptions) (ObjectInfo, error)

	// Delete removes an object by key. Deleting an object that is
	// already gone is not an error.
	Delete(ctx context.Context, key string) error

	// PresignGet returns a time-limited URL that downloads the object
	// without credentials. A non-empty downloadName becomes the
	// browser's suggested filename.
	PresignGet(ctx context.Context, key, downloadName string, expiry time.Duration) (string, error)
}
