package gateway

import (
	"context"
	"errors"
)

// Sentinel errors returned by Gateway implementations
var (
	ErrNotFound         = errors.New("document not found")
	ErrPermissionDenied = errors.New("permission denied")
)

// Op is a comparison operator for Query
type Op string

const (
	OpEqual Op = "=="
)

// Document is a decoded document with its id
type Document struct {
	ID   string
	Data map[string]any
}

// Gateway is the document/blob store the client talks to. There is no
// transaction or version token: concurrent writers to the same document
// follow last-writer-wins.
type Gateway interface {
	// GetDocument returns the document data, or ErrNotFound.
	GetDocument(ctx context.Context, collection, id string) (map[string]any, error)

	// SetDocument writes a full document. With merge, existing top-level
	// fields not present in data are preserved.
	SetDocument(ctx context.Context, collection, id string, data map[string]any, merge bool) error

	// UpdateFields patches top-level fields of an existing document.
	// Returns ErrNotFound if the document is absent.
	UpdateFields(ctx context.Context, collection, id string, fields map[string]any) error

	// AddDocument stores data under a generated id and returns it.
	AddDocument(ctx context.Context, collection string, data map[string]any) (string, error)

	// DeleteDocument removes a document. Deleting an absent document is not
	// an error.
	DeleteDocument(ctx context.Context, collection, id string) error

	// Query returns all documents in collection where field op value holds.
	Query(ctx context.Context, collection, field string, op Op, value any) ([]Document, error)

	// UploadBlob stores bytes under path in the blob store.
	UploadBlob(ctx context.Context, path string, data []byte, contentType string) error

	// GetBlobURL returns an addressable URL for a stored blob.
	GetBlobURL(ctx context.Context, path string) (string, error)

	// DeleteBlob removes a blob. Best-effort for callers: record deletion
	// must not be blocked by a failed blob delete.
	DeleteBlob(ctx context.Context, path string) error
}
