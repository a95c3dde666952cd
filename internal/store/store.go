// Package store defines the document-store contract the repositories are
// written against. The production implementation is backed by Firestore;
// tests use the in-memory implementation.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by GetByID when no document exists with the given ID.
var ErrNotFound = errors.New("document not found")

// ServerTimestamp is a sentinel value. Fields set to it are replaced by the
// store's server-assigned write time on Insert/Update.
var ServerTimestamp = serverTimestampSentinel{}

type serverTimestampSentinel struct{}

// Document is a single record in a collection.
type Document struct {
	ID   string
	Data map[string]interface{}
}

// Filter is a single field condition. Op is one of "==", "<", "<=", ">", ">=".
type Filter struct {
	Path  string
	Op    string
	Value interface{}
}

// OrderBy orders query results by a single field.
type OrderBy struct {
	Path string
	Desc bool
}

// Store is the narrow contract the backing document database must satisfy:
// atomic single-document writes, equality/range queries, no multi-document
// transactions.
type Store interface {
	Insert(ctx context.Context, collection string, data map[string]interface{}) (string, error)
	GetByID(ctx context.Context, collection, id string) (*Document, error)
	Query(ctx context.Context, collection string, filters []Filter, orderBy *OrderBy, limit int) ([]*Document, error)
	Update(ctx context.Context, collection, id string, fields map[string]interface{}) error
}
