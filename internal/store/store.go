// Package store defines the document-store driver contract the
// repositories are written against, plus an in-memory implementation.
// Backends compile the neutral query model below into their own query
// syntax; nothing above this package ever sees backend-specific
// queries.
package store

import (
	"context"
	"errors"
	"strings"
)

// Document is the logical persisted shape: one JSON-like object per
// record, with the record key under "id" as a "collection:key" string.
type Document = map[string]any

// ErrNoDocument is returned by ReplaceByID when zero documents matched
// the given id.
var ErrNoDocument = errors.New("store: no document matched")

type Op string

const (
	OpEq  Op = "eq"
	OpNe  Op = "ne"
	OpGte Op = "gte"
	OpLte Op = "lte"
	// OpContainsFold is a case-insensitive substring match on a string
	// field.
	OpContainsFold Op = "containsfold"
)

// Condition is a single field predicate. Conditions in a Query compose
// with AND; there is no OR or grouping.
type Condition struct {
	Field string
	Op    Op
	Value any
}

// Search is a case-insensitive substring match of Term against each of
// the named string fields; a document matches when any field matches.
type Search struct {
	Term   string
	Fields []string
}

type Sort struct {
	Field string
	Desc  bool
}

// Query describes one Find or Count call. A nil Sort means natural
// store order. Limit <= 0 means no limit.
type Query struct {
	Conditions []Condition
	Search     *Search
	Sort       *Sort
	Skip       int
	Limit      int
}

// Store is the abstract document-store driver. Implementations must
// honor context cancellation on every call and must not retry.
type Store interface {
	Find(ctx context.Context, collection string, q Query) ([]Document, error)
	Count(ctx context.Context, collection string, q Query) (int64, error)
	// InsertOne persists doc and returns it with the store-assigned
	// "id" populated.
	InsertOne(ctx context.Context, collection string, doc Document) (Document, error)
	// ReplaceByID replaces the whole document with the given id.
	// Returns ErrNoDocument when no document matched.
	ReplaceByID(ctx context.Context, collection, id string, doc Document) (Document, error)
	// DeleteByID reports whether a document was removed. Deleting an
	// absent id is not an error.
	DeleteByID(ctx context.Context, collection, id string) (bool, error)
}

// ValidKey reports whether id is a syntactically valid record key,
// i.e. "collection:key" with both parts non-empty. It says nothing
// about existence.
func ValidKey(id string) bool {
	col, key, ok := strings.Cut(id, ":")
	if !ok || col == "" || key == "" {
		return false
	}
	return !strings.ContainsAny(id, " \t\n")
}
