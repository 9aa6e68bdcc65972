//go:generate mockgen -source=ports.go -destination=mock_store.go -package=book

package book

import (
	"context"
)

// Store defines the read contract for the catalog.
type Store interface {
	// All returns every book in deterministic scan order.
	All(ctx context.Context) ([]Book, error)
	// Get returns the book keyed by isbn or ErrNotFound.
	Get(ctx context.Context, isbn string) (Book, error)
}

// Matcher reports whether a stored field value satisfies a lookup value.
type Matcher func(stored, query string) bool

// ExactMatch is the default Matcher: case-sensitive string equality.
func ExactMatch(stored, query string) bool {
	return stored == query
}
