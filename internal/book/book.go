package book

import (
	"errors"
	"maps"
)

var (
	// ErrNotFound is returned when no book matches an ISBN, author or title.
	ErrNotFound = errors.New("book not found")
	// ErrStoreUnavailable is returned when the catalog was never loaded.
	ErrStoreUnavailable = errors.New("catalog store unavailable")
	// ErrInvalidSeed is returned when seed data breaks the ISBN-key invariant.
	ErrInvalidSeed = errors.New("invalid catalog seed")
)

// Book represents a catalog entry. Reviews maps a reviewer to the review text.
type Book struct {
	ISBN    string            `json:"isbn"`
	Title   string            `json:"title"`
	Author  string            `json:"author"`
	Reviews map[string]string `json:"reviews"`
}

// AuthorMatch is a book found by author; the author itself is implied by the query.
type AuthorMatch struct {
	ISBN    string            `json:"isbn"`
	Title   string            `json:"title"`
	Reviews map[string]string `json:"reviews"`
}

// TitleMatch is a book found by title.
type TitleMatch struct {
	ISBN    string            `json:"isbn"`
	Author  string            `json:"author"`
	Reviews map[string]string `json:"reviews"`
}

func (b Book) clone() Book {
	b.Reviews = cloneReviews(b.Reviews)
	return b
}

func cloneReviews(in map[string]string) map[string]string {
	if in == nil {
		return map[string]string{}
	}
	return maps.Clone(in)
}
