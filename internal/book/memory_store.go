package book

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
)

//go:embed seed.json
var defaultSeed []byte

// MemoryStore is the process-wide, read-only catalog. It is populated once and
// never mutated afterwards, so concurrent reads need no locking.
type MemoryStore struct {
	books map[string]Book
	order []string
}

// NewMemoryStore builds a store from books keyed by ISBN. order fixes the scan
// order and must list every key exactly once; a nil order scans keys sorted.
func NewMemoryStore(books map[string]Book, order []string) (*MemoryStore, error) {
	if order == nil {
		order = slices.Sorted(maps.Keys(books))
	}
	if len(order) != len(books) {
		return nil, fmt.Errorf("%w: order lists %d keys for %d books", ErrInvalidSeed, len(order), len(books))
	}

	s := &MemoryStore{
		books: make(map[string]Book, len(books)),
		order: make([]string, 0, len(order)),
	}
	for _, isbn := range order {
		b, ok := books[isbn]
		if !ok {
			return nil, fmt.Errorf("%w: order references unknown isbn %q", ErrInvalidSeed, isbn)
		}
		if err := s.put(isbn, b); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// LoadSeed reads a JSON object keyed by ISBN. Key order in the document becomes
// the scan order of the store.
func LoadSeed(r io.Reader) (*MemoryStore, error) {
	dec := json.NewDecoder(r)
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("%w: expected object, got %v", ErrInvalidSeed, tok)
	}

	s := &MemoryStore{books: make(map[string]Book)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
		}
		isbn, _ := tok.(string)

		var b Book
		if err := dec.Decode(&b); err != nil {
			return nil, fmt.Errorf("%w: isbn %q: %v", ErrInvalidSeed, isbn, err)
		}
		if err := s.put(isbn, b); err != nil {
			return nil, err
		}
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}
	return s, nil
}

// LoadSeedFile loads the catalog from path, or the embedded seed when path is empty.
func LoadSeedFile(path string) (*MemoryStore, error) {
	if path == "" {
		return LoadSeed(bytes.NewReader(defaultSeed))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()
	return LoadSeed(f)
}

func (s *MemoryStore) put(isbn string, b Book) error {
	if isbn == "" {
		return fmt.Errorf("%w: empty isbn key", ErrInvalidSeed)
	}
	if _, dup := s.books[isbn]; dup {
		return fmt.Errorf("%w: duplicate isbn %q", ErrInvalidSeed, isbn)
	}
	// The key is the canonical identity.
	if b.ISBN == "" {
		b.ISBN = isbn
	} else if b.ISBN != isbn {
		return fmt.Errorf("%w: key %q holds book with isbn %q", ErrInvalidSeed, isbn, b.ISBN)
	}
	s.books[isbn] = b.clone()
	s.order = append(s.order, isbn)
	return nil
}

func (s *MemoryStore) All(_ context.Context) ([]Book, error) {
	out := make([]Book, 0, len(s.order))
	for _, isbn := range s.order {
		out = append(out, s.books[isbn].clone())
	}
	return out, nil
}

func (s *MemoryStore) Get(_ context.Context, isbn string) (Book, error) {
	b, ok := s.books[isbn]
	if !ok {
		return Book{}, ErrNotFound
	}
	return b.clone(), nil
}

// Len returns the number of books in the catalog.
func (s *MemoryStore) Len() int {
	return len(s.order)
}
