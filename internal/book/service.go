package book

import (
	"context"
	"fmt"
)

// Service answers catalog queries. Every lookup is a pure read, so callers may
// retry freely.
type Service struct {
	store Store
	match Matcher
}

// Option configures a Service.
type Option func(*Service)

// WithMatcher replaces exact matching for author and title lookups.
func WithMatcher(m Matcher) Option {
	return func(s *Service) {
		if m != nil {
			s.match = m
		}
	}
}

// NewService creates a new book service over store.
func NewService(store Store, opts ...Option) *Service {
	s := &Service{store: store, match: ExactMatch}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListAll returns the whole catalog keyed by ISBN.
func (s *Service) ListAll(ctx context.Context) (map[string]Book, error) {
	books, err := s.all(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]Book, len(books))
	for _, b := range books {
		out[b.ISBN] = b
	}
	return out, nil
}

// GetByISBN returns the book stored under isbn.
func (s *Service) GetByISBN(ctx context.Context, isbn string) (Book, error) {
	if s.store == nil {
		return Book{}, ErrStoreUnavailable
	}
	return s.store.Get(ctx, isbn)
}

// GetByAuthor returns every book whose author matches, in scan order.
func (s *Service) GetByAuthor(ctx context.Context, author string) ([]AuthorMatch, error) {
	books, err := s.all(ctx)
	if err != nil {
		return nil, err
	}
	var out []AuthorMatch
	for _, b := range books {
		if s.match(b.Author, author) {
			out = append(out, AuthorMatch{ISBN: b.ISBN, Title: b.Title, Reviews: b.Reviews})
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no books by author %q", ErrNotFound, author)
	}
	return out, nil
}

// GetByTitle returns every book whose title matches, in scan order.
func (s *Service) GetByTitle(ctx context.Context, title string) ([]TitleMatch, error) {
	books, err := s.all(ctx)
	if err != nil {
		return nil, err
	}
	var out []TitleMatch
	for _, b := range books {
		if s.match(b.Title, title) {
			out = append(out, TitleMatch{ISBN: b.ISBN, Author: b.Author, Reviews: b.Reviews})
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no books titled %q", ErrNotFound, title)
	}
	return out, nil
}

// GetReviews returns the reviews of the book at isbn. A book without reviews
// yields an empty, non-nil map.
func (s *Service) GetReviews(ctx context.Context, isbn string) (map[string]string, error) {
	b, err := s.GetByISBN(ctx, isbn)
	if err != nil {
		return nil, err
	}
	return cloneReviews(b.Reviews), nil
}

func (s *Service) all(ctx context.Context) ([]Book, error) {
	if s.store == nil {
		return nil, ErrStoreUnavailable
	}
	return s.store.All(ctx)
}
