package book

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSeed_PreservesDocumentOrder(t *testing.T) {
	doc := `{
		"30": {"title": "C", "author": "X", "reviews": {}},
		"10": {"title": "A", "author": "Y"},
		"20": {"isbn": "20", "title": "B", "author": "X", "reviews": {"ann": "fine"}}
	}`
	s, err := LoadSeed(strings.NewReader(doc))
	require.NoError(t, err)

	books, err := s.All(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 3)
	assert.Equal(t, []string{"30", "10", "20"}, []string{books[0].ISBN, books[1].ISBN, books[2].ISBN})

	// Missing reviews become an empty map rather than null.
	assert.NotNil(t, books[1].Reviews)
	assert.Empty(t, books[1].Reviews)
	assert.Equal(t, "fine", books[2].Reviews["ann"])
}

func TestLoadSeed_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not an object", `[1, 2]`},
		{"key and isbn disagree", `{"1": {"isbn": "2", "title": "T", "author": "A"}}`},
		{"duplicate key", `{"1": {"title": "T"}, "1": {"title": "U"}}`},
		{"empty key", `{"": {"title": "T"}}`},
		{"bad record", `{"1": "nope"}`},
		{"truncated", `{"1": {"title": "T"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSeed(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, ErrInvalidSeed)
		})
	}
}

func TestLoadSeedFile_Embedded(t *testing.T) {
	s, err := LoadSeedFile("")
	require.NoError(t, err)
	assert.Equal(t, 10, s.Len())

	b, err := s.Get(context.Background(), "8")
	require.NoError(t, err)
	assert.Equal(t, "Pride and Prejudice", b.Title)
	assert.Equal(t, "Jane Austen", b.Author)
}

func TestLoadSeedFile_Missing(t *testing.T) {
	_, err := LoadSeedFile("/does/not/exist.json")
	assert.Error(t, err)
}

func TestNewMemoryStore(t *testing.T) {
	books := map[string]Book{
		"b": {Title: "Two"},
		"a": {Title: "One"},
	}

	t.Run("nil order sorts keys", func(t *testing.T) {
		s, err := NewMemoryStore(books, nil)
		require.NoError(t, err)
		all, _ := s.All(context.Background())
		assert.Equal(t, "a", all[0].ISBN)
		assert.Equal(t, "b", all[1].ISBN)
	})

	t.Run("explicit order", func(t *testing.T) {
		s, err := NewMemoryStore(books, []string{"b", "a"})
		require.NoError(t, err)
		all, _ := s.All(context.Background())
		assert.Equal(t, "b", all[0].ISBN)
	})

	t.Run("order with unknown key", func(t *testing.T) {
		_, err := NewMemoryStore(books, []string{"b", "c"})
		assert.ErrorIs(t, err, ErrInvalidSeed)
	})

	t.Run("order too short", func(t *testing.T) {
		_, err := NewMemoryStore(books, []string{"a"})
		assert.ErrorIs(t, err, ErrInvalidSeed)
	})
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	s, err := NewMemoryStore(map[string]Book{
		"1": {Title: "T", Author: "A", Reviews: map[string]string{"ann": "good"}},
	}, nil)
	require.NoError(t, err)
	ctx := context.Background()

	b, err := s.Get(ctx, "1")
	require.NoError(t, err)
	b.Reviews["mallory"] = "overwritten"

	again, err := s.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"ann": "good"}, again.Reviews)
}
