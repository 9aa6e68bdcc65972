package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestPlainHasher(t *testing.T) {
	h := PlainHasher{}

	stored, err := h.Hash("pw1")
	assert.NoError(t, err)
	assert.Equal(t, "pw1", stored)

	assert.True(t, h.Verify(stored, "pw1"))
	assert.False(t, h.Verify(stored, "pw2"))
	assert.False(t, h.Verify(stored, ""))
}

func TestBcryptHasher(t *testing.T) {
	h := BcryptHasher{Cost: bcrypt.MinCost}
	password := "testpassword123"

	hash, err := h.Hash(password)
	assert.NoError(t, err)
	assert.NotEqual(t, password, hash)

	t.Run("correct password", func(t *testing.T) {
		assert.True(t, h.Verify(hash, password))
	})

	t.Run("wrong password", func(t *testing.T) {
		assert.False(t, h.Verify(hash, "wrongpassword"))
	})

	t.Run("different hash each time", func(t *testing.T) {
		hash2, err := h.Hash(password)
		assert.NoError(t, err)
		assert.NotEqual(t, hash, hash2)
		assert.True(t, h.Verify(hash2, password))
	})
}

func TestNewHasher(t *testing.T) {
	h, err := NewHasher("plain")
	assert.NoError(t, err)
	assert.IsType(t, PlainHasher{}, h)

	h, err = NewHasher("bcrypt")
	assert.NoError(t, err)
	assert.IsType(t, BcryptHasher{}, h)

	_, err = NewHasher("rot13")
	assert.Error(t, err)
}
