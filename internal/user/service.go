package user

import (
	"context"
	"fmt"
	"time"

	"bookshop/internal/platform/crypto"
)

// Service is the registration gateway in front of a Registry.
type Service struct {
	repo   Registry
	hasher crypto.PasswordHasher
	now    func() time.Time
}

func NewService(repo Registry, hasher crypto.PasswordHasher) *Service {
	if hasher == nil {
		hasher = crypto.PlainHasher{}
	}
	return &Service{repo: repo, hasher: hasher, now: time.Now}
}

// Register appends a new user. Nothing is written on any failure path.
func (s *Service) Register(ctx context.Context, username, password string) (User, error) {
	if username == "" || password == "" {
		return User{}, ErrInvalidInput
	}

	exists, err := s.repo.Exists(ctx, username)
	if err != nil {
		return User{}, fmt.Errorf("check user %q: %w", username, err)
	}
	if exists {
		return User{}, ErrAlreadyExists
	}

	stored, err := s.hasher.Hash(password)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	newUser := User{
		Username:  username,
		Password:  stored,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Append(ctx, newUser); err != nil {
		return User{}, err
	}
	return newUser, nil
}

// Get returns the stored user record.
func (s *Service) Get(ctx context.Context, username string) (User, error) {
	return s.repo.Get(ctx, username)
}

// Hasher exposes the password scheme used for stored records.
func (s *Service) Hasher() crypto.PasswordHasher {
	return s.hasher
}
