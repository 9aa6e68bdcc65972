package auth

import (
	"context"
	"errors"
	"time"

	"bookshop/internal/platform/crypto"
	"bookshop/internal/user"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
)

// UserLookup is the part of the user service that login needs.
type UserLookup interface {
	Get(ctx context.Context, username string) (user.User, error)
	Hasher() crypto.PasswordHasher
}

type Service struct {
	secret string
	ttl    time.Duration
	users  UserLookup
}

func NewService(secret string, ttl time.Duration, users UserLookup) *Service {
	return &Service{
		secret: secret,
		ttl:    ttl,
		users:  users,
	}
}

// Login checks the credentials and returns a signed access token with its
// lifetime in seconds.
func (s *Service) Login(ctx context.Context, username, password string) (string, int, error) {
	u, err := s.users.Get(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", 0, ErrUnauthorized
		}
		return "", 0, err
	}
	if !s.users.Hasher().Verify(u.Password, password) {
		return "", 0, ErrUnauthorized
	}

	token, _, err := crypto.GenerateToken(s.secret, u.Username, s.ttl)
	if err != nil {
		return "", 0, err
	}
	return token, int(s.ttl.Seconds()), nil
}
