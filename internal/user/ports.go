//go:generate mockgen -source=ports.go -destination=mock_registry.go -package=user

package user

import (
	"context"
)

// Registry is the user store owned by the authentication subsystem.
//
// Append must not create a second record for an existing username; it
// returns ErrAlreadyExists instead.
type Registry interface {
	Exists(ctx context.Context, username string) (bool, error)
	Append(ctx context.Context, u User) error
	Get(ctx context.Context, username string) (User, error)
}
