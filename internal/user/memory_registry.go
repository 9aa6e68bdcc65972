package user

import (
	"context"
	"sync"
)

// MemoryRegistry keeps users for the lifetime of the process.
type MemoryRegistry struct {
	mu    sync.RWMutex
	users []User
	index map[string]int
}

func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{index: make(map[string]int)}
}

func (r *MemoryRegistry) Exists(_ context.Context, username string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.index[username]
	return ok, nil
}

func (r *MemoryRegistry) Append(_ context.Context, u User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	// Re-checked under the write lock so two concurrent registrations of
	// the same name cannot both land.
	if _, ok := r.index[u.Username]; ok {
		return ErrAlreadyExists
	}
	r.index[u.Username] = len(r.users)
	r.users = append(r.users, u)
	return nil
}

func (r *MemoryRegistry) Get(_ context.Context, username string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[username]
	if !ok {
		return User{}, ErrNotFound
	}
	return r.users[i], nil
}

// Users returns a snapshot of every stored record in append order.
func (r *MemoryRegistry) Users() []User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]User, len(r.users))
	copy(out, r.users)
	return out
}
