package account

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type memoryRepository struct {
	mu    sync.RWMutex
	users map[string]User
}

// NewMemoryRepository builds an in-memory account store for testing. Like
// the real store it enforces no uniqueness itself; the duplicate check lives
// in the service.
func NewMemoryRepository() Repository {
	return &memoryRepository{users: make(map[string]User)}
}

func (r *memoryRepository) FindByEmail(_ context.Context, email string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.ID.Hex() == id {
			return user, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *memoryRepository) Insert(_ context.Context, user User) (bson.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = bson.NewObjectID()
	}
	r.users[user.Email] = user
	return user.ID, nil
}

func (r *memoryRepository) Replace(_ context.Context, user User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.users[user.Email]
	if !ok {
		return User{}, ErrNotFound
	}
	user.ID = existing.ID
	r.users[user.Email] = user
	return user, nil
}
