package memstore

import (
	"context"
	"time"

	"tipfolio/models"
)

// UserRepository implements user data access over the in-memory store.
// All methods assume the unit of work holds the store lock.
type UserRepository struct {
	store *Store
}

// GetByID retrieves a user by id, returning nil when absent
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, ok := r.store.users[id]
	if !ok {
		return nil, nil
	}
	return cloneUser(user), nil
}

// GetByEmail retrieves a user by email, returning nil when absent
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range r.store.users {
		if user.Email == email {
			return cloneUser(user), nil
		}
	}
	return nil, nil
}

// Create stores a new user record
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	r.store.users[user.ID] = cloneUser(user)
	return nil
}

// Update applies a patch to an existing user; returns nil when absent
func (r *UserRepository) Update(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	user, ok := r.store.users[id]
	if !ok {
		return nil, nil
	}
	patch.Apply(user)
	user.UpdatedAt = time.Now().UTC()
	return cloneUser(user), nil
}
