package memstore

import (
	"context"

	"tipfolio/models"
)

// FollowRepository implements follow data access over the in-memory store
type FollowRepository struct {
	store *Store
}

// GetByUserAndTipster retrieves the follow for a (user, tipster) pair,
// returning nil when absent
func (r *FollowRepository) GetByUserAndTipster(ctx context.Context, userID, tipsterID string) (*models.Follow, error) {
	for _, follow := range r.store.follows {
		if follow.UserID == userID && follow.TipsterID == tipsterID {
			return cloneFollow(follow), nil
		}
	}
	return nil, nil
}

// ListByUser returns all follows created by a user
func (r *FollowRepository) ListByUser(ctx context.Context, userID string) ([]*models.Follow, error) {
	var follows []*models.Follow
	for _, follow := range r.store.follows {
		if follow.UserID == userID {
			follows = append(follows, cloneFollow(follow))
		}
	}
	return follows, nil
}

// ListByTipster returns all follows targeting a tipster
func (r *FollowRepository) ListByTipster(ctx context.Context, tipsterID string) ([]*models.Follow, error) {
	var follows []*models.Follow
	for _, follow := range r.store.follows {
		if follow.TipsterID == tipsterID {
			follows = append(follows, cloneFollow(follow))
		}
	}
	return follows, nil
}

// Create stores a new follow record
func (r *FollowRepository) Create(ctx context.Context, follow *models.Follow) error {
	r.store.follows[follow.ID] = cloneFollow(follow)
	return nil
}

// Delete removes a follow by id, reporting whether a record existed
func (r *FollowRepository) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := r.store.follows[id]; !ok {
		return false, nil
	}
	delete(r.store.follows, id)
	return true, nil
}
