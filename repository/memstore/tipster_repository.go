package memstore

import (
	"context"
	"sort"
	"time"

	"tipfolio/models"
)

// TipsterRepository implements tipster data access over the in-memory store
type TipsterRepository struct {
	store *Store
}

// GetByID retrieves a tipster by id, returning nil when absent
func (r *TipsterRepository) GetByID(ctx context.Context, id string) (*models.Tipster, error) {
	tipster, ok := r.store.tipsters[id]
	if !ok {
		return nil, nil
	}
	return cloneTipster(tipster), nil
}

// GetByUserID retrieves the tipster profile owned by a user, nil when none
func (r *TipsterRepository) GetByUserID(ctx context.Context, userID string) (*models.Tipster, error) {
	for _, tipster := range r.store.tipsters {
		if tipster.UserID == userID {
			return cloneTipster(tipster), nil
		}
	}
	return nil, nil
}

// List returns tipsters ordered by follower count descending, optionally
// filtered by visibility. Offset is applied before limit.
func (r *TipsterRepository) List(ctx context.Context, opts models.TipsterListOptions) ([]*models.Tipster, error) {
	var tipsters []*models.Tipster
	for _, tipster := range r.store.tipsters {
		if opts.IsPublic != nil && tipster.IsPublic != *opts.IsPublic {
			continue
		}
		tipsters = append(tipsters, cloneTipster(tipster))
	}

	sort.Slice(tipsters, func(i, j int) bool {
		if tipsters[i].FollowerCount != tipsters[j].FollowerCount {
			return tipsters[i].FollowerCount > tipsters[j].FollowerCount
		}
		return tipsters[i].ID < tipsters[j].ID
	})

	return paginate(tipsters, opts.Offset, opts.Limit), nil
}

// Create stores a new tipster record
func (r *TipsterRepository) Create(ctx context.Context, tipster *models.Tipster) error {
	r.store.tipsters[tipster.ID] = cloneTipster(tipster)
	return nil
}

// Update applies a patch to an existing tipster; returns nil when absent
func (r *TipsterRepository) Update(ctx context.Context, id string, patch models.TipsterPatch) (*models.Tipster, error) {
	tipster, ok := r.store.tipsters[id]
	if !ok {
		return nil, nil
	}
	patch.Apply(tipster)
	tipster.UpdatedAt = time.Now().UTC()
	return cloneTipster(tipster), nil
}

// AdjustFollowerCount adds delta to the follower count, clamping at zero
func (r *TipsterRepository) AdjustFollowerCount(ctx context.Context, id string, delta int) error {
	tipster, ok := r.store.tipsters[id]
	if !ok {
		return nil
	}
	tipster.FollowerCount += delta
	if tipster.FollowerCount < 0 {
		tipster.FollowerCount = 0
	}
	tipster.UpdatedAt = time.Now().UTC()
	return nil
}
