package memstore

import (
	"context"
	"sort"
	"time"

	"tipfolio/models"
)

// PickRepository implements pick data access over the in-memory store
type PickRepository struct {
	store *Store
}

// GetByID retrieves a pick by id, returning nil when absent
func (r *PickRepository) GetByID(ctx context.Context, id string) (*models.Pick, error) {
	pick, ok := r.store.picks[id]
	if !ok {
		return nil, nil
	}
	return clonePick(pick), nil
}

// ListByTipster returns a tipster's picks ordered by publish time descending.
// Only pending picks are returned unless opts.IncludeSettled is set.
func (r *PickRepository) ListByTipster(ctx context.Context, tipsterID string, opts models.PickListOptions) ([]*models.Pick, error) {
	var picks []*models.Pick
	for _, pick := range r.store.picks {
		if pick.TipsterID != tipsterID {
			continue
		}
		if !opts.IncludeSettled && pick.Status != models.PickStatusPending {
			continue
		}
		picks = append(picks, clonePick(pick))
	}

	sort.Slice(picks, func(i, j int) bool {
		if !picks[i].PublishedAt.Equal(picks[j].PublishedAt) {
			return picks[i].PublishedAt.After(picks[j].PublishedAt)
		}
		return r.store.pickSeq[picks[i].ID] > r.store.pickSeq[picks[j].ID]
	})

	return paginate(picks, opts.Offset, opts.Limit), nil
}

// Create stores a new pick record
func (r *PickRepository) Create(ctx context.Context, pick *models.Pick) error {
	r.store.picks[pick.ID] = clonePick(pick)
	r.store.pickSeq[pick.ID] = r.store.nextSeq()
	return nil
}

// Update applies a patch to an existing pick; returns nil when absent
func (r *PickRepository) Update(ctx context.Context, id string, patch models.PickPatch) (*models.Pick, error) {
	pick, ok := r.store.picks[id]
	if !ok {
		return nil, nil
	}
	patch.Apply(pick)
	pick.UpdatedAt = time.Now().UTC()
	return clonePick(pick), nil
}

// Delete removes a pick, reporting whether a record existed
func (r *PickRepository) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := r.store.picks[id]; !ok {
		return false, nil
	}
	delete(r.store.picks, id)
	delete(r.store.pickSeq, id)
	return true, nil
}
