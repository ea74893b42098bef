package memstore

import (
	"context"
	"sort"
	"time"

	"tipfolio/models"
)

// BetRepository implements bet data access over the in-memory store
type BetRepository struct {
	store *Store
}

// GetByID retrieves a bet by id, returning nil when absent
func (r *BetRepository) GetByID(ctx context.Context, id string) (*models.Bet, error) {
	bet, ok := r.store.bets[id]
	if !ok {
		return nil, nil
	}
	return cloneBet(bet), nil
}

// ListByUser returns a user's bets ordered by creation time descending,
// optionally filtered by bank. Offset is applied before limit.
func (r *BetRepository) ListByUser(ctx context.Context, userID string, opts models.BetListOptions) ([]*models.Bet, error) {
	var bets []*models.Bet
	for _, bet := range r.store.bets {
		if bet.UserID != userID {
			continue
		}
		if opts.BankID != "" && bet.BankID != opts.BankID {
			continue
		}
		bets = append(bets, cloneBet(bet))
	}

	sort.Slice(bets, func(i, j int) bool {
		if !bets[i].CreatedAt.Equal(bets[j].CreatedAt) {
			return bets[i].CreatedAt.After(bets[j].CreatedAt)
		}
		return r.store.betSeq[bets[i].ID] > r.store.betSeq[bets[j].ID]
	})

	return paginate(bets, opts.Offset, opts.Limit), nil
}

// Create stores a new bet record
func (r *BetRepository) Create(ctx context.Context, bet *models.Bet) error {
	r.store.bets[bet.ID] = cloneBet(bet)
	r.store.betSeq[bet.ID] = r.store.nextSeq()
	return nil
}

// Update applies a patch to an existing bet; returns nil when absent
func (r *BetRepository) Update(ctx context.Context, id string, patch models.BetPatch) (*models.Bet, error) {
	bet, ok := r.store.bets[id]
	if !ok {
		return nil, nil
	}
	patch.Apply(bet)
	bet.UpdatedAt = time.Now().UTC()
	return cloneBet(bet), nil
}

// Delete removes a bet, reporting whether a record existed
func (r *BetRepository) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := r.store.bets[id]; !ok {
		return false, nil
	}
	delete(r.store.bets, id)
	delete(r.store.betSeq, id)
	return true, nil
}

// paginate slices out the requested window: offset first, then limit.
// A zero value disables either bound.
func paginate[T any](items []T, offset, limit int) []T {
	if offset > 0 {
		if offset >= len(items) {
			return nil
		}
		items = items[offset:]
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
