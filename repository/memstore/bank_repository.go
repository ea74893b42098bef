package memstore

import (
	"context"
	"time"

	"tipfolio/models"
)

// BankRepository implements bank data access over the in-memory store
type BankRepository struct {
	store *Store
}

// GetByID retrieves a bank by id, returning nil when absent
func (r *BankRepository) GetByID(ctx context.Context, id string) (*models.Bank, error) {
	bank, ok := r.store.banks[id]
	if !ok {
		return nil, nil
	}
	return cloneBank(bank), nil
}

// ListByUser returns all banks owned by a user
func (r *BankRepository) ListByUser(ctx context.Context, userID string) ([]*models.Bank, error) {
	var banks []*models.Bank
	for _, bank := range r.store.banks {
		if bank.UserID == userID {
			banks = append(banks, cloneBank(bank))
		}
	}
	return banks, nil
}

// Create stores a new bank record
func (r *BankRepository) Create(ctx context.Context, bank *models.Bank) error {
	r.store.banks[bank.ID] = cloneBank(bank)
	return nil
}

// Update applies a patch to an existing bank; returns nil when absent
func (r *BankRepository) Update(ctx context.Context, id string, patch models.BankPatch) (*models.Bank, error) {
	bank, ok := r.store.banks[id]
	if !ok {
		return nil, nil
	}
	patch.Apply(bank)
	bank.UpdatedAt = time.Now().UTC()
	return cloneBank(bank), nil
}

// Delete removes a bank, reporting whether a record existed. Dependent bets
// stay in place.
func (r *BankRepository) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := r.store.banks[id]; !ok {
		return false, nil
	}
	delete(r.store.banks, id)
	return true, nil
}
