package service

import (
	"context"
	"fmt"
	"time"

	"tipfolio/models"

	"github.com/google/uuid"
)

// BankService handles bankroll lifecycle
type BankService struct {
	uowFactory UnitOfWorkFactory
}

// NewBankService creates a new bank service
func NewBankService(uowFactory UnitOfWorkFactory) *BankService {
	return &BankService{uowFactory: uowFactory}
}

// CreateBank stores a new bankroll for an existing user. The current balance
// starts equal to the initial balance.
func (s *BankService) CreateBank(ctx context.Context, bank *models.Bank) (*models.Bank, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback()

	owner, err := uow.UserRepository().GetByID(ctx, bank.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check user %s: %w", bank.UserID, err)
	}
	if owner == nil {
		return nil, fmt.Errorf("user %s: %w", bank.UserID, ErrMissingReference)
	}

	now := time.Now().UTC()
	record := &models.Bank{
		ID:             uuid.NewString(),
		UserID:         bank.UserID,
		Name:           bank.Name,
		Currency:       bank.Currency,
		InitialBalance: bank.InitialBalance,
		CurrentBalance: bank.InitialBalance,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uow.BankRepository().Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create bank: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}
	return record, nil
}

// GetBank retrieves a bank, returning nil when absent
func (s *BankService) GetBank(ctx context.Context, id string) (*models.Bank, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback()

	return uow.BankRepository().GetByID(ctx, id)
}

// ListUserBanks returns all banks owned by a user
func (s *BankService) ListUserBanks(ctx context.Context, userID string) ([]*models.Bank, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback()

	return uow.BankRepository().ListByUser(ctx, userID)
}

// UpdateBank applies a patch to a bank, returning nil when the id is absent
func (s *BankService) UpdateBank(ctx context.Context, id string, patch models.BankPatch) (*models.Bank, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback()

	bank, err := uow.BankRepository().Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update bank %s: %w", id, err)
	}
	if bank == nil {
		return nil, nil
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}
	return bank, nil
}

// DeleteBank removes a bank, reporting whether a record existed. Bets placed
// against the bank are left in place.
func (s *BankService) DeleteBank(ctx context.Context, id string) (bool, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback()

	deleted, err := uow.BankRepository().Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete bank %s: %w", id, err)
	}

	if err := uow.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit: %w", err)
	}
	return deleted, nil
}
