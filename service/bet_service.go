package service

import (
	"context"
	"fmt"
	"time"

	"tipfolio/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BetService handles bet lifecycle. Every bet is created pending with zero
// profit; no operation here settles it.
type BetService struct {
	uowFactory UnitOfWorkFactory
}

// NewBetService creates a new bet service
func NewBetService(uowFactory UnitOfWorkFactory) *BetService {
	return &BetService{uowFactory: uowFactory}
}

// CreateBet stores a new bet after verifying both the user and the bank
// exist. Whether the bank belongs to the authenticated user is the boundary
// layer's concern.
func (s *BetService) CreateBet(ctx context.Context, bet *models.Bet) (*models.Bet, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback()

	user, err := uow.UserRepository().GetByID(ctx, bet.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check user %s: %w", bet.UserID, err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", bet.UserID, ErrMissingReference)
	}

	bank, err := uow.BankRepository().GetByID(ctx, bet.BankID)
	if err != nil {
		return nil, fmt.Errorf("failed to check bank %s: %w", bet.BankID, err)
	}
	if bank == nil {
		return nil, fmt.Errorf("bank %s: %w", bet.BankID, ErrMissingReference)
	}

	now := time.Now().UTC()
	record := &models.Bet{
		ID:         uuid.NewString(),
		UserID:     bet.UserID,
		BankID:     bet.BankID,
		Event:      bet.Event,
		Market:     bet.Market,
		Selection:  bet.Selection,
		Odds:       bet.Odds,
		Stake:      bet.Stake,
		SportID:    bet.SportID,
		LeagueID:   bet.LeagueID,
		Bookmaker:  bet.Bookmaker,
		Status:     models.BetStatusPending,
		Profit:     decimal.Zero,
		Notes:      bet.Notes,
		Confidence: bet.Confidence,
		Tags:       bet.Tags,
		EventDate:  bet.EventDate,
		PlacedAt:   now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := uow.BetRepository().Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create bet: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}
	return record, nil
}

// GetBet retrieves a bet, returning nil when absent
func (s *BetService) GetBet(ctx context.Context, id string) (*models.Bet, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback()

	return uow.BetRepository().GetByID(ctx, id)
}

// ListUserBets returns a user's bets, newest first, optionally filtered by
// bank and paginated
func (s *BetService) ListUserBets(ctx context.Context, userID string, opts models.BetListOptions) ([]*models.Bet, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback()

	return uow.BetRepository().ListByUser(ctx, userID, opts)
}

// UpdateBet applies a patch to a bet, returning nil when the id is absent.
// When the patch moves the bet to a different bank, that bank must exist.
func (s *BetService) UpdateBet(ctx context.Context, id string, patch models.BetPatch) (*models.Bet, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback()

	if patch.BankID != nil {
		bank, err := uow.BankRepository().GetByID(ctx, *patch.BankID)
		if err != nil {
			return nil, fmt.Errorf("failed to check bank %s: %w", *patch.BankID, err)
		}
		if bank == nil {
			return nil, fmt.Errorf("bank %s: %w", *patch.BankID, ErrMissingReference)
		}
	}

	bet, err := uow.BetRepository().Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update bet %s: %w", id, err)
	}
	if bet == nil {
		return nil, nil
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}
	return bet, nil
}

// DeleteBet removes a bet, reporting whether a record existed
func (s *BetService) DeleteBet(ctx context.Context, id string) (bool, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback()

	deleted, err := uow.BetRepository().Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete bet %s: %w", id, err)
	}

	if err := uow.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit: %w", err)
	}
	return deleted, nil
}
