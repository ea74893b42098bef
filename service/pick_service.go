package service

import (
	"context"
	"fmt"
	"time"

	"tipfolio/models"

	"github.com/google/uuid"
)

// PickService handles a tipster's published picks
type PickService struct {
	uowFactory UnitOfWorkFactory
}

// NewPickService creates a new pick service
func NewPickService(uowFactory UnitOfWorkFactory) *PickService {
	return &PickService{uowFactory: uowFactory}
}

// CreatePick publishes a new pick under an existing tipster. Picks start
// pending with no result.
func (s *PickService) CreatePick(ctx context.Context, pick *models.Pick) (*models.Pick, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback()

	tipster, err := uow.TipsterRepository().GetByID(ctx, pick.TipsterID)
	if err != nil {
		return nil, fmt.Errorf("failed to check tipster %s: %w", pick.TipsterID, err)
	}
	if tipster == nil {
		return nil, fmt.Errorf("tipster %s: %w", pick.TipsterID, ErrMissingReference)
	}

	now := time.Now().UTC()
	record := &models.Pick{
		ID:          uuid.NewString(),
		TipsterID:   pick.TipsterID,
		Event:       pick.Event,
		Market:      pick.Market,
		Selection:   pick.Selection,
		Odds:        pick.Odds,
		SportID:     pick.SportID,
		LeagueID:    pick.LeagueID,
		Bookmaker:   pick.Bookmaker,
		Analysis:    pick.Analysis,
		Confidence:  pick.Confidence,
		StakeUnits:  pick.StakeUnits,
		Status:      models.PickStatusPending,
		IsPremium:   pick.IsPremium,
		EventDate:   pick.EventDate,
		PublishedAt: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uow.PickRepository().Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create pick: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}
	return record, nil
}

// GetPick retrieves a pick, returning nil when absent
func (s *PickService) GetPick(ctx context.Context, id string) (*models.Pick, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback()

	return uow.PickRepository().GetByID(ctx, id)
}

// ListTipsterPicks returns a tipster's picks, newest first. Settled picks are
// hidden unless opts.IncludeSettled is set.
func (s *PickService) ListTipsterPicks(ctx context.Context, tipsterID string, opts models.PickListOptions) ([]*models.Pick, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback()

	return uow.PickRepository().ListByTipster(ctx, tipsterID, opts)
}

// UpdatePick applies a patch to a pick, returning nil when the id is absent
func (s *PickService) UpdatePick(ctx context.Context, id string, patch models.PickPatch) (*models.Pick, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback()

	pick, err := uow.PickRepository().Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update pick %s: %w", id, err)
	}
	if pick == nil {
		return nil, nil
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}
	return pick, nil
}

// DeletePick removes a pick, reporting whether a record existed
func (s *PickService) DeletePick(ctx context.Context, id string) (bool, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback()

	deleted, err := uow.PickRepository().Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete pick %s: %w", id, err)
	}

	if err := uow.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit: %w", err)
	}
	return deleted, nil
}
