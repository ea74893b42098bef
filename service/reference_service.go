package service

import (
	"context"
	"fmt"

	"tipfolio/models"
)

// ReferenceService exposes the seeded sports and leagues reference data.
type ReferenceService struct {
	uowFactory UnitOfWorkFactory
}

// NewReferenceService creates a new reference data service
func NewReferenceService(uowFactory UnitOfWorkFactory) *ReferenceService {
	return &ReferenceService{uowFactory: uowFactory}
}

// ListSports returns all sports
func (s *ReferenceService) ListSports(ctx context.Context) ([]*models.Sport, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback()

	return uow.SportRepository().List(ctx)
}

// ListLeagues returns all leagues, or only those of one sport when sportID is
// non-empty
func (s *ReferenceService) ListLeagues(ctx context.Context, sportID string) ([]*models.League, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback()

	return uow.LeagueRepository().List(ctx, sportID)
}
