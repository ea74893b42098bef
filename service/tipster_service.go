package service

import (
	"context"
	"fmt"
	"time"

	"tipfolio/models"

	"github.com/google/uuid"
)

// TipsterService handles tipster profile lifecycle
type TipsterService struct {
	uowFactory UnitOfWorkFactory
}

// NewTipsterService creates a new tipster service
func NewTipsterService(uowFactory UnitOfWorkFactory) *TipsterService {
	return &TipsterService{uowFactory: uowFactory}
}

// CreateTipster stores a new tipster profile for an existing user. A user may
// hold at most one profile. Aggregate stats start at zero and are never
// recomputed by this service.
func (s *TipsterService) CreateTipster(ctx context.Context, tipster *models.Tipster) (*models.Tipster, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback()

	owner, err := uow.UserRepository().GetByID(ctx, tipster.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check user %s: %w", tipster.UserID, err)
	}
	if owner == nil {
		return nil, fmt.Errorf("user %s: %w", tipster.UserID, ErrMissingReference)
	}

	existing, err := uow.TipsterRepository().GetByUserID(ctx, tipster.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing profile for user %s: %w", tipster.UserID, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("user %s already has a tipster profile: %w", tipster.UserID, ErrAlreadyExists)
	}

	now := time.Now().UTC()
	record := &models.Tipster{
		ID:                uuid.NewString(),
		UserID:            tipster.UserID,
		DisplayName:       tipster.DisplayName,
		Bio:               tipster.Bio,
		AvatarURL:         tipster.AvatarURL,
		IsVerified:        false,
		SubscriptionPrice: tipster.SubscriptionPrice,
		IsPublic:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := uow.TipsterRepository().Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create tipster: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}
	return record, nil
}

// GetTipster retrieves a tipster, returning nil when absent
func (s *TipsterService) GetTipster(ctx context.Context, id string) (*models.Tipster, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback()

	return uow.TipsterRepository().GetByID(ctx, id)
}

// GetUserTipster retrieves the profile owned by a user, returning nil when none
func (s *TipsterService) GetUserTipster(ctx context.Context, userID string) (*models.Tipster, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback()

	return uow.TipsterRepository().GetByUserID(ctx, userID)
}

// ListTipsters returns tipsters ordered by follower count descending
func (s *TipsterService) ListTipsters(ctx context.Context, opts models.TipsterListOptions) ([]*models.Tipster, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback()

	return uow.TipsterRepository().List(ctx, opts)
}

// UpdateTipster applies a patch to a tipster, returning nil when the id is absent
func (s *TipsterService) UpdateTipster(ctx context.Context, id string, patch models.TipsterPatch) (*models.Tipster, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback()

	tipster, err := uow.TipsterRepository().Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update tipster %s: %w", id, err)
	}
	if tipster == nil {
		return nil, nil
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}
	return tipster, nil
}
