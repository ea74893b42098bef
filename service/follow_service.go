package service

import (
	"context"
	"fmt"
	"time"

	"tipfolio/models"

	"github.com/google/uuid"
)

// FollowService maintains follow relationships and keeps tipster follower
// counts consistent with them. The follow mutation and the counter change
// happen inside one unit of work, counter second.
type FollowService struct {
	uowFactory UnitOfWorkFactory
}

// NewFollowService creates a new follow service
func NewFollowService(uowFactory UnitOfWorkFactory) *FollowService {
	return &FollowService{uowFactory: uowFactory}
}

// Follow subscribes a user to a tipster. Both must exist and the pair must
// not already be linked; on success the tipster's follower count goes up by
// exactly one.
func (s *FollowService) Follow(ctx context.Context, follow *models.Follow) (*models.Follow, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback()

	user, err := uow.UserRepository().GetByID(ctx, follow.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check user %s: %w", follow.UserID, err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", follow.UserID, ErrMissingReference)
	}

	tipster, err := uow.TipsterRepository().GetByID(ctx, follow.TipsterID)
	if err != nil {
		return nil, fmt.Errorf("failed to check tipster %s: %w", follow.TipsterID, err)
	}
	if tipster == nil {
		return nil, fmt.Errorf("tipster %s: %w", follow.TipsterID, ErrMissingReference)
	}

	existing, err := uow.FollowRepository().GetByUserAndTipster(ctx, follow.UserID, follow.TipsterID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing follow: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("user %s already follows tipster %s: %w", follow.UserID, follow.TipsterID, ErrAlreadyExists)
	}

	subscriptionType := follow.SubscriptionType
	if subscriptionType == "" {
		subscriptionType = models.SubscriptionFree
	}

	record := &models.Follow{
		ID:               uuid.NewString(),
		UserID:           follow.UserID,
		TipsterID:        follow.TipsterID,
		SubscriptionType: subscriptionType,
		SubscribedAt:     time.Now().UTC(),
		ExpiresAt:        follow.ExpiresAt,
	}

	if err := uow.FollowRepository().Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create follow: %w", err)
	}

	// Counter changes only after the follow mutation succeeded.
	if err := uow.TipsterRepository().AdjustFollowerCount(ctx, follow.TipsterID, 1); err != nil {
		return nil, fmt.Errorf("failed to increment follower count for tipster %s: %w", follow.TipsterID, err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}
	return record, nil
}

// Unfollow removes the follow for a (user, tipster) pair, reporting whether
// one existed. A successful removal decrements the tipster's follower count,
// clamped at zero.
func (s *FollowService) Unfollow(ctx context.Context, userID, tipsterID string) (bool, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback()

	follow, err := uow.FollowRepository().GetByUserAndTipster(ctx, userID, tipsterID)
	if err != nil {
		return false, fmt.Errorf("failed to look up follow: %w", err)
	}
	if follow == nil {
		return false, nil
	}

	deleted, err := uow.FollowRepository().Delete(ctx, follow.ID)
	if err != nil {
		return false, fmt.Errorf("failed to delete follow %s: %w", follow.ID, err)
	}
	if deleted {
		if err := uow.TipsterRepository().AdjustFollowerCount(ctx, tipsterID, -1); err != nil {
			return false, fmt.Errorf("failed to decrement follower count for tipster %s: %w", tipsterID, err)
		}
	}

	if err := uow.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit: %w", err)
	}
	return deleted, nil
}

// ListUserFollows returns all follows created by a user
func (s *FollowService) ListUserFollows(ctx context.Context, userID string) ([]*models.Follow, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback()

	return uow.FollowRepository().ListByUser(ctx, userID)
}

// ListTipsterFollowers returns all follows targeting a tipster
func (s *FollowService) ListTipsterFollowers(ctx context.Context, tipsterID string) ([]*models.Follow, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback()

	return uow.FollowRepository().ListByTipster(ctx, tipsterID)
}
