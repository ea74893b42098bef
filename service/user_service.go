package service

import (
	"context"
	"fmt"
	"time"

	"tipfolio/models"
)

// UserService handles account registration and profile maintenance
type UserService struct {
	uowFactory UnitOfWorkFactory
}

// NewUserService creates a new user service
func NewUserService(uowFactory UnitOfWorkFactory) *UserService {
	return &UserService{uowFactory: uowFactory}
}

// Register stores a new account. The caller supplies the id (the identity
// provider's uid); premium state and subscription end date always start
// cleared regardless of input.
func (s *UserService) Register(ctx context.Context, user *models.User) (*models.User, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback()

	now := time.Now().UTC()
	record := &models.User{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		PhotoURL:    user.PhotoURL,
		IsPremium:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uow.UserRepository().Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create user %s: %w", user.ID, err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}
	return record, nil
}

// GetByID retrieves a user, returning nil when absent
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback()

	return uow.UserRepository().GetByID(ctx, id)
}

// GetByEmail retrieves a user by email, returning nil when absent
func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback()

	return uow.UserRepository().GetByEmail(ctx, email)
}

// UpdateProfile applies a patch to a user, returning nil when the id is absent
func (s *UserService) UpdateProfile(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback()

	user, err := uow.UserRepository().Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update user %s: %w", id, err)
	}
	if user == nil {
		return nil, nil
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}
	return user, nil
}
