package service

import (
	"context"
	"errors"
	"testing"

	"tipfolio/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockUserRepo := new(MockUserRepository)
	mockUoW.SetRepositories(mockUserRepo, nil, nil, nil, nil, nil)

	svc := NewUserService(mockFactory)

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockUserRepo.On("Create", ctx, mock.MatchedBy(func(u *models.User) bool {
		// Premium state must start cleared no matter what the caller sent.
		return u.ID == "uid-1" && !u.IsPremium && u.SubscriptionEndDate == nil && !u.CreatedAt.IsZero()
	})).Return(nil)

	user, err := svc.Register(ctx, &models.User{
		ID:        "uid-1",
		Email:     "someone@example.com",
		IsPremium: true,
	})

	assert.NoError(t, err)
	assert.False(t, user.IsPremium)
	assert.Equal(t, "someone@example.com", user.Email)

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
}

func TestUserService_Register_RepositoryError(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockUserRepo := new(MockUserRepository)
	mockUoW.SetRepositories(mockUserRepo, nil, nil, nil, nil, nil)

	svc := NewUserService(mockFactory)

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)
	// No Commit() expected since the create fails

	repoErr := errors.New("duplicate key")
	mockUserRepo.On("Create", ctx, mock.Anything).Return(repoErr)

	user, err := svc.Register(ctx, &models.User{ID: "uid-1", Email: "someone@example.com"})

	assert.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
	assert.Nil(t, user)

	mockUoW.AssertNotCalled(t, "Commit")
}

func TestUserService_UpdateProfile_MissingUser(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockUserRepo := new(MockUserRepository)
	mockUoW.SetRepositories(mockUserRepo, nil, nil, nil, nil, nil)

	svc := NewUserService(mockFactory)

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)

	name := "New Name"
	patch := models.UserPatch{DisplayName: &name}
	mockUserRepo.On("Update", ctx, "ghost", patch).Return(nil, nil)

	user, err := svc.UpdateProfile(ctx, "ghost", patch)

	assert.NoError(t, err)
	assert.Nil(t, user)

	// A miss is not a mutation; nothing to commit.
	mockUoW.AssertNotCalled(t, "Commit")
}
