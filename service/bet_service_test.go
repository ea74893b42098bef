package service

import (
	"context"
	"testing"

	"tipfolio/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupBetMocks() (*BetService, *MockUnitOfWork, *MockUserRepository, *MockBankRepository, *MockBetRepository) {
	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockUserRepo := new(MockUserRepository)
	mockBankRepo := new(MockBankRepository)
	mockBetRepo := new(MockBetRepository)
	mockUoW.SetRepositories(mockUserRepo, mockBankRepo, mockBetRepo, nil, nil, nil)

	mockFactory.On("Create").Return(mockUoW)

	return NewBetService(mockFactory), mockUoW, mockUserRepo, mockBankRepo, mockBetRepo
}

func TestBetService_CreateBet_Defaults(t *testing.T) {
	ctx := context.Background()
	svc, mockUoW, mockUserRepo, mockBankRepo, mockBetRepo := setupBetMocks()

	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockUserRepo.On("GetByID", ctx, "user-1").Return(&models.User{ID: "user-1"}, nil)
	mockBankRepo.On("GetByID", ctx, "bank-1").Return(&models.Bank{ID: "bank-1", UserID: "user-1"}, nil)
	mockBetRepo.On("Create", ctx, mock.MatchedBy(func(b *models.Bet) bool {
		return b.ID != "" &&
			b.Status == models.BetStatusPending &&
			b.Profit.IsZero() &&
			b.SettledAt == nil &&
			!b.PlacedAt.IsZero()
	})).Return(nil)

	bet, err := svc.CreateBet(ctx, &models.Bet{
		UserID:    "user-1",
		BankID:    "bank-1",
		Event:     "Derby",
		Market:    "1X2",
		Selection: "1",
		Odds:      decimal.NewFromFloat(2.50),
		Stake:     decimal.NewFromInt(20),
	})

	assert.NoError(t, err)
	assert.Equal(t, models.BetStatusPending, bet.Status)

	mockBetRepo.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
}

func TestBetService_CreateBet_MissingBank(t *testing.T) {
	ctx := context.Background()
	svc, mockUoW, mockUserRepo, mockBankRepo, mockBetRepo := setupBetMocks()

	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockUserRepo.On("GetByID", ctx, "user-1").Return(&models.User{ID: "user-1"}, nil)
	mockBankRepo.On("GetByID", ctx, "ghost").Return(nil, nil)

	bet, err := svc.CreateBet(ctx, &models.Bet{
		UserID:    "user-1",
		BankID:    "ghost",
		Event:     "Derby",
		Market:    "1X2",
		Selection: "1",
		Odds:      decimal.NewFromFloat(2.50),
		Stake:     decimal.NewFromInt(20),
	})

	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingReference)
	assert.Nil(t, bet)

	mockBetRepo.AssertNotCalled(t, "Create")
	mockUoW.AssertNotCalled(t, "Commit")
}

func TestBetService_UpdateBet_ChecksNewBank(t *testing.T) {
	ctx := context.Background()
	svc, mockUoW, _, mockBankRepo, mockBetRepo := setupBetMocks()

	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)

	bankID := "ghost"
	mockBankRepo.On("GetByID", ctx, "ghost").Return(nil, nil)

	bet, err := svc.UpdateBet(ctx, "bet-1", models.BetPatch{BankID: &bankID})

	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingReference)
	assert.Nil(t, bet)

	mockBetRepo.AssertNotCalled(t, "Update")
}

func TestBetService_UpdateBet_MissingBet(t *testing.T) {
	ctx := context.Background()
	svc, mockUoW, _, _, mockBetRepo := setupBetMocks()

	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)

	event := "changed"
	patch := models.BetPatch{Event: &event}
	mockBetRepo.On("Update", ctx, "ghost", patch).Return(nil, nil)

	bet, err := svc.UpdateBet(ctx, "ghost", patch)

	assert.NoError(t, err)
	assert.Nil(t, bet)

	mockUoW.AssertNotCalled(t, "Commit")
}
