package service

import (
	"context"
	"testing"

	"tipfolio/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func setupStatsMocks() (*StatsService, *MockUnitOfWork, *MockBetRepository) {
	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockBetRepo := new(MockBetRepository)
	mockUoW.SetRepositories(nil, nil, mockBetRepo, nil, nil, nil)

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", context.Background()).Return(nil)
	mockUoW.On("Rollback").Return(nil)

	return NewStatsService(mockFactory), mockUoW, mockBetRepo
}

func TestStatsService_AggregatesOverEveryBet(t *testing.T) {
	ctx := context.Background()
	svc, _, mockBetRepo := setupStatsMocks()

	bets := []*models.Bet{
		{Status: models.BetStatusWon, Stake: decimal.NewFromInt(100), Profit: decimal.NewFromInt(50), Odds: decimal.NewFromFloat(1.5)},
		{Status: models.BetStatusLost, Stake: decimal.NewFromInt(50), Profit: decimal.NewFromInt(-50), Odds: decimal.NewFromFloat(2.5)},
		{Status: models.BetStatusPending, Stake: decimal.NewFromInt(999), Profit: decimal.Zero, Odds: decimal.NewFromInt(10)},
	}

	// The aggregate always walks the full history; pagination never applies.
	mockBetRepo.On("ListByUser", ctx, "user-1", models.BetListOptions{}).Return(bets, nil)

	stats, err := svc.GetUserBetStats(ctx, "user-1")
	assert.NoError(t, err)

	assert.Equal(t, 3, stats.TotalBets)
	assert.True(t, stats.TotalStaked.Equal(decimal.NewFromInt(150)))
	assert.True(t, stats.TotalProfit.IsZero())
	assert.True(t, stats.WinRate.Equal(decimal.NewFromInt(50)))
	assert.True(t, stats.AvgOdds.Equal(decimal.NewFromInt(2)))
	assert.True(t, stats.ROI.IsZero())
	assert.True(t, stats.Yield.Equal(stats.ROI))

	mockBetRepo.AssertExpectations(t)
}

func TestStatsService_YieldMatchesROI(t *testing.T) {
	ctx := context.Background()
	svc, _, mockBetRepo := setupStatsMocks()

	bets := []*models.Bet{
		{Status: models.BetStatusWon, Stake: decimal.NewFromInt(100), Profit: decimal.NewFromInt(25), Odds: decimal.NewFromFloat(1.25)},
	}
	mockBetRepo.On("ListByUser", ctx, "user-1", models.BetListOptions{}).Return(bets, nil)

	stats, err := svc.GetUserBetStats(ctx, "user-1")
	assert.NoError(t, err)

	assert.True(t, stats.ROI.Equal(decimal.NewFromInt(25)), "roi = %s", stats.ROI)
	assert.True(t, stats.Yield.Equal(stats.ROI))
}

func TestStatsService_NoBets(t *testing.T) {
	ctx := context.Background()
	svc, _, mockBetRepo := setupStatsMocks()

	mockBetRepo.On("ListByUser", ctx, "user-1", models.BetListOptions{}).Return([]*models.Bet{}, nil)

	stats, err := svc.GetUserBetStats(ctx, "user-1")
	assert.NoError(t, err)

	assert.Equal(t, 0, stats.TotalBets)
	assert.True(t, stats.TotalStaked.IsZero())
	assert.True(t, stats.WinRate.IsZero())
	assert.True(t, stats.AvgOdds.IsZero())
	assert.True(t, stats.ROI.IsZero())
	assert.True(t, stats.Yield.IsZero())
}
