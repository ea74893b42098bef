package service

import (
	"context"
	"fmt"

	"tipfolio/models"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// StatsService computes aggregate betting performance
type StatsService struct {
	uowFactory UnitOfWorkFactory
}

// NewStatsService creates a new stats service
func NewStatsService(uowFactory UnitOfWorkFactory) *StatsService {
	return &StatsService{uowFactory: uowFactory}
}

// GetUserBetStats aggregates a user's betting performance.
//
// TotalBets counts every bet; the financial fields are computed over settled
// (won or lost) bets only. An unknown or bet-less user yields all zeroes.
func (s *StatsService) GetUserBetStats(ctx context.Context, userID string) (*models.BetStats, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback()

	bets, err := uow.BetRepository().ListByUser(ctx, userID, models.BetListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list bets for user %s: %w", userID, err)
	}

	stats := &models.BetStats{TotalBets: len(bets)}

	var settled, won int64
	oddsSum := decimal.Zero
	for _, bet := range bets {
		if !bet.Status.Settled() {
			continue
		}
		settled++
		if bet.Status == models.BetStatusWon {
			won++
		}
		stats.TotalStaked = stats.TotalStaked.Add(bet.Stake)
		stats.TotalProfit = stats.TotalProfit.Add(bet.Profit)
		oddsSum = oddsSum.Add(bet.Odds)
	}

	if settled > 0 {
		settledCount := decimal.NewFromInt(settled)
		stats.WinRate = decimal.NewFromInt(won).Div(settledCount).Mul(hundred)
		stats.AvgOdds = oddsSum.Div(settledCount)
	}
	if stats.TotalStaked.IsPositive() {
		stats.ROI = stats.TotalProfit.Div(stats.TotalStaked).Mul(hundred)
	}
	// Yield is defined identically to ROI in this service.
	stats.Yield = stats.ROI

	return stats, nil
}
