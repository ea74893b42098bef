package testutil

import (
	"time"

	"tipfolio/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateTestUser creates a test user with default values
func CreateTestUser(id, email string) *models.User {
	now := time.Now().UTC()
	return &models.User{
		ID:          id,
		Email:       email,
		DisplayName: "Test User",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// CreateTestBank creates a test bank owned by a user
func CreateTestBank(userID string) *models.Bank {
	now := time.Now().UTC()
	balance := decimal.NewFromInt(1000)
	return &models.Bank{
		ID:             uuid.NewString(),
		UserID:         userID,
		Name:           "Main Bank",
		Currency:       "EUR",
		InitialBalance: balance,
		CurrentBalance: balance,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// CreateTestBet creates a pending test bet against a bank
func CreateTestBet(userID, bankID string) *models.Bet {
	now := time.Now().UTC()
	return &models.Bet{
		ID:        uuid.NewString(),
		UserID:    userID,
		BankID:    bankID,
		Event:     "Real Madrid vs Barcelona",
		Market:    "1X2",
		Selection: "1",
		Odds:      decimal.NewFromFloat(2.10),
		Stake:     decimal.NewFromInt(50),
		Status:    models.BetStatusPending,
		Profit:    decimal.Zero,
		PlacedAt:  now,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CreateTestBetWithStatus creates a test bet with a specific status and profit
func CreateTestBetWithStatus(userID, bankID string, status models.BetStatus, profit decimal.Decimal) *models.Bet {
	bet := CreateTestBet(userID, bankID)
	bet.Status = status
	bet.Profit = profit
	if status.Settled() {
		settled := time.Now().UTC()
		bet.SettledAt = &settled
	}
	return bet
}

// CreateTestTipster creates a public test tipster profile for a user
func CreateTestTipster(userID string) *models.Tipster {
	now := time.Now().UTC()
	return &models.Tipster{
		ID:          uuid.NewString(),
		UserID:      userID,
		DisplayName: "Test Tipster",
		IsPublic:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// CreateTestPick creates a pending test pick published by a tipster
func CreateTestPick(tipsterID string) *models.Pick {
	now := time.Now().UTC()
	return &models.Pick{
		ID:          uuid.NewString(),
		TipsterID:   tipsterID,
		Event:       "Lakers vs Celtics",
		Market:      "Moneyline",
		Selection:   "Lakers",
		Odds:        decimal.NewFromFloat(1.85),
		Confidence:  3,
		StakeUnits:  2,
		Status:      models.PickStatusPending,
		EventDate:   now.Add(24 * time.Hour),
		PublishedAt: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// CreateTestFollow creates a free follow between a user and a tipster
func CreateTestFollow(userID, tipsterID string) *models.Follow {
	return &models.Follow{
		ID:               uuid.NewString(),
		UserID:           userID,
		TipsterID:        tipsterID,
		SubscriptionType: models.SubscriptionFree,
		SubscribedAt:     time.Now().UTC(),
	}
}
