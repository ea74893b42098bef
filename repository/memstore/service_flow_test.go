package memstore

import (
	"context"
	"testing"

	"tipfolio/models"
	"tipfolio/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Flow tests run the real services over the in-memory backend.

type testServices struct {
	users    *service.UserService
	banks    *service.BankService
	bets     *service.BetService
	stats    *service.StatsService
	tipsters *service.TipsterService
	picks    *service.PickService
	follows  *service.FollowService
}

func newTestServices() testServices {
	factory := NewUnitOfWorkFactory(New())
	return testServices{
		users:    service.NewUserService(factory),
		banks:    service.NewBankService(factory),
		bets:     service.NewBetService(factory),
		stats:    service.NewStatsService(factory),
		tipsters: service.NewTipsterService(factory),
		picks:    service.NewPickService(factory),
		follows:  service.NewFollowService(factory),
	}
}

func registerTestUser(t *testing.T, svc testServices, id string) *models.User {
	t.Helper()
	user, err := svc.users.Register(context.Background(), &models.User{
		ID:    id,
		Email: id + "@example.com",
	})
	require.NoError(t, err)
	return user
}

func createTestBank(t *testing.T, svc testServices, userID string) *models.Bank {
	t.Helper()
	bank, err := svc.banks.CreateBank(context.Background(), &models.Bank{
		UserID:         userID,
		Name:           "Main",
		Currency:       "EUR",
		InitialBalance: decimal.NewFromInt(1000),
	})
	require.NoError(t, err)
	return bank
}

func TestBankCreation_DefaultsAndIntegrity(t *testing.T) {
	svc := newTestServices()
	ctx := context.Background()

	registerTestUser(t, svc, "user-1")

	t.Run("balance starts at initial balance", func(t *testing.T) {
		bank := createTestBank(t, svc, "user-1")
		assert.NotEmpty(t, bank.ID)
		assert.True(t, bank.IsActive)
		assert.True(t, bank.CurrentBalance.Equal(bank.InitialBalance))
	})

	t.Run("unknown owner is rejected", func(t *testing.T) {
		_, err := svc.banks.CreateBank(ctx, &models.Bank{
			UserID:         "no-such-user",
			Name:           "Orphan",
			Currency:       "EUR",
			InitialBalance: decimal.NewFromInt(100),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrMissingReference)
	})
}

func TestBetCreation_DefaultsAndIntegrity(t *testing.T) {
	svc := newTestServices()
	ctx := context.Background()

	registerTestUser(t, svc, "user-1")
	bank := createTestBank(t, svc, "user-1")

	t.Run("new bets start pending with zero profit", func(t *testing.T) {
		bet, err := svc.bets.CreateBet(ctx, &models.Bet{
			UserID:    "user-1",
			BankID:    bank.ID,
			Event:     "Derby",
			Market:    "1X2",
			Selection: "1",
			Odds:      decimal.NewFromFloat(2.50),
			Stake:     decimal.NewFromInt(20),
		})
		require.NoError(t, err)
		assert.Equal(t, models.BetStatusPending, bet.Status)
		assert.True(t, bet.Profit.IsZero())
		assert.Nil(t, bet.SettledAt)
		assert.False(t, bet.PlacedAt.IsZero())
	})

	t.Run("unknown bank is rejected", func(t *testing.T) {
		_, err := svc.bets.CreateBet(ctx, &models.Bet{
			UserID:    "user-1",
			BankID:    "no-such-bank",
			Event:     "Derby",
			Market:    "1X2",
			Selection: "1",
			Odds:      decimal.NewFromFloat(2.50),
			Stake:     decimal.NewFromInt(20),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrMissingReference)
	})
}

func TestBankDeletion_LeavesBetsBehind(t *testing.T) {
	svc := newTestServices()
	ctx := context.Background()

	registerTestUser(t, svc, "user-1")
	bank := createTestBank(t, svc, "user-1")

	bet, err := svc.bets.CreateBet(ctx, &models.Bet{
		UserID:    "user-1",
		BankID:    bank.ID,
		Event:     "Derby",
		Market:    "1X2",
		Selection: "1",
		Odds:      decimal.NewFromFloat(2.50),
		Stake:     decimal.NewFromInt(20),
	})
	require.NoError(t, err)

	deleted, err := svc.banks.DeleteBank(ctx, bank.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// The bet survives with a dangling bank reference.
	orphan, err := svc.bets.GetBet(ctx, bet.ID)
	require.NoError(t, err)
	require.NotNil(t, orphan)
	assert.Equal(t, bank.ID, orphan.BankID)
}

func TestTipsterCreation_OnePerUser(t *testing.T) {
	svc := newTestServices()
	ctx := context.Background()

	registerTestUser(t, svc, "user-1")

	tipster, err := svc.tipsters.CreateTipster(ctx, &models.Tipster{
		UserID:      "user-1",
		DisplayName: "The Oracle",
	})
	require.NoError(t, err)
	assert.True(t, tipster.IsPublic)
	assert.False(t, tipster.IsVerified)
	assert.Equal(t, 0, tipster.TotalPicks)
	assert.Equal(t, 0, tipster.FollowerCount)

	_, err = svc.tipsters.CreateTipster(ctx, &models.Tipster{
		UserID:      "user-1",
		DisplayName: "Second Profile",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrAlreadyExists)
}

func TestPickCreation_DoesNotTouchTipsterStats(t *testing.T) {
	svc := newTestServices()
	ctx := context.Background()

	registerTestUser(t, svc, "user-1")
	tipster, err := svc.tipsters.CreateTipster(ctx, &models.Tipster{
		UserID:      "user-1",
		DisplayName: "The Oracle",
	})
	require.NoError(t, err)

	pick, err := svc.picks.CreatePick(ctx, &models.Pick{
		TipsterID:  tipster.ID,
		Event:      "Final",
		Market:     "Moneyline",
		Selection:  "Home",
		Odds:       decimal.NewFromFloat(1.80),
		Confidence: 4,
		StakeUnits: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, models.PickStatusPending, pick.Status)
	assert.False(t, pick.PublishedAt.IsZero())

	// Publishing does not maintain the aggregate counters.
	after, err := svc.tipsters.GetTipster(ctx, tipster.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, after.TotalPicks)
}

func TestFollow_CounterTracksMutations(t *testing.T) {
	svc := newTestServices()
	ctx := context.Background()

	for _, id := range []string{"owner", "fan-1", "fan-2", "fan-3"} {
		registerTestUser(t, svc, id)
	}
	tipster, err := svc.tipsters.CreateTipster(ctx, &models.Tipster{
		UserID:      "owner",
		DisplayName: "The Oracle",
	})
	require.NoError(t, err)

	for _, fan := range []string{"fan-1", "fan-2", "fan-3"} {
		_, err := svc.follows.Follow(ctx, &models.Follow{UserID: fan, TipsterID: tipster.ID})
		require.NoError(t, err)
	}

	after, err := svc.tipsters.GetTipster(ctx, tipster.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, after.FollowerCount)

	t.Run("duplicate follow leaves the counter unchanged", func(t *testing.T) {
		_, err := svc.follows.Follow(ctx, &models.Follow{UserID: "fan-1", TipsterID: tipster.ID})
		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrAlreadyExists)

		after, err := svc.tipsters.GetTipster(ctx, tipster.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, after.FollowerCount)
	})

	t.Run("unfollow decrements once", func(t *testing.T) {
		deleted, err := svc.follows.Unfollow(ctx, "fan-2", tipster.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		after, err := svc.tipsters.GetTipster(ctx, tipster.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, after.FollowerCount)
	})

	t.Run("unfollow without a follow is a no-op", func(t *testing.T) {
		deleted, err := svc.follows.Unfollow(ctx, "fan-2", tipster.ID)
		require.NoError(t, err)
		assert.False(t, deleted)

		after, err := svc.tipsters.GetTipster(ctx, tipster.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, after.FollowerCount)
	})

	t.Run("follow subscriptions default to free", func(t *testing.T) {
		follows, err := svc.follows.ListUserFollows(ctx, "fan-1")
		require.NoError(t, err)
		require.Len(t, follows, 1)
		assert.Equal(t, models.SubscriptionFree, follows[0].SubscriptionType)
	})
}

func TestUserRegistration_ClearsPremiumState(t *testing.T) {
	svc := newTestServices()
	ctx := context.Background()

	user, err := svc.users.Register(ctx, &models.User{
		ID:        "user-1",
		Email:     "user-1@example.com",
		IsPremium: true,
	})
	require.NoError(t, err)
	assert.False(t, user.IsPremium)
	assert.Nil(t, user.SubscriptionEndDate)

	stored, err := svc.users.GetByID(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "user-1@example.com", stored.Email)
}
