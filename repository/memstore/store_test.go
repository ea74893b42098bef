package memstore

import (
	"context"
	"fmt"
	"testing"
	"time"

	"tipfolio/models"
	"tipfolio/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withUoW runs fn inside a fresh unit of work and commits it.
func withUoW(t *testing.T, factory service.UnitOfWorkFactory, fn func(uow service.UnitOfWork)) {
	t.Helper()
	uow := factory.Create()
	require.NoError(t, uow.Begin(context.Background()))
	defer uow.Rollback()
	fn(uow)
	require.NoError(t, uow.Commit())
}

func newTestBet(id, userID, bankID string) *models.Bet {
	now := time.Now().UTC()
	return &models.Bet{
		ID:        id,
		UserID:    userID,
		BankID:    bankID,
		Event:     "Event " + id,
		Market:    "1X2",
		Selection: "1",
		Odds:      decimal.NewFromFloat(1.90),
		Stake:     decimal.NewFromInt(10),
		Status:    models.BetStatusPending,
		Profit:    decimal.Zero,
		PlacedAt:  now,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestStore_SeedsReferenceData(t *testing.T) {
	factory := NewUnitOfWorkFactory(New())
	ctx := context.Background()

	withUoW(t, factory, func(uow service.UnitOfWork) {
		sports, err := uow.SportRepository().List(ctx)
		require.NoError(t, err)
		assert.Len(t, sports, 3)

		leagues, err := uow.LeagueRepository().List(ctx, "")
		require.NoError(t, err)
		assert.Len(t, leagues, 4)

		football, err := uow.LeagueRepository().List(ctx, "football")
		require.NoError(t, err)
		assert.Len(t, football, 2)
		for _, league := range football {
			assert.Equal(t, "football", league.SportID)
		}
	})
}

func TestBetRepository_ListOrderingAndPagination(t *testing.T) {
	factory := NewUnitOfWorkFactory(New())
	ctx := context.Background()

	// Insert three bets with identical timestamps; insertion order must
	// still produce newest-first listing.
	withUoW(t, factory, func(uow service.UnitOfWork) {
		for i := 1; i <= 3; i++ {
			bet := newTestBet(fmt.Sprintf("bet-%d", i), "user-1", "bank-1")
			require.NoError(t, uow.BetRepository().Create(ctx, bet))
		}
	})

	withUoW(t, factory, func(uow service.UnitOfWork) {
		bets, err := uow.BetRepository().ListByUser(ctx, "user-1", models.BetListOptions{})
		require.NoError(t, err)
		require.Len(t, bets, 3)
		assert.Equal(t, "bet-3", bets[0].ID)
		assert.Equal(t, "bet-2", bets[1].ID)
		assert.Equal(t, "bet-1", bets[2].ID)

		// Offset applies before limit.
		page, err := uow.BetRepository().ListByUser(ctx, "user-1", models.BetListOptions{Limit: 1, Offset: 1})
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, "bet-2", page[0].ID)

		// Zero values disable pagination entirely.
		all, err := uow.BetRepository().ListByUser(ctx, "user-1", models.BetListOptions{Limit: 0, Offset: 0})
		require.NoError(t, err)
		assert.Len(t, all, 3)

		// Offset beyond the end yields an empty list.
		none, err := uow.BetRepository().ListByUser(ctx, "user-1", models.BetListOptions{Offset: 10})
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}

func TestBetRepository_ListFiltersByBank(t *testing.T) {
	factory := NewUnitOfWorkFactory(New())
	ctx := context.Background()

	withUoW(t, factory, func(uow service.UnitOfWork) {
		require.NoError(t, uow.BetRepository().Create(ctx, newTestBet("bet-a", "user-1", "bank-a")))
		require.NoError(t, uow.BetRepository().Create(ctx, newTestBet("bet-b", "user-1", "bank-b")))
	})

	withUoW(t, factory, func(uow service.UnitOfWork) {
		bets, err := uow.BetRepository().ListByUser(ctx, "user-1", models.BetListOptions{BankID: "bank-a"})
		require.NoError(t, err)
		require.Len(t, bets, 1)
		assert.Equal(t, "bet-a", bets[0].ID)
	})
}

func TestBetRepository_UpdateMissingReturnsNil(t *testing.T) {
	factory := NewUnitOfWorkFactory(New())
	ctx := context.Background()

	withUoW(t, factory, func(uow service.UnitOfWork) {
		event := "changed"
		bet, err := uow.BetRepository().Update(ctx, "no-such-bet", models.BetPatch{Event: &event})
		require.NoError(t, err)
		assert.Nil(t, bet)
	})
}

func TestBetRepository_ReturnsClones(t *testing.T) {
	factory := NewUnitOfWorkFactory(New())
	ctx := context.Background()

	original := newTestBet("bet-1", "user-1", "bank-1")
	original.Tags = []string{"value"}

	withUoW(t, factory, func(uow service.UnitOfWork) {
		require.NoError(t, uow.BetRepository().Create(ctx, original))
	})

	withUoW(t, factory, func(uow service.UnitOfWork) {
		bet, err := uow.BetRepository().GetByID(ctx, "bet-1")
		require.NoError(t, err)
		require.NotNil(t, bet)

		// Mutating the returned record must not leak into the store.
		bet.Event = "mutated"
		bet.Tags[0] = "mutated"
	})

	withUoW(t, factory, func(uow service.UnitOfWork) {
		bet, err := uow.BetRepository().GetByID(ctx, "bet-1")
		require.NoError(t, err)
		require.NotNil(t, bet)
		assert.Equal(t, "Event bet-1", bet.Event)
		assert.Equal(t, []string{"value"}, bet.Tags)
	})
}

func TestPickRepository_ListHidesSettledByDefault(t *testing.T) {
	factory := NewUnitOfWorkFactory(New())
	ctx := context.Background()

	now := time.Now().UTC()
	newPick := func(id string, status models.PickStatus) *models.Pick {
		return &models.Pick{
			ID:          id,
			TipsterID:   "tipster-1",
			Event:       "Event " + id,
			Market:      "Moneyline",
			Selection:   "Home",
			Odds:        decimal.NewFromFloat(2.00),
			Confidence:  3,
			StakeUnits:  1,
			Status:      status,
			EventDate:   now,
			PublishedAt: now,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}

	withUoW(t, factory, func(uow service.UnitOfWork) {
		require.NoError(t, uow.PickRepository().Create(ctx, newPick("pick-1", models.PickStatusPending)))
		require.NoError(t, uow.PickRepository().Create(ctx, newPick("pick-2", models.PickStatusWon)))
		require.NoError(t, uow.PickRepository().Create(ctx, newPick("pick-3", models.PickStatusPending)))
	})

	withUoW(t, factory, func(uow service.UnitOfWork) {
		pending, err := uow.PickRepository().ListByTipster(ctx, "tipster-1", models.PickListOptions{})
		require.NoError(t, err)
		require.Len(t, pending, 2)
		assert.Equal(t, "pick-3", pending[0].ID)
		assert.Equal(t, "pick-1", pending[1].ID)

		all, err := uow.PickRepository().ListByTipster(ctx, "tipster-1", models.PickListOptions{IncludeSettled: true})
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})
}

func TestTipsterRepository_ListOrdersByFollowers(t *testing.T) {
	factory := NewUnitOfWorkFactory(New())
	ctx := context.Background()

	now := time.Now().UTC()
	newTipster := func(id string, followers int, public bool) *models.Tipster {
		return &models.Tipster{
			ID:            id,
			UserID:        "user-" + id,
			DisplayName:   id,
			IsPublic:      public,
			FollowerCount: followers,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
	}

	withUoW(t, factory, func(uow service.UnitOfWork) {
		require.NoError(t, uow.TipsterRepository().Create(ctx, newTipster("low", 1, true)))
		require.NoError(t, uow.TipsterRepository().Create(ctx, newTipster("high", 10, true)))
		require.NoError(t, uow.TipsterRepository().Create(ctx, newTipster("hidden", 5, false)))
	})

	withUoW(t, factory, func(uow service.UnitOfWork) {
		all, err := uow.TipsterRepository().List(ctx, models.TipsterListOptions{})
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "high", all[0].ID)
		assert.Equal(t, "hidden", all[1].ID)
		assert.Equal(t, "low", all[2].ID)

		public := true
		visible, err := uow.TipsterRepository().List(ctx, models.TipsterListOptions{IsPublic: &public})
		require.NoError(t, err)
		require.Len(t, visible, 2)
		assert.Equal(t, "high", visible[0].ID)
		assert.Equal(t, "low", visible[1].ID)
	})
}

func TestTipsterRepository_AdjustFollowerCountClampsAtZero(t *testing.T) {
	factory := NewUnitOfWorkFactory(New())
	ctx := context.Background()

	now := time.Now().UTC()
	withUoW(t, factory, func(uow service.UnitOfWork) {
		require.NoError(t, uow.TipsterRepository().Create(ctx, &models.Tipster{
			ID:          "tipster-1",
			UserID:      "user-1",
			DisplayName: "Tipster",
			IsPublic:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		}))
	})

	withUoW(t, factory, func(uow service.UnitOfWork) {
		require.NoError(t, uow.TipsterRepository().AdjustFollowerCount(ctx, "tipster-1", -5))

		tipster, err := uow.TipsterRepository().GetByID(ctx, "tipster-1")
		require.NoError(t, err)
		require.NotNil(t, tipster)
		assert.Equal(t, 0, tipster.FollowerCount)

		// Missing ids are a no-op, not an error.
		require.NoError(t, uow.TipsterRepository().AdjustFollowerCount(ctx, "no-such-tipster", 1))
	})
}

func TestUnitOfWork_AccessorsPanicBeforeBegin(t *testing.T) {
	factory := NewUnitOfWorkFactory(New())
	uow := factory.Create()

	assert.Panics(t, func() {
		uow.UserRepository()
	})
}

func TestUnitOfWork_SerializesAccess(t *testing.T) {
	factory := NewUnitOfWorkFactory(New())
	ctx := context.Background()

	first := factory.Create()
	require.NoError(t, first.Begin(ctx))

	released := make(chan struct{})
	go func() {
		second := factory.Create()
		assert.NoError(t, second.Begin(ctx))
		defer second.Rollback()
		close(released)
	}()

	select {
	case <-released:
		t.Fatal("second unit of work began while the first held the store")
	case <-time.After(50 * time.Millisecond):
	}

	require.NoError(t, first.Commit())

	select {
	case <-released:
	case <-time.After(time.Second):
		t.Fatal("second unit of work never began after commit")
	}
}
