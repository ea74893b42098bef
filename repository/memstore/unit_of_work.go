package memstore

import (
	"context"
	"fmt"

	"tipfolio/service"
)

// unitOfWork serializes access to the store: Begin takes the store mutex and
// Commit/Rollback release it. Mutations apply in place, so a Rollback after a
// write does not undo it; services validate before mutating, which keeps that
// window empty in practice.
type unitOfWork struct {
	store *Store
	held  bool

	userRepo    *UserRepository
	bankRepo    *BankRepository
	sportRepo   *SportRepository
	leagueRepo  *LeagueRepository
	betRepo     *BetRepository
	tipsterRepo *TipsterRepository
	pickRepo    *PickRepository
	followRepo  *FollowRepository
}

type unitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a unit-of-work factory over an in-memory store
func NewUnitOfWorkFactory(store *Store) service.UnitOfWorkFactory {
	return &unitOfWorkFactory{store: store}
}

func (f *unitOfWorkFactory) Create() service.UnitOfWork {
	return &unitOfWork{store: f.store}
}

// Begin acquires the store lock
func (u *unitOfWork) Begin(ctx context.Context) error {
	if u.held {
		return fmt.Errorf("unit of work already started")
	}
	u.store.mu.Lock()
	u.held = true

	u.userRepo = &UserRepository{store: u.store}
	u.bankRepo = &BankRepository{store: u.store}
	u.sportRepo = &SportRepository{store: u.store}
	u.leagueRepo = &LeagueRepository{store: u.store}
	u.betRepo = &BetRepository{store: u.store}
	u.tipsterRepo = &TipsterRepository{store: u.store}
	u.pickRepo = &PickRepository{store: u.store}
	u.followRepo = &FollowRepository{store: u.store}

	return nil
}

// Commit releases the store lock, making the mutations visible to the next
// unit of work
func (u *unitOfWork) Commit() error {
	if !u.held {
		return fmt.Errorf("no unit of work to commit")
	}
	u.held = false
	u.store.mu.Unlock()
	return nil
}

// Rollback releases the store lock if still held; safe to defer after Begin
func (u *unitOfWork) Rollback() error {
	if !u.held {
		return nil
	}
	u.held = false
	u.store.mu.Unlock()
	return nil
}

func (u *unitOfWork) UserRepository() service.UserRepository {
	if u.userRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.userRepo
}

func (u *unitOfWork) BankRepository() service.BankRepository {
	if u.bankRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.bankRepo
}

func (u *unitOfWork) SportRepository() service.SportRepository {
	if u.sportRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.sportRepo
}

func (u *unitOfWork) LeagueRepository() service.LeagueRepository {
	if u.leagueRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.leagueRepo
}

func (u *unitOfWork) BetRepository() service.BetRepository {
	if u.betRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.betRepo
}

func (u *unitOfWork) TipsterRepository() service.TipsterRepository {
	if u.tipsterRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.tipsterRepo
}

func (u *unitOfWork) PickRepository() service.PickRepository {
	if u.pickRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.pickRepo
}

func (u *unitOfWork) FollowRepository() service.FollowRepository {
	if u.followRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.followRepo
}
