package repository

import (
	"context"
	"fmt"

	"tipfolio/database"
	"tipfolio/service"

	"github.com/jackc/pgx/v5"
)

// unitOfWork implements the service.UnitOfWork interface on a single
// Postgres transaction
type unitOfWork struct {
	db  *database.DB
	tx  pgx.Tx
	ctx context.Context

	userRepo    service.UserRepository
	bankRepo    service.BankRepository
	sportRepo   service.SportRepository
	leagueRepo  service.LeagueRepository
	betRepo     service.BetRepository
	tipsterRepo service.TipsterRepository
	pickRepo    service.PickRepository
	followRepo  service.FollowRepository
}

type unitOfWorkFactory struct {
	db *database.DB
}

// NewUnitOfWorkFactory creates a new UnitOfWork factory
func NewUnitOfWorkFactory(db *database.DB) service.UnitOfWorkFactory {
	return &unitOfWorkFactory{db: db}
}

func (f *unitOfWorkFactory) Create() service.UnitOfWork {
	return &unitOfWork{db: f.db}
}

// Begin starts a new transaction
func (u *unitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	u.tx = tx
	u.ctx = ctx

	// Create repositories with the transaction
	u.userRepo = newUserRepositoryWithTx(tx)
	u.bankRepo = newBankRepositoryWithTx(tx)
	u.sportRepo = newSportRepositoryWithTx(tx)
	u.leagueRepo = newLeagueRepositoryWithTx(tx)
	u.betRepo = newBetRepositoryWithTx(tx)
	u.tipsterRepo = newTipsterRepositoryWithTx(tx)
	u.pickRepo = newPickRepositoryWithTx(tx)
	u.followRepo = newFollowRepositoryWithTx(tx)

	return nil
}

// Commit commits the transaction
func (u *unitOfWork) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}

	err := u.tx.Commit(u.ctx)
	if err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	u.tx = nil
	return nil
}

// Rollback rolls back the transaction
func (u *unitOfWork) Rollback() error {
	if u.tx == nil {
		return nil // Nothing to rollback
	}

	err := u.tx.Rollback(u.ctx)
	if err != nil && err != pgx.ErrTxClosed {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	u.tx = nil
	return nil
}

// UserRepository returns the user repository for this unit of work
func (u *unitOfWork) UserRepository() service.UserRepository {
	if u.userRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.userRepo
}

// BankRepository returns the bank repository for this unit of work
func (u *unitOfWork) BankRepository() service.BankRepository {
	if u.bankRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.bankRepo
}

// SportRepository returns the sport repository for this unit of work
func (u *unitOfWork) SportRepository() service.SportRepository {
	if u.sportRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.sportRepo
}

// LeagueRepository returns the league repository for this unit of work
func (u *unitOfWork) LeagueRepository() service.LeagueRepository {
	if u.leagueRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.leagueRepo
}

// BetRepository returns the bet repository for this unit of work
func (u *unitOfWork) BetRepository() service.BetRepository {
	if u.betRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.betRepo
}

// TipsterRepository returns the tipster repository for this unit of work
func (u *unitOfWork) TipsterRepository() service.TipsterRepository {
	if u.tipsterRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.tipsterRepo
}

// PickRepository returns the pick repository for this unit of work
func (u *unitOfWork) PickRepository() service.PickRepository {
	if u.pickRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.pickRepo
}

// FollowRepository returns the follow repository for this unit of work
func (u *unitOfWork) FollowRepository() service.FollowRepository {
	if u.followRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.followRepo
}
