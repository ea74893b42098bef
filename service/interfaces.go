package service

import (
	"context"

	"tipfolio/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// GetByID retrieves a user by id, returning nil when absent
	GetByID(ctx context.Context, id string) (*models.User, error)

	// GetByEmail retrieves a user by email, returning nil when absent
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// Create stores a new user record
	Create(ctx context.Context, user *models.User) error

	// Update applies a patch to an existing user, refreshing the updated
	// timestamp; returns nil when the id is absent
	Update(ctx context.Context, id string, patch models.UserPatch) (*models.User, error)
}

// BankRepository defines the interface for bank data access
type BankRepository interface {
	// GetByID retrieves a bank by id, returning nil when absent
	GetByID(ctx context.Context, id string) (*models.Bank, error)

	// ListByUser returns all banks owned by a user
	ListByUser(ctx context.Context, userID string) ([]*models.Bank, error)

	// Create stores a new bank record
	Create(ctx context.Context, bank *models.Bank) error

	// Update applies a patch to an existing bank; returns nil when absent
	Update(ctx context.Context, id string, patch models.BankPatch) (*models.Bank, error)

	// Delete removes a bank, reporting whether a record existed.
	// Dependent bets are not cascaded.
	Delete(ctx context.Context, id string) (bool, error)
}

// SportRepository provides read access to the seeded sports reference data
type SportRepository interface {
	GetByID(ctx context.Context, id string) (*models.Sport, error)
	List(ctx context.Context) ([]*models.Sport, error)
}

// LeagueRepository provides read access to the seeded leagues reference data
type LeagueRepository interface {
	GetByID(ctx context.Context, id string) (*models.League, error)

	// List returns all leagues, or only those of one sport when sportID is
	// non-empty. Reference data is assumed small; no pagination.
	List(ctx context.Context, sportID string) ([]*models.League, error)
}

// BetRepository defines the interface for bet data access
type BetRepository interface {
	// GetByID retrieves a bet by id, returning nil when absent
	GetByID(ctx context.Context, id string) (*models.Bet, error)

	// ListByUser returns a user's bets ordered by creation time descending,
	// optionally filtered by bank and paginated (offset before limit)
	ListByUser(ctx context.Context, userID string, opts models.BetListOptions) ([]*models.Bet, error)

	// Create stores a new bet record
	Create(ctx context.Context, bet *models.Bet) error

	// Update applies a patch to an existing bet; returns nil when absent
	Update(ctx context.Context, id string, patch models.BetPatch) (*models.Bet, error)

	// Delete removes a bet, reporting whether a record existed
	Delete(ctx context.Context, id string) (bool, error)
}

// TipsterRepository defines the interface for tipster data access
type TipsterRepository interface {
	// GetByID retrieves a tipster by id, returning nil when absent
	GetByID(ctx context.Context, id string) (*models.Tipster, error)

	// GetByUserID retrieves the tipster profile owned by a user, nil when none
	GetByUserID(ctx context.Context, userID string) (*models.Tipster, error)

	// List returns tipsters ordered by follower count descending, optionally
	// filtered by visibility and paginated
	List(ctx context.Context, opts models.TipsterListOptions) ([]*models.Tipster, error)

	// Create stores a new tipster record
	Create(ctx context.Context, tipster *models.Tipster) error

	// Update applies a patch to an existing tipster; returns nil when absent
	Update(ctx context.Context, id string, patch models.TipsterPatch) (*models.Tipster, error)

	// AdjustFollowerCount adds delta to the follower count, clamping the
	// result at zero
	AdjustFollowerCount(ctx context.Context, id string, delta int) error
}

// PickRepository defines the interface for pick data access
type PickRepository interface {
	// GetByID retrieves a pick by id, returning nil when absent
	GetByID(ctx context.Context, id string) (*models.Pick, error)

	// ListByTipster returns a tipster's picks ordered by publish time
	// descending. Settled picks are excluded unless opts.IncludeSettled.
	ListByTipster(ctx context.Context, tipsterID string, opts models.PickListOptions) ([]*models.Pick, error)

	// Create stores a new pick record
	Create(ctx context.Context, pick *models.Pick) error

	// Update applies a patch to an existing pick; returns nil when absent
	Update(ctx context.Context, id string, patch models.PickPatch) (*models.Pick, error)

	// Delete removes a pick, reporting whether a record existed
	Delete(ctx context.Context, id string) (bool, error)
}

// FollowRepository defines the interface for follow data access
type FollowRepository interface {
	// GetByUserAndTipster retrieves the follow for a (user, tipster) pair,
	// returning nil when absent
	GetByUserAndTipster(ctx context.Context, userID, tipsterID string) (*models.Follow, error)

	// ListByUser returns all follows created by a user
	ListByUser(ctx context.Context, userID string) ([]*models.Follow, error)

	// ListByTipster returns all follows targeting a tipster
	ListByTipster(ctx context.Context, tipsterID string) ([]*models.Follow, error)

	// Create stores a new follow record
	Create(ctx context.Context, follow *models.Follow) error

	// Delete removes a follow by id, reporting whether a record existed
	Delete(ctx context.Context, id string) (bool, error)
}

// UnitOfWork represents one atomic data-access scope. Cross-entity mutations
// (follow + counter) must happen inside a single unit of work so no partial
// application is observable.
type UnitOfWork interface {
	// Begin starts the unit of work
	Begin(ctx context.Context) error

	// Commit makes all mutations performed in this unit visible
	Commit() error

	// Rollback abandons the unit of work; safe to defer after Begin
	Rollback() error

	UserRepository() UserRepository
	BankRepository() BankRepository
	SportRepository() SportRepository
	LeagueRepository() LeagueRepository
	BetRepository() BetRepository
	TipsterRepository() TipsterRepository
	PickRepository() PickRepository
	FollowRepository() FollowRepository
}

// UnitOfWorkFactory creates units of work
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}
