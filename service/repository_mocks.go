package service

import (
	"context"

	"tipfolio/models"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockBankRepository is a mock implementation of BankRepository
type MockBankRepository struct {
	mock.Mock
}

func (m *MockBankRepository) GetByID(ctx context.Context, id string) (*models.Bank, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bank), args.Error(1)
}

func (m *MockBankRepository) ListByUser(ctx context.Context, userID string) ([]*models.Bank, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Bank), args.Error(1)
}

func (m *MockBankRepository) Create(ctx context.Context, bank *models.Bank) error {
	args := m.Called(ctx, bank)
	return args.Error(0)
}

func (m *MockBankRepository) Update(ctx context.Context, id string, patch models.BankPatch) (*models.Bank, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bank), args.Error(1)
}

func (m *MockBankRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockSportRepository is a mock implementation of SportRepository
type MockSportRepository struct {
	mock.Mock
}

func (m *MockSportRepository) GetByID(ctx context.Context, id string) (*models.Sport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Sport), args.Error(1)
}

func (m *MockSportRepository) List(ctx context.Context) ([]*models.Sport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Sport), args.Error(1)
}

// MockLeagueRepository is a mock implementation of LeagueRepository
type MockLeagueRepository struct {
	mock.Mock
}

func (m *MockLeagueRepository) GetByID(ctx context.Context, id string) (*models.League, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.League), args.Error(1)
}

func (m *MockLeagueRepository) List(ctx context.Context, sportID string) ([]*models.League, error) {
	args := m.Called(ctx, sportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.League), args.Error(1)
}

// MockBetRepository is a mock implementation of BetRepository
type MockBetRepository struct {
	mock.Mock
}

func (m *MockBetRepository) GetByID(ctx context.Context, id string) (*models.Bet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bet), args.Error(1)
}

func (m *MockBetRepository) ListByUser(ctx context.Context, userID string, opts models.BetListOptions) ([]*models.Bet, error) {
	args := m.Called(ctx, userID, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Bet), args.Error(1)
}

func (m *MockBetRepository) Create(ctx context.Context, bet *models.Bet) error {
	args := m.Called(ctx, bet)
	return args.Error(0)
}

func (m *MockBetRepository) Update(ctx context.Context, id string, patch models.BetPatch) (*models.Bet, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bet), args.Error(1)
}

func (m *MockBetRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockTipsterRepository is a mock implementation of TipsterRepository
type MockTipsterRepository struct {
	mock.Mock
}

func (m *MockTipsterRepository) GetByID(ctx context.Context, id string) (*models.Tipster, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tipster), args.Error(1)
}

func (m *MockTipsterRepository) GetByUserID(ctx context.Context, userID string) (*models.Tipster, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tipster), args.Error(1)
}

func (m *MockTipsterRepository) List(ctx context.Context, opts models.TipsterListOptions) ([]*models.Tipster, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Tipster), args.Error(1)
}

func (m *MockTipsterRepository) Create(ctx context.Context, tipster *models.Tipster) error {
	args := m.Called(ctx, tipster)
	return args.Error(0)
}

func (m *MockTipsterRepository) Update(ctx context.Context, id string, patch models.TipsterPatch) (*models.Tipster, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tipster), args.Error(1)
}

func (m *MockTipsterRepository) AdjustFollowerCount(ctx context.Context, id string, delta int) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

// MockPickRepository is a mock implementation of PickRepository
type MockPickRepository struct {
	mock.Mock
}

func (m *MockPickRepository) GetByID(ctx context.Context, id string) (*models.Pick, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Pick), args.Error(1)
}

func (m *MockPickRepository) ListByTipster(ctx context.Context, tipsterID string, opts models.PickListOptions) ([]*models.Pick, error) {
	args := m.Called(ctx, tipsterID, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Pick), args.Error(1)
}

func (m *MockPickRepository) Create(ctx context.Context, pick *models.Pick) error {
	args := m.Called(ctx, pick)
	return args.Error(0)
}

func (m *MockPickRepository) Update(ctx context.Context, id string, patch models.PickPatch) (*models.Pick, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Pick), args.Error(1)
}

func (m *MockPickRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockFollowRepository is a mock implementation of FollowRepository
type MockFollowRepository struct {
	mock.Mock
}

func (m *MockFollowRepository) GetByUserAndTipster(ctx context.Context, userID, tipsterID string) (*models.Follow, error) {
	args := m.Called(ctx, userID, tipsterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Follow), args.Error(1)
}

func (m *MockFollowRepository) ListByUser(ctx context.Context, userID string) ([]*models.Follow, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Follow), args.Error(1)
}

func (m *MockFollowRepository) ListByTipster(ctx context.Context, tipsterID string) ([]*models.Follow, error) {
	args := m.Called(ctx, tipsterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Follow), args.Error(1)
}

func (m *MockFollowRepository) Create(ctx context.Context, follow *models.Follow) error {
	args := m.Called(ctx, follow)
	return args.Error(0)
}

func (m *MockFollowRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockUnitOfWork is a mock implementation of UnitOfWork. Repositories are
// plain fields so tests can install whichever mocks they need.
type MockUnitOfWork struct {
	mock.Mock

	userRepo    UserRepository
	bankRepo    BankRepository
	sportRepo   SportRepository
	leagueRepo  LeagueRepository
	betRepo     BetRepository
	tipsterRepo TipsterRepository
	pickRepo    PickRepository
	followRepo  FollowRepository
}

// SetRepositories installs the mock repositories this unit of work hands out
func (m *MockUnitOfWork) SetRepositories(
	userRepo UserRepository,
	bankRepo BankRepository,
	betRepo BetRepository,
	tipsterRepo TipsterRepository,
	pickRepo PickRepository,
	followRepo FollowRepository,
) {
	m.userRepo = userRepo
	m.bankRepo = bankRepo
	m.betRepo = betRepo
	m.tipsterRepo = tipsterRepo
	m.pickRepo = pickRepo
	m.followRepo = followRepo
}

// SetReferenceRepositories installs the reference data repositories
func (m *MockUnitOfWork) SetReferenceRepositories(sportRepo SportRepository, leagueRepo LeagueRepository) {
	m.sportRepo = sportRepo
	m.leagueRepo = leagueRepo
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) UserRepository() UserRepository       { return m.userRepo }
func (m *MockUnitOfWork) BankRepository() BankRepository       { return m.bankRepo }
func (m *MockUnitOfWork) SportRepository() SportRepository     { return m.sportRepo }
func (m *MockUnitOfWork) LeagueRepository() LeagueRepository   { return m.leagueRepo }
func (m *MockUnitOfWork) BetRepository() BetRepository         { return m.betRepo }
func (m *MockUnitOfWork) TipsterRepository() TipsterRepository { return m.tipsterRepo }
func (m *MockUnitOfWork) PickRepository() PickRepository       { return m.pickRepo }
func (m *MockUnitOfWork) FollowRepository() FollowRepository   { return m.followRepo }

// MockUnitOfWorkFactory is a mock implementation of UnitOfWorkFactory
type MockUnitOfWorkFactory struct {
	mock.Mock
}

func (f *MockUnitOfWorkFactory) Create() UnitOfWork {
	args := f.Called()
	return args.Get(0).(UnitOfWork)
}
