package repository

import (
	"context"
	"fmt"

	"tipfolio/database"
	"tipfolio/models"

	"github.com/jackc/pgx/v5"
)

// SportRepository implements the service.SportRepository interface on Postgres
type SportRepository struct {
	q Queryable
}

// NewSportRepository creates a new sport repository
func NewSportRepository(db *database.DB) *SportRepository {
	return &SportRepository{q: db.Pool}
}

func newSportRepositoryWithTx(tx Queryable) *SportRepository {
	return &SportRepository{q: tx}
}

func scanSport(row pgx.Row) (*models.Sport, error) {
	var sport models.Sport
	err := row.Scan(&sport.ID, &sport.Name, &sport.Slug)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sport, nil
}

func (r *SportRepository) GetByID(ctx context.Context, id string) (*models.Sport, error) {
	sport, err := scanSport(r.q.QueryRow(ctx, `SELECT id, name, slug FROM sports WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get sport %s: %w", id, err)
	}
	return sport, nil
}

func (r *SportRepository) List(ctx context.Context) ([]*models.Sport, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, slug FROM sports ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sports: %w", err)
	}
	defer rows.Close()

	var sports []*models.Sport
	for rows.Next() {
		sport, err := scanSport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sport: %w", err)
		}
		sports = append(sports, sport)
	}
	return sports, rows.Err()
}

// LeagueRepository implements the service.LeagueRepository interface on Postgres
type LeagueRepository struct {
	q Queryable
}

// NewLeagueRepository creates a new league repository
func NewLeagueRepository(db *database.DB) *LeagueRepository {
	return &LeagueRepository{q: db.Pool}
}

func newLeagueRepositoryWithTx(tx Queryable) *LeagueRepository {
	return &LeagueRepository{q: tx}
}

func scanLeague(row pgx.Row) (*models.League, error) {
	var league models.League
	err := row.Scan(&league.ID, &league.SportID, &league.Name, &league.Slug, &league.Country)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &league, nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, id string) (*models.League, error) {
	league, err := scanLeague(r.q.QueryRow(ctx, `SELECT id, sport_id, name, slug, country FROM leagues WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get league %s: %w", id, err)
	}
	return league, nil
}

// List returns all leagues, or only those of one sport when sportID is non-empty
func (r *LeagueRepository) List(ctx context.Context, sportID string) ([]*models.League, error) {
	query := `SELECT id, sport_id, name, slug, country FROM leagues`
	args := []any{}
	if sportID != "" {
		query += ` WHERE sport_id = $1`
		args = append(args, sportID)
	}
	query += ` ORDER BY name`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leagues: %w", err)
	}
	defer rows.Close()

	var leagues []*models.League
	for rows.Next() {
		league, err := scanLeague(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan league: %w", err)
		}
		leagues = append(leagues, league)
	}
	return leagues, rows.Err()
}
