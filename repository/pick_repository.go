package repository

import (
	"context"
	"fmt"

	"tipfolio/database"
	"tipfolio/models"

	"github.com/jackc/pgx/v5"
)

// PickRepository implements the service.PickRepository interface on Postgres
type PickRepository struct {
	q Queryable
}

// NewPickRepository creates a new pick repository
func NewPickRepository(db *database.DB) *PickRepository {
	return &PickRepository{q: db.Pool}
}

// newPickRepositoryWithTx creates a new pick repository bound to a transaction
func newPickRepositoryWithTx(tx Queryable) *PickRepository {
	return &PickRepository{q: tx}
}

const pickColumns = `id, tipster_id, event, market, selection, odds,
	sport_id, league_id, bookmaker, analysis, confidence, stake_units,
	status, result, settled_at, is_premium, event_date, published_at, created_at, updated_at`

func scanPick(row pgx.Row) (*models.Pick, error) {
	var pick models.Pick
	err := row.Scan(
		&pick.ID,
		&pick.TipsterID,
		&pick.Event,
		&pick.Market,
		&pick.Selection,
		&pick.Odds,
		&pick.SportID,
		&pick.LeagueID,
		&pick.Bookmaker,
		&pick.Analysis,
		&pick.Confidence,
		&pick.StakeUnits,
		&pick.Status,
		&pick.Result,
		&pick.SettledAt,
		&pick.IsPremium,
		&pick.EventDate,
		&pick.PublishedAt,
		&pick.CreatedAt,
		&pick.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pick, nil
}

// GetByID retrieves a pick by id, returning nil when absent
func (r *PickRepository) GetByID(ctx context.Context, id string) (*models.Pick, error) {
	pick, err := scanPick(r.q.QueryRow(ctx, `SELECT `+pickColumns+` FROM picks WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get pick %s: %w", id, err)
	}
	return pick, nil
}

// ListByTipster returns a tipster's picks newest first. Settled picks are
// excluded unless opts.IncludeSettled.
func (r *PickRepository) ListByTipster(ctx context.Context, tipsterID string, opts models.PickListOptions) ([]*models.Pick, error) {
	query := `SELECT ` + pickColumns + ` FROM picks WHERE tipster_id = $1`
	args := []any{tipsterID}
	if !opts.IncludeSettled {
		query += ` AND status = 'pending'`
	}
	query += ` ORDER BY published_at DESC, id DESC`
	if opts.Offset > 0 {
		args = append(args, opts.Offset)
		query += fmt.Sprintf(` OFFSET $%d`, len(args))
	}
	if opts.Limit > 0 {
		args = append(args, opts.Limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list picks for tipster %s: %w", tipsterID, err)
	}
	defer rows.Close()

	var picks []*models.Pick
	for rows.Next() {
		pick, err := scanPick(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pick: %w", err)
		}
		picks = append(picks, pick)
	}
	return picks, rows.Err()
}

// Create stores a new pick record
func (r *PickRepository) Create(ctx context.Context, pick *models.Pick) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO picks (id, tipster_id, event, market, selection, odds,
			sport_id, league_id, bookmaker, analysis, confidence, stake_units,
			status, result, settled_at, is_premium, event_date, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`,
		pick.ID, pick.TipsterID, pick.Event, pick.Market, pick.Selection, pick.Odds,
		pick.SportID, pick.LeagueID, pick.Bookmaker, pick.Analysis, pick.Confidence, pick.StakeUnits,
		pick.Status, pick.Result, pick.SettledAt, pick.IsPremium, pick.EventDate,
		pick.PublishedAt, pick.CreatedAt, pick.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create pick %s: %w", pick.ID, err)
	}
	return nil
}

// Update applies a patch to an existing pick; returns nil when absent
func (r *PickRepository) Update(ctx context.Context, id string, patch models.PickPatch) (*models.Pick, error) {
	pick, err := scanPick(r.q.QueryRow(ctx, `SELECT `+pickColumns+` FROM picks WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, fmt.Errorf("failed to lock pick %s: %w", id, err)
	}
	if pick == nil {
		return nil, nil
	}

	patch.Apply(pick)

	err = r.q.QueryRow(ctx, `
		UPDATE picks
		SET event = $1, market = $2, selection = $3, odds = $4, sport_id = $5,
			league_id = $6, bookmaker = $7, analysis = $8, confidence = $9,
			stake_units = $10, is_premium = $11, event_date = $12, updated_at = NOW()
		WHERE id = $13
		RETURNING updated_at`,
		pick.Event, pick.Market, pick.Selection, pick.Odds, pick.SportID,
		pick.LeagueID, pick.Bookmaker, pick.Analysis, pick.Confidence,
		pick.StakeUnits, pick.IsPremium, pick.EventDate, id,
	).Scan(&pick.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to update pick %s: %w", id, err)
	}
	return pick, nil
}

// Delete removes a pick, reporting whether a record existed
func (r *PickRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM picks WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete pick %s: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}
