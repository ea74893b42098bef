package repository

import (
	"context"
	"fmt"

	"tipfolio/database"
	"tipfolio/models"

	"github.com/jackc/pgx/v5"
)

// BetRepository implements the service.BetRepository interface on Postgres
type BetRepository struct {
	q Queryable
}

// NewBetRepository creates a new bet repository
func NewBetRepository(db *database.DB) *BetRepository {
	return &BetRepository{q: db.Pool}
}

// newBetRepositoryWithTx creates a new bet repository bound to a transaction
func newBetRepositoryWithTx(tx Queryable) *BetRepository {
	return &BetRepository{q: tx}
}

const betColumns = `id, user_id, bank_id, event, market, selection, odds, stake,
	sport_id, league_id, bookmaker, status, profit, settled_at,
	notes, confidence, tags, event_date, placed_at, created_at, updated_at`

func scanBet(row pgx.Row) (*models.Bet, error) {
	var bet models.Bet
	err := row.Scan(
		&bet.ID,
		&bet.UserID,
		&bet.BankID,
		&bet.Event,
		&bet.Market,
		&bet.Selection,
		&bet.Odds,
		&bet.Stake,
		&bet.SportID,
		&bet.LeagueID,
		&bet.Bookmaker,
		&bet.Status,
		&bet.Profit,
		&bet.SettledAt,
		&bet.Notes,
		&bet.Confidence,
		&bet.Tags,
		&bet.EventDate,
		&bet.PlacedAt,
		&bet.CreatedAt,
		&bet.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bet, nil
}

// GetByID retrieves a bet by id, returning nil when absent
func (r *BetRepository) GetByID(ctx context.Context, id string) (*models.Bet, error) {
	bet, err := scanBet(r.q.QueryRow(ctx, `SELECT `+betColumns+` FROM bets WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get bet %s: %w", id, err)
	}
	return bet, nil
}

// ListByUser returns a user's bets newest first, optionally filtered by bank
// and paginated. Zero limit and offset mean unbounded.
func (r *BetRepository) ListByUser(ctx context.Context, userID string, opts models.BetListOptions) ([]*models.Bet, error) {
	query := `SELECT ` + betColumns + ` FROM bets WHERE user_id = $1`
	args := []any{userID}
	if opts.BankID != "" {
		args = append(args, opts.BankID)
		query += fmt.Sprintf(` AND bank_id = $%d`, len(args))
	}
	query += ` ORDER BY created_at DESC, id DESC`
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
		return nil, fmt.Errorf("failed to list bets for user %s: %w", userID, err)
	}
	defer rows.Close()

	var bets []*models.Bet
	for rows.Next() {
		bet, err := scanBet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bet: %w", err)
		}
		bets = append(bets, bet)
	}
	return bets, rows.Err()
}

// Create stores a new bet record
func (r *BetRepository) Create(ctx context.Context, bet *models.Bet) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO bets (id, user_id, bank_id, event, market, selection, odds, stake,
			sport_id, league_id, bookmaker, status, profit, settled_at,
			notes, confidence, tags, event_date, placed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`,
		bet.ID, bet.UserID, bet.BankID, bet.Event, bet.Market, bet.Selection, bet.Odds, bet.Stake,
		bet.SportID, bet.LeagueID, bet.Bookmaker, bet.Status, bet.Profit, bet.SettledAt,
		bet.Notes, bet.Confidence, bet.Tags, bet.EventDate, bet.PlacedAt, bet.CreatedAt, bet.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create bet %s: %w", bet.ID, err)
	}
	return nil
}

// Update applies a patch to an existing bet; returns nil when absent
func (r *BetRepository) Update(ctx context.Context, id string, patch models.BetPatch) (*models.Bet, error) {
	bet, err := scanBet(r.q.QueryRow(ctx, `SELECT `+betColumns+` FROM bets WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, fmt.Errorf("failed to lock bet %s: %w", id, err)
	}
	if bet == nil {
		return nil, nil
	}

	patch.Apply(bet)

	err = r.q.QueryRow(ctx, `
		UPDATE bets
		SET bank_id = $1, event = $2, market = $3, selection = $4, odds = $5, stake = $6,
			sport_id = $7, league_id = $8, bookmaker = $9, notes = $10, confidence = $11,
			tags = $12, event_date = $13, updated_at = NOW()
		WHERE id = $14
		RETURNING updated_at`,
		bet.BankID, bet.Event, bet.Market, bet.Selection, bet.Odds, bet.Stake,
		bet.SportID, bet.LeagueID, bet.Bookmaker, bet.Notes, bet.Confidence,
		bet.Tags, bet.EventDate, id,
	).Scan(&bet.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to update bet %s: %w", id, err)
	}
	return bet, nil
}

// Delete removes a bet, reporting whether a record existed
func (r *BetRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM bets WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete bet %s: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}
