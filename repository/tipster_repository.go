package repository

import (
	"context"
	"fmt"

	"tipfolio/database"
	"tipfolio/models"

	"github.com/jackc/pgx/v5"
)

// TipsterRepository implements the service.TipsterRepository interface on Postgres
type TipsterRepository struct {
	q Queryable
}

// NewTipsterRepository creates a new tipster repository
func NewTipsterRepository(db *database.DB) *TipsterRepository {
	return &TipsterRepository{q: db.Pool}
}

// newTipsterRepositoryWithTx creates a new tipster repository bound to a transaction
func newTipsterRepositoryWithTx(tx Queryable) *TipsterRepository {
	return &TipsterRepository{q: tx}
}

const tipsterColumns = `id, user_id, display_name, bio, avatar_url, is_verified,
	subscription_price, is_public, total_picks, win_rate, avg_odds, yield_value,
	follower_count, created_at, updated_at`

func scanTipster(row pgx.Row) (*models.Tipster, error) {
	var tipster models.Tipster
	err := row.Scan(
		&tipster.ID,
		&tipster.UserID,
		&tipster.DisplayName,
		&tipster.Bio,
		&tipster.AvatarURL,
		&tipster.IsVerified,
		&tipster.SubscriptionPrice,
		&tipster.IsPublic,
		&tipster.TotalPicks,
		&tipster.WinRate,
		&tipster.AvgOdds,
		&tipster.Yield,
		&tipster.FollowerCount,
		&tipster.CreatedAt,
		&tipster.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tipster, nil
}

// GetByID retrieves a tipster by id, returning nil when absent
func (r *TipsterRepository) GetByID(ctx context.Context, id string) (*models.Tipster, error) {
	tipster, err := scanTipster(r.q.QueryRow(ctx, `SELECT `+tipsterColumns+` FROM tipsters WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get tipster %s: %w", id, err)
	}
	return tipster, nil
}

// GetByUserID retrieves the tipster profile owned by a user, nil when none
func (r *TipsterRepository) GetByUserID(ctx context.Context, userID string) (*models.Tipster, error) {
	tipster, err := scanTipster(r.q.QueryRow(ctx, `SELECT `+tipsterColumns+` FROM tipsters WHERE user_id = $1`, userID))
	if err != nil {
		return nil, fmt.Errorf("failed to get tipster for user %s: %w", userID, err)
	}
	return tipster, nil
}

// List returns tipsters ordered by follower count descending, optionally
// filtered by visibility and paginated
func (r *TipsterRepository) List(ctx context.Context, opts models.TipsterListOptions) ([]*models.Tipster, error) {
	query := `SELECT ` + tipsterColumns + ` FROM tipsters`
	args := []any{}
	if opts.IsPublic != nil {
		args = append(args, *opts.IsPublic)
		query += fmt.Sprintf(` WHERE is_public = $%d`, len(args))
	}
	query += ` ORDER BY follower_count DESC, id`
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
		return nil, fmt.Errorf("failed to list tipsters: %w", err)
	}
	defer rows.Close()

	var tipsters []*models.Tipster
	for rows.Next() {
		tipster, err := scanTipster(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tipster: %w", err)
		}
		tipsters = append(tipsters, tipster)
	}
	return tipsters, rows.Err()
}

// Create stores a new tipster record
func (r *TipsterRepository) Create(ctx context.Context, tipster *models.Tipster) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO tipsters (id, user_id, display_name, bio, avatar_url, is_verified,
			subscription_price, is_public, total_picks, win_rate, avg_odds, yield_value,
			follower_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		tipster.ID, tipster.UserID, tipster.DisplayName, tipster.Bio, tipster.AvatarURL,
		tipster.IsVerified, tipster.SubscriptionPrice, tipster.IsPublic,
		tipster.TotalPicks, tipster.WinRate, tipster.AvgOdds, tipster.Yield,
		tipster.FollowerCount, tipster.CreatedAt, tipster.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create tipster %s: %w", tipster.ID, err)
	}
	return nil
}

// Update applies a patch to an existing tipster; returns nil when absent
func (r *TipsterRepository) Update(ctx context.Context, id string, patch models.TipsterPatch) (*models.Tipster, error) {
	tipster, err := scanTipster(r.q.QueryRow(ctx, `SELECT `+tipsterColumns+` FROM tipsters WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, fmt.Errorf("failed to lock tipster %s: %w", id, err)
	}
	if tipster == nil {
		return nil, nil
	}

	patch.Apply(tipster)

	err = r.q.QueryRow(ctx, `
		UPDATE tipsters
		SET display_name = $1, bio = $2, avatar_url = $3, subscription_price = $4,
			is_public = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at`,
		tipster.DisplayName, tipster.Bio, tipster.AvatarURL, tipster.SubscriptionPrice,
		tipster.IsPublic, id,
	).Scan(&tipster.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to update tipster %s: %w", id, err)
	}
	return tipster, nil
}

// AdjustFollowerCount adds delta to the follower count, clamping the result
// at zero. A missing id is a no-op.
func (r *TipsterRepository) AdjustFollowerCount(ctx context.Context, id string, delta int) error {
	_, err := r.q.Exec(ctx, `
		UPDATE tipsters
		SET follower_count = GREATEST(0, follower_count + $1), updated_at = NOW()
		WHERE id = $2`,
		delta, id,
	)
	if err != nil {
		return fmt.Errorf("failed to adjust follower count for tipster %s: %w", id, err)
	}
	return nil
}
