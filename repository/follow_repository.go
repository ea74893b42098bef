package repository

import (
	"context"
	"fmt"

	"tipfolio/database"
	"tipfolio/models"

	"github.com/jackc/pgx/v5"
)

// FollowRepository implements the service.FollowRepository interface on Postgres
type FollowRepository struct {
	q Queryable
}

// NewFollowRepository creates a new follow repository
func NewFollowRepository(db *database.DB) *FollowRepository {
	return &FollowRepository{q: db.Pool}
}

// newFollowRepositoryWithTx creates a new follow repository bound to a transaction
func newFollowRepositoryWithTx(tx Queryable) *FollowRepository {
	return &FollowRepository{q: tx}
}

const followColumns = `id, user_id, tipster_id, subscription_type, subscribed_at, expires_at`

func scanFollow(row pgx.Row) (*models.Follow, error) {
	var follow models.Follow
	err := row.Scan(
		&follow.ID,
		&follow.UserID,
		&follow.TipsterID,
		&follow.SubscriptionType,
		&follow.SubscribedAt,
		&follow.ExpiresAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &follow, nil
}

// GetByUserAndTipster retrieves the follow for a (user, tipster) pair,
// returning nil when absent
func (r *FollowRepository) GetByUserAndTipster(ctx context.Context, userID, tipsterID string) (*models.Follow, error) {
	follow, err := scanFollow(r.q.QueryRow(ctx,
		`SELECT `+followColumns+` FROM follows WHERE user_id = $1 AND tipster_id = $2`,
		userID, tipsterID,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to get follow for user %s tipster %s: %w", userID, tipsterID, err)
	}
	return follow, nil
}

// ListByUser returns all follows created by a user
func (r *FollowRepository) ListByUser(ctx context.Context, userID string) ([]*models.Follow, error) {
	return r.list(ctx, `SELECT `+followColumns+` FROM follows WHERE user_id = $1 ORDER BY subscribed_at, id`, userID)
}

// ListByTipster returns all follows targeting a tipster
func (r *FollowRepository) ListByTipster(ctx context.Context, tipsterID string) ([]*models.Follow, error) {
	return r.list(ctx, `SELECT `+followColumns+` FROM follows WHERE tipster_id = $1 ORDER BY subscribed_at, id`, tipsterID)
}

func (r *FollowRepository) list(ctx context.Context, query string, arg any) ([]*models.Follow, error) {
	rows, err := r.q.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list follows: %w", err)
	}
	defer rows.Close()

	var follows []*models.Follow
	for rows.Next() {
		follow, err := scanFollow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan follow: %w", err)
		}
		follows = append(follows, follow)
	}
	return follows, rows.Err()
}

// Create stores a new follow record
func (r *FollowRepository) Create(ctx context.Context, follow *models.Follow) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO follows (id, user_id, tipster_id, subscription_type, subscribed_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		follow.ID, follow.UserID, follow.TipsterID,
		follow.SubscriptionType, follow.SubscribedAt, follow.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create follow %s: %w", follow.ID, err)
	}
	return nil
}

// Delete removes a follow by id, reporting whether a record existed
func (r *FollowRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM follows WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete follow %s: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}
