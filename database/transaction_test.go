package database_test

import (
	"context"
	"errors"
	"testing"

	"tipfolio/repository/testutil"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTransaction(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	user := testutil.CreateTestUser("uid-1", "one@example.com")
	insert := func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO users (id, email, display_name, photo_url, is_premium, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			user.ID, user.Email, user.DisplayName, user.PhotoURL,
			user.IsPremium, user.CreatedAt, user.UpdatedAt,
		)
		return err
	}

	count := func(t *testing.T) int {
		t.Helper()
		var n int
		err := testDB.DB.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
		require.NoError(t, err)
		return n
	}

	t.Run("error rolls the transaction back", func(t *testing.T) {
		boom := errors.New("boom")
		err := testDB.DB.WithTransaction(ctx, func(tx pgx.Tx) error {
			if err := insert(tx); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)
		assert.Equal(t, 0, count(t))
	})

	t.Run("success commits", func(t *testing.T) {
		err := testDB.DB.WithTransaction(ctx, insert)
		require.NoError(t, err)
		assert.Equal(t, 1, count(t))
	})
}
