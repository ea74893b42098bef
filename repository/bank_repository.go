package repository

import (
	"context"
	"fmt"

	"tipfolio/database"
	"tipfolio/models"

	"github.com/jackc/pgx/v5"
)

// BankRepository implements the service.BankRepository interface on Postgres
type BankRepository struct {
	q Queryable
}

// NewBankRepository creates a new bank repository
func NewBankRepository(db *database.DB) *BankRepository {
	return &BankRepository{q: db.Pool}
}

// newBankRepositoryWithTx creates a new bank repository bound to a transaction
func newBankRepositoryWithTx(tx Queryable) *BankRepository {
	return &BankRepository{q: tx}
}

const bankColumns = `id, user_id, name, currency, initial_balance, current_balance, is_active, created_at, updated_at`

func scanBank(row pgx.Row) (*models.Bank, error) {
	var bank models.Bank
	err := row.Scan(
		&bank.ID,
		&bank.UserID,
		&bank.Name,
		&bank.Currency,
		&bank.InitialBalance,
		&bank.CurrentBalance,
		&bank.IsActive,
		&bank.CreatedAt,
		&bank.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bank, nil
}

// GetByID retrieves a bank by id, returning nil when absent
func (r *BankRepository) GetByID(ctx context.Context, id string) (*models.Bank, error) {
	bank, err := scanBank(r.q.QueryRow(ctx, `SELECT `+bankColumns+` FROM banks WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get bank %s: %w", id, err)
	}
	return bank, nil
}

// ListByUser returns all banks owned by a user
func (r *BankRepository) ListByUser(ctx context.Context, userID string) ([]*models.Bank, error) {
	rows, err := r.q.Query(ctx, `SELECT `+bankColumns+` FROM banks WHERE user_id = $1 ORDER BY created_at, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list banks for user %s: %w", userID, err)
	}
	defer rows.Close()

	var banks []*models.Bank
	for rows.Next() {
		bank, err := scanBank(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bank: %w", err)
		}
		banks = append(banks, bank)
	}
	return banks, rows.Err()
}

// Create stores a new bank record
func (r *BankRepository) Create(ctx context.Context, bank *models.Bank) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO banks (id, user_id, name, currency, initial_balance, current_balance, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		bank.ID, bank.UserID, bank.Name, bank.Currency,
		bank.InitialBalance, bank.CurrentBalance, bank.IsActive,
		bank.CreatedAt, bank.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create bank %s: %w", bank.ID, err)
	}
	return nil
}

// Update applies a patch to an existing bank; returns nil when absent
func (r *BankRepository) Update(ctx context.Context, id string, patch models.BankPatch) (*models.Bank, error) {
	bank, err := scanBank(r.q.QueryRow(ctx, `SELECT `+bankColumns+` FROM banks WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, fmt.Errorf("failed to lock bank %s: %w", id, err)
	}
	if bank == nil {
		return nil, nil
	}

	patch.Apply(bank)

	err = r.q.QueryRow(ctx, `
		UPDATE banks
		SET name = $1, currency = $2, initial_balance = $3, is_active = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at`,
		bank.Name, bank.Currency, bank.InitialBalance, bank.IsActive, id,
	).Scan(&bank.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to update bank %s: %w", id, err)
	}
	return bank, nil
}

// Delete removes a bank, reporting whether a record existed.
// Dependent bets keep their bank_id and become orphaned.
func (r *BankRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM banks WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete bank %s: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}
