package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bank is a named bankroll owned by a single user. Bets are staked against it.
type Bank struct {
	ID             string          `db:"id" json:"id"`
	UserID         string          `db:"user_id" json:"userId"`
	Name           string          `db:"name" json:"name"`
	Currency       string          `db:"currency" json:"currency"`
	InitialBalance decimal.Decimal `db:"initial_balance" json:"initialBalance"`
	CurrentBalance decimal.Decimal `db:"current_balance" json:"currentBalance"`
	IsActive       bool            `db:"is_active" json:"isActive"`
	CreatedAt      time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updatedAt"`
}

// BankPatch lists the bank fields a profile update may change.
// CurrentBalance is excluded: it is set equal to InitialBalance at creation
// and only a dedicated balance-adjustment operation could change it.
type BankPatch struct {
	Name           *string          `json:"name"`
	Currency       *string          `json:"currency"`
	InitialBalance *decimal.Decimal `json:"initialBalance"`
	IsActive       *bool            `json:"isActive"`
}
