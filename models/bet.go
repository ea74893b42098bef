package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BetStatus is the lifecycle state of a bet.
type BetStatus string

const (
	BetStatusPending BetStatus = "pending"
	BetStatusWon     BetStatus = "won"
	BetStatusLost    BetStatus = "lost"
	BetStatusVoid    BetStatus = "void"
	BetStatusCashout BetStatus = "cashout"
)

// Settled reports whether the bet counts toward financial aggregates.
// Void and cashout bets are resolved but excluded from every aggregate.
func (s BetStatus) Settled() bool {
	return s == BetStatusWon || s == BetStatusLost
}

// Bet is a single wagering record owned by a user against one of their banks.
type Bet struct {
	ID        string          `db:"id" json:"id"`
	UserID    string          `db:"user_id" json:"userId"`
	BankID    string          `db:"bank_id" json:"bankId"`
	Event     string          `db:"event" json:"event"`
	Market    string          `db:"market" json:"market"`
	Selection string          `db:"selection" json:"selection"`
	Odds      decimal.Decimal `db:"odds" json:"odds"`
	Stake     decimal.Decimal `db:"stake" json:"stake"`

	SportID   *string `db:"sport_id" json:"sportId"`
	LeagueID  *string `db:"league_id" json:"leagueId"`
	Bookmaker *string `db:"bookmaker" json:"bookmaker"`

	Status    BetStatus       `db:"status" json:"status"`
	Profit    decimal.Decimal `db:"profit" json:"profit"`
	SettledAt *time.Time      `db:"settled_at" json:"settledAt"`

	Notes      *string  `db:"notes" json:"notes"`
	Confidence *int     `db:"confidence" json:"confidence"` // 1-5
	Tags       []string `db:"tags" json:"tags"`

	EventDate *time.Time `db:"event_date" json:"eventDate"`
	PlacedAt  time.Time  `db:"placed_at" json:"placedAt"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time  `db:"updated_at" json:"updatedAt"`
}

// BetPatch lists the bet fields an update may change. Status, profit and
// settledAt are excluded: no settlement operation exists, so a bet never
// legally leaves pending through a patch.
type BetPatch struct {
	BankID     *string          `json:"bankId"`
	Event      *string          `json:"event"`
	Market     *string          `json:"market"`
	Selection  *string          `json:"selection"`
	Odds       *decimal.Decimal `json:"odds"`
	Stake      *decimal.Decimal `json:"stake"`
	SportID    *string          `json:"sportId"`
	LeagueID   *string          `json:"leagueId"`
	Bookmaker  *string          `json:"bookmaker"`
	Notes      *string          `json:"notes"`
	Confidence *int             `json:"confidence"`
	Tags       *[]string        `json:"tags"`
	EventDate  *time.Time       `json:"eventDate"`
}

// BetListOptions filters and paginates a user's bet list.
// Offset is applied before Limit; zero values mean "no constraint".
type BetListOptions struct {
	BankID string
	Limit  int
	Offset int
}
