package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PickStatus is the lifecycle state of a published pick.
type PickStatus string

const (
	PickStatusPending PickStatus = "pending"
	PickStatusWon     PickStatus = "won"
	PickStatusLost    PickStatus = "lost"
	PickStatusVoid    PickStatus = "void"
)

// Pick is a tipster's published prediction. Analogous to a bet but not tied
// to a bankroll.
type Pick struct {
	ID        string          `db:"id" json:"id"`
	TipsterID string          `db:"tipster_id" json:"tipsterId"`
	Event     string          `db:"event" json:"event"`
	Market    string          `db:"market" json:"market"`
	Selection string          `db:"selection" json:"selection"`
	Odds      decimal.Decimal `db:"odds" json:"odds"`

	SportID   *string `db:"sport_id" json:"sportId"`
	LeagueID  *string `db:"league_id" json:"leagueId"`
	Bookmaker *string `db:"bookmaker" json:"bookmaker"`

	Analysis   string `db:"analysis" json:"analysis"`
	Confidence int    `db:"confidence" json:"confidence"`  // 1-5
	StakeUnits int    `db:"stake_units" json:"stakeUnits"` // 1-10 recommended units

	Status    PickStatus `db:"status" json:"status"`
	Result    *string    `db:"result" json:"result"`
	SettledAt *time.Time `db:"settled_at" json:"settledAt"`

	IsPremium bool `db:"is_premium" json:"isPremium"`

	EventDate   time.Time `db:"event_date" json:"eventDate"`
	PublishedAt time.Time `db:"published_at" json:"publishedAt"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// PickPatch lists the pick fields an update may change. Status, result and
// settledAt stay server-owned; there is no settlement operation.
type PickPatch struct {
	Event      *string          `json:"event"`
	Market     *string          `json:"market"`
	Selection  *string          `json:"selection"`
	Odds       *decimal.Decimal `json:"odds"`
	SportID    *string          `json:"sportId"`
	LeagueID   *string          `json:"leagueId"`
	Bookmaker  *string          `json:"bookmaker"`
	Analysis   *string          `json:"analysis"`
	Confidence *int             `json:"confidence"`
	StakeUnits *int             `json:"stakeUnits"`
	IsPremium  *bool            `json:"isPremium"`
	EventDate  *time.Time       `json:"eventDate"`
}

// PickListOptions paginates a tipster's picks, ordered by publish time
// descending. Settled picks are hidden unless IncludeSettled is set.
type PickListOptions struct {
	IncludeSettled bool
	Limit          int
	Offset         int
}
